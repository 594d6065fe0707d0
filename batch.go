package gaussian

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// FileResult pairs one input file with its final energy for the batch
// summary table.
type FileResult struct {
	Name        string
	FinalEnergy float64
	HasEnergy   bool
}

// ProcessDir analyzes every recognized output file in cfg.InputDir
// and writes the four reports per file into cfg.OutputDir. Files are
// processed concurrently, at most cfg.Jobs at a time. A single file's
// failure is logged and skipped; only an unreadable input directory
// or an uncreatable output directory is fatal.
func ProcessDir(cfg Config) ([]FileResult, error) {
	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, err
	}
	var (
		mu      sync.Mutex
		results []FileResult
	)
	var g errgroup.Group
	g.SetLimit(cfg.Jobs)
	for _, entry := range entries {
		if entry.IsDir() || !Recognized(entry.Name(), cfg.Extensions) {
			continue
		}
		name := entry.Name()
		g.Go(func() error {
			a := NewAnalyzer(filepath.Join(cfg.InputDir, name))
			if err := a.ReadFile(); err != nil {
				log.Printf("Error processing %s: %v", name, err)
				return nil // keep the batch going
			}
			if a.Result.Empty() {
				log.Printf("Warning: no data found in %s", name)
			}
			if err := a.SaveResults(cfg.OutputDir); err != nil {
				log.Printf("Error processing %s: %v", name, err)
				return nil
			}
			fmt.Fprintf(os.Stderr, "Successfully processed: %s\n", name)
			fr := FileResult{Name: name}
			fr.FinalEnergy, fr.HasEnergy = a.Result.FinalEnergy()
			mu.Lock()
			results = append(results, fr)
			mu.Unlock()
			return nil
		})
	}
	g.Wait()
	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})
	return results, nil
}

// Recognized reports whether name carries one of the accepted output
// extensions.
func Recognized(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
