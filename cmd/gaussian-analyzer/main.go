package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	gaussian "github.com/vvchaban/Gaussian-09-Parser"
)

var (
	configFile string
	jobs       int
)

var rootCmd = &cobra.Command{
	Use:   "gaussian-analyzer INPUT_DIR OUTPUT_DIR",
	Short: "Extract energies, geometries, and frequencies from Gaussian 09 output",
	Long: `gaussian-analyzer scans INPUT_DIR for Gaussian 09 output files
(.log, .out, .gaussian) and writes four timestamped reports per file
into OUTPUT_DIR: SCF energies, final geometry, vibrational
frequencies, and a calculation summary. Files that cannot be read are
reported and skipped.`,
	Args: cobra.ExactArgs(2),
	RunE: runBatch,
}

var parseCmd = &cobra.Command{
	Use:   "parse FILE OUTPUT_DIR",
	Short: "Analyze a single output file",
	Args:  cobra.ExactArgs(2),
	RunE:  runParse,
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := gaussian.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = gaussian.LoadConfig(configFile)
		if err != nil {
			return err
		}
	}
	cfg.InputDir = args[0]
	cfg.OutputDir = args[1]
	if jobs > 0 {
		cfg.Jobs = jobs
	}
	results, err := gaussian.ProcessDir(cfg)
	if err != nil {
		return err
	}
	if table := gaussian.FormatBatchSummary(results); table != "" {
		fmt.Print(table)
	}
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	a := gaussian.NewAnalyzer(args[0])
	if err := a.ReadFile(); err != nil {
		return err
	}
	if a.Result.Empty() {
		fmt.Fprintf(os.Stderr, "Warning: no data found in %s\n", args[0])
	}
	return a.SaveResults(args[1])
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"TOML batch configuration file")
	rootCmd.Flags().IntVarP(&jobs, "jobs", "j", 0,
		"max files processed concurrently (default one per CPU)")
	rootCmd.AddCommand(parseCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
