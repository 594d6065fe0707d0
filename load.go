package gaussian

import (
	"os"
	"runtime"

	"github.com/BurntSushi/toml"
)

type RawConf struct {
	InputDir   string
	OutputDir  string
	Extensions []string
	Jobs       int
}

func (rc RawConf) ToConfig() (conf Config) {
	conf.InputDir = rc.InputDir
	conf.OutputDir = rc.OutputDir
	conf.Extensions = rc.Extensions
	conf.Jobs = rc.Jobs
	if conf.Jobs < 1 {
		conf.Jobs = runtime.NumCPU()
	}
	return
}

type Config struct {
	InputDir   string
	OutputDir  string
	Extensions []string
	Jobs       int
}

// DefaultConfig returns the configuration used when no config file is
// given: analyze the current directory into gaussian_analysis_results
// with one worker per CPU.
func DefaultConfig() Config {
	return RawConf{
		InputDir:   ".",
		OutputDir:  "gaussian_analysis_results",
		Extensions: []string{".log", ".out", ".gaussian"},
	}.ToConfig()
}

// LoadConfig reads a TOML batch configuration, filling in the same
// defaults as DefaultConfig for fields the file omits.
func LoadConfig(filename string) (Config, error) {
	cont, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	// Defaults
	rc := RawConf{
		InputDir:   ".",
		OutputDir:  "gaussian_analysis_results",
		Extensions: []string{".log", ".out", ".gaussian"},
	}
	if err := toml.Unmarshal(cont, &rc); err != nil {
		return Config{}, err
	}
	return rc.ToConfig(), nil
}
