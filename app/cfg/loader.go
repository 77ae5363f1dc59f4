package cfg

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return firstNonZero(Version, "unknown")
}

type rawCfg struct {
	// Dataset files
	InputFile   string `short:"i" long:"input" env:"INPUT_FILE" description:"Raw scraper dataset (JSON array)" required:"true"`
	OutputFile  string `short:"o" long:"output" env:"OUTPUT_FILE" description:"Normalized posts file to write" required:"true"`
	ProfileFile string `long:"profile" env:"PROFILE_FILE" description:"YAML dataset profile with author and fallback date (optional)"`

	// Logging
	LogFormat string `long:"log-format" env:"LOG_FORMAT" default:"console" choice:"console" choice:"json" description:"Log output format"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load parses command-line arguments and environment variables. It returns
// nil without an error when help was requested.
func Load(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		InputFile:   raw.InputFile,
		OutputFile:  raw.OutputFile,
		ProfileFile: raw.ProfileFile,
		LogFormat:   raw.LogFormat,
		Debug:       raw.Debug,
		Version:     GetVersion(),
	}

	if cfg.InputFile == cfg.OutputFile {
		return nil, fmt.Errorf("input and output must be different files: %s", cfg.InputFile)
	}

	return cfg, nil
}

// firstNonZero returns the first argument that is not the zero value
// (equivalent to cmp.Or, which requires Go 1.22).
func firstNonZero[T comparable](vals ...T) T {
	var zero T
	for _, v := range vals {
		if v != zero {
			return v
		}
	}
	return zero
}
