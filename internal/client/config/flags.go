package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/lawlink/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   backend base URL
//	-i int      chat poll interval (seconds)
//	-d string   local database path
//	-l string   log file path
//
// Only these flags are read from os.Args (see flagx.FilterArgs); a malformed
// value panics.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "backend base URL")
	pollInterval := fs.Int("i", int(cfg.PollInterval.Seconds()), "chat poll interval (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only touch the interval when -i was given, so sub-second values from
	// JSON or the environment survive.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.PollInterval = time.Duration(*pollInterval) * time.Second
		}
	})
}
