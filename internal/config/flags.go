package config

import (
	"flag"
	"os"
	"time"

	"github.com/wisebook/wisebook/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local database (default from Config)
//	-k string   API key for the recommendation provider
//	-i int      simulated API delay in milliseconds (default from Config)
//	-l string   log level
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database")
	fs.StringVar(&cfg.OpenAIAPIKey, "k", cfg.OpenAIAPIKey, "API key for personalized recommendations")
	apiDelay := fs.Int("i", int(cfg.APIDelay.Milliseconds()), "simulated API delay (in milliseconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.APIDelay = time.Duration(*apiDelay) * time.Millisecond
}
