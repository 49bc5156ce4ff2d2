package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagVerbose  = flag.Bool("verbose", false, "Enable verbose parse tracing")
	flagLogFile  = flag.String("log-file", "", "Write logs to file")
	flagPattern  = flag.String("pattern", "", "Glob pattern for scan")
	flagManifest = flag.String("manifest", "", "Manifest output path for scan")
)

// ParseFlags parses command-line flags from args. Call this early in main(),
// after splitting off the subcommand.
func ParseFlags(args []string) {
	flag.CommandLine.Parse(args)
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via -config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagVerbose {
		cfg.Importer.VerboseParse = true
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagPattern != "" {
		cfg.Scan.Pattern = *flagPattern
	}
	if *flagManifest != "" {
		cfg.Scan.Manifest = *flagManifest
	}
}
