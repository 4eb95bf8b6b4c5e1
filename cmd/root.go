package cmd

import (
	"flag"
	"fmt"
	"os"

	"datesuggest/internal"
)

// globalOptions are the flags accepted before the command name.
type globalOptions struct {
	configPath string
	parseTime  bool
	hour       int
	minute     int
}

func Execute() {
	var opts globalOptions
	flag.StringVar(&opts.configPath, "c", "", "Path to config file")
	flag.BoolVar(&opts.parseTime, "time", false, "Suggest hours and extrapolate by hours")
	flag.IntVar(&opts.hour, "hour", -1, "Default hour for suggestions")
	flag.IntVar(&opts.minute, "minute", -1, "Default minute for suggestions")

	// Custom usage to handle our command structure
	flag.Usage = func() {
		showHelp()
	}

	flag.Parse()

	config, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()

	if len(args) == 0 {
		// No command, run interactive mode
		if err := InteractiveCommand(config); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	command := args[0]
	nonFlagArgs := args[1:]

	switch command {
	case "suggest", "s":
		err = SuggestCommand(config, nonFlagArgs)
	case "replay":
		err = ReplayCommand(config, os.Stdin, os.Stdout)
	case "interactive", "i":
		err = InteractiveCommand(config)
	case "httpd":
		addr := ""
		if len(nonFlagArgs) > 0 {
			addr = nonFlagArgs[0]
		}
		err = HttpdCommand(config, addr)
	case "init-config":
		err = InitConfigCommand(opts.configPath)
	case "help", "-h", "--help":
		showHelp()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		showHelp()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(opts globalOptions) (*internal.Config, error) {
	var config *internal.Config
	var err error
	if opts.configPath != "" {
		config, err = internal.LoadConfigFrom(opts.configPath)
	} else {
		config, err = internal.LoadConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.parseTime {
		config.Suggest.ParseTime = true
	}
	if opts.hour >= 0 {
		if opts.hour > 23 {
			return nil, fmt.Errorf("hour must be between 0 and 23, got %d", opts.hour)
		}
		config.Suggest.Hour = opts.hour
	}
	if opts.minute >= 0 {
		if opts.minute > 59 {
			return nil, fmt.Errorf("minute must be between 0 and 59, got %d", opts.minute)
		}
		config.Suggest.Minute = opts.minute
	}
	return config, nil
}

func showHelp() {
	fmt.Println(`datesuggest - Date suggestions for partially typed phrases

Usage:
  datesuggest [options] [command] [arguments]

Options:
  -c <file>      Path to config file (default: ~/.config/datesuggest/config.toml)
  -time          Suggest hours and extrapolate by hours
  -hour <h>      Default hour for suggestions
  -minute <m>    Default minute for suggestions

Commands:
  suggest <query>  Print suggestions for a query
  replay           Read queries from stdin, one per line, as one typing session
  interactive, i   Pick a date interactively (default)
  httpd [addr]     Start HTTP server (default: 127.0.0.1:7676)
  init-config      Create default configuration file
  help             Show this help message

Examples:
  datesuggest                        # Interactive mode
  datesuggest suggest next fr        # Suggestions for "next fr"
  datesuggest -time suggest in 1 h   # Includes "in an hour"
  printf 'n\nne\nnex\n' | datesuggest replay

Environment Variables:
  DATESUGGEST_CONFIG  Path to config file`)
}
