package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/mekane/Grimdark-Future-Rules-Parser/armybook"
	"github.com/mekane/Grimdark-Future-Rules-Parser/parser"
)

var Version = "0.1.0"

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		cfg     Config
	)

	root := &cobra.Command{
		Use:   "grimdark",
		Short: "Parse Grimdark Future statblocks into structured records",
		Long: `grimdark turns single-line statblock text into unit, weapon and
upgrade records and prints them as YAML or JSON.

  grimdark unit 'Grunt [1] 5+ 6+ Rifle (24”, A1) Slow A, B 20pts'
  grimdark group 'Replace one Pistol:'
  grimdark book army.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("output") {
				loaded.Output = cfg.Output
			}
			if flags.Changed("verbose") {
				loaded.Verbose = cfg.Verbose
			}
			if flags.Changed("library") {
				loaded.LibraryDir = cfg.LibraryDir
			}
			if flags.Changed("listen") {
				loaded.Listen = cfg.Listen
			}
			if err := loaded.validate(); err != nil {
				return err
			}
			cfg = loaded
			return initLogger(cfg.Verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeLogger()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./"+_defaultConfigFile+")")
	pf.StringVarP(&cfg.Output, "output", "o", "yaml", "output format: yaml or json")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose logging")
	pf.StringVar(&cfg.LibraryDir, "library", "./library/", "unit library directory")
	pf.StringVar(&cfg.Listen, "listen", ":8080", "listen address for serve")

	root.AddCommand(
		lineCommand("unit <statblock...>", "Parse a unit statblock", &cfg, func(line string) (interface{}, error) {
			return parser.ParseUnit(line)
		}),
		lineCommand("upgrade <option...>", "Parse an upgrade option line", &cfg, func(line string) (interface{}, error) {
			return parser.ParseUpgrade(line)
		}),
		lineCommand("group <header...>", "Parse an upgrade group header", &cfg, func(line string) (interface{}, error) {
			return parser.ParseUpgradeGroup(line)
		}),
		lineCommand("split <text...>", "Split text on commas outside parentheses", &cfg, func(line string) (interface{}, error) {
			return parser.SplitByCommas(line), nil
		}),
		bookCommand(&cfg),
		showCommand(&cfg),
		serveCommand(&cfg),
		versionCommand(),
	)
	return root
}

// lineCommand joins its arguments into one line, parses it and prints the
// record.
func lineCommand(use, short string, cfg *Config, parse func(string) (interface{}, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := parse(joinArgs(args))
			if err != nil {
				return err
			}
			return writeRecord(cmd.OutOrStdout(), cfg.Output, record)
		},
	}
}

func bookCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "book <file>",
		Short: "Assemble a statblock book file into units and upgrade packages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := armybook.NewAssembler(cliLogger).AssembleFile(args[0])
			if book == nil {
				return err
			}
			if werr := writeRecord(cmd.OutOrStdout(), cfg.Output, book); werr != nil {
				return werr
			}
			errs := multierr.Errors(err)
			for _, e := range errs {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", e)
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d line(s) failed to parse", len(errs))
			}
			return nil
		},
	}
}

func showCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "show <unit>",
		Short: "Print a unit from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := loadUnit(cfg.LibraryDir, args[0])
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), entry)
			return nil
		},
	}
}

func serveCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the parsers over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliLogger.Info("listening", zap.String("addr", cfg.Listen))
			return newServer(cfg.Listen, cliLogger).ListenAndServe()
		},
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "grimdark v%s (%s %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
