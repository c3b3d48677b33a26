// Package cmd provides the command-line interface for mkmagnet.
//
// Configuration System:
//
//	The CLI supports optional configuration through multiple sources:
//	1. Command-line flags (--config, --log-level) - highest priority
//	2. MKMAGNET_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (MKMAGNET_LOG_LEVEL, etc.)
//	4. Configuration file (.mkmagnet.yml) - lowest priority
//
// The config file may also carry a 'trackers' list of default tracker
// URIs appended to every generated link.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/conneroisu/mkmagnet/internal/errors"
	"github.com/conneroisu/mkmagnet/internal/input"
	"github.com/conneroisu/mkmagnet/internal/logging"
	"github.com/conneroisu/mkmagnet/internal/magnet"
)

var (
	cfgFile     string
	hashArg     string
	fileArg     string
	titleArg    string
	trackerArgs []string
)

// rootCmd represents the base command; building the link is the default
// action, no subcommand required.
var rootCmd = &cobra.Command{
	Use:   "mkmagnet",
	Short: "Create a magnet link from the given parameters",
	Long: `mkmagnet builds a magnet URI from a torrent info hash plus optional
display title and tracker announce URIs, and prints it to stdout.

The hash comes from --hash or from a YAML/JSON file (--file), never both.
Title and tracker flags layer on top of any file-sourced values.

File Format:
  The input file must contain a YAML/JSON object with a single property
  consisting of the torrent hash as the key (formatted as a 40 character
  hexadecimal string) and a dictionary of link options as the value.

  The valid link options are:

    'title'      the torrent title
    'trackers'   a list of tracker URIs

File Example:
  0102030405060708090a0b0c0d0e0f1011121314:
    title: Torrent.Title.Example.001
    trackers:
      - http://tracker.torrentsite.com:5678/announce
      - udp://track.othersite.com:8910`,
	Example: `  mkmagnet --hash 0102030405060708090a0b0c0d0e0f1011121314
  mkmagnet -f torrent.yml -n "Better Title" -t udp://track.example.com:8910
  cat torrent.yml | mkmagnet -f -`,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is .mkmagnet.yml, can also use MKMAGNET_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	registerLinkFlags(rootCmd.Flags())

	// flag misuse follows the same exit-2 path as a missing source
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return errors.NewUsageError("bad_flags", err.Error())
	})
}

// registerLinkFlags defines the link-building flags on a flag set.
func registerLinkFlags(fs *pflag.FlagSet) {
	fs.StringVar(&hashArg, "hash", "", "torrent hash")
	fs.StringVarP(&fileArg, "file", "f", "", "read parameters from YAML/JSON file (or '-' for stdin)")
	fs.StringVarP(&titleArg, "title", "n", "", "torrent title")
	fs.StringArrayVarP(&trackerArgs, "tracker", "t", nil, "tracker URI (repeatable)")
}

// initConfig wires viper to the optional .mkmagnet.yml config and the
// MKMAGNET_ environment namespace.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("MKMAGNET_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mkmagnet")
	}

	viper.SetEnvPrefix("MKMAGNET")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// a missing config file is fine; the tool runs on flags alone
	_ = viper.ReadInConfig()
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger := logging.New(cmd.ErrOrStderr(),
		logging.ParseLevel(viper.GetString("log-level"))).WithComponent("cli")

	link, err := buildLink(logger)
	if err != nil {
		if errors.IsUsageError(err) {
			fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), link)

	return nil
}

// buildLink assembles a magnet link from the selected source plus any
// flag and config overrides, in that order.
func buildLink(logger *logging.Logger) (*magnet.Link, error) {
	var link *magnet.Link

	switch {
	case hashArg != "" && fileArg != "":
		return nil, errors.NewUsageError("source_conflict",
			"--hash and --file are mutually exclusive")

	case hashArg != "":
		logger.Debug("building from hash argument")
		l, err := magnet.New(hashArg)
		if err != nil {
			return nil, err
		}
		link = l

	case fileArg != "":
		logger.Debug("building from input file", "path", fileArg)
		params, err := input.LoadPath(fileArg)
		if err != nil {
			return nil, err
		}
		l, err := magnet.New(params.Hash)
		if err != nil {
			return nil, err
		}
		if params.HasTitle {
			l.SetTitle(params.Title)
		}
		for _, uri := range params.Trackers {
			if err := l.AddTracker(uri); err != nil {
				return nil, err
			}
		}
		link = l

	default:
		return nil, errors.NewUsageError("no_source",
			"either --hash or --file is required")
	}

	// flag values apply after file-sourced values
	if titleArg != "" {
		link.SetTitle(titleArg)
	}
	for _, uri := range trackerArgs {
		if err := link.AddTracker(uri); err != nil {
			return nil, err
		}
	}

	// default trackers from config come last; duplicates are suppressed
	for _, uri := range viper.GetStringSlice("trackers") {
		logger.Debug("adding default tracker from config", "uri", uri)
		if err := link.AddTracker(uri); err != nil {
			return nil, err
		}
	}

	return link, nil
}
