package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/gemscli/foundation/cli/help"
	"github.com/msto63/gemscli/foundation/cli/options"
	"github.com/msto63/gemscli/foundation/core/config"
	gemslog "github.com/msto63/gemscli/foundation/core/log"
)

const envPrefix = "GEMSCLI"

var (
	cfgFile   string
	preset    string
	style     string
	helpFile  string
	helpScope string
	verbose   bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "gemscli",
	Short: "Describe and check command-line patterns",
	Long: `gemscli compiles usage patterns such as

  file [--verbose] [--count#=int]

into parameter descriptions and checks argument lists against them.

Styles:
  windows  /name:value
  unix     --name=value
  dash     -name:value`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: configureLogging,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && err != errInvalidArguments {
		printError(rootCmd, err)
	}
	return err
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&style, "style", "windows", "argument style: "+strings.Join(options.Names(), ", "))
	flags.StringVar(&cfgFile, "config", "", "preset file (TOML or YAML)")
	flags.StringVar(&preset, "preset", "", "preset name from the preset file")
	flags.StringVar(&helpFile, "help-file", "", "help catalog (TOML or YAML)")
	flags.StringVar(&helpScope, "scope", "", "help catalog scope")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	flags.StringVar(&logFormat, "log-format", "text", "log format: json, text, console")
}

func configureLogging(cmd *cobra.Command, args []string) error {
	format, err := gemslog.ParseFormat(logFormat)
	if err != nil {
		return err
	}
	logger := gemslog.NewWithConfig(gemslog.Config{
		Level:  gemslog.LevelWarn,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "gemscli",
	})
	if verbose {
		logger.SetLevel(gemslog.LevelDebug)
	}
	gemslog.SetDefault(logger)
	return nil
}

// commandLogger names the default logger after the running subcommand and
// tags it with the argument style
func commandLogger(cmd *cobra.Command, opts options.CliOptions) *gemslog.Logger {
	return gemslog.GetDefault().
		WithName("gemscli." + cmd.Name()).
		WithFields(gemslog.Fields{
			"prefix":    opts.Prefix,
			"separator": string(opts.EqualChar),
		})
}

// resolveStyle picks the options from --config/--preset, falling back to
// --style
func resolveStyle() (options.CliOptions, error) {
	if cfgFile == "" && preset == "" {
		return options.Named(style)
	}

	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadWithOptions(cfgFile, config.LoadOptions{EnvPrefix: envPrefix})
	} else {
		cfg, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return options.CliOptions{}, err
	}
	return cfg.Preset(preset)
}

// resolveHelp loads the help catalog, if any
func resolveHelp() (help.Provider, error) {
	if helpFile == "" {
		return help.None, nil
	}
	catalog, err := help.LoadCatalog(helpFile)
	if err != nil {
		return nil, err
	}
	if helpScope != "" {
		return catalog.Scope(helpScope), nil
	}
	return catalog, nil
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("error: "+err.Error()))
}
