package protocol

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/datazip-inc/tablefilter/constants"
	"github.com/datazip-inc/tablefilter/pipeline"
	"github.com/datazip-inc/tablefilter/utils/logger"
)

var errMissingCols = errors.New("missing --cols")

// transformer is swapped by tests to pin the clock
var transformer = pipeline.NewTransformer()

// CreateRootCommand builds the tf command tree. Each call returns fresh flag state.
func CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tf",
		Short: "Filter and format CLI tabular output",
		Long: "tf reads delimiter separated rows from stdin, keeps the requested columns,\n" +
			"filters, transforms and sorts the rows and prints an aligned table.",
		Args: cobra.NoArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.Init()
		},
		RunE: runFilter,
	}

	flags := rootCmd.Flags()
	flags.StringP(constants.Profile, "p", "", "Profile name from the config file to use")
	flags.IntP(constants.HeadersRow, "H", constants.DefaultHeadersRow, "1-based row number containing the headers")
	flags.IntP(constants.SkipLines, "s", 0, "Number of lines to skip after the header row")
	flags.IntP(constants.SkipResults, "r", 0, "Number of results to skip")
	flags.StringP(constants.Cols, "c", "", "Comma-separated list of column names to display")
	flags.StringP(constants.Separator, "f", constants.DefaultSeparator, "Character used to separate columns. The 'Box Drawings Light Vertical' character is used by default")
	flags.StringP(constants.Match, "m", "", `JSON object mapping column names to a string or list of strings to match: {"COLUMN_NAME": "value"}`)
	flags.BoolP(constants.Quiet, "q", false, "Only display a column named ID")
	flags.String(constants.SortBy, "", "Column name to sort by")
	flags.String(constants.SortOrder, constants.DefaultSortOrder, "Sort order (asc or desc)")
	flags.String(constants.Transform, "", "JSON object mapping column names to transformation functions. Supported functions: $AGE_TO_DATE, and $TO_LOWER")
	flags.Bool(constants.NoHeaders, false, "Don't display the headers row")

	persistent := rootCmd.PersistentFlags()
	persistent.String(constants.ConfigPath, "", "Path to the profiles file (default: tf.config.json in the user config directory, or $TF_CONFIG)")
	persistent.String(constants.LogLevel, constants.DefaultLogLevel, "Log level written to stderr (debug, info, warn, error)")
	persistent.String(constants.LogFile, "", "Also write logs to this file, rotated")

	viper.SetEnvPrefix(constants.EnvPrefix)
	_ = viper.BindEnv(constants.ConfigPath)
	_ = viper.BindPFlag(constants.ConfigPath, persistent.Lookup(constants.ConfigPath))
	_ = viper.BindPFlag(constants.LogLevel, persistent.Lookup(constants.LogLevel))
	_ = viper.BindPFlag(constants.LogFile, persistent.Lookup(constants.LogFile))

	rootCmd.AddCommand(newConfigCmd())
	// errors are reported once by main
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	return rootCmd
}

func runFilter(cmd *cobra.Command, _ []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	if len(opts.Columns) == 0 {
		if stdin, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(stdin.Fd())) {
			_ = cmd.Help()
		}
		return errMissingCols
	}

	lines, err := readLines(cmd.InOrStdin())
	if err != nil {
		return err
	}
	logger.Debugf("read %d lines from stdin", len(lines))

	table, err := pipeline.Run(lines, opts, transformer)
	if err != nil {
		return err
	}

	// one write per run, never a partial table
	_, err = io.WriteString(cmd.OutOrStdout(), table)
	return err
}
