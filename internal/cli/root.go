package cli

import (
	"github.com/spf13/cobra"
	"github.com/thefifthleaf/subconv/internal/logging"
)

var (
	verbose bool
	logFile string
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subconv",
	Short: "Convert and detect subtitle file formats",
	Long: `Subconv converts subtitle files between the MPlayer2, SubRip,
MicroDVD and TMPlayer formats and detects which format a file uses.

Point it at a single file or a directory tree.

Supported format names: mpl, srt, sub, tmp.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if logFile != "" {
			logger, err = logging.NewFileLogger(logFile, verbose)
			return err
		}
		logger = logging.NewLogger(verbose)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Close()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&logFile, "log", "", "Append log records to a file")
}
