package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/thefifthleaf/subconv/internal/batch"
)

var detectCmd = &cobra.Command{
	Use:   "detect [path]",
	Short: "Detect subtitle format of a file",
	Long: `Report the subtitle format of a file, or of every file under a
directory. Detection is structural: the content is classified against the
MPlayer2, SubRip, MicroDVD and TMPlayer grammars, never by file extension.

Examples:
  subconv detect movie.srt
  subconv detect ./season-01`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	start := time.Now()
	logger.Infow("START", "command", "detect", "path", path)

	runner := &batch.Runner{Logger: logger}
	detections, err := runner.Detect(cmd.Context(), path)
	if err != nil {
		logger.Errorw("Run failed", "error", err)
		return err
	}

	for _, det := range detections {
		if det.Err != nil {
			fmt.Printf("failed: %s: %v\n", filepath.Base(det.Path), det.Err)
			continue
		}
		fmt.Printf("%s is in %s format\n",
			filepath.Base(det.Path),
			det.Format.Name())
	}

	logger.Infow("Execution time", "seconds", time.Since(start).Seconds())
	logger.Infow("END")
	return nil
}
