package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/thefifthleaf/subconv/internal/batch"
	"github.com/thefifthleaf/subconv/internal/subtitle"
)

var convertCmd = &cobra.Command{
	Use:   "convert [path] [format]",
	Short: "Convert subtitles to a given format",
	Long: `Convert a subtitle file, or every file under a directory, to the
given format. Output files are written next to their inputs with the
target format's extension, keeping the input's character encoding.

Examples:
  subconv convert movie.srt sub
  subconv convert ./season-01 tmp --fps 25
  subconv convert ./subs mpl --log run.log`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		Float64("fps", subtitle.DefaultFrameRate, "Frame rate for MicroDVD timing")
	convertCmd.Flags().
		IntP("workers", "w", 0, "Number of parallel workers (0 = number of CPUs)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	target, err := subtitle.FormatFromName(args[1])
	if err != nil {
		return err
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	fps, _ := cmd.Flags().GetFloat64("fps")
	workers, _ := cmd.Flags().GetInt("workers")

	start := time.Now()
	logger.Infow("START",
		"command", "convert",
		"path", path,
		"format", target.Name(),
	)

	runner := &batch.Runner{
		Logger:  logger,
		Workers: workers,
		Options: subtitle.Options{FrameRate: fps},
	}

	summary, err := runner.Convert(cmd.Context(), path, target)
	if err != nil {
		logger.Errorw("Run failed", "error", err)
		return err
	}

	for _, file := range summary.Files {
		if file.Err != nil {
			fmt.Printf("failed: %s: %v\n", filepath.Base(file.Path), file.Err)
		} else {
			fmt.Printf("%s -> %s\n",
				filepath.Base(file.Path),
				filepath.Base(file.Target))
		}
	}
	fmt.Printf("Converted %d of %d files in %.2fs\n",
		summary.Converted,
		len(summary.Files),
		time.Since(start).Seconds())

	logger.Infow("Execution time", "seconds", time.Since(start).Seconds())
	logger.Infow("END")

	if len(summary.Files) > 0 && summary.Converted == 0 {
		return fmt.Errorf("no files converted")
	}
	return nil
}
