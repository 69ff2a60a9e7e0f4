// Package batch discovers subtitle files and runs the conversion pipeline
// over them with bounded concurrency. Files are independent units of work:
// a failure is confined to its file and reported in the run summary.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/thefifthleaf/subconv/internal/charset"
	"github.com/thefifthleaf/subconv/internal/logging"
	"github.com/thefifthleaf/subconv/internal/subtitle"
)

// ErrPathNotFound aborts the whole run; every other error stays per-file.
var ErrPathNotFound = errors.New("path does not exist")

// DefaultMaxFileSize bounds memory use, since whole files are held in
// memory during conversion.
const DefaultMaxFileSize = 16 << 20

// FileResult records the pipeline outcome for one discovered file.
type FileResult struct {
	Path    string
	Target  string
	Format  subtitle.Format
	Charset string
	Entries int
	Skipped int
	Err     error
}

type Summary struct {
	Files     []FileResult
	Converted int
	Failed    int
}

// Detection is the per-file report of the detect command.
type Detection struct {
	Path    string
	Charset string
	Format  subtitle.Format
	Err     error
}

type Runner struct {
	Logger      *logging.Logger
	Workers     int // 0 means number of CPUs
	Options     subtitle.Options
	MaxFileSize int64
}

// Discover resolves a root path to the files it covers: a file is itself,
// a directory is walked recursively.
func Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, root)
		}
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return files, nil
}

// Convert runs the pipeline over every file under root, writing each
// result next to its input with the target format's extension.
func (r *Runner) Convert(
	ctx context.Context,
	root string,
	target subtitle.Format,
) (Summary, error) {
	logger := r.logger()

	files, err := Discover(root)
	if err != nil {
		return Summary{}, err
	}
	logger.Infow("Input files", "count", len(files), "path", root)

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(files) {
		workers = len(files)
	}

	jobs := make(chan string)
	results := make(chan FileResult)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- r.convertFile(path, target)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, file := range files {
			select {
			case jobs <- file:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var summary Summary
	for res := range results {
		if res.Err != nil {
			summary.Failed++
			logger.Errorw("Conversion failed",
				"file", filepath.Base(res.Path),
				"error", res.Err,
			)
		} else {
			summary.Converted++
			logger.Infow("Saved",
				"file", filepath.Base(res.Target),
				"entries", res.Entries,
			)
			if res.Skipped > 0 {
				logger.Warnw("Skipped malformed lines",
					"file", filepath.Base(res.Path),
					"lines", res.Skipped,
				)
			}
		}
		summary.Files = append(summary.Files, res)
	}

	return summary, ctx.Err()
}

// Detect classifies every file under root without converting anything.
func (r *Runner) Detect(ctx context.Context, root string) ([]Detection, error) {
	logger := r.logger()

	files, err := Discover(root)
	if err != nil {
		return nil, err
	}
	logger.Infow("Input files", "count", len(files), "path", root)

	detections := make([]Detection, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return detections, err
		}

		det := Detection{Path: path, Format: subtitle.FormatUndefined}
		text, name, err := r.readDecoded(path)
		if err != nil {
			det.Err = err
		} else {
			det.Charset = name
			det.Format = subtitle.DetectFormat(text)
		}
		logger.Infow("Detected",
			"file", filepath.Base(path),
			"charset", det.Charset,
			"format", det.Format.Name(),
		)
		detections = append(detections, det)
	}
	return detections, nil
}

func (r *Runner) convertFile(path string, target subtitle.Format) FileResult {
	res := FileResult{Path: path, Format: subtitle.FormatUndefined}

	text, name, err := r.readDecoded(path)
	if err != nil {
		res.Err = err
		return res
	}
	res.Charset = name

	form := subtitle.DetectFormat(text)
	res.Format = form
	if form == subtitle.FormatUndefined {
		res.Err = subtitle.ErrCannotConvert
		return res
	}

	conv, err := subtitle.Convert(text, form, target, r.Options)
	if err != nil {
		res.Err = err
		return res
	}
	res.Entries = conv.Entries
	res.Skipped = conv.Skipped
	r.logger().Infow("Converted",
		"file", filepath.Base(path),
		"from", form.Name(),
		"to", target.Name(),
	)

	// output keeps the input's encoding
	encoded, err := charset.Encode(conv.Output, name)
	if err != nil {
		res.Err = err
		return res
	}

	res.Target = subtitle.TargetPath(path, target)
	if err := os.WriteFile(res.Target, encoded, 0644); err != nil {
		res.Err = fmt.Errorf("failed to write %s: %w", res.Target, err)
		return res
	}
	return res
}

// readDecoded loads a file, detects its encoding and decodes it to UTF-8.
// The returned charset name is empty when detection fell back to UTF-8.
func (r *Runner) readDecoded(path string) (string, string, error) {
	maxSize := r.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", "", err
	}
	if info.Size() > maxSize {
		return "", "", fmt.Errorf(
			"file too large: %d bytes (limit %d)", info.Size(), maxSize,
		)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}

	detected := charset.Detect(data)
	if detected.Charset == "" {
		r.logger().Warnw("Encoding not detected, assuming UTF-8",
			"file", filepath.Base(path),
		)
	} else {
		r.logger().Debugw("Encoding detected",
			"file", filepath.Base(path),
			"charset", detected.Charset,
			"confidence", detected.Confidence,
		)
	}

	text, err := charset.Decode(data, detected.Charset)
	if err != nil {
		return "", "", err
	}
	return text, detected.Charset, nil
}

func (r *Runner) logger() *logging.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return logging.NewNop()
}
