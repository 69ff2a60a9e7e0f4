package subtitle

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// represents single timed caption
type Entry struct {
	Index int
	Start time.Duration
	End   time.Duration
	Lines []string
}

// represents format-agnostic subtitle track, ordered by start time
type Subtitle struct {
	Entries []Entry
	Skipped int // malformed lines dropped during parsing
}

// represents supported subtitle formats
type Format string

const (
	FormatMPlayer2  Format = "mpl"
	FormatSubRip    Format = "srt"
	FormatMicroDVD  Format = "sub"
	FormatTMPlayer  Format = "tmp"
	FormatUndefined Format = "undefined"
)

// human readable format name
func (f Format) Name() string {
	switch f {
	case FormatMPlayer2:
		return "MPlayer2"
	case FormatSubRip:
		return "SubRip"
	case FormatMicroDVD:
		return "MicroDVD"
	case FormatTMPlayer:
		return "TMPlayer"
	default:
		return "Unknown"
	}
}

// FormatFromName resolves the short format names accepted on the command
// line: mpl, srt, sub, tmp.
func FormatFromName(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatMPlayer2:
		return FormatMPlayer2, nil
	case FormatSubRip:
		return FormatSubRip, nil
	case FormatMicroDVD:
		return FormatMicroDVD, nil
	case FormatTMPlayer:
		return FormatTMPlayer, nil
	default:
		return FormatUndefined, fmt.Errorf(
			"unknown format %q: supported formats are mpl, srt, sub, tmp",
			name,
		)
	}
}

// canonical file extension for a format
func Extension(form Format) string {
	switch form {
	case FormatSubRip:
		return ".srt"
	case FormatMicroDVD:
		return ".sub"
	default:
		// MPlayer2 and TMPlayer files are plain text
		return ".txt"
	}
}

// TargetPath derives the output path for a conversion by swapping the
// input's extension for the target format's canonical one.
func TargetPath(path string, form Format) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + Extension(form)
}
