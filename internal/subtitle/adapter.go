package subtitle

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultFrameRate is assumed for MicroDVD timing when none is configured.
const DefaultFrameRate = 23.976

// Options configure format adapters.
type Options struct {
	// FrameRate converts MicroDVD frame counts to and from time.
	// Zero means DefaultFrameRate.
	FrameRate float64
}

// Adapter parses one subtitle format into the common track model and
// renders the model back into its own syntax.
//
// Parsing is lenient: lines that match no record pattern are skipped and
// counted on the returned Subtitle; a ParseError is returned only when the
// content yields no entries at all. Rendering renumbers entries from 1 and
// never fails for a well-formed track.
type Adapter interface {
	Format() Format
	Parse(text string) (*Subtitle, error)
	Render(sub *Subtitle) string
}

// NewAdapter creates the adapter for a format.
func NewAdapter(form Format, opts Options) (Adapter, error) {
	fps := opts.FrameRate
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	switch form {
	case FormatMPlayer2:
		return &mplayer2Adapter{}, nil
	case FormatSubRip:
		return &subRipAdapter{}, nil
	case FormatMicroDVD:
		return &microDVDAdapter{fps: fps}, nil
	case FormatTMPlayer:
		return &tmPlayerAdapter{}, nil
	default:
		return nil, fmt.Errorf("unsupported subtitle format: %s", form)
	}
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start < entries[j].Start
	})
}

// clockDuration builds a duration from regex-captured digit groups.
func clockDuration(hours, minutes, seconds, millis string) time.Duration {
	h, _ := strconv.Atoi(hours)
	m, _ := strconv.Atoi(minutes)
	s, _ := strconv.Atoi(seconds)
	ms, _ := strconv.Atoi(millis)

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond
}

func formatClock(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

func trimBOM(line string, lineNum int) string {
	if lineNum == 1 {
		return strings.TrimPrefix(line, "\ufeff")
	}
	return line
}
