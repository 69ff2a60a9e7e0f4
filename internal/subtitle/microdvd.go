package subtitle

import (
	"bufio"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var microDVDLineRegexp = regexp.MustCompile(`^\{(\d+)\}\{(\d+)\}(.*)$`)

// MicroDVD: {start_frame}{end_frame}text, one entry per line, text lines
// separated by pipes. Timing is frame-based, so the adapter carries the
// frame rate used to convert to and from the track's durations.
type microDVDAdapter struct {
	fps float64
}

func (a *microDVDAdapter) Format() Format {
	return FormatMicroDVD
}

func (a *microDVDAdapter) Parse(text string) (*Subtitle, error) {
	var entries []Entry
	skipped := 0

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := trimBOM(scanner.Text(), lineNum)

		if strings.TrimSpace(line) == "" {
			continue
		}

		m := microDVDLineRegexp.FindStringSubmatch(line)
		if m == nil {
			skipped++
			continue
		}

		startFrame, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, &ParseError{
				Format: FormatMicroDVD,
				Line:   lineNum,
				Reason: fmt.Sprintf("invalid frame count %q", m[1]),
			}
		}
		endFrame, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return nil, &ParseError{
				Format: FormatMicroDVD,
				Line:   lineNum,
				Reason: fmt.Sprintf("invalid frame count %q", m[2]),
			}
		}

		entries = append(entries, Entry{
			Index: len(entries) + 1,
			Start: frameDuration(startFrame, a.fps),
			End:   frameDuration(endFrame, a.fps),
			Lines: strings.Split(m[3], "|"),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Format: FormatMicroDVD, Reason: err.Error()}
	}
	if len(entries) == 0 {
		return nil, &ParseError{
			Format: FormatMicroDVD,
			Reason: "no subtitle entries found",
		}
	}

	sortEntries(entries)
	return &Subtitle{Entries: entries, Skipped: skipped}, nil
}

func (a *microDVDAdapter) Render(sub *Subtitle) string {
	var sb strings.Builder
	for _, entry := range sub.Entries {
		sb.WriteString(fmt.Sprintf("{%d}{%d}%s\n",
			durationFrames(entry.Start, a.fps),
			durationFrames(entry.End, a.fps),
			strings.Join(entry.Lines, "|")))
	}
	return sb.String()
}

// rounded, not truncated, so conversions stay within one frame
func frameDuration(frames int64, fps float64) time.Duration {
	ms := math.Round(float64(frames) / fps * 1000)
	return time.Duration(ms) * time.Millisecond
}

func durationFrames(d time.Duration, fps float64) int64 {
	return int64(math.Round(d.Seconds() * fps))
}
