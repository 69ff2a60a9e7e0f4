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

var mplayer2LineRegexp = regexp.MustCompile(
	`^\[(\d+(?:\.\d+)?)\]\[(\d+(?:\.\d+)?)\](.*)$`,
)

// MPlayer2: [start][stop]text with times in tenths of a second, text lines
// separated by pipes. Fractional values are accepted on input and rounded
// to a decisecond on output.
type mplayer2Adapter struct{}

func (a *mplayer2Adapter) Format() Format {
	return FormatMPlayer2
}

func (a *mplayer2Adapter) Parse(text string) (*Subtitle, error) {
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

		m := mplayer2LineRegexp.FindStringSubmatch(line)
		if m == nil {
			skipped++
			continue
		}

		start, err := deciDuration(m[1])
		if err != nil {
			return nil, &ParseError{
				Format: FormatMPlayer2,
				Line:   lineNum,
				Reason: fmt.Sprintf("invalid start time %q", m[1]),
			}
		}
		end, err := deciDuration(m[2])
		if err != nil {
			return nil, &ParseError{
				Format: FormatMPlayer2,
				Line:   lineNum,
				Reason: fmt.Sprintf("invalid stop time %q", m[2]),
			}
		}

		entries = append(entries, Entry{
			Index: len(entries) + 1,
			Start: start,
			End:   end,
			Lines: strings.Split(m[3], "|"),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Format: FormatMPlayer2, Reason: err.Error()}
	}
	if len(entries) == 0 {
		return nil, &ParseError{
			Format: FormatMPlayer2,
			Reason: "no subtitle entries found",
		}
	}

	sortEntries(entries)
	return &Subtitle{Entries: entries, Skipped: skipped}, nil
}

func (a *mplayer2Adapter) Render(sub *Subtitle) string {
	var sb strings.Builder
	for _, entry := range sub.Entries {
		sb.WriteString(fmt.Sprintf("[%d][%d]%s\n",
			deciseconds(entry.Start),
			deciseconds(entry.End),
			strings.Join(entry.Lines, "|")))
	}
	return sb.String()
}

func deciDuration(value string) (time.Duration, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(math.Round(v*100)) * time.Millisecond, nil
}

func deciseconds(d time.Duration) int64 {
	return int64(math.Round(d.Seconds() * 10))
}
