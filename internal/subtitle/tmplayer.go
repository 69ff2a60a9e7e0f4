package subtitle

import (
	"bufio"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

var tmPlayerLineRegexp = regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2}):(.*)$`)

// tmPlayerDisplayTime is the implicit display duration of a TMPlayer entry,
// clamped to the next entry's start.
const tmPlayerDisplayTime = 5 * time.Second

// TMPlayer: HH:MM:SS:text with a start time only. End times are derived on
// parse and dropped on render.
type tmPlayerAdapter struct{}

func (a *tmPlayerAdapter) Format() Format {
	return FormatTMPlayer
}

func (a *tmPlayerAdapter) Parse(text string) (*Subtitle, error) {
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

		m := tmPlayerLineRegexp.FindStringSubmatch(line)
		if m == nil {
			skipped++
			continue
		}

		entries = append(entries, Entry{
			Index: len(entries) + 1,
			Start: clockDuration(m[1], m[2], m[3], "0"),
			Lines: strings.Split(m[4], "|"),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Format: FormatTMPlayer, Reason: err.Error()}
	}
	if len(entries) == 0 {
		return nil, &ParseError{
			Format: FormatTMPlayer,
			Reason: "no subtitle entries found",
		}
	}

	sortEntries(entries)
	for i := range entries {
		end := entries[i].Start + tmPlayerDisplayTime
		if i+1 < len(entries) && entries[i+1].Start < end {
			end = entries[i+1].Start
		}
		entries[i].End = end
	}

	return &Subtitle{Entries: entries, Skipped: skipped}, nil
}

func (a *tmPlayerAdapter) Render(sub *Subtitle) string {
	var sb strings.Builder
	for _, entry := range sub.Entries {
		secs := int64(math.Round(entry.Start.Seconds()))
		sb.WriteString(fmt.Sprintf("%02d:%02d:%02d:%s\n",
			secs/3600,
			secs/60%60,
			secs%60,
			strings.Join(entry.Lines, "|")))
	}
	return sb.String()
}
