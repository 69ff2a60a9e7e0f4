package subtitle

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var subRipTimesRegexp = regexp.MustCompile(
	`^(\d{2}):(\d{2}):(\d{2}),(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2}),(\d{3})\s*$`,
)

// SubRip: numbered blocks of an index line, a timestamp line and one or
// more text lines, separated by blank lines.
type subRipAdapter struct{}

func (a *subRipAdapter) Format() Format {
	return FormatSubRip
}

const (
	subRipWantIndex = iota
	subRipWantTimes
	subRipWantText
)

func (a *subRipAdapter) Parse(text string) (*Subtitle, error) {
	var (
		entries []Entry
		cur     Entry
		skipped int
	)
	state := subRipWantIndex

	flush := func() {
		if state == subRipWantText && len(cur.Lines) > 0 {
			entries = append(entries, cur)
		} else if state != subRipWantIndex {
			// index or timestamps without text
			skipped++
		}
		cur = Entry{}
		state = subRipWantIndex
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := trimBOM(scanner.Text(), lineNum)

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		switch state {
		case subRipWantIndex:
			index, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				skipped++
				continue
			}
			cur.Index = index
			state = subRipWantTimes
		case subRipWantTimes:
			m := subRipTimesRegexp.FindStringSubmatch(line)
			if m == nil {
				skipped++
				cur = Entry{}
				state = subRipWantIndex
				continue
			}
			cur.Start = clockDuration(m[1], m[2], m[3], m[4])
			cur.End = clockDuration(m[5], m[6], m[7], m[8])
			state = subRipWantText
		case subRipWantText:
			cur.Lines = append(cur.Lines, line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Format: FormatSubRip, Reason: err.Error()}
	}
	if len(entries) == 0 {
		return nil, &ParseError{
			Format: FormatSubRip,
			Reason: "no subtitle entries found",
		}
	}

	sortEntries(entries)
	return &Subtitle{Entries: entries, Skipped: skipped}, nil
}

func (a *subRipAdapter) Render(sub *Subtitle) string {
	var sb strings.Builder
	for i, entry := range sub.Entries {
		// index (1-based)
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatClock(entry.Start),
			formatClock(entry.End)))

		// text
		sb.WriteString(strings.Join(entry.Lines, "\n"))
		sb.WriteString("\n\n")
	}
	return sb.String()
}
