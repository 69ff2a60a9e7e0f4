package subtitle

import (
	"bufio"
	"strings"
)

// DetectFormat classifies decoded subtitle text by structure, not by file
// extension. Every line is examined and the format whose grammar matches
// the most lines wins; ties break in declaration order. Content matching
// no grammar is FormatUndefined and must never be forced into an adapter.
func DetectFormat(text string) Format {
	var mplCount, srtCount, subCount, tmpCount int

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := trimBOM(scanner.Text(), lineNum)

		switch {
		case mplayer2LineRegexp.MatchString(line):
			mplCount++
		case subRipTimesRegexp.MatchString(line):
			srtCount++
		case microDVDLineRegexp.MatchString(line):
			subCount++
		case tmPlayerLineRegexp.MatchString(line):
			tmpCount++
		}
	}

	best := FormatUndefined
	bestCount := 0
	for _, candidate := range []struct {
		form  Format
		count int
	}{
		{FormatMPlayer2, mplCount},
		{FormatSubRip, srtCount},
		{FormatMicroDVD, subCount},
		{FormatTMPlayer, tmpCount},
	} {
		if candidate.count > bestCount {
			best = candidate.form
			bestCount = candidate.count
		}
	}
	return best
}
