package subtitle

import (
	"errors"
	"fmt"
)

// ErrCannotConvert is returned when conversion is requested for content
// whose format is undefined.
var ErrCannotConvert = errors.New("cannot convert subtitles of undefined format")

// ParseError reports subtitle content that does not follow its format's
// grammar.
type ParseError struct {
	Format Format
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf(
			"%s parse error at line %d: %s",
			e.Format.Name(), e.Line, e.Reason,
		)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format.Name(), e.Reason)
}
