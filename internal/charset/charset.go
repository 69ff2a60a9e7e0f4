// Package charset detects file encodings and converts file contents to and
// from UTF-8.
package charset

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dimchansky/utfbom"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Result is the best guess for a file's character encoding. A zero Result
// means the encoding could not be detected.
type Result struct {
	Charset    string
	Confidence int
}

// Detect guesses the encoding of raw file contents. Deterministic for
// identical input.
func Detect(data []byte) Result {
	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || best == nil || best.Charset == "" {
		return Result{}
	}
	return Result{Charset: best.Charset, Confidence: best.Confidence}
}

// Decode converts raw bytes in the named charset to UTF-8 text with any BOM
// stripped. An empty name means UTF-8, the documented fallback for files
// whose encoding could not be detected.
func Decode(data []byte, name string) (string, error) {
	if name == "" || strings.EqualFold(name, "UTF-8") {
		skipped, err := io.ReadAll(utfbom.SkipOnly(bytes.NewReader(data)))
		if err != nil {
			return "", err
		}
		return string(skipped), nil
	}

	enc, err := encodingFor(name)
	if err != nil {
		return "", err
	}
	decoded, err := io.ReadAll(
		transform.NewReader(bytes.NewReader(data), enc.NewDecoder()),
	)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return strings.TrimPrefix(string(decoded), "\ufeff"), nil
}

// Encode converts UTF-8 text into the named charset so output files keep
// the encoding of their input. Runes the charset cannot represent are
// replaced rather than failing the file.
func Encode(text string, name string) ([]byte, error) {
	if name == "" || strings.EqualFold(name, "UTF-8") {
		return []byte(text), nil
	}

	enc, err := encodingFor(name)
	if err != nil {
		return nil, err
	}
	encoder := encoding.ReplaceUnsupported(enc.NewEncoder())
	encoded, err := io.ReadAll(
		transform.NewReader(strings.NewReader(text), encoder),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return encoded, nil
}

// chardet reports IANA names, so resolve through the IANA index.
func encodingFor(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported charset: %s", name)
	}
	return enc, nil
}
