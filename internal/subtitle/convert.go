package subtitle

// Conversion is the outcome of converting one subtitle text.
type Conversion struct {
	Output  string
	Entries int
	Skipped int
}

// Convert parses text in the from format and renders it in the to format.
// The intermediate track belongs to this one conversion and is discarded
// afterwards.
func Convert(text string, from, to Format, opts Options) (Conversion, error) {
	if from == FormatUndefined {
		return Conversion{}, ErrCannotConvert
	}

	src, err := NewAdapter(from, opts)
	if err != nil {
		return Conversion{}, err
	}
	sub, err := src.Parse(text)
	if err != nil {
		return Conversion{}, err
	}

	dst, err := NewAdapter(to, opts)
	if err != nil {
		return Conversion{}, err
	}

	return Conversion{
		Output:  dst.Render(sub),
		Entries: len(sub.Entries),
		Skipped: sub.Skipped,
	}, nil
}
