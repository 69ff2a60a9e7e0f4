package subtitle

import (
	"errors"
	"testing"
	"time"
)

func TestTMPlayerParse(t *testing.T) {
	content := "00:00:01:Hello\n00:00:03:World|again\n00:01:00:Later\n"

	adapter := &tmPlayerAdapter{}
	sub, err := adapter.Parse(content)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(sub.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(sub.Entries))
	}

	// implicit end clamped to the next entry's start
	if sub.Entries[0].End != 3*time.Second {
		t.Errorf("entry 0: expected end 3s, got %v", sub.Entries[0].End)
	}

	// next entry far away: implicit display time applies
	if sub.Entries[1].End != 8*time.Second {
		t.Errorf("entry 1: expected end 8s, got %v", sub.Entries[1].End)
	}

	if len(sub.Entries[1].Lines) != 2 {
		t.Errorf("entry 1: expected 2 lines, got %q", sub.Entries[1].Lines)
	}
}

func TestTMPlayerParseEmpty(t *testing.T) {
	adapter := &tmPlayerAdapter{}
	_, err := adapter.Parse("nothing timed\n")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestTMPlayerRender(t *testing.T) {
	sub := &Subtitle{Entries: []Entry{
		{Start: time.Second, End: 2 * time.Second, Lines: []string{"Hello"}},
		{Start: time.Hour + 2*time.Minute + 3*time.Second, Lines: []string{"Late"}},
	}}

	adapter := &tmPlayerAdapter{}
	got := adapter.Render(sub)
	want := "00:00:01:Hello\n01:02:03:Late\n"
	if got != want {
		t.Errorf("unexpected output:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestTMPlayerRenderRoundsSeconds(t *testing.T) {
	sub := &Subtitle{Entries: []Entry{
		{Start: 1500 * time.Millisecond, Lines: []string{"Rounded"}},
	}}

	adapter := &tmPlayerAdapter{}
	if got := adapter.Render(sub); got != "00:00:02:Rounded\n" {
		t.Errorf("expected rounding to 2s, got %q", got)
	}
}
