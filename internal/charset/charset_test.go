package charset

import (
	"testing"
)

func TestDetectUTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Hello, world!")...)

	result := Detect(data)
	if result.Charset != "UTF-8" {
		t.Errorf("expected UTF-8, got %q", result.Charset)
	}
}

func TestDetectUTF16LEBOM(t *testing.T) {
	data := []byte{0xFF, 0xFE, 'H', 0, 'i', 0}

	result := Detect(data)
	if result.Charset != "UTF-16LE" {
		t.Errorf("expected UTF-16LE, got %q", result.Charset)
	}
}

func TestDetectDeterministic(t *testing.T) {
	data := []byte("1\n00:00:01,000 --> 00:00:02,000\nHello\n\n")

	first := Detect(data)
	for i := 0; i < 5; i++ {
		if got := Detect(data); got != first {
			t.Fatalf("detection not deterministic: %+v then %+v", first, got)
		}
	}
}

func TestDecodeStripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Hello")...)

	text, err := Decode(data, "UTF-8")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if text != "Hello" {
		t.Errorf("expected %q, got %q", "Hello", text)
	}
}

func TestDecodeFallbackIsUTF8(t *testing.T) {
	text, err := Decode([]byte("plain text"), "")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if text != "plain text" {
		t.Errorf("expected %q, got %q", "plain text", text)
	}
}

func TestDecodeWindows1250(t *testing.T) {
	// "żółć" in windows-1250
	data := []byte{0xBF, 0xF3, 0xB3, 0xE6}

	text, err := Decode(data, "windows-1250")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if text != "żółć" {
		t.Errorf("expected %q, got %q", "żółć", text)
	}
}

func TestDecodeUTF16LE(t *testing.T) {
	data := []byte{0xFF, 0xFE, 'H', 0, 'i', 0}

	text, err := Decode(data, "UTF-16LE")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if text != "Hi" {
		t.Errorf("expected %q, got %q", "Hi", text)
	}
}

func TestDecodeUnknownCharset(t *testing.T) {
	if _, err := Decode([]byte("x"), "no-such-charset"); err == nil {
		t.Error("expected error for unknown charset")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	original := "żółć i inne znaki"

	encoded, err := Encode(original, "windows-1250")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := Decode(encoded, "windows-1250")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded != original {
		t.Errorf("round trip changed text: %q -> %q", original, decoded)
	}
}

func TestEncodeUTF8Passthrough(t *testing.T) {
	encoded, err := Encode("Hello", "UTF-8")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if string(encoded) != "Hello" {
		t.Errorf("expected passthrough, got %q", encoded)
	}
}
