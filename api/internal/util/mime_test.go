package util

import (
	"encoding/base64"
	"testing"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0}

func TestDecodeBase64MaybeDataURL(t *testing.T) {
	b64 := base64.StdEncoding.EncodeToString(pngHeader)

	tests := []struct {
		name     string
		input    string
		wantMIME string
		wantErr  bool
	}{
		{"bare base64", b64, "", false},
		{"data url", "data:image/png;base64," + b64, "image/png", false},
		{"data url no params", "data:image/png," + b64, "image/png", false},
		{"surrounding whitespace", "  data:image/png;base64," + b64 + "  ", "image/png", false},
		{"garbage", "!!!", "", true},
	}
	for _, test := range tests {
		b, mime, err := DecodeBase64MaybeDataURL(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", test.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if mime != test.wantMIME {
			t.Errorf("%s: mime %q, expected %q", test.name, mime, test.wantMIME)
		}
		if len(b) != len(pngHeader) {
			t.Errorf("%s: decoded %d bytes, expected %d", test.name, len(b), len(pngHeader))
		}
	}
}

func TestSniffMimeHTTP(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{"png", pngHeader, "image/png"},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, "image/jpeg"},
		{"gif", []byte("GIF89a"), "image/gif"},
		{"unknown", []byte("plain text"), "application/octet-stream"},
		{"empty", nil, "application/octet-stream"},
	}
	for _, test := range tests {
		if got := SniffMimeHTTP(test.data); got != test.expected {
			t.Errorf("%s: got %s, expected %s", test.name, got, test.expected)
		}
	}
}

func TestPickMIME(t *testing.T) {
	if got := PickMIME("image/webp", "image/png", pngHeader); got != "image/webp" {
		t.Errorf("explicit should win, got %s", got)
	}
	if got := PickMIME("", "image/png", []byte{0xFF, 0xD8}); got != "image/png" {
		t.Errorf("hint should win over sniffing, got %s", got)
	}
	if got := PickMIME("", "", pngHeader); got != "image/png" {
		t.Errorf("sniffing fallback failed, got %s", got)
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\nhello\n```", "hello"},
		{"plain", "plain"},
	}
	for _, test := range tests {
		if got := StripCodeFences(test.input); got != test.expected {
			t.Errorf("StripCodeFences(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}
