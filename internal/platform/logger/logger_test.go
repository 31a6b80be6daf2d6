package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		" INFO ":  Info,
		"":        Info,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Output: &buf})

	l.Info("hidden", nil)
	l.Warn("shown", nil)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered, got %q", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Fatalf("expected warn line, got %q", out)
	}
}

func TestLogger_JSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, App: "cat-collector", Output: &buf}).
		With(Fields{"cat_id": "c-1"})

	l.Error("upload failed", Fields{"err": errors.New("boom")})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json line %q: %v", buf.String(), err)
	}
	if entry["app"] != "cat-collector" || entry["cat_id"] != "c-1" {
		t.Fatalf("missing base fields: %#v", entry)
	}
	if entry["err"] != "boom" {
		t.Fatalf("errors should be rendered as strings, got %#v", entry["err"])
	}
	if entry["level"] != "error" {
		t.Fatalf("level = %v", entry["level"])
	}
}

func TestFormatText_QuotesSpaces(t *testing.T) {
	got := formatText(Fields{"ts": "t", "level": "info", "msg": "photo upload failed", "key": "ab12cd.png"})
	want := `ts=t level=info msg="photo upload failed" key=ab12cd.png`
	if got != want {
		t.Fatalf("formatText = %q, want %q", got, want)
	}
}
