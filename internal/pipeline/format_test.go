package pipeline

import (
	"errors"
	"testing"

	"github.com/tempus-cli/tempus/internal/errs"
)

func TestResolveFormatReturnsPreset(t *testing.T) {
	presets := []Preset{
		{Name: "iso", Format: "%Y-%m-%d"},
		{Name: "time", Format: "%H:%M"},
	}

	got, err := ResolveFormat("iso", presets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "%Y-%m-%d" {
		t.Errorf("got %q, want %q", got, "%Y-%m-%d")
	}
}

func TestResolveFormatReturnsRawTokenWhenNoMatch(t *testing.T) {
	presets := []Preset{{Name: "iso", Format: "%Y-%m-%d"}}

	got, err := ResolveFormat("%H:%M", presets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "%H:%M" {
		t.Errorf("got %q, want raw token back", got)
	}
}

func TestResolveFormatFirstMatchWinsOnDuplicates(t *testing.T) {
	presets := []Preset{
		{Name: "iso", Format: "%Y"},
		{Name: "iso", Format: "%m"},
	}

	got, _ := ResolveFormat("iso", presets)
	if got != "%Y" {
		t.Errorf("got %q, want earliest preset", got)
	}
}

func TestResolveFormatFailsOnEmpty(t *testing.T) {
	for _, token := range []string{"", "   "} {
		_, err := ResolveFormat(token, nil)
		if err == nil {
			t.Fatalf("ResolveFormat(%q) should fail", token)
		}
		var appErr *errs.Error
		if !errors.As(err, &appErr) || appErr.Code != errs.MissingArgument {
			t.Errorf("want MissingArgument, got %v", err)
		}
	}
}
