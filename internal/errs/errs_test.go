package errs_test

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/tempus-cli/tempus/internal/errs"
)

func TestErrorMessageCarriesLabel(t *testing.T) {
	tests := []struct {
		err  *errs.Error
		want string
	}{
		{errs.UserInputf(errs.InvalidDateFormat, "cannot parse %q", "???"), `Invalid date format: cannot parse "???"`},
		{errs.UserInputf(errs.MissingArgument, "no output format specified"), "Missing required argument: no output format specified"},
		{errs.UserInputf(errs.UnsupportedTimezone, "invalid timezone ID: Mars/Olympus"), "Unsupported timezone: invalid timezone ID: Mars/Olympus"},
		{errs.Systemf(errs.Config, "bad toml"), "Configuration error: bad toml"},
		{errs.Systemf(errs.IO, "disk gone"), "IO error: disk gone"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestUserInputClassification(t *testing.T) {
	userCodes := []errs.Code{
		errs.InvalidDateFormat,
		errs.UnsupportedFormat,
		errs.UnsupportedTimezone,
		errs.InvalidNow,
		errs.MissingArgument,
	}
	for _, code := range userCodes {
		if !errs.UserInputf(code, "x").UserInput() {
			t.Errorf("code %d should be user input", code)
		}
	}
	for _, code := range []errs.Code{errs.Config, errs.IO} {
		if errs.Systemf(code, "x").UserInput() {
			t.Errorf("code %d should be system", code)
		}
	}
}

func TestIsUserInputSeesWrappedErrors(t *testing.T) {
	inner := errs.UserInputf(errs.InvalidNow, "bad instant")
	wrapped := fmt.Errorf("building request: %w", inner)

	if !errs.IsUserInput(wrapped) {
		t.Errorf("wrapped user-input error not detected")
	}
	if errs.IsUserInput(errors.New("plain")) {
		t.Errorf("plain error misclassified as user input")
	}
}

func TestWrapfKeepsCause(t *testing.T) {
	err := errs.Wrapf(errs.IO, fs.ErrPermission, "writing config")

	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("cause lost through Wrapf")
	}
	if !strings.HasPrefix(err.Error(), "IO error: writing config") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"user input", errs.UserInputf(errs.InvalidDateFormat, "x"), errs.ExitUsage},
		{"config", errs.Systemf(errs.Config, "x"), errs.ExitConfig},
		{"io", errs.Systemf(errs.IO, "x"), errs.ExitIO},
		{"wrapped", fmt.Errorf("outer: %w", errs.Systemf(errs.Config, "x")), errs.ExitConfig},
		{"unclassified", errors.New("unknown flag"), errs.ExitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errs.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
