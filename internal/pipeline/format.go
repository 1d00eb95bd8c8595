package pipeline

import (
	"strings"

	"github.com/tempus-cli/tempus/internal/errs"
)

// ResolveFormat maps token to the pattern it names. A token matching a
// preset name yields that preset's format, first match winning;
// anything else is taken as a literal pattern, validated only at
// render time. An empty token is a hard error.
func ResolveFormat(token string, presets []Preset) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", errs.UserInputf(errs.MissingArgument, "no output format specified")
	}

	for _, p := range presets {
		if p.Name == token {
			return p.Format, nil
		}
	}
	return token, nil
}
