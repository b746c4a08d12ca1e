package core

import "fmt"

// Tint is the foreground color applied to a whole rendered frame.
// Uses ANSI 256-color codes for terminal compatibility.
type Tint uint8

// Supported tints.
const (
	TintDefault Tint = iota
	TintGreen
	TintAmber
	TintCyan
	TintWhite
	TintGray
)

var tintNames = map[string]Tint{
	"default": TintDefault,
	"green":   TintGreen,
	"amber":   TintAmber,
	"cyan":    TintCyan,
	"white":   TintWhite,
	"gray":    TintGray,
}

// ParseTint maps a tint name to a Tint. The empty string is TintDefault.
func ParseTint(name string) (Tint, error) {
	if name == "" {
		return TintDefault, nil
	}
	t, ok := tintNames[name]
	if !ok {
		return TintDefault, fmt.Errorf("core: unknown tint %q", name)
	}
	return t, nil
}
