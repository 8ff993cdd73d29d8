package catalog

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Accent is the visual accent attached to an entity.
type Accent int

const (
	AccentCyan Accent = iota
	AccentBlue
	AccentPurple
	AccentPink
	AccentGreen
	AccentYellow
	AccentOrange
)

var accentNames = [...]string{
	AccentCyan:   "cyan",
	AccentBlue:   "blue",
	AccentPurple: "purple",
	AccentPink:   "pink",
	AccentGreen:  "green",
	AccentYellow: "yellow",
	AccentOrange: "orange",
}

// Accents returns every accent in declaration order.
func Accents() []Accent {
	out := make([]Accent, len(accentNames))
	for i := range accentNames {
		out[i] = Accent(i)
	}
	return out
}

// ParseAccent maps a name to an Accent. Unknown or empty names map to
// AccentCyan, so every string has an accent.
func ParseAccent(name string) Accent {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range accentNames {
		if n == name {
			return Accent(i)
		}
	}
	return AccentCyan
}

func (a Accent) String() string {
	if a < AccentCyan || a > AccentOrange {
		return accentNames[AccentCyan]
	}
	return accentNames[a]
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Accent) UnmarshalYAML(value *yaml.Node) error {
	*a = ParseAccent(value.Value)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a Accent) MarshalYAML() (any, error) {
	return a.String(), nil
}
