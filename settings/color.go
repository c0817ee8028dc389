package settings

import (
	"fmt"
	"strconv"
	"strings"

	gui "github.com/go-theft-auto/modkit"
)

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" into a packed gui color.
// Colors without alpha are opaque.
func ParseColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("parse color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return gui.RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// FormatColor formats a packed gui color as "#RRGGBBAA".
func FormatColor(c uint32) string {
	r, g, b, a := gui.UnpackRGBA(c)
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
}
