package designsystem

import (
	"fmt"
	"strconv"
)

// NamingMode selects how tint labels are derived from their position.
type NamingMode string

const (
	NamingHundredsWithHalves NamingMode = "50,100,200...900,950"
	NamingTensWithHalves     NamingMode = "5,10,20...90,95"
	NamingTensFromZero       NamingMode = "0,10,20..."
	NamingHundredsFromZero   NamingMode = "0,100,200..."
	NamingTensFromTen        NamingMode = "10,20,30..."
	NamingHundredsFromOne    NamingMode = "100,200,300..."
	NamingManual             NamingMode = "manual"
)

// NamingModes lists the position-derived modes in display order.
var NamingModes = []NamingMode{
	NamingHundredsWithHalves,
	NamingTensWithHalves,
	NamingTensFromZero,
	NamingHundredsFromZero,
	NamingTensFromTen,
	NamingHundredsFromOne,
}

// ParseNamingMode validates a naming mode string.
func ParseNamingMode(value string) (NamingMode, error) {
	mode := NamingMode(value)
	if mode == NamingManual {
		return mode, nil
	}
	for _, known := range NamingModes {
		if known == mode {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unknown naming mode %q", value)
}

// TintName returns the label of the tint at index in a palette of length
// tints. Manual mode keeps existing when set and otherwise falls back to
// the default mode.
func TintName(index, length int, mode NamingMode, existing string) string {
	if mode == NamingManual {
		if existing != "" {
			return existing
		}
		mode = NamingHundredsWithHalves
	}

	switch mode {
	case NamingHundredsWithHalves, NamingTensWithHalves:
		step, offset := 100, 50
		if mode == NamingTensWithHalves {
			step, offset = 10, 5
		}
		if length == 1 || index == 0 {
			return strconv.Itoa(offset)
		}
		if index == length-1 {
			return strconv.Itoa(index*step - offset)
		}
		return strconv.Itoa(index * step)
	case NamingTensFromZero:
		return strconv.Itoa(index * 10)
	case NamingHundredsFromZero:
		return strconv.Itoa(index * 100)
	case NamingTensFromTen:
		return strconv.Itoa((index + 1) * 10)
	case NamingHundredsFromOne:
		return strconv.Itoa((index + 1) * 100)
	}
	return ""
}

// UniqueName returns base, or base-1, base-2, ... whichever is the first not
// already taken.
func UniqueName(taken []string, base string) string {
	used := make(map[string]struct{}, len(taken))
	for _, name := range taken {
		used[name] = struct{}{}
	}

	candidate := base
	for counter := 1; ; counter++ {
		if _, exists := used[candidate]; !exists {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

// PaletteNames returns the names of the palettes in order.
func PaletteNames(palettes []Palette) []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}
	return names
}
