// Package shadow converts CSS box-shadow strings to structured layers and back.
package shadow

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/swatchy/internal/color"
	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	swatchyerrors "github.com/alexisbeaulieu97/swatchy/pkg/errors"
)

const insetKeyword = "inset"

var (
	insetPattern  = regexp.MustCompile(`(?i)\binset\b`)
	rgbaPattern   = regexp.MustCompile(`(?i)rgba\(\s*([0-9]{1,3})\s*,\s*([0-9]{1,3})\s*,\s*([0-9]{1,3})\s*,\s*(0(?:\.\d+)?|1(?:\.0+)?|\.\d+)\s*\)`)
	rgbPattern    = regexp.MustCompile(`(?i)rgb\(\s*([0-9]{1,3})\s*,\s*([0-9]{1,3})\s*,\s*([0-9]{1,3})\s*\)`)
	numberPattern = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
)

const (
	slotX = iota
	slotY
	slotBlur
	slotSpread
	slotCount
)

// lengthDefaults lists, per length slot, the slots reset to zero when that
// slot is missing or holds a stray inset keyword.
var lengthDefaults = [slotCount][]int{
	slotX:      {slotX},
	slotY:      {slotY},
	slotBlur:   {slotBlur, slotSpread},
	slotSpread: {slotSpread},
}

const zeroLength = "0px"

// Parse reads a single box-shadow declaration. The color may sit before or
// after the lengths and inset may appear anywhere.
func Parse(value string) (designsystem.ShadowLayer, error) {
	inset := insetPattern.MatchString(value)
	declaration := value
	if loc := insetPattern.FindStringIndex(declaration); loc != nil {
		declaration = declaration[:loc[0]] + declaration[loc[1]:]
	}
	declaration = strings.TrimSpace(declaration)

	hex, opacity, rest, err := extractColor(declaration)
	if err != nil {
		return designsystem.ShadowLayer{}, swatchyerrors.NewFormatError(swatchyerrors.CodeUnsupportedShadowFormat, value, err)
	}

	var tokens [slotCount]string
	for i, field := range strings.Fields(rest) {
		if i >= slotCount {
			break
		}
		tokens[i] = field
	}
	for slot, resets := range lengthDefaults {
		if tokens[slot] == "" || strings.EqualFold(tokens[slot], insetKeyword) {
			for _, r := range resets {
				tokens[r] = zeroLength
			}
		}
	}

	var lengths [slotCount]float64
	for slot, token := range tokens {
		n, err := parseLength(token)
		if err != nil {
			return designsystem.ShadowLayer{}, err
		}
		lengths[slot] = n
	}

	return designsystem.ShadowLayer{
		ShadowX:      lengths[slotX],
		ShadowY:      lengths[slotY],
		Blur:         lengths[slotBlur],
		Spread:       lengths[slotSpread],
		Color:        hex,
		ColorOpacity: opacity,
		Inset:        inset,
	}, nil
}

func extractColor(declaration string) (string, float64, string, error) {
	if m := rgbaPattern.FindStringSubmatchIndex(declaration); m != nil {
		channels := submatches(declaration, m)
		opacity, err := strconv.ParseFloat(channels[3], 64)
		if err != nil {
			return "", 0, "", err
		}
		return channelsHex(channels), opacity, declaration[:m[0]] + " " + declaration[m[1]:], nil
	}
	if m := rgbPattern.FindStringSubmatchIndex(declaration); m != nil {
		channels := submatches(declaration, m)
		return channelsHex(channels), 1, declaration[:m[0]] + " " + declaration[m[1]:], nil
	}
	return "", 0, "", fmt.Errorf("no rgb() or rgba() color in %q", declaration)
}

func submatches(s string, loc []int) []string {
	out := make([]string, 0, len(loc)/2-1)
	for i := 2; i+1 < len(loc); i += 2 {
		out = append(out, s[loc[i]:loc[i+1]])
	}
	return out
}

func channelsHex(channels []string) string {
	var rgb [3]int
	for i := range rgb {
		// The pattern guarantees at most three digits.
		rgb[i], _ = strconv.Atoi(channels[i])
	}
	return color.FromRGB255(rgb[0], rgb[1], rgb[2]).Hex()
}

// parseLength reads the leading number of a length token, ignoring its unit.
func parseLength(token string) (float64, error) {
	number := numberPattern.FindString(token)
	if number == "" {
		return 0, swatchyerrors.NewFormatError(swatchyerrors.CodeInvalidLengthValue, token, nil)
	}
	n, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, swatchyerrors.NewFormatError(swatchyerrors.CodeInvalidLengthValue, token, err)
	}
	return n, nil
}

// Serialize renders a layer in canonical CSS form:
// [inset ]Xpx Ypx BLURpx SPREADpx rgba(r, g, b, a).
func Serialize(layer designsystem.ShadowLayer) (string, error) {
	c, _, err := color.Parse(layer.Color)
	if err != nil {
		return "", err
	}
	r, g, b := c.Clamped().RGB255()

	var sb strings.Builder
	if layer.Inset {
		sb.WriteString(insetKeyword)
		sb.WriteByte(' ')
	}
	for _, v := range []float64{layer.ShadowX, layer.ShadowY, layer.Blur, layer.Spread} {
		sb.WriteString(formatNumber(v))
		sb.WriteString("px ")
	}
	fmt.Fprintf(&sb, "rgba(%d, %d, %d, %s)", r, g, b, formatNumber(layer.ColorOpacity))
	return sb.String(), nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Split breaks a composite box-shadow value on top-level commas. Commas
// nested in parentheses do not split. Blank entries between commas are kept
// as empty strings so positions stay stable; only a blank after a final comma
// is dropped, and a blank value has no entries.
func Split(value string) []string {
	var (
		parts []string
		depth int
		start int
	)
	flush := func(end int) {
		parts = append(parts, strings.TrimSpace(value[start:end]))
	}
	for i, ch := range value {
		switch ch {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(value))
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// ParseComposite parses every declaration of a composite value. Malformed
// and empty declarations are skipped; the returned error is a *BatchError naming each
// of them while the good layers are still returned in order.
func ParseComposite(value string) ([]designsystem.ShadowLayer, error) {
	parts := Split(value)
	layers := make([]designsystem.ShadowLayer, 0, len(parts))
	var batch BatchError
	for i, part := range parts {
		layer, err := Parse(part)
		if err != nil {
			batch.Failures = append(batch.Failures, EntryError{Index: i, Input: part, Err: err})
			continue
		}
		layers = append(layers, layer)
	}
	if len(batch.Failures) > 0 {
		return layers, &batch
	}
	return layers, nil
}

// SerializeComposite renders layers as one box-shadow value, in order.
func SerializeComposite(layers []designsystem.ShadowLayer) (string, error) {
	parts := make([]string, len(layers))
	for i, layer := range layers {
		s, err := Serialize(layer)
		if err != nil {
			return "", fmt.Errorf("layer %d: %w", i, err)
		}
		parts[i] = s
	}
	return strings.Join(parts, ", "), nil
}

// EntryError records why one declaration of a composite value failed.
type EntryError struct {
	Index int
	Input string
	Err   error
}

func (e EntryError) Error() string {
	return fmt.Sprintf("shadow %d (%q): %v", e.Index, e.Input, e.Err)
}

func (e EntryError) Unwrap() error {
	return e.Err
}

// BatchError lists the declarations of a composite value that failed to parse.
type BatchError struct {
	Failures []EntryError
}

func (e *BatchError) Error() string {
	if e == nil || len(e.Failures) == 0 {
		return "shadow batch failed"
	}
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Error()
	}
	return strings.Join(msgs, "; ")
}

func (e *BatchError) Unwrap() []error {
	if e == nil {
		return nil
	}
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}
