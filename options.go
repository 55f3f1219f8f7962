package tricolor

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/image/colornames"
)

// Options holds free form styling parameters, keyed by option name.
// The colorbar forwards them untouched to the surface's scatter call;
// interpreting them is up to the surface.
type Options map[string]any

// Keys returns the option names in sorted order.
func (o Options) Keys() []string {
	keys := maps.Keys(o)
	slices.Sort(keys)
	return keys
}

// Float returns the numeric value stored under key.
// The boolean reports whether the key is present.
func (o Options) Float(key string) (float64, bool, error) {
	v, ok := o[key]
	if !ok {
		return 0, false, nil
	}
	switch n := v.(type) {
	case float64:
		return n, true, nil
	case float32:
		return number(n), true, nil
	case int:
		return number(n), true, nil
	case int8:
		return number(n), true, nil
	case int16:
		return number(n), true, nil
	case int32:
		return number(n), true, nil
	case int64:
		return number(n), true, nil
	case uint:
		return number(n), true, nil
	case uint8:
		return number(n), true, nil
	case uint16:
		return number(n), true, nil
	case uint32:
		return number(n), true, nil
	case uint64:
		return number(n), true, nil
	case uintptr:
		return number(n), true, nil
	}
	return 0, true, fmt.Errorf("option %q: expected a number, got %T", key, v)
}

func number[T constraints.Integer | constraints.Float](v T) float64 {
	return float64(v)
}

// String returns the string value stored under key.
func (o Options) String(key string) (string, bool, error) {
	v, ok := o[key]
	if !ok {
		return "", false, nil
	}
	s, isString := v.(string)
	if !isString {
		return "", true, fmt.Errorf("option %q: expected a string, got %T", key, v)
	}
	return s, true, nil
}

// Color returns the color stored under key. Both color.Color values and
// color strings accepted by ParseColor are supported.
func (o Options) Color(key string) (color.Color, bool, error) {
	v, ok := o[key]
	if !ok {
		return nil, false, nil
	}
	switch c := v.(type) {
	case color.Color:
		return c, true, nil
	case string:
		parsed, err := ParseColor(c)
		if err != nil {
			return nil, true, fmt.Errorf("option %q: %w", key, err)
		}
		return parsed, true, nil
	}
	return nil, true, fmt.Errorf("option %q: expected a color, got %T", key, v)
}

// shorthands are the matplotlib base colors.
var shorthands = map[string]color.NRGBA{
	"b": {R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	"g": {R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	"r": {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	"c": {R: 0x00, G: 0xbf, B: 0xbf, A: 0xff},
	"m": {R: 0xbf, G: 0x00, B: 0xbf, A: 0xff},
	"y": {R: 0xbf, G: 0xbf, B: 0x00, A: 0xff},
	"k": {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	"w": {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// ParseColor decodes a color given as a single letter shorthand (k, w, r, g, b, c, m, y),
// a hex triplet (#rgb, #rrggbb, #rrggbbaa) or a CSS color name.
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return nil, errors.New("empty color")
	}
	if strings.HasPrefix(name, "#") {
		return parseHex(name)
	}
	if c, ok := shorthands[name]; ok {
		return c, nil
	}
	c, ok := colornames.Map[name]
	if !ok {
		return nil, fmt.Errorf("unknown color name %q", s)
	}
	return c, nil
}

func parseHex(s string) (color.Color, error) {
	x := strings.TrimPrefix(s, "#")
	var r, g, b uint8
	a := uint8(0xff)

	var err error
	switch len(x) {
	case 3:
		_, err = fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return nil, fmt.Errorf("invalid hex color %q", s)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
