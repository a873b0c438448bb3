package uikit

import "errors"

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the bottom-left of a window, with Y increasing upward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// ViewKind distinguishes drawing behavior for a View.
type ViewKind uint8

const (
	ViewKindPlain  ViewKind = iota // filled rectangle with optional stroke
	ViewKindImage                  // bitmap scaled to the box, plain fallback
	ViewKindText                   // plain background plus an aligned text run
	ViewKindButton                 // plain rectangle that responds to presses
)

// String returns the lowercase kind name.
func (k ViewKind) String() string {
	switch k {
	case ViewKindPlain:
		return "plain"
	case ViewKindImage:
		return "image"
	case ViewKindText:
		return "text"
	case ViewKindButton:
		return "button"
	default:
		return "unknown"
	}
}

// Event identifies a kind of interaction a view can register a target for.
type Event uint8

const (
	EventPress Event = iota // fires when a pointer is pressed inside the view
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button, also touch
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// HAlign controls where a text run is anchored horizontally inside its box.
type HAlign uint8

const (
	HAlignLeft   HAlign = iota // anchor at x + padding, text grows right
	HAlignCenter               // anchor at the horizontal middle
	HAlignRight                // anchor at x + width - padding, text grows left
)

// VAlign controls where a text run is anchored vertically inside its box.
type VAlign uint8

const (
	VAlignCenter VAlign = iota // anchor near the vertical middle (default)
	VAlignTop                  // anchor at the top edge
	VAlignBottom               // anchor at the bottom edge
)

// TextStyle selects a face variant of a font family.
type TextStyle uint8

const (
	TextStyleRegular TextStyle = iota
	TextStyleBold
	TextStyleItalic
	TextStyleStretch
)

// Sentinel errors returned by the toolkit.
var (
	ErrInvalidHex   = errors.New("uikit: invalid hex color")
	ErrFontNotFound = errors.New("uikit: font not found")
	ErrNoScreens    = errors.New("uikit: no screens available")
)
