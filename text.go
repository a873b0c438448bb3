package uikit

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// vCenterDivisor places a vertically centered text run slightly above the
// box's true middle. Layouts are tuned against this value.
const vCenterDivisor = 2.1

// pointsToPixels converts a font size in points to pixels at 96 DPI.
const pointsToPixels = 96.0 / 72.0

// --- TextBlock ---

// TextBlock holds the content and formatting of a text view.
type TextBlock struct {
	Content string
	Font    *Font
	Size    float64 // points
	Style   TextStyle
	Color   Color
	HAlign  HAlign
	VAlign  VAlign
	Padding float64 // horizontal, applied to left and right alignment
}

// TextAnchor returns the point the text run is anchored to, in window
// coordinates. Horizontal: left x+padding, center x+floor(w/2), right
// x+w-padding. Vertical: top y+h, center y+floor(h/2.1), bottom y.
func (v *View) TextAnchor() (x, y float64) {
	var pad float64
	ha, va := HAlignLeft, VAlignCenter
	if tb := v.TextBlock; tb != nil {
		pad, ha, va = tb.Padding, tb.HAlign, tb.VAlign
	}

	x = v.X
	switch ha {
	case HAlignLeft:
		x = v.X + pad
	case HAlignCenter:
		x = v.X + math.Floor(v.Width/2)
	case HAlignRight:
		x = v.X + v.Width - pad
	}

	y = v.Y
	switch va {
	case VAlignTop:
		y = v.Y + v.Height
	case VAlignCenter:
		y = v.Y + math.Floor(v.Height/vCenterDivisor)
	}
	return x, y
}

// --- Font ---

// Font is a TrueType/OpenType family with one face source per style. Fonts
// are immutable once loaded and may be shared between views.
type Font struct {
	Family string
	faces  map[TextStyle]*text.GoTextFaceSource
}

// LoadFont parses raw TTF/OTF data as the regular face of family.
func LoadFont(family string, data []byte) (*Font, error) {
	f := &Font{Family: family, faces: make(map[TextStyle]*text.GoTextFaceSource)}
	if err := f.addFace(TextStyleRegular, data); err != nil {
		return nil, err
	}
	return f, nil
}

// AddStyle parses raw TTF/OTF data as the face used for style, replacing
// any face loaded for it before.
func (f *Font) AddStyle(style TextStyle, data []byte) error {
	return f.addFace(style, data)
}

func (f *Font) addFace(style TextStyle, data []byte) error {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("uikit: failed to parse font data for %q: %w", f.Family, err)
	}
	if f.faces == nil {
		f.faces = make(map[TextStyle]*text.GoTextFaceSource)
	}
	f.faces[style] = source
	return nil
}

// HasStyle reports whether a dedicated face was loaded for style.
func (f *Font) HasStyle(style TextStyle) bool {
	_, ok := f.faces[style]
	return ok
}

// Face returns a face for style at size points. Styles without a dedicated
// face fall back to the regular face, then to any loaded face. Returns nil
// when no face was loaded, as for a zero Font not built by LoadFont.
func (f *Font) Face(style TextStyle, size float64) *text.GoTextFace {
	if len(f.faces) == 0 {
		return nil
	}
	src, ok := f.faces[style]
	if !ok {
		src, ok = f.faces[TextStyleRegular]
	}
	if !ok {
		for _, s := range f.faces {
			src = s
			break
		}
	}
	return &text.GoTextFace{Source: src, Size: size * pointsToPixels}
}

// --- FontBook ---

// FontBook indexes the fonts found in a fonts directory by family name.
type FontBook struct {
	fonts map[string]*Font
}

// NewFontBook returns an empty book.
func NewFontBook() *FontBook {
	return &FontBook{fonts: make(map[string]*Font)}
}

// LoadFontDir scans dir/<family>/ for .ttf and .otf files. Each family is
// registered under its directory name and under the family name embedded in
// the font, so "fonts/Gabriely" may be looked up as "Gabriely Extra Light".
// The style of each file is taken from its file name.
func LoadFontDir(dir string) (*FontBook, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read font dir %s: %w", dir, err)
	}
	b := NewFontBook()
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if err := b.loadFamily(e.Name(), filepath.Join(dir, e.Name())); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *FontBook) loadFamily(name, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read font family %s: %w", dir, err)
	}
	var f *Font
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".ttf" && ext != ".otf") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return fmt.Errorf("read font %s: %w", e.Name(), err)
		}
		if f == nil {
			f = &Font{Family: name, faces: make(map[TextStyle]*text.GoTextFaceSource)}
		}
		style := styleFromFileName(e.Name())
		if f.HasStyle(style) {
			continue
		}
		if err := f.addFace(style, data); err != nil {
			return err
		}
	}
	if f == nil {
		return nil
	}
	b.Add(name, f)
	for _, src := range f.faces {
		if family := src.Metadata().Family; family != "" {
			b.Add(family, f)
		}
	}
	return nil
}

// styleFromFileName guesses the face style from conventional file names such
// as "Family-BoldItalic.ttf". Bold wins over italic.
func styleFromFileName(name string) TextStyle {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "bold"):
		return TextStyleBold
	case strings.Contains(lower, "italic"), strings.Contains(lower, "oblique"):
		return TextStyleItalic
	case strings.Contains(lower, "condensed"), strings.Contains(lower, "expanded"):
		return TextStyleStretch
	default:
		return TextStyleRegular
	}
}

// Add registers f under name, replacing any previous entry.
func (b *FontBook) Add(name string, f *Font) {
	b.fonts[name] = f
}

// Font returns the font registered under name.
func (b *FontBook) Font(name string) (*Font, error) {
	f, ok := b.fonts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	return f, nil
}

// Require returns an error naming the first family that is not registered.
func (b *FontBook) Require(names ...string) error {
	for _, name := range names {
		if _, err := b.Font(name); err != nil {
			return err
		}
	}
	return nil
}

// Names returns the registered names in sorted order.
func (b *FontBook) Names() []string {
	names := make([]string, 0, len(b.fonts))
	for name := range b.fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
