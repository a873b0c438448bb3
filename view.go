package uikit

// viewIDCounter is a plain counter; uikit is single-threaded.
var viewIDCounter uint32

func nextViewID() uint32 {
	viewIDCounter++
	return viewIDCounter
}

// View is the fundamental scene graph element. A single flat struct is used
// for every view kind; Kind selects how Draw renders it.
//
// Positions are absolute window coordinates once a view is attached: AddSubview
// shifts the child by the parent's position at attach time and never again.
type View struct {
	// Identity
	ID   uint32
	Name string
	Kind ViewKind

	// Frame
	X, Y          float64
	Width, Height float64

	// Appearance
	Background  Color
	Stroke      Color
	StrokeWidth float64
	Opacity     int // percent, 0-100

	// Image fields (ViewKindImage)
	ImagePath string

	// Text fields (ViewKindText)
	TextBlock *TextBlock

	// OnDraw runs at the start of every Draw, before anything is rendered.
	// Controllers use it to refresh content such as a clock string.
	OnDraw func(v *View)

	// Hierarchy (owned, append-only)
	subviews []*View

	// Press target (ViewKindButton, or any view given a target)
	target Target
}

// viewDefaults sets the common default field values shared by all constructors.
func viewDefaults(v *View) {
	v.ID = nextViewID()
	v.Background = Black
	v.Stroke = Black
	v.Opacity = 100
}

// NewView creates a plain rectangle view.
func NewView(name string, frame Rect, background Color) *View {
	v := &View{Name: name, Kind: ViewKindPlain}
	viewDefaults(v)
	v.SetFrame(frame)
	v.Background = background
	return v
}

// NewImage creates a view that draws the bitmap at path scaled to frame.
// When the bitmap cannot be loaded the view draws as a plain rectangle in
// its background color.
func NewImage(name string, frame Rect, path string) *View {
	v := &View{Name: name, Kind: ViewKindImage, ImagePath: path}
	viewDefaults(v)
	v.SetFrame(frame)
	return v
}

// NewText creates a text view. The block is copied; edit it through
// v.TextBlock afterwards.
func NewText(name string, frame Rect, tb TextBlock) *View {
	v := &View{Name: name, Kind: ViewKindText, TextBlock: &tb}
	viewDefaults(v)
	v.SetFrame(frame)
	return v
}

// NewButton creates a plain rectangle that responds to presses once a target
// is registered with AddTarget.
func NewButton(name string, frame Rect) *View {
	v := &View{Name: name, Kind: ViewKindButton}
	viewDefaults(v)
	v.SetFrame(frame)
	return v
}

// Frame returns the view's box.
func (v *View) Frame() Rect {
	return Rect{v.X, v.Y, v.Width, v.Height}
}

// SetFrame sets position and size in one call.
func (v *View) SetFrame(r Rect) {
	v.X, v.Y, v.Width, v.Height = r.X, r.Y, r.Width, r.Height
}

// --- Tree manipulation ---

// AddSubview offsets child by this view's current position and appends it.
// The offset is applied on every call: adding the same child twice moves it
// twice. Panics if child is nil or already contains this view.
func (v *View) AddSubview(child *View) {
	if child == nil {
		panic("uikit: cannot add nil subview")
	}
	if containsView(child, v) {
		panic("uikit: adding subview would create a cycle")
	}
	child.X += v.X
	child.Y += v.Y
	v.subviews = append(v.subviews, child)
	if debugWindows > 0 {
		debugCheckSubviewCount(v)
	}
}

// Subviews returns the child list. The returned slice MUST NOT be mutated by the caller.
func (v *View) Subviews() []*View {
	return v.subviews
}

// NumSubviews returns the number of subviews.
func (v *View) NumSubviews() int {
	return len(v.subviews)
}

// SubviewAt returns the subview at the given index.
func (v *View) SubviewAt(index int) *View {
	return v.subviews[index]
}

// containsView reports whether needle is root or one of its descendants.
func containsView(root, needle *View) bool {
	if root == needle {
		return true
	}
	for _, c := range root.subviews {
		if containsView(c, needle) {
			return true
		}
	}
	return false
}

// --- Drawing ---

// Draw renders the view and then every subview in insertion order, so later
// siblings paint over earlier ones.
func (v *View) Draw(s Surface) {
	v.drawNode(s)
	for _, child := range v.subviews {
		child.Draw(s)
	}
}

// drawNode runs the OnDraw hook and renders this view without its subviews.
func (v *View) drawNode(s Surface) {
	if v.OnDraw != nil {
		v.OnDraw(v)
	}
	switch v.Kind {
	case ViewKindImage:
		if v.ImagePath != "" && s.DrawImage(v.ImagePath, v.Frame()) {
			return
		}
		v.drawBox(s)
	case ViewKindText:
		v.drawBox(s)
		if tb := v.TextBlock; tb != nil {
			x, y := v.TextAnchor()
			s.DrawText(tb, x, y, tb.Color.RGBA(v.Opacity))
		}
	default:
		v.drawBox(s)
	}
}

// drawBox fills the frame and, when StrokeWidth is non-zero, draws the four
// stroke bars around it. Each bar overhangs one corner so the border closes.
func (v *View) drawBox(s Surface) {
	s.FillRect(v.Frame(), v.Background.RGBA(v.Opacity))
	if v.StrokeWidth == 0 {
		return
	}
	for _, r := range strokeRects(v.Frame(), v.StrokeWidth) {
		s.FillRect(r, v.Stroke.RGBA(v.Opacity))
	}
}

// strokeRects returns the left, top, right and bottom stroke bars for box.
func strokeRects(box Rect, sw float64) [4]Rect {
	x, y, w, h := box.X, box.Y, box.Width, box.Height
	return [4]Rect{
		{x - sw, y, sw, h + sw},
		{x, y + h, w + sw, sw},
		{x + w, y - sw, sw, h + sw},
		{x - sw, y - sw, w + sw, sw},
	}
}
