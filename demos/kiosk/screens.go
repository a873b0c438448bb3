package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phanxgames/uikit"
	"github.com/tanema/gween/ease"
)

// Layouts are drawn on a 1920x1080 canvas and measured from the top edge.
const canvasH = 1080

// fromTop converts a top-down layout box into window coordinates.
func fromTop(x, top, w, h float64) uikit.Rect {
	return uikit.Rect{X: x, Y: canvasH - top - h, Width: w, Height: h}
}

// kiosk holds what every screen shares.
type kiosk struct {
	cfg      Config
	pal      Palette
	title    *uikit.Font // small caps, labels
	body     *uikit.Font // clock and counters
	launcher *Launcher
	logger   *slog.Logger
	ctx      context.Context
	now      func() time.Time
}

func (k *kiosk) text(name string, frame uikit.Rect, font *uikit.Font, size float64, content string, color uikit.Color) *uikit.View {
	v := uikit.NewText(name, frame, uikit.TextBlock{
		Content: content,
		Font:    font,
		Size:    size,
		Color:   color,
	})
	v.Background = k.pal.Background
	return v
}

func (k *kiosk) reportPresentErr(err error) {
	k.logger.Error("present screen", "err", err)
}

// --- Base ---

// baseScreen is the chrome every screen shares: tab bar with clock, logo,
// status line and two rules.
type baseScreen struct {
	k      *kiosk
	status *uikit.View
	clock  *uikit.View
	logo   *uikit.View
	tabBar *uikit.View
	built  bool
}

func (b *baseScreen) build(root *uikit.View, suffix string) {
	k := b.k
	b.tabBar = uikit.NewView("tab bar", uikit.Rect{X: 0, Y: 1030, Width: 1920, Height: 50}, k.pal.TabBar)

	b.clock = k.text("clock", uikit.Rect{X: 1486, Y: 1030, Width: 387, Height: 50}, k.body, 48, "", k.pal.Light)
	b.clock.Background = k.pal.TabBar
	b.clock.TextBlock.Style = uikit.TextStyleBold
	b.clock.TextBlock.HAlign = uikit.HAlignRight
	b.clock.OnDraw = b.updateClock

	b.logo = uikit.NewImage("logo", uikit.Rect{X: 50, Y: 882, Width: 109, Height: 109}, k.cfg.Image("logo.png"))

	b.status = k.text("status", fromTop(168, 84, 1684, 109), k.title, 80, k.cfg.Status.Name+suffix, k.pal.Status)

	root.AddSubview(b.tabBar)
	root.AddSubview(b.clock)
	root.AddSubview(b.logo)
	root.AddSubview(b.status)
	root.AddSubview(uikit.NewView("rule top", fromTop(168, 183, 1704, 3), k.pal.Rule))
	root.AddSubview(uikit.NewView("rule bottom", fromTop(168, 188, 1704, 3), k.pal.Rule))
	root.Background = k.pal.Background
}

func (b *baseScreen) updateClock(v *uikit.View) {
	v.TextBlock.Content = b.k.now().Format(b.k.cfg.Clock.Format)
}

// --- Main ---

// mainScreen shows one tile per application.
type mainScreen struct {
	baseScreen
	mail, files, funcs *uikit.View
}

func (k *kiosk) newMainScreen() *uikit.ViewController {
	return uikit.NewViewController("main", &mainScreen{baseScreen: baseScreen{k: k}})
}

func (s *mainScreen) ViewDidLoad(vc *uikit.ViewController) error {
	if s.built {
		return nil
	}
	s.built = true
	k := s.k
	s.build(vc.View(), "")

	s.mail = k.tile("mail", 45, "mail_icon.png", uikit.Rect{X: 30, Y: 605, Width: 150, Height: 110}, "1", k.pal.Accent, "ЭЛ. ПОЧТА")
	s.files = k.tile("files", 657, "files_icon.png", uikit.Rect{X: 30, Y: 646, Width: 150, Height: 150}, "0", k.pal.TabBar, "ФАЙЛЫ")
	s.funcs = k.tile("functions", 1269, "func_icon.png", uikit.Rect{X: 30, Y: 656, Width: 150, Height: 140}, "1", k.pal.Accent, "ФУНКЦИИ")

	uikit.PresentOnPress(s.mail, vc, func() *uikit.ViewController {
		return k.newAppScreen("mail", " // ЭЛ. ПОЧТА", &k.cfg.Launcher.Mail, nil)
	}, k.reportPresentErr)
	uikit.PresentOnPress(s.files, vc, func() *uikit.ViewController {
		return k.newAppScreen("files", " // ФАЙЛЫ", &k.cfg.Launcher.Files, nil)
	}, k.reportPresentErr)
	uikit.PresentOnPress(s.funcs, vc, k.newFunctionsScreen, k.reportPresentErr)

	vc.View().AddSubview(s.mail)
	vc.View().AddSubview(s.files)
	vc.View().AddSubview(s.funcs)
	return nil
}

// tile builds an application tile: icon, unread counter and name, laid out
// inside a 606x760 button whose left edge is x.
func (k *kiosk) tile(name string, x float64, icon string, iconFrame uikit.Rect, counter string, counterColor uikit.Color, label string) *uikit.View {
	t := uikit.NewButton(name, fromTop(x, 256, 606, 760))
	t.Background = k.pal.Background
	t.Stroke = k.pal.Rule
	t.StrokeWidth = 1

	img := uikit.NewImage(name+" icon", iconFrame, k.cfg.Image(icon))
	count := k.text(name+" counter", uikit.Rect{X: 30, Y: 185, Width: 200, Height: 325}, k.body, 350, counter, counterColor)
	title := k.text(name+" name", uikit.Rect{X: 35, Y: 20, Width: 540, Height: 82}, k.title, 72, label, k.pal.Rule)

	t.AddSubview(img)
	t.AddSubview(count)
	t.AddSubview(title)
	return t
}

// --- Application screens ---

// appScreen hosts an external application, or custom content, below a back
// button that returns to a fresh main screen.
type appScreen struct {
	baseScreen
	suffix  string
	app     *AppCommand
	content func(root *uikit.View)

	back     *uikit.View
	windowID string
}

func (k *kiosk) newAppScreen(name, suffix string, app *AppCommand, content func(*uikit.View)) *uikit.ViewController {
	return uikit.NewViewController(name, &appScreen{
		baseScreen: baseScreen{k: k},
		suffix:     suffix,
		app:        app,
		content:    content,
	})
}

// ViewDidLoad builds the screen, then starts and docks the application. The
// launch blocks the UI for the launcher's delay. A failed launch is returned
// after the views are in place, so the back button still works.
func (s *appScreen) ViewDidLoad(vc *uikit.ViewController) error {
	if s.built {
		return nil
	}
	s.built = true
	k := s.k

	root := vc.View()
	if s.content != nil {
		s.content(root)
	}
	s.build(root, s.suffix)

	s.back = uikit.NewButton("back", fromTop(45, 196, 606, 72))
	s.back.Background = k.pal.Background
	s.back.Stroke = k.pal.Rule
	s.back.StrokeWidth = 1
	icon := uikit.NewImage("back icon", fromTop(53, 197, 37, 68), k.cfg.Image("backbutton_icon.png"))
	icon.Background = k.pal.Background
	label := k.text("back label", fromTop(108, 204, 498, 60), k.title, 50, "НАЗАД", k.pal.Rule)

	uikit.PresentOnPress(s.back, vc, k.newMainScreen, k.reportPresentErr)
	root.AddSubview(s.back)
	root.AddSubview(icon)
	root.AddSubview(label)

	if s.app == nil || !k.launcher.Enabled() {
		return nil
	}
	id, err := k.launcher.Launch(k.ctx, *s.app)
	s.windowID = id
	if err != nil {
		return fmt.Errorf("launch %s: %w", s.app.Window, err)
	}
	return nil
}

// WillPresent closes the docked application before another screen is shown.
func (s *appScreen) WillPresent(_, _ *uikit.ViewController) {
	if s.windowID == "" {
		return
	}
	if err := s.k.launcher.Kill(s.k.ctx, s.windowID); err != nil {
		s.k.logger.Warn("kill app window", "window", s.windowID, "err", err)
	}
	s.windowID = ""
}

// --- Functions ---

const projectorHelp = "В случае если проектор не включился, убедитесь, что его индикатор горит зеленым цветом. " +
	"Если это не так попробуйте включить его, используя пульт.\n" +
	"После выключения проектора убедитесь, что его индикатор перестал гореть каким-либо цветом."

// dimmed is the opacity of the projector action that is not available.
const dimmed = 20

// functionsPanel lists device functions and the projector controls.
type functionsPanel struct {
	k             *kiosk
	vc            *uikit.ViewController
	on, onLabel   *uikit.View
	off, offLabel *uikit.View
}

func (k *kiosk) newFunctionsScreen() *uikit.ViewController {
	p := &functionsPanel{k: k}
	vc := k.newAppScreen("functions", " // ФУНКЦИИ", nil, p.build)
	p.vc = vc
	return vc
}

func (p *functionsPanel) build(root *uikit.View) {
	k := p.k

	selected := uikit.NewButton("projector function", fromTop(45, 284, 606, 115))
	selected.Background = k.pal.Accent
	selected.Stroke = k.pal.Rule
	selected.StrokeWidth = 1
	selectedLabel := k.text("projector function label", fromTop(69, 305, 546, 72), k.title, 32, "УПРАВЛЕНИЕ ПРОЕКТОРОМ", k.pal.Rule)
	selectedLabel.Background = k.pal.Accent
	root.AddSubview(selected)
	root.AddSubview(selectedLabel)

	for i, top := range []float64{404, 524, 644, 764, 884} {
		root.AddSubview(uikit.NewImage(fmt.Sprintf("function %d", i+1), fromTop(45, top, 606, 115), k.cfg.Image("tmp_block.png")))
	}

	root.AddSubview(uikit.NewView("scroll bar", fromTop(659, 284, 9, 712), k.pal.Light))
	for _, top := range []float64{284, 399, 759} {
		root.AddSubview(uikit.NewView("panel rule", fromTop(678, top, 1195, 1), k.pal.Rule))
	}
	root.AddSubview(k.text("panel title", fromTop(687, 306, 665, 72), k.title, 48, "УПРАВЛЕНИЕ ПРОЕКТОРОМ", k.pal.Rule))
	help := k.text("panel help", fromTop(680, 431, 1194, 144), k.title, 24, projectorHelp, k.pal.Rule)
	help.TextBlock.VAlign = uikit.VAlignTop
	root.AddSubview(help)

	p.on, p.onLabel = p.action("projector on", 767, "Включить проектор")
	p.off, p.offLabel = p.action("projector off", 890, "Выключить проектор")
	p.off.Opacity, p.offLabel.Opacity = dimmed, dimmed

	uikit.AddTarget(p.on, uikit.EventPress, p.setProjector, true)
	uikit.AddTarget(p.off, uikit.EventPress, p.setProjector, false)

	root.AddSubview(p.on)
	root.AddSubview(p.onLabel)
	root.AddSubview(p.off)
	root.AddSubview(p.offLabel)
}

func (p *functionsPanel) action(name string, top float64, label string) (button, text *uikit.View) {
	k := p.k
	frame := fromTop(840, top, 906, 115)
	button = uikit.NewButton(name, frame)
	button.Background = k.pal.Background
	button.Stroke = k.pal.Rule
	button.StrokeWidth = 1
	text = k.text(name+" label", frame, k.title, 30, label, k.pal.Rule)
	text.TextBlock.HAlign = uikit.HAlignCenter
	return button, text
}

// setProjector dims the action just taken and lights up the opposite one.
func (p *functionsPanel) setProjector(on bool) {
	dim, lit := []*uikit.View{p.on, p.onLabel}, []*uikit.View{p.off, p.offLabel}
	if !on {
		dim, lit = lit, dim
	}
	p.k.logger.Info("projector", "on", on)

	w := p.vc.Window()
	seconds := float32(p.k.cfg.FadeDuration.Seconds())
	for _, v := range dim {
		w.Animate(uikit.TweenOpacity(v, dimmed, seconds, ease.OutQuad))
	}
	for _, v := range lit {
		w.Animate(uikit.TweenOpacity(v, 100, seconds, ease.OutQuad))
	}
}
