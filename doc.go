// Package uikit is a small retained-mode view toolkit for [Ebitengine].
//
// A [Window] hosts a tree of [ViewController] values. Each controller owns a
// root [View]; views are flat structs tagged by [ViewKind] (plain rectangle,
// image, text, button) with an ordered list of subviews.
//
// # Coordinates
//
// Window coordinates have their origin at the bottom-left corner with Y
// increasing upward. [View.AddSubview] converts a child's position into
// window coordinates once, by adding the parent's position at attach time:
//
//	panel := uikit.NewView("panel", uikit.Rect{X: 100, Y: 100, Width: 400, Height: 300}, bg)
//	label := uikit.NewText("label", uikit.Rect{X: 10, Y: 10, Width: 200, Height: 40}, uikit.TextBlock{
//		Content: "Hello", Font: font, Size: 24, Color: uikit.Hex("525252"),
//	})
//	panel.AddSubview(label) // label is now at (110, 110)
//
// # Controllers
//
// A controller's behavior lives in its [Delegate]. ViewDidLoad runs when the
// window is created and again whenever the window's active controller
// changes through [ViewController.Present]. Presented controllers stay in
// their presenter's Children list and are drawn after the active
// controller's own tree.
//
//	type home struct{}
//
//	func (home) ViewDidLoad(vc *uikit.ViewController) error {
//		button := uikit.NewButton("open", uikit.Rect{X: 40, Y: 40, Width: 200, Height: 80})
//		uikit.PresentOnPress(button, vc, newDetail, nil)
//		vc.View().AddSubview(button)
//		return nil
//	}
//
// # Events
//
// Presses are hit-tested against the direct subviews of the active
// controller's root view in insertion order; the first view whose box
// contains the point receives the press. Register a target with
// [View.AddTarget] or the typed [AddTarget] helper.
//
// # Running
//
//	app := uikit.NewApplication(nil) // Ebitengine platform
//	app.NewWindow(uikit.WindowConfig{Title: "demo"}, uikit.NewViewController("home", home{}))
//	if err := app.Run(context.Background()); err != nil {
//		log.Fatal(err)
//	}
//
// [Ebitengine]: https://ebitengine.org
package uikit
