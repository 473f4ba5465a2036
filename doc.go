// Package dvdsaver is the windowed host for the bouncing DVD logo, built on
// [Ebitengine].
//
// The physics live in package bounce; this package loads the logo texture,
// owns the window-sized camera, feeds elapsed time and the current viewport
// into [bounce.Step] every tick and mirrors the result onto a tinted sprite.
//
// # Quick start
//
//	logo, err := dvdsaver.LoadLogo("")
//	cfg := dvdsaver.RunConfig{Title: "DVD", Width: 800, Height: 600}
//	scene, err := dvdsaver.NewScene(logo, cfg.Viewport(), rand.New(rand.NewPCG(1, 2)))
//	err = dvdsaver.Run(scene, cfg)
//
// [Scene] implements [ebiten.Game], so it can also be handed to
// [ebiten.RunGame] directly.
//
// # Coordinates
//
// World space has its origin at the center of the window with +y up. One
// world unit is one device-independent pixel. Resizing the window changes the
// viewport on the next tick.
//
// # Input
//
// Releasing Q ends the game loop after the current tick. Every other key is
// ignored. Tests can queue releases with [Scene.InjectKeyRelease].
//
// [Ebitengine]: https://ebitengine.org
package dvdsaver
