// Package bounce holds the physics of a single sprite drifting around a
// viewport: constant-speed motion, clamping to the viewport edges, velocity
// reflection and the color change on each bounce.
//
// Nothing here renders or reads input. A host loop owns one [State], samples
// the viewport and elapsed time every frame and calls [Step]:
//
//	src := rand.New(rand.NewPCG(seed, seed))
//	st, err := bounce.New(bounce.DefaultSize, vp, src)
//	// each frame:
//	st, hit = bounce.Step(st, vp, bounce.SanitizeDelta(dt), src)
//
// Coordinates have their origin at the viewport center with +y up.
package bounce
