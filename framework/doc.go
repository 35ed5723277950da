// Package framework composes terminal widgets on a grid and routes input to them.
//
// A State is rows of items with width and height rules. The Framework derives a
// selectables index from it, keeps a Cursor over that index, and dispatches
// render, key, mouse and load callbacks to items. Every callback receives a
// Context holding the cursor, selectables and stores but not the grid, so an
// item cannot reach its siblings while it is being called.
//
// Rendering is two passes per frame. Base content is drawn with popup=false,
// then overlays with popup=true, so a floating menu always lands on top.
//
//	fw := framework.New(state, framework.WithLogger(logger))
//	_ = fw.Move(framework.DirRight)
//	_ = fw.Select()
//	if err := fw.Render(canvas, layout.NewRect(0, 0, w, h)); err != nil {
//		// frame skipped
//	}
package framework
