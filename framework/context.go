package framework

// Context is the view of engine state handed to item callbacks
// It reaches the cursor, selectables and stores, never the grid
type Context struct {
	Selectables *Selectables
	Data        *Data
	Cursor      *Cursor
}

// split hands out the context and grid as separate handles for one dispatch
// The returned release must run once the callback returns
// A second split before release means an item called back into the engine
func (f *Framework) split() (*Context, *State, func()) {
	if f.dispatching {
		panic("framework: reentrant dispatch from inside an item callback")
	}
	f.dispatching = true
	ctx := &Context{
		Selectables: &f.selectables,
		Data:        f.data,
		Cursor:      &f.cursor,
	}
	return ctx, &f.state, func() { f.dispatching = false }
}
