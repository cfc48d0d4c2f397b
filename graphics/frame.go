package graphics

// Frame is a drawing surface for one cycle. It keeps its Context alive until
// Finish presents it.
type Frame struct {
	ctx      *Context
	width    int
	height   int
	finished bool
}

// NewFrame starts a frame of the given framebuffer size on ctx.
func NewFrame(ctx *Context, width, height int) *Frame {
	ctx.Retain()
	return &Frame{ctx: ctx, width: width, height: height}
}

func (f *Frame) Dimensions() (int, int) { return f.width, f.height }

func (f *Frame) Context() *Context { return f.ctx }

func (f *Frame) IsFinished() bool { return f.finished }

// Clear fills the whole frame with a colour.
func (f *Frame) Clear(r, g, b, a float32) {
	if f.finished {
		panic("graphics: Clear on a finished Frame")
	}
	f.ctx.MakeCurrent()
	d := f.ctx.Driver()
	d.Viewport(0, 0, f.width, f.height)
	d.Clear(r, g, b, a)
}

// Finish presents the frame with a single buffer swap. Calling it again
// returns ErrAlreadySwapped without swapping.
func (f *Frame) Finish() error {
	if f.finished {
		return &SwapBuffersError{Kind: ErrAlreadySwapped}
	}
	f.finished = true
	defer f.ctx.Release()
	return f.ctx.SwapBuffers()
}
