package mounttest

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/go-drift/mounting/pkg/mounting"
)

// Handles used by the built-in fake providers.
const (
	TextHandle  mounting.ComponentHandle = 1
	ImageHandle mounting.ComponentHandle = 2
)

// NewFactory returns a factory with the fake Text and Image providers
// registered under TextHandle and ImageHandle.
func NewFactory() *mounting.ComponentViewFactory {
	f := mounting.NewComponentViewFactory()
	f.RegisterProvider(TextProvider())
	f.RegisterProvider(ImageProvider())
	return f
}

// Provider is a mounting.ViewProvider for tests. Created counts the views
// constructed, so tests can tell reuse from fresh allocation.
type Provider struct {
	Handle  mounting.ComponentHandle
	Name    string
	New     func() mounting.ComponentView
	Created int
}

func (p *Provider) ComponentHandle() mounting.ComponentHandle { return p.Handle }
func (p *Provider) ComponentName() string                     { return p.Name }

func (p *Provider) CreateView() mounting.ComponentView {
	p.Created++
	return p.New()
}

// TextProvider returns a provider constructing FakeTextView instances.
func TextProvider() *Provider {
	return &Provider{
		Handle: TextHandle,
		Name:   "Text",
		New:    func() mounting.ComponentView { return &FakeTextView{} },
	}
}

// ImageProvider returns a provider constructing FakeImageView instances
// with a 16x16 raster.
func ImageProvider() *Provider {
	return &Provider{
		Handle: ImageHandle,
		Name:   "Image",
		New:    func() mounting.ComponentView { return NewFakeImageView(16, 16) },
	}
}

// FakeTextView is a fake text component view. Content fields are exported
// so tests can dirty the view and later check that recycling cleared it.
type FakeTextView struct {
	// Text is the view's content.
	Text string
	// Attached reports whether the view is mounted under a parent.
	Attached bool
	// EffectInFlight simulates a running visual effect.
	EffectInFlight bool

	// Recycles counts PrepareForRecycle calls.
	Recycles int
	// Disposed reports whether Dispose was called.
	Disposed bool
}

func (v *FakeTextView) ComponentHandle() mounting.ComponentHandle { return TextHandle }

func (v *FakeTextView) PrepareForRecycle() {
	v.Text = ""
	v.Attached = false
	v.EffectInFlight = false
	v.Recycles++
}

func (v *FakeTextView) Dispose() {
	v.Disposed = true
}

// AppearsFresh reports whether the view carries no residual content.
func (v *FakeTextView) AppearsFresh() bool {
	return v.Text == "" && !v.Attached && !v.EffectInFlight
}

// FakeImageView is a fake image component view backed by an offscreen RGBA
// raster, so stale content is detectable at the pixel level.
type FakeImageView struct {
	frame *image.RGBA

	// Attached reports whether the view is mounted under a parent.
	Attached bool
	// Recycles counts PrepareForRecycle calls.
	Recycles int
	// Disposed reports whether Dispose was called.
	Disposed bool
}

// NewFakeImageView returns a view with a transparent w x h raster.
func NewFakeImageView(w, h int) *FakeImageView {
	return &FakeImageView{frame: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (v *FakeImageView) ComponentHandle() mounting.ComponentHandle { return ImageHandle }

func (v *FakeImageView) PrepareForRecycle() {
	draw.Draw(v.frame, v.frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
	v.Attached = false
	v.Recycles++
}

func (v *FakeImageView) Dispose() {
	v.Disposed = true
}

// SetContent scales src to fill the view's raster.
func (v *FakeImageView) SetContent(src image.Image) {
	draw.NearestNeighbor.Scale(v.frame, v.frame.Bounds(), src, src.Bounds(), draw.Src, nil)
}

// Fill paints the whole raster with a solid color.
func (v *FakeImageView) Fill(c color.Color) {
	draw.Draw(v.frame, v.frame.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Resize replaces the raster with a w x h one, scaling existing content
// into it the way a native image view rescales on layout.
func (v *FakeImageView) Resize(w, h int) {
	next := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(next, next.Bounds(), v.frame, v.frame.Bounds(), draw.Src, nil)
	v.frame = next
}

// Bounds returns the raster bounds.
func (v *FakeImageView) Bounds() image.Rectangle {
	return v.frame.Bounds()
}

// AppearsFresh reports whether every pixel is fully transparent black and
// the view is detached.
func (v *FakeImageView) AppearsFresh() bool {
	if v.Attached {
		return false
	}
	for _, px := range v.frame.Pix {
		if px != 0 {
			return false
		}
	}
	return true
}
