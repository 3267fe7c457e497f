package reference

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/bamiaux/rez"
	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"
	"github.com/go-errors/errors"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"

	"github.com/gogpu/resample/internal/sample"
)

// xdrawResizer uses "golang.org/x/image/draw"
type xdrawResizer struct {
	name   string
	scaler draw.Scaler
}

var _ Resizer = (*xdrawResizer)(nil)

// XDraw returns a golang.org/x/image/draw resizer: NearestNeighbor for
// Nearest, ApproxBiLinear for Bilinear.
func XDraw(m sample.Method) Resizer {
	if m == sample.Nearest {
		return &xdrawResizer{name: "xdraw/nearest", scaler: draw.NearestNeighbor}
	}
	return &xdrawResizer{name: "xdraw/bilinear", scaler: draw.ApproxBiLinear}
}

// XDrawCatmullRom returns the highest quality x/image/draw scaler.
func XDrawCatmullRom() Resizer {
	return &xdrawResizer{name: "xdraw/catmullrom", scaler: draw.CatmullRom}
}

func (r *xdrawResizer) Name() string { return r.name }

func (r *xdrawResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	r.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}

// nfntResizer uses "github.com/nfnt/resize"
type nfntResizer struct {
	method sample.Method
}

var _ Resizer = (*nfntResizer)(nil)

// NFNT returns a github.com/nfnt/resize resizer.
func NFNT(m sample.Method) Resizer { return &nfntResizer{method: m} }

func (r *nfntResizer) Name() string { return "nfnt/" + methodName(r.method) }

func (r *nfntResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	interp := resize.Bilinear
	if r.method == sample.Nearest {
		interp = resize.NearestNeighbor
	}
	return resize.Resize(uint(size.X), uint(size.Y), img, interp), nil
}

// giftResizer uses "github.com/disintegration/gift"
type giftResizer struct {
	method sample.Method
}

var _ Resizer = (*giftResizer)(nil)

// Gift returns a github.com/disintegration/gift resizer.
func Gift(m sample.Method) Resizer { return &giftResizer{method: m} }

func (r *giftResizer) Name() string { return "gift/" + methodName(r.method) }

func (r *giftResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	resampling := gift.LinearResampling
	if r.method == sample.Nearest {
		resampling = gift.NearestNeighborResampling
	}
	m := image.NewNRGBA(image.Rectangle{Max: size})
	gift.Resize(size.X, size.Y, resampling).Draw(m, img, &gift.Options{Parallelization: true})
	return m, nil
}

// imagingResizer uses "github.com/disintegration/imaging"
type imagingResizer struct {
	method sample.Method
}

var _ Resizer = (*imagingResizer)(nil)

// Imaging returns a github.com/disintegration/imaging resizer.
func Imaging(m sample.Method) Resizer { return &imagingResizer{method: m} }

func (r *imagingResizer) Name() string { return "imaging/" + methodName(r.method) }

func (r *imagingResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	filter := imaging.Linear
	if r.method == sample.Nearest {
		filter = imaging.NearestNeighbor
	}
	return imaging.Resize(img, size.X, size.Y, filter), nil
}

// bildResizer uses "github.com/anthonynsimon/bild/transform"
type bildResizer struct {
	method sample.Method
}

var _ Resizer = (*bildResizer)(nil)

// Bild returns a github.com/anthonynsimon/bild resizer.
func Bild(m sample.Method) Resizer { return &bildResizer{method: m} }

func (r *bildResizer) Name() string { return "bild/" + methodName(r.method) }

func (r *bildResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	filter := transform.Linear
	if r.method == sample.Nearest {
		filter = transform.NearestNeighbor
	}
	return transform.Resize(img, size.X, size.Y, filter), nil
}

// rezResizer uses "github.com/bamiaux/rez"
type rezResizer struct {
	method sample.Method
}

var _ Resizer = (*rezResizer)(nil)

// Rez returns a github.com/bamiaux/rez resizer. rez has no
// nearest-neighbor filter; Nearest falls back to its bilinear filter.
func Rez(m sample.Method) Resizer { return &rezResizer{method: m} }

func (r *rezResizer) Name() string { return "rez/bilinear" }

func (r *rezResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	// rez converts between images of the same concrete type.
	rect := image.Rectangle{Max: size}
	var src, dst image.Image
	if gray, ok := img.(*image.Gray); ok {
		src, dst = gray, image.NewGray(rect)
	} else {
		rgba := image.NewRGBA(image.Rectangle{Max: img.Bounds().Size()})
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
		src, dst = rgba, image.NewRGBA(rect)
	}
	if err := rez.Convert(dst, src, rez.NewBilinearFilter()); err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return dst, nil
}
