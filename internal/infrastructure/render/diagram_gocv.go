//go:build gocv
// +build gocv

package render

import (
	"context"
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"rodnan-bot/internal/domain/port"
)

// DiagramRenderer рисует схему тела и отметки областей средствами OpenCV.
type DiagramRenderer struct {
	bodyImagePath string
}

// NewDiagramRenderer создаёт рендерер. Если bodyImagePath пуст, рисуется встроенный контур.
func NewDiagramRenderer(bodyImagePath string) (*DiagramRenderer, error) {
	if bodyImagePath != "" {
		mat := gocv.IMRead(bodyImagePath, gocv.IMReadColor)
		defer mat.Close()
		if mat.Empty() {
			return nil, fmt.Errorf("load body image: failed to decode %s", bodyImagePath)
		}
	}
	return &DiagramRenderer{bodyImagePath: bodyImagePath}, nil
}

// Render рисует схему и возвращает PNG.
func (r *DiagramRenderer) Render(ctx context.Context, markers []port.Marker, width, height int) ([]byte, error) {
	_ = ctx
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("bad diagram size %dx%d", width, height)
	}

	mat, err := r.canvas(width, height)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	radius := markerRadius(width, height)
	for _, m := range markers {
		drawMarker(&mat, m, radius)
	}

	buf, err := gocv.IMEncode(gocv.PNGFileExt, mat)
	if err != nil {
		return nil, err
	}
	defer buf.Close()

	out := make([]byte, buf.Len())
	copy(out, buf.GetBytes())
	return out, nil
}

// canvas возвращает фон: изображение тела, вписанное в размер, или контур.
func (r *DiagramRenderer) canvas(width, height int) (gocv.Mat, error) {
	if r.bodyImagePath != "" {
		src := gocv.IMRead(r.bodyImagePath, gocv.IMReadColor)
		defer src.Close()
		if src.Empty() {
			return gocv.NewMat(), errors.New("empty body image")
		}
		dst := gocv.NewMat()
		gocv.Resize(src, &dst, image.Pt(width, height), 0, 0, gocv.InterpolationArea)
		return dst, nil
	}

	mat := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)
	mat.SetTo(gocv.NewScalar(255, 255, 255, 0))
	drawOutline(&mat, float64(width), float64(height))
	return mat, nil
}

func drawOutline(mat *gocv.Mat, w, h float64) {
	fill := mustHex(bodyFill)
	for _, l := range limbs {
		from := image.Pt(int(w*l.from[0]/100), int(h*l.from[1]/100))
		to := image.Pt(int(w*l.to[0]/100), int(h*l.to[1]/100))
		gocv.Line(mat, from, to, fill, int(w*l.width/100))
		gocv.Circle(mat, from, int(w*l.width/200), fill, -1)
		gocv.Circle(mat, to, int(w*l.width/200), fill, -1)
	}

	center := image.Pt(int(w*headCenter[0]/100), int(h*headCenter[1]/100))
	axes := image.Pt(int(w*headRadius[0]/100), int(h*headRadius[1]/100))
	gocv.Ellipse(mat, center, axes, 0, 0, 360, fill, -1)
	gocv.Ellipse(mat, center, axes, 0, 0, 360, mustHex(bodyStroke), 2)
}

func drawMarker(mat *gocv.Mat, m port.Marker, radius float64) {
	center := image.Pt(int(m.X), int(m.Y))
	r := int(radius)

	if m.Selected {
		gocv.Circle(mat, center, r+4, mustHex(selectRing), 3)
	}
	gocv.Circle(mat, center, r, mustHex(m.Color), -1)
	gocv.Circle(mat, center, r, mustHex(markerStroke), 2)

	if label := markerLabel(m); label != "" {
		scale := radius / 16
		size := gocv.GetTextSize(label, gocv.FontHersheySimplex, scale, 2)
		origin := image.Pt(center.X-size.X/2, center.Y+size.Y/2)
		gocv.PutText(mat, label, origin, gocv.FontHersheySimplex, scale, mustHex("#000000"), 2)
	}
}

var _ port.DiagramRenderer = (*DiagramRenderer)(nil)
