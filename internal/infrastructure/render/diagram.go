//go:build !gocv
// +build !gocv

package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"

	"rodnan-bot/internal/domain/port"
)

// DiagramRenderer рисует схему тела и отметки областей (gg, без OpenCV).
type DiagramRenderer struct {
	body image.Image
	font *truetype.Font
}

// NewDiagramRenderer создаёт рендерер. Если bodyImagePath пуст, рисуется встроенный контур.
func NewDiagramRenderer(bodyImagePath string) (*DiagramRenderer, error) {
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	r := &DiagramRenderer{font: f}
	if bodyImagePath != "" {
		img, err := gg.LoadImage(bodyImagePath)
		if err != nil {
			return nil, fmt.Errorf("load body image: %w", err)
		}
		r.body = img
	}
	return r, nil
}

// Render рисует схему и возвращает PNG.
func (r *DiagramRenderer) Render(ctx context.Context, markers []port.Marker, width, height int) ([]byte, error) {
	_ = ctx
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("bad diagram size %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if r.body != nil {
		r.drawBodyImage(dc, width, height)
	} else {
		drawOutline(dc, float64(width), float64(height))
	}

	radius := markerRadius(width, height)
	dc.SetFontFace(truetype.NewFace(r.font, &truetype.Options{Size: radius * 1.1}))
	for _, m := range markers {
		drawMarker(dc, m, radius)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawBodyImage вписывает изображение тела по размеру холста (object-fit: fill).
func (r *DiagramRenderer) drawBodyImage(dc *gg.Context, width, height int) {
	b := r.body.Bounds()
	sx := float64(width) / float64(b.Dx())
	sy := float64(height) / float64(b.Dy())
	dc.Push()
	dc.Scale(sx, sy)
	dc.DrawImage(r.body, 0, 0)
	dc.Pop()
}

func drawOutline(dc *gg.Context, w, h float64) {
	dc.SetHexColor(bodyFill)
	dc.SetLineCapRound()
	for _, l := range limbs {
		dc.SetLineWidth(w * l.width / 100)
		dc.DrawLine(w*l.from[0]/100, h*l.from[1]/100, w*l.to[0]/100, h*l.to[1]/100)
		dc.Stroke()
	}

	dc.DrawEllipse(w*headCenter[0]/100, h*headCenter[1]/100, w*headRadius[0]/100, h*headRadius[1]/100)
	dc.SetHexColor(bodyFill)
	dc.FillPreserve()
	dc.SetHexColor(bodyStroke)
	dc.SetLineWidth(2)
	dc.Stroke()
}

func drawMarker(dc *gg.Context, m port.Marker, radius float64) {
	if m.Selected {
		dc.DrawCircle(m.X, m.Y, radius+4)
		dc.SetHexColor(selectRing)
		dc.SetLineWidth(3)
		dc.Stroke()
	}

	dc.DrawCircle(m.X, m.Y, radius)
	dc.SetHexColor(m.Color)
	dc.FillPreserve()
	dc.SetHexColor(markerStroke)
	dc.SetLineWidth(2)
	dc.Stroke()

	if label := markerLabel(m); label != "" {
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(label, m.X, m.Y, 0.5, 0.35)
	}
}

var _ port.DiagramRenderer = (*DiagramRenderer)(nil)
