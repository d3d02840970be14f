package render

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/quadmesh/mesh"
)

// PNG draws m and writes the encoded image to w.
//
// Removed faces are skipped. Only points referenced by a visible face take
// part in the bounding box, so points appended but never used do not shrink
// the drawing.
func PNG(w io.Writer, m *mesh.Mesh, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Margin < 0 ||
		2*cfg.Margin >= float64(cfg.Width) || 2*cfg.Margin >= float64(cfg.Height) {
		return fmt.Errorf("%dx%d margin %g: %w", cfg.Width, cfg.Height, cfg.Margin, ErrBadSize)
	}
	if m == nil {
		return ErrEmptyMesh
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	vp, ok := fit(m, cfg)
	if !ok {
		return ErrEmptyMesh
	}

	dc := gg.NewContext(cfg.Width, cfg.Height)
	defer dc.Close()

	dc.ClearWithColor(gg.FromColor(cfg.Background))
	dc.SetLineWidth(cfg.LineWidth)

	for fi, f := range m.Faces {
		if f.IsRemoved() {
			continue
		}
		trace(dc, vp, m, f)
		if f.IsQuad() {
			dc.SetColor(cfg.QuadFill)
		} else {
			dc.SetColor(cfg.TriFill)
		}
		if err := dc.FillPreserve(); err != nil {
			return fmt.Errorf("render: fill face %d: %w", fi, err)
		}
		dc.SetColor(cfg.Outline)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("render: stroke face %d: %w", fi, err)
		}
	}

	if cfg.PointRadius > 0 {
		dc.SetColor(cfg.PointFill)
		for p := range vp.used {
			x, y := vp.project(m.Points[p])
			dc.DrawCircle(x, y, cfg.PointRadius)
		}
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("render: points: %w", err)
		}
	}

	return dc.EncodePNG(w)
}

func trace(dc *gg.Context, vp viewport, m *mesh.Mesh, f mesh.Face) {
	for i := 0; i < f.Len(); i++ {
		x, y := vp.project(m.Points[f.At(i)])
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}

// viewport maps mesh XY onto canvas pixels, Y flipped.
type viewport struct {
	minX, maxY float64
	scale      float64
	offX, offY float64
	used       map[int]struct{}
}

func (v viewport) project(p mesh.Point) (float64, float64) {
	return v.offX + (p.X-v.minX)*v.scale, v.offY + (v.maxY-p.Y)*v.scale
}

// fit computes a uniform scale that centres the used points inside the margin.
func fit(m *mesh.Mesh, cfg Options) (viewport, bool) {
	vp := viewport{used: make(map[int]struct{})}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, f := range m.Faces {
		for i := 0; i < f.Len(); i++ {
			p := f.At(i)
			vp.used[p] = struct{}{}
			pt := m.Points[p]
			minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
			minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
		}
	}
	if len(vp.used) == 0 {
		return vp, false
	}

	availW := float64(cfg.Width) - 2*cfg.Margin
	availH := float64(cfg.Height) - 2*cfg.Margin
	spanX, spanY := maxX-minX, maxY-minY
	switch {
	case spanX > 0 && spanY > 0:
		vp.scale = math.Min(availW/spanX, availH/spanY)
	case spanX > 0:
		vp.scale = availW / spanX
	case spanY > 0:
		vp.scale = availH / spanY
	default:
		vp.scale = 1
	}

	vp.minX, vp.maxY = minX, maxY
	vp.offX = cfg.Margin + (availW-spanX*vp.scale)/2
	vp.offY = cfg.Margin + (availH-spanY*vp.scale)/2

	return vp, true
}
