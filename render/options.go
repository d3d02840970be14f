package render

import (
	"errors"
	"image/color"

	"golang.org/x/image/colornames"
)

var (
	// ErrEmptyMesh is returned when the mesh is nil or has no visible faces.
	ErrEmptyMesh = errors.New("render: nothing to draw")

	// ErrBadSize is returned when the canvas or its margin leave no drawing area.
	ErrBadSize = errors.New("render: bad canvas size")
)

// Options configures PNG.
//
// Width, Height – canvas size in pixels. Default 512×512.
// Margin        – blank border in pixels. Default 16.
// LineWidth     – outline width in pixels. Default 1.5.
// PointRadius   – radius of point markers; 0 draws none. Default 0.
type Options struct {
	Width, Height int
	Margin        float64
	LineWidth     float64
	PointRadius   float64

	Background color.Color
	QuadFill   color.Color
	TriFill    color.Color
	Outline    color.Color
	PointFill  color.Color
}

// Option represents a functional option for configuring PNG.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Width:       512,
		Height:      512,
		Margin:      16,
		LineWidth:   1.5,
		PointRadius: 0,
		Background:  colornames.White,
		QuadFill:    colornames.Lightsteelblue,
		TriFill:     colornames.Lightsalmon,
		Outline:     colornames.Darkslategray,
		PointFill:   colornames.Crimson,
	}
}

// WithSize sets the canvas size. Non-positive values make PNG fail with ErrBadSize.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width, o.Height = width, height
	}
}

// WithMargin sets the blank border around the drawing.
func WithMargin(px float64) Option {
	return func(o *Options) {
		o.Margin = px
	}
}

// WithLineWidth sets the outline width.
func WithLineWidth(px float64) Option {
	return func(o *Options) {
		o.LineWidth = px
	}
}

// WithPointRadius draws every referenced point as a dot of radius px.
func WithPointRadius(px float64) Option {
	return func(o *Options) {
		o.PointRadius = px
	}
}

// WithColors overrides the quad and triangle fill colours. Nil keeps the default.
func WithColors(quad, tri color.Color) Option {
	return func(o *Options) {
		if quad != nil {
			o.QuadFill = quad
		}
		if tri != nil {
			o.TriFill = tri
		}
	}
}
