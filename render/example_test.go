package render_test

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/katalvlaran/quadmesh/meshbuild"
	"github.com/katalvlaran/quadmesh/quadify"
	"github.com/katalvlaran/quadmesh/render"
)

func ExamplePNG() {
	tris, _ := meshbuild.TriGrid(3, 4)
	quads, _, _ := quadify.Convert(tris)

	var buf bytes.Buffer
	if err := render.PNG(&buf, quads, render.WithSize(320, 240), render.WithPointRadius(3)); err != nil {
		fmt.Println(err)
		return
	}
	cfg, _ := png.DecodeConfig(&buf)
	fmt.Println(cfg.Width, cfg.Height)
	// Output: 320 240
}
