// Package render draws a mesh preview as a PNG image.
//
// The XY bounding box of the mesh is fitted into the canvas (Y pointing up),
// quads and triangles are filled in distinct colours and every face outline
// is stroked. Rendering uses the software rasteriser of github.com/gogpu/gg.
//
//	f, _ := os.Create("out.png")
//	defer f.Close()
//	err := render.PNG(f, m, render.WithSize(800, 600))
package render
