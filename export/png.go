package export

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/Flokey82/genterrain"
	"github.com/Flokey82/genterrain/various"
	"github.com/Flokey82/go_gens/utils"
	"github.com/Flokey82/go_gens/vectors"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/mazznoer/colorgrad"
)

var (
	colBackground = color.RGBA{240, 230, 200, 255}
	colLake       = color.RGBA{90, 140, 200, 255}
	colLakeShore  = color.RGBA{40, 80, 140, 255}
	colRiver      = color.RGBA{60, 110, 190, 255}
	colRidge      = color.RGBA{120, 100, 80, 255}
)

// Preview draws a top down preview of the terrain. The longer side of the
// terrain bounds is scaled to size pixels (plus a margin).
func Preview(t *genterrain.Terrain, size int) (*image.RGBA, error) {
	size = utils.Max(size, 16)
	margin := float64(size) / 16

	// Tree depth tiers get darker towards the front, peaks by size.
	forestGrad := colorgrad.NewGradient()
	forestGrad.Colors(
		color.RGBA{120, 170, 90, 255},
		color.RGBA{30, 90, 40, 255},
	)
	treeCols, err := forestGrad.Build()
	if err != nil {
		return nil, err
	}
	peakGrad := colorgrad.NewGradient()
	peakGrad.Colors(
		color.RGBA{160, 140, 120, 255},
		color.RGBA{250, 250, 250, 255},
	)
	peakCols, err := peakGrad.Build()
	if err != nil {
		return nil, err
	}

	// Fit the terrain into the image.
	lo, hi := various.Bounds2(terrainPoints(t))
	extent := math.Max(hi.X-lo.X, hi.Y-lo.Y)
	scale := 1.0
	if extent > 0 {
		scale = float64(size) / extent
	}
	toPx := func(x, y float64) (float64, float64) {
		return margin + (x-lo.X)*scale, margin + (y-lo.Y)*scale
	}
	px := int(math.Ceil(float64(size) + 2*margin))
	dest := image.NewRGBA(image.Rect(0, 0, px, px))
	gc := draw2dimg.NewGraphicContext(dest)

	gc.SetFillColor(colBackground)
	gc.BeginPath()
	draw2dkit.Rectangle(gc, 0, 0, float64(px), float64(px))
	gc.Fill()

	path := func(points []vectors.Vec2, closed bool) {
		gc.BeginPath()
		for i, p := range points {
			x, y := toPx(p.X, p.Y)
			if i == 0 {
				gc.MoveTo(x, y)
			} else {
				gc.LineTo(x, y)
			}
		}
		if closed {
			gc.Close()
		}
	}

	// Lakes.
	gc.SetFillColor(colLake)
	gc.SetStrokeColor(colLakeShore)
	gc.SetLineWidth(1)
	for _, l := range t.Lakes {
		path(l.Boundary, true)
		gc.FillStroke()
	}

	// Rivers.
	gc.SetStrokeColor(colRiver)
	for _, r := range t.Rivers {
		gc.SetLineWidth(math.Max(r.Width*scale, 1))
		path(r.Points, false)
		gc.Stroke()
	}

	// Mountains.
	gc.SetStrokeColor(colRidge)
	gc.SetLineWidth(1)
	_, maxPeak := peakSizeRange(t)
	if maxPeak <= 0 {
		maxPeak = 1
	}
	for _, m := range t.Mountains {
		path(m.Ridge, false)
		gc.Stroke()
		for _, p := range m.Peaks {
			x, y := toPx(p.X, p.Y)
			h := p.Size * scale
			gc.SetFillColor(peakCols.At(p.Size / maxPeak))
			gc.BeginPath()
			gc.MoveTo(x-h/2, y+h/2)
			gc.LineTo(x, y-h/2)
			gc.LineTo(x+h/2, y+h/2)
			gc.Close()
			gc.FillStroke()
		}
	}

	// Forests (already in back to front order).
	for _, f := range t.Forests {
		for _, tr := range f.Trees {
			x, y := toPx(tr.X, tr.Y)
			gc.SetFillColor(treeCols.At(float64(tr.Depth) / 2))
			gc.BeginPath()
			draw2dkit.Circle(gc, x, y, math.Max(tr.Size*scale/2, 1))
			gc.Fill()
		}
	}
	return dest, nil
}

// PNG writes the preview of the terrain as PNG.
func PNG(w io.Writer, t *genterrain.Terrain, size int) error {
	img, err := Preview(t, size)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// terrainPoints returns every point of the terrain.
func terrainPoints(t *genterrain.Terrain) []vectors.Vec2 {
	var res []vectors.Vec2
	for _, l := range t.Lakes {
		res = append(res, l.Boundary...)
	}
	for _, r := range t.Rivers {
		res = append(res, r.Points...)
	}
	for _, f := range t.Forests {
		for _, tr := range f.Trees {
			res = append(res, vectors.NewVec2(tr.X, tr.Y))
		}
	}
	for _, m := range t.Mountains {
		res = append(res, m.Ridge...)
		for _, p := range m.Peaks {
			res = append(res, vectors.NewVec2(p.X, p.Y))
		}
	}
	return res
}

// peakSizeRange returns the smallest and largest peak size (1 if there are no
// peaks).
func peakSizeRange(t *genterrain.Terrain) (float64, float64) {
	var sizes []float64
	for _, m := range t.Mountains {
		for _, p := range m.Peaks {
			sizes = append(sizes, p.Size)
		}
	}
	if len(sizes) == 0 {
		return 1, 1
	}
	return utils.MinMax(sizes)
}
