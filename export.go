package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/ARBS-hmm/Raster/grid"
)

const (
	pixelSize   = 12.0
	framePad    = 16.0
	lineHeight  = 16.0
	charWidth   = 8.0
	stackBoxW   = 180.0
	stackBoxH   = 32.0
	stackBoxGap = 8.0
)

func exportVisualTXT(sc *scene, f frame, cursor *point, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range plainFrame(sc, f, cursor) {
		fmt.Fprintln(file, line)
	}
	return nil
}

func loadFace(size float64) (font.Face, error) {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	return truetype.NewFace(ttfFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// cellOrigin is the top-left pixel of a grid cell in a rendered frame.
func cellOrigin(g *grid.Grid, row, col int) (float64, float64) {
	x := framePad + float64(row)*pixelSize
	y := framePad + lineHeight + float64(g.Cols()-1-col)*pixelSize
	return x, y
}

// renderFrame draws the scene as an image: the grid or stack on the left,
// the code listing on the right and the caption along the bottom.
func renderFrame(sc *scene, f frame) (image.Image, error) {
	var bodyW, bodyH float64
	if sc.grid != nil {
		bodyW = float64(sc.grid.Rows()) * pixelSize
		bodyH = float64(sc.grid.Cols()) * pixelSize
	} else {
		bodyW = stackBoxW
		bodyH = float64(sc.stack.Size()+2) * (stackBoxH + stackBoxGap)
	}

	codeW := float64(longestLine(sc.code)) * charWidth
	codeH := float64(len(sc.code)) * lineHeight
	if codeH > bodyH {
		bodyH = codeH
	}

	imageWidth := int(framePad*3 + bodyW + codeW)
	imageHeight := int(framePad*2 + lineHeight*3 + bodyH)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.Black)
	dc.Clear()

	face, err := loadFace(12)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)

	dc.SetColor(color.White)
	dc.DrawString(sc.title, framePad, framePad)

	if sc.grid != nil {
		drawGridPNG(dc, sc.grid)
	} else {
		drawStackPNG(dc, sc, f)
	}

	dc.SetColor(color.White)
	codeX := framePad*2 + bodyW
	for i, line := range sc.code {
		dc.DrawString(line, codeX, framePad+lineHeight*float64(i+1))
	}

	dc.SetRGB255(int(paletteRGBA[grid.InProgress].R), int(paletteRGBA[grid.InProgress].G), int(paletteRGBA[grid.InProgress].B))
	dc.DrawString(f.caption, framePad, float64(imageHeight)-framePad)

	return dc.Image(), nil
}

func drawGridPNG(dc *gg.Context, g *grid.Grid) {
	dc.SetLineWidth(0.5)
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			c, _ := g.At(row, col)
			x, y := cellOrigin(g, row, col)
			dc.DrawRectangle(x, y, pixelSize, pixelSize)
			dc.SetColor(paletteRGBA[c])
			dc.FillPreserve()
			dc.SetRGB(0.5, 0.5, 0.5)
			dc.Stroke()
		}
	}
}

func drawStackPNG(dc *gg.Context, sc *scene, f frame) {
	v := newStackView(sc.stack, f.delta)
	x := framePad
	y := framePad + lineHeight + stackBoxH + stackBoxGap

	dc.SetLineWidth(2)
	for _, e := range v.window {
		border := paletteRGBA[grid.Filled]
		switch {
		case v.entered[e.Handle]:
			border = color.RGBA{131, 193, 103, 255}
		case v.shown[e.Handle]:
			border = paletteRGBA[grid.InProgress]
		}
		dc.DrawRoundedRectangle(x, y, stackBoxW, stackBoxH, 6)
		dc.SetRGBA255(int(border.R), int(border.G), int(border.B), 100)
		dc.FillPreserve()
		dc.SetColor(border)
		dc.Stroke()
		dc.SetColor(color.White)
		dc.DrawStringAnchored(e.Payload, x+stackBoxW/2, y+stackBoxH/2, 0.5, 0.35)
		y += stackBoxH + stackBoxGap
	}

	dc.SetColor(paletteRGBA[grid.Highlight])
	for _, p := range v.popped {
		dc.DrawStringAnchored("popped "+p, x+stackBoxW/2, framePad+lineHeight+stackBoxH/2, 0.5, 0.35)
	}
	if v.hidden > 0 {
		dc.SetRGB(0.6, 0.6, 0.6)
		dc.DrawStringAnchored(fmt.Sprintf("+%d hidden", v.hidden), x+stackBoxW/2, y+stackBoxH/2, 0.5, 0.35)
	}
}

func exportPNG(sc *scene, f frame, filename string) error {
	img, err := renderFrame(sc, f)
	if err != nil {
		return err
	}
	return gg.SavePNG(filename, img)
}

// exportFrames plays sc to the end, writing one PNG per step into dir.
func exportFrames(sc *scene, dir string, progress func(n int)) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}
	p := newPlayer(sc)
	n := 0
	err := p.runToEnd(func(p *player) error {
		n++
		name := filepath.Join(dir, fmt.Sprintf("%s-%05d.png", sc.kind, n))
		if err := exportPNG(sc, p.current, name); err != nil {
			return err
		}
		if progress != nil {
			progress(n)
		}
		return nil
	})
	return n, err
}
