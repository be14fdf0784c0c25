package ebiten

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jetsetilly/updown/gui"
	"github.com/jetsetilly/updown/trainer"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	colBackground = color.RGBA{R: 0x1b, G: 0x1d, B: 0x23, A: 0xff}
	colIdle       = color.RGBA{R: 0x2c, G: 0x30, B: 0x3a, A: 0xff}
	colSelected   = color.RGBA{R: 0x3f, G: 0x8e, B: 0xfc, A: 0xff}
	colBorder     = color.RGBA{R: 0x5a, G: 0x60, B: 0x6e, A: 0xff}
	colText       = color.RGBA{R: 0xe8, G: 0xea, B: 0xed, A: 0xff}
	colDim        = color.RGBA{R: 0x9a, G: 0xa0, B: 0xa6, A: 0xff}
	colToast      = color.RGBA{R: 0x2e, G: 0x9e, B: 0x5b, A: 0xff}
)

type fonts struct {
	heading *text.GoTextFace
	label   *text.GoTextFace
	action  *text.GoTextFace
	body    *text.GoTextFace
	small   *text.GoTextFace
}

func newFonts() (fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fonts{}, fmt.Errorf("font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fonts{}, fmt.Errorf("font: %w", err)
	}

	return fonts{
		heading: &text.GoTextFace{Source: bold, Size: 26},
		label:   &text.GoTextFace{Source: bold, Size: 22},
		action:  &text.GoTextFace{Source: bold, Size: 40},
		body:    &text.GoTextFace{Source: regular, Size: 14},
		small:   &text.GoTextFace{Source: regular, Size: 12},
	}, nil
}

func (eg *guiEbiten) drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// layout of the screen
const (
	boxX    = 60
	boxW    = 220
	boxH    = 140
	boxTopY = 90
	boxGap  = 20

	panelX = 320
	panelY = 150
	panelW = 280
	panelH = 200
)

func (eg *guiEbiten) draw(screen *ebiten.Image, state trainer.State) {
	screen.Fill(colBackground)

	eg.drawText(screen, gui.Heading, eg.font.heading, screenWidth/2, 30, colText)
	eg.drawText(screen, gui.Instructions, eg.font.small, screenWidth/2, 60, colDim)

	for i, b := range gui.Boxes {
		y := float32(boxTopY + i*(boxH+boxGap))
		col := colIdle
		if b == state.Selected {
			col = colSelected
		}
		vector.DrawFilledRect(screen, boxX, y, boxW, boxH, col, false)
		vector.StrokeRect(screen, boxX, y, boxW, boxH, 2, colBorder, false)
		eg.drawText(screen, gui.BoxLabel(b), eg.font.label, boxX+boxW/2, float64(y)+boxH/2, colText)
	}

	vector.StrokeRect(screen, panelX, panelY, panelW, panelH, 2, colBorder, false)
	eg.drawText(screen, gui.ActionLabel, eg.font.body, panelX+panelW/2, panelY+30, colDim)
	eg.drawText(screen, gui.ActionText(state), eg.font.action, panelX+panelW/2, panelY+panelH/2, colText)
	eg.drawText(screen, gui.HintText(state), eg.font.small, panelX+panelW/2, panelY+panelH-30, colDim)

	if state.ToastVisible() {
		const w, h = 200, 40
		x := float32(screenWidth-w) / 2
		y := float32(screenHeight - h - 20)
		vector.DrawFilledRect(screen, x, y, w, h, colToast, false)
		eg.drawText(screen, state.Toast, eg.font.label, screenWidth/2, float64(y)+h/2, colText)
	}
}
