package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/updown/gui"
)

var (
	styleDefault  = tcell.StyleDefault
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHeading  = tcell.StyleDefault.Bold(true)
	styleIdle     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorDodgerBlue).Bold(true)
	styleAction   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleToast    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen).Bold(true)
)

const (
	boxWidth  = 16
	boxHeight = 5
)

func (gt *guiTerminal) putString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		gt.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (gt *guiTerminal) fill(x, y, w, h int, style tcell.Style) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			gt.screen.SetContent(i, j, ' ', nil, style)
		}
	}
}

func (gt *guiTerminal) border(x, y, w, h int, style tcell.Style) {
	for i := x + 1; i < x+w-1; i++ {
		gt.screen.SetContent(i, y, tcell.RuneHLine, nil, style)
		gt.screen.SetContent(i, y+h-1, tcell.RuneHLine, nil, style)
	}
	for j := y + 1; j < y+h-1; j++ {
		gt.screen.SetContent(x, j, tcell.RuneVLine, nil, style)
		gt.screen.SetContent(x+w-1, j, tcell.RuneVLine, nil, style)
	}
	gt.screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	gt.screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	gt.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	gt.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
}

func (gt *guiTerminal) draw() {
	state := gt.app.Session.State()

	gt.screen.Clear()

	gt.putString(2, 1, gui.Heading, styleHeading)
	gt.putString(2, 2, gui.Instructions, styleDim)

	y := 4
	for _, b := range gui.Boxes {
		style := styleIdle
		if b == state.Selected {
			style = styleSelected
			gt.fill(2, y, boxWidth, boxHeight, style)
		}
		gt.border(2, y, boxWidth, boxHeight, style)
		label := gui.BoxLabel(b)
		gt.putString(2+(boxWidth-len(label))/2, y+boxHeight/2, label, style)
		y += boxHeight + 1
	}

	const px = boxWidth + 6
	gt.putString(px, 5, gui.ActionLabel, styleDim)
	gt.putString(px, 7, gui.ActionText(state), styleAction)
	gt.putString(px, 9, gui.HintText(state), styleDefault)

	if state.ToastVisible() {
		gt.putString(px, 12, " "+state.Toast+" ", styleToast)
	}

	gt.putString(2, y+1, "esc to quit", styleDim)

	gt.screen.Show()
}
