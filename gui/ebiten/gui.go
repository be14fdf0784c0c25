// Package ebiten is the windowed frontend. Gamepads and the keyboard are read
// through ebiten and the game loop is synchronised with the display.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/updown/frame"
	"github.com/jetsetilly/updown/gui"
	"github.com/jetsetilly/updown/logger"
	"github.com/jetsetilly/updown/recognizer"
	"github.com/jetsetilly/updown/version"
)

// logical size of the screen. the window can be any size
const (
	screenWidth  = 640
	screenHeight = 480
)

type windowGeometry struct {
	x, y int
	w, h int
}

func (g windowGeometry) valid() bool {
	return g.x >= 0 && g.y >= 0 && g.w > 0 && g.h > 0
}

type guiEbiten struct {
	app   *gui.App
	rec   *recognizer.Recognizer
	sched *frame.Scheduler

	geom windowGeometry
	keys keyboard
	font fonts
}

func (eg *guiEbiten) Update() error {
	if eg.keys.update(eg.rec) {
		return ebiten.Termination
	}

	// gamepads are sampled by the frame callback
	eg.sched.Tick()

	eg.app.Session.Update()

	return nil
}

func (eg *guiEbiten) Draw(screen *ebiten.Image) {
	eg.draw(screen, eg.app.Session.State())

	eg.geom.x, eg.geom.y = ebiten.WindowPosition()
	eg.geom.w, eg.geom.h = ebiten.WindowSize()
}

func (eg *guiEbiten) Layout(width, height int) (int, int) {
	return screenWidth, screenHeight
}

// Launch opens the window and runs until it is closed or the escape key is
// pressed
func Launch(app *gui.App) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	eg := &guiEbiten{
		app: app,
	}
	eg.rec, eg.sched = app.Recognizer(&gamepads{})

	var err error

	eg.font, err = newFonts()
	if err != nil {
		return err
	}
	eg.keys.initialise()

	eg.geom, err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err)
	}

	defer func() {
		err := onWindowClose(eg.geom)
		if err != nil {
			logger.Log(logger.Allow, "gui", err)
		}
	}()

	eg.rec.Start()
	defer eg.rec.Stop()

	return ebiten.RunGame(eg)
}
