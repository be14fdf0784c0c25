//go:build !wasm

package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/updown/resources"
)

// name of the file in the resources directory
const windowFile = "window"

func onWindowOpen() (windowGeometry, error) {
	s, err := resources.Read(windowFile)
	if err != nil {
		return windowGeometry{}, err
	}

	// first run
	if s == "" {
		return windowGeometry{}, nil
	}

	var g windowGeometry

	_, err = fmt.Sscanf(s, "%d %d %d %d", &g.x, &g.y, &g.w, &g.h)
	if err != nil {
		return windowGeometry{}, fmt.Errorf("window: %w", err)
	}

	if g.valid() {
		ebiten.SetWindowPosition(g.x, g.y)
		ebiten.SetWindowSize(g.w, g.h)
	}

	return g, nil
}

func onWindowClose(g windowGeometry) error {
	if !g.valid() {
		return nil
	}
	s := fmt.Sprintf("%d %d %d %d", g.x, g.y, g.w, g.h)
	return resources.Write(windowFile, s)
}
