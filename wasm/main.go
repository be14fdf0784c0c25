// The wasm build runs the windowed frontend in the browser. Build with
// GOOS=js GOARCH=wasm and serve the www directory with the httpd command.
package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/updown/gui"
	"github.com/jetsetilly/updown/gui/ebiten"
	"github.com/jetsetilly/updown/logger"
)

func main() {
	// logger messages will be viewable in javascript log for WASM build
	logger.SetEcho(os.Stderr, false)

	// there is no chime because audio can't start in the browser until the
	// page has been interacted with
	app := gui.NewApp(nil, nil)

	if err := ebiten.Launch(app); err != nil {
		fmt.Printf("*** %s\n", err)
	}
}
