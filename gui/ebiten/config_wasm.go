//go:build wasm

package ebiten

// the browser decides the geometry of the canvas
func onWindowOpen() (windowGeometry, error) {
	return windowGeometry{}, nil
}

func onWindowClose(_ windowGeometry) error {
	return nil
}
