//go:build !release

package resources

const configDir = ".updown"

func resourcePath() (string, error) {
	return configDir, nil
}
