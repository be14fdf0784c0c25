// Package prefs loads and saves the user preferences. Preferences are stored
// as YAML in the resources directory. Command line flags take precedence and
// are applied by the caller.
package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/updown/resources"
)

// Filename of the preferences file in the resources directory
const Filename = "prefs.yaml"

// List of frontends
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// Prefs are the user preferences
type Prefs struct {
	// the frontend to use: "window" or "terminal"
	Frontend string `yaml:"frontend"`

	Audio     Audio     `yaml:"audio"`
	Broadcast Broadcast `yaml:"broadcast"`
	Log       Log       `yaml:"log"`
}

// Audio preferences
type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Broadcast preferences. An empty address disables the broadcast server
type Broadcast struct {
	Addr string `yaml:"addr"`
}

// Log preferences. The fields are set on the command line by -echo and -log
type Log struct {
	// print accepted intents to stdout
	Echo bool `yaml:"echo"`

	// write log entries to stderr
	Stderr bool `yaml:"stderr"`
}

// Default returns the default preferences
func Default() Prefs {
	return Prefs{
		Frontend: FrontendWindow,
		Audio: Audio{
			Enabled: true,
			Volume:  1.0,
		},
	}
}

// Validate returns an error if the preferences are unusable
func (p Prefs) Validate() error {
	switch p.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("prefs: unknown frontend %q", p.Frontend)
	}
	if p.Audio.Volume < 0 || p.Audio.Volume > 1 {
		return fmt.Errorf("prefs: audio volume must be between 0.0 and 1.0")
	}
	return nil
}

// Decode preferences from YAML. Fields missing from the YAML keep their
// default value. Unknown fields are an error
func Decode(r io.Reader) (Prefs, error) {
	p := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		// an empty document is the same as no preferences
		if errors.Is(err, io.EOF) {
			return p, nil
		}
		return Prefs{}, fmt.Errorf("prefs: %w", err)
	}

	p.Frontend = strings.ToLower(p.Frontend)

	if err := p.Validate(); err != nil {
		return Prefs{}, err
	}

	return p, nil
}

// Encode preferences as YAML
func (p Prefs) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	return enc.Close()
}

// Load preferences from the resources directory. A missing file results in
// the default preferences
func Load() (Prefs, error) {
	s, err := resources.Read(Filename)
	if err != nil {
		return Prefs{}, fmt.Errorf("prefs: %w", err)
	}
	return Decode(strings.NewReader(s))
}

// Save preferences to the resources directory
func Save(p Prefs) error {
	var b bytes.Buffer
	if err := p.Encode(&b); err != nil {
		return err
	}
	if err := resources.Write(Filename, b.String()); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	return nil
}
