package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jetsetilly/updown/audio"
	"github.com/jetsetilly/updown/broadcast"
	"github.com/jetsetilly/updown/gui"
	"github.com/jetsetilly/updown/gui/ebiten"
	"github.com/jetsetilly/updown/gui/terminal"
	"github.com/jetsetilly/updown/intent"
	"github.com/jetsetilly/updown/logger"
	"github.com/jetsetilly/updown/prefs"
	"github.com/jetsetilly/updown/trainer"
	"github.com/jetsetilly/updown/version"
)

const programName = "updown"

func main() {
	if err := launch(os.Args[1:]); err != nil {
		fmt.Printf("*** %s\n", err)
	}
}

func launch(args []string) error {
	p, err := prefs.Load()
	if err != nil {
		return err
	}

	opts, err := parseFlags(args, p)
	if err != nil {
		// usage has already been printed
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	p = opts.prefs
	useTerminal := p.Frontend == prefs.FrontendTerminal

	if opts.savePrefs {
		err = prefs.Save(p)
		if err != nil {
			return err
		}
	}

	if opts.chimeFile != "" {
		return writeChime(opts.chimeFile)
	}

	st := newStyles()

	if p.Log.Stderr {
		// the terminal frontend owns the screen so the log is written when
		// it finishes
		if useTerminal {
			defer logger.Write(os.Stderr)
		} else {
			logger.SetEcho(os.Stderr, true)
		}
	}

	if !useTerminal {
		fmt.Println(st.banner.Render(version.Title()))
	}

	var chime trainer.Chime
	if p.Audio.Enabled {
		player, err := audio.NewPlayer(p.Audio.Volume)
		if err != nil {
			logger.Log(logger.Allow, "audio", err)
		} else {
			defer player.Close()
			chime = player
		}
	}

	app := gui.NewApp(nil, chime)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if p.Broadcast.Addr != "" {
		// the trainer runs without the broadcast if the address can't be used
		hub := broadcast.NewHub()
		_, err := broadcast.Start(ctx, p.Broadcast.Addr, hub)
		if err != nil {
			logger.Log(logger.Allow, "broadcast", err)
		} else {
			app.OnIntent = append(app.OnIntent, hub.PublishIntent)
			app.Session.Observe(hub.PublishState)
		}
	}

	if p.Log.Echo {
		if useTerminal {
			app.OnIntent = append(app.OnIntent, func(in intent.Intent) {
				logger.Log(logger.Allow, "intent", in)
			})
		} else {
			app.OnIntent = append(app.OnIntent, func(in intent.Intent) {
				fmt.Println(st.intent(in))
			})
		}
	}

	if useTerminal {
		return terminal.Launch(app)
	}
	return ebiten.Launch(app)
}

type options struct {
	prefs     prefs.Prefs
	chimeFile string
	savePrefs bool
}

// parseFlags applies the command line to the preferences. flag defaults come
// from the preferences so that a flag on the command line always takes
// precedence
func parseFlags(args []string, p prefs.Prefs) (options, error) {
	var useTerminal bool
	var opts options

	flgs := flag.NewFlagSet(programName, flag.ContinueOnError)
	flgs.BoolVar(&useTerminal, "terminal", p.Frontend == prefs.FrontendTerminal, "run in the terminal rather than in a window")
	flgs.BoolVar(&p.Audio.Enabled, "audio", p.Audio.Enabled, "play a chime on every correct answer")
	flgs.Float64Var(&p.Audio.Volume, "volume", p.Audio.Volume, "volume of the chime: 0.0 to 1.0")
	flgs.StringVar(&p.Broadcast.Addr, "ws", p.Broadcast.Addr, "broadcast intents to websocket clients on address (eg. localhost:8800)")
	flgs.BoolVar(&p.Log.Echo, "echo", p.Log.Echo, "print intents to stdout as they happen")
	flgs.BoolVar(&p.Log.Stderr, "log", p.Log.Stderr, "write log to stderr")
	flgs.StringVar(&opts.chimeFile, "chime", "", "write the chime to a WAV file and exit")
	flgs.BoolVar(&opts.savePrefs, "saveprefs", false, "save the options as the new preferences")
	err := flgs.Parse(args)
	if err != nil {
		return options{}, err
	}
	if len(flgs.Args()) > 0 {
		return options{}, fmt.Errorf("too many arguments")
	}

	if useTerminal {
		p.Frontend = prefs.FrontendTerminal
	} else {
		p.Frontend = prefs.FrontendWindow
	}

	err = p.Validate()
	if err != nil {
		return options{}, err
	}

	opts.prefs = p
	return opts, nil
}

func writeChime(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("chime: %w", err)
	}

	err = audio.WriteWAV(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("chime: %w", err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("chime: %w", err)
	}
	return nil
}
