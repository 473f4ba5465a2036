// Command dvdsaver bounces a DVD logo around a window, or around the terminal
// with -term. Release Q to quit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/dvdsaver"
	"github.com/phanxgames/dvdsaver/bounce"
	"github.com/phanxgames/dvdsaver/ecs"
	"github.com/phanxgames/dvdsaver/sound"
	"github.com/phanxgames/dvdsaver/term"
	"github.com/yohamta/donburi"
	"golang.org/x/image/colornames"
)

type options struct {
	term   bool
	logo   string
	title  string
	width  int
	height int
	tps    int
	hud    bool
	debug  bool
	seed   uint64
	bg     string
	fade   float64
	sound  bool
	stats  bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("dvdsaver", flag.ContinueOnError)
	fs.BoolVar(&o.term, "term", false, "run in the terminal instead of a window")
	fs.StringVar(&o.logo, "logo", "", "path to a logo image (default: built-in)")
	fs.StringVar(&o.title, "title", "DVD", "window title")
	fs.IntVar(&o.width, "width", 800, "initial window width")
	fs.IntVar(&o.height, "height", 600, "initial window height")
	fs.IntVar(&o.tps, "tps", 0, "ticks per second (0: host default)")
	fs.BoolVar(&o.hud, "hud", false, "show FPS and bounce counters")
	fs.BoolVar(&o.debug, "debug", false, "log bounces and frame stats to stderr (window only)")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed (0: time based)")
	fs.StringVar(&o.bg, "bg", "black", "background color name (SVG 1.1 names)")
	fs.Float64Var(&o.fade, "fade", 1, "fade-in seconds at startup (window only)")
	fs.BoolVar(&o.sound, "sound", false, "beep on every bounce")
	fs.BoolVar(&o.stats, "stats", false, "print bounce totals on exit")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.width <= 0 || o.height <= 0 {
		return o, fmt.Errorf("window size %dx%d must be positive", o.width, o.height)
	}
	return o, nil
}

// background resolves a color name through colornames.
func background(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

func newSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
	bg, err := background(o.bg)
	if err != nil {
		log.Fatal(err)
	}

	var sinks bounce.Sinks

	if o.sound {
		p, err := sound.NewPlayer()
		if err != nil {
			// Non-fatal, runs silently
			log.Printf("audio disabled: %v", err)
		} else {
			defer p.Close()
			sinks = append(sinks, p)
		}
	}

	var stats *ecs.Stats
	if o.stats {
		world := donburi.NewWorld()
		stats = ecs.NewStats(world)
		sinks = append(sinks, ecs.NewDonburiSink(world), bounce.SinkFunc(func(bounce.Event) {
			ecs.BounceEventType.ProcessEvents(world)
		}))
	}

	src := newSource(o.seed)
	if o.term {
		err = runTerminal(o, bg, src, sinks)
	} else {
		err = runWindow(o, bg, src, sinks)
	}
	if err != nil {
		log.Fatal(err)
	}
	if stats != nil {
		log.Println(stats)
	}
}

func runWindow(o options, bg color.RGBA, src bounce.Source, sinks bounce.Sinks) error {
	logo, err := dvdsaver.LoadLogo(o.logo)
	if err != nil {
		return fmt.Errorf("load logo: %w", err)
	}

	cfg := dvdsaver.RunConfig{
		Title:      o.title,
		Width:      o.width,
		Height:     o.height,
		TPS:        o.tps,
		ShowHUD:    o.hud,
		Debug:      o.debug,
		FadeIn:     float32(o.fade),
		Background: dvdsaver.ColorFromRGBA(bg),
	}
	scene, err := dvdsaver.NewScene(logo, cfg.Viewport(), src)
	if err != nil {
		return err
	}
	if len(sinks) > 0 {
		scene.AddEventSink(sinks)
	}
	return dvdsaver.Run(scene, cfg)
}

func runTerminal(o options, bg color.RGBA, src bounce.Source, sinks bounce.Sinks) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	host, err := term.New(screen, term.Config{
		TPS:        o.tps,
		Background: bg,
		Sinks:      sinks,
	}, src)
	if err != nil {
		return err
	}
	return host.Run(nil)
}
