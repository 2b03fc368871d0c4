package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/asparagus/audio"
	"github.com/lixenwraith/asparagus/config"
	"github.com/lixenwraith/asparagus/core"
	"github.com/lixenwraith/asparagus/engine"
	"github.com/lixenwraith/asparagus/input"
	"github.com/lixenwraith/asparagus/network"
	"github.com/lixenwraith/asparagus/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags override the environment
	seed := flag.Int64("seed", cfg.Seed, "random seed, 0 picks one from the clock")
	debugFlag := flag.Bool("debug", cfg.Debug, "write logs to "+logDir+"/"+logFileName)
	spectate := flag.String("spectate", cfg.Spectator.Addr, "serve the spectator websocket feed on this address")
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("[MAIN] starting, seed=%d", *seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	defer screen.Fini()
	core.SetCrashHandler(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Printf("[MAIN] audio unavailable, continuing without sound: %v", err)
	}
	defer sound.Cleanup()

	renderer := render.NewRenderer(screen, cfg.Tuning.FallAngle)
	clock := engine.NewTimeProvider()
	game := engine.NewGame(cfg.Tuning, rand.New(rand.NewSource(*seed)), clock.Now(), renderer.Presentation())

	driver := engine.NewDriver(game, cfg.Tuning.MaxFrameDelta)
	driver.AddPresenter(renderer)
	driver.Router().Register(renderer.UI())
	driver.Router().Register(sound)
	if *debugFlag {
		driver.Router().Register(eventLogger{})
	}

	if *spectate != "" {
		cfg.Spectator.Addr = *spectate
		hub := network.NewHub(cfg.Spectator)
		driver.AddPresenter(hub)
		driver.Router().Register(hub)
		defer hub.Close()

		srv := &http.Server{Addr: cfg.Spectator.Addr, Handler: hub}
		core.Go(func() {
			log.Printf("[MAIN] spectator feed on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("[MAIN] spectator feed stopped: %v", err)
			}
		})
		defer srv.Close()
	}

	controller := input.NewController(game, input.DefaultKeyTable(), cfg.KeyHold)
	run(screen, driver, controller, renderer, clock, cfg.FrameInterval)
	log.Printf("[MAIN] exit")
}

// run owns the frame loop until the player quits or the terminal closes
func run(screen tcell.Screen, driver *engine.Driver, controller *input.Controller, renderer *render.Renderer, clock engine.Clock, interval time.Duration) {
	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(interval)
	defer frameTicker.Stop()

	driver.Frame(clock.Now())
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			now := clock.Now()
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if controller.HandleKey(ev, now) {
					return
				}
			case *tcell.EventMouse:
				if ev.Buttons()&tcell.Button1 != 0 {
					x, y := ev.Position()
					controller.PointerDown(renderer.UI().HitTest(x, y), now)
				} else {
					controller.PointerUp()
				}
			case *tcell.EventResize:
				renderer.Resize()
			}

		case <-frameTicker.C:
			now := clock.Now()
			controller.Expire(now)
			driver.Frame(now)
		}
	}
}

// eventLogger records every game event in debug mode
type eventLogger struct{}

func (eventLogger) HandleEvent(ev engine.GameEvent) {
	log.Printf("[EVENT] frame=%d %s %+v", ev.Frame, ev.Type, ev.Payload)
}

func (eventLogger) EventTypes() []engine.EventType {
	return engine.AllEventTypes
}
