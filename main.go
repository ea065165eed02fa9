package main

import (
	"flag"

	"grid-snake/audio"
	"grid-snake/game"
	"grid-snake/game/types"
	"grid-snake/ui"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

func main() {
	cfg := types.DefaultConfig()
	types.BindFlags(flag.CommandLine, &cfg)
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	if err := run(cfg, *mute); err != nil {
		glog.Exitf("snake: %v", err)
	}
	glog.Flush()
}

func run(cfg types.Config, mute bool) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "config")
	}

	renderer := ui.NewRenderer(types.NewGrid(cfg), "Snake")
	defer renderer.Close()

	beeper := audio.Silent()
	if !mute {
		var err error
		if beeper, err = audio.NewBeeper(); err != nil {
			// Non-fatal, game can run without sound
			glog.Warningf("audio disabled: %v", err)
		}
	}
	defer beeper.Close()

	g, err := game.NewGame(cfg, game.Deps{
		Input:    ui.NewInput(),
		Renderer: renderer,
		Clock:    game.NewFrameClock(),
		Listener: beeper,
	})
	if err != nil {
		return err
	}
	return g.Run()
}
