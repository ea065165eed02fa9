package main

import (
	"flag"

	"grid-snake/audio"
	"grid-snake/game"
	"grid-snake/game/types"
	"grid-snake/ui/ebitenui"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

func main() {
	cfg := types.DefaultConfig()
	types.BindFlags(flag.CommandLine, &cfg)
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	if err := run(cfg, *mute); err != nil {
		glog.Exitf("snake-ebiten: %v", err)
	}
	glog.Flush()
}

func run(cfg types.Config, mute bool) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "config")
	}

	window := ebitenui.NewWindow(types.NewGrid(cfg), "Snake")

	beeper := audio.Silent()
	if !mute {
		var err error
		if beeper, err = audio.NewBeeper(); err != nil {
			glog.Warningf("audio disabled: %v", err)
		}
	}
	defer beeper.Close()

	g, err := game.NewGame(cfg, game.Deps{
		Input:    window,
		Renderer: window,
		Clock:    ebitenui.Clock{},
		Listener: beeper,
	})
	if err != nil {
		return err
	}
	return window.Run(g, cfg.TicksPerSecond)
}
