package main

import (
	"flag"

	"grid-snake/audio"
	"grid-snake/game"
	"grid-snake/game/types"
	"grid-snake/ui/termui"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

func main() {
	// 32x24 cells of one pixel each: one board cell per terminal cell pair.
	cfg := types.DefaultConfig()
	cfg.Width, cfg.Height, cfg.CellSize = 32, 24, 1
	cfg.TicksPerSecond = 10
	types.BindFlags(flag.CommandLine, &cfg)
	mute := flag.Bool("mute", true, "Disable sound")
	flag.Parse()

	if err := run(cfg, *mute); err != nil {
		glog.Exitf("snake-term: %v", err)
	}
	glog.Flush()
}

func run(cfg types.Config, mute bool) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "config")
	}

	term, err := termui.Open(types.NewGrid(cfg))
	if err != nil {
		return err
	}
	defer term.Close()

	beeper := audio.Silent()
	if !mute {
		if beeper, err = audio.NewBeeper(); err != nil {
			glog.Warningf("audio disabled: %v", err)
		}
	}
	defer beeper.Close()

	g, err := game.NewGame(cfg, game.Deps{
		Input:    term,
		Renderer: term,
		Clock:    game.NewFrameClock(),
		Listener: beeper,
	})
	if err != nil {
		return err
	}
	return g.Run()
}
