package types

import "flag"

// BindFlags registers cfg's fields on fs, using cfg's current values as
// defaults.
func BindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Board width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Board height in pixels")
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels")
	fs.IntVar(&cfg.TicksPerSecond, "tps", cfg.TicksPerSecond, "Game speed in ticks per second")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = time based)")
}
