package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64
	Brush int
	Panel int
	Rows  int
	Cols  int
	Floor bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "sand", Scale: 4, TPS: 60, Seed: 1337, Brush: DefaultBrushRadius, Panel: 220, Rows: 150, Cols: 200}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Brush, "brush", c.Brush, "initial brush radius")
	fs.IntVar(&c.Panel, "panel", c.Panel, "HUD panel width in pixels (0 hides it)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.BoolVar(&c.Floor, "floor", c.Floor, "start with a stone floor")
}

// SimConfig renders the grid options as the key/value map sim factories take.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"rows":  strconv.Itoa(c.Rows),
		"cols":  strconv.Itoa(c.Cols),
		"seed":  strconv.FormatInt(c.Seed, 10),
		"floor": strconv.FormatBool(c.Floor),
	}
}
