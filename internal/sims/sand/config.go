package sand

import "strconv"

// Params holds the probabilities and lifetimes used by the particle rules.
type Params struct {
	PlaceChance float64

	FireSmokeChance   float64
	FireFlickerChance float64
	FireRiseChance    float64
	SmokeRiseChance   float64

	FireLifeMin  int
	FireLifeMax  int
	SmokeLifeMin int
	SmokeLifeMax int

	// SmokeFloor is the darkest gray smoke fades to.
	SmokeFloor int
}

// Config controls the sand world dimensions and rules.
type Config struct {
	Rows int
	Cols int

	Seed int64

	// Floor lays a row of stone along the bottom edge on Reset.
	Floor bool

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows: 150,
		Cols: 200,
		Seed: 1337,
		Params: Params{
			PlaceChance:       0.7,
			FireSmokeChance:   0.5,
			FireFlickerChance: 0.3,
			FireRiseChance:    0.6,
			SmokeRiseChance:   0.4,
			FireLifeMin:       30,
			FireLifeMax:       90,
			SmokeLifeMin:      60,
			SmokeLifeMax:      120,
			SmokeFloor:        40,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["floor"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Floor = parsed
		}
	}
	parseChance(cfg, "place_chance", &c.Params.PlaceChance)
	parseChance(cfg, "fire_smoke_chance", &c.Params.FireSmokeChance)
	parseChance(cfg, "fire_flicker_chance", &c.Params.FireFlickerChance)
	parseChance(cfg, "fire_rise_chance", &c.Params.FireRiseChance)
	parseChance(cfg, "smoke_rise_chance", &c.Params.SmokeRiseChance)
	parseLife(cfg, "fire_life_min", &c.Params.FireLifeMin)
	parseLife(cfg, "fire_life_max", &c.Params.FireLifeMax)
	parseLife(cfg, "smoke_life_min", &c.Params.SmokeLifeMin)
	parseLife(cfg, "smoke_life_max", &c.Params.SmokeLifeMax)
	if v, ok := cfg["smoke_floor"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Params.SmokeFloor = parsed
		}
	}
	c.Params.normalize()
	return c
}

func parseChance(cfg map[string]string, key string, dst *float64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
		*dst = parsed
	}
}

func parseLife(cfg map[string]string, key string, dst *int) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
		*dst = parsed
	}
}

// normalize repairs inverted lifetime ranges.
func (p *Params) normalize() {
	if p.FireLifeMin < 1 {
		p.FireLifeMin = 1
	}
	if p.FireLifeMax < p.FireLifeMin {
		p.FireLifeMax = p.FireLifeMin
	}
	if p.SmokeLifeMin < 1 {
		p.SmokeLifeMin = 1
	}
	if p.SmokeLifeMax < p.SmokeLifeMin {
		p.SmokeLifeMax = p.SmokeLifeMin
	}
}
