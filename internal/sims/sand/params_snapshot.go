package sand

import (
	"math"
	"strconv"

	"sandpit/internal/core"
)

// Parameters reports the world's tunables. Chances are expressed in percent
// so they round-trip through SetFloatParameter.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("rows", "Rows", w.grid.Rows),
				intParam("cols", "Columns", w.grid.Cols),
				int64Param("seed", "Seed", w.cfg.Seed),
				boolParam("floor", "Stone floor", w.cfg.Floor),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				percentParam("place_chance", "Place chance %", params.PlaceChance),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				percentParam("fire_smoke_chance", "Smoke chance %", params.FireSmokeChance),
				percentParam("fire_flicker_chance", "Flicker chance %", params.FireFlickerChance),
				percentParam("fire_rise_chance", "Fire rise %", params.FireRiseChance),
				intParam("fire_life_min", "Fire life min", params.FireLifeMin),
				intParam("fire_life_max", "Fire life max", params.FireLifeMax),
			},
		},
		{
			Name: "Smoke",
			Params: []core.Parameter{
				percentParam("smoke_rise_chance", "Smoke rise %", params.SmokeRiseChance),
				intParam("smoke_life_min", "Smoke life min", params.SmokeLifeMin),
				intParam("smoke_life_max", "Smoke life max", params.SmokeLifeMax),
				intParam("smoke_floor", "Smoke floor", params.SmokeFloor),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (w *World) ParameterControls() []core.ParameterControl {
	percent := func(key, label string) core.ParameterControl {
		return core.ParameterControl{Key: key, Label: label, Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: 100, HasMin: true, HasMax: true}
	}
	life := func(key, label string) core.ParameterControl {
		return core.ParameterControl{Key: key, Label: label, Type: core.ParamTypeInt, Step: 5, Min: 1, HasMin: true}
	}
	return []core.ParameterControl{
		percent("place_chance", "Place %"),
		percent("fire_smoke_chance", "Smoke %"),
		percent("fire_rise_chance", "Fire rise %"),
		percent("smoke_rise_chance", "Smoke rise %"),
		life("fire_life_max", "Fire life"),
		life("smoke_life_max", "Smoke life"),
	}
}

// SetFloatParameter updates a chance given in percent, clamped to [0, 100].
func (w *World) SetFloatParameter(key string, value float64) bool {
	var dst *float64
	switch key {
	case "place_chance":
		dst = &w.cfg.Params.PlaceChance
	case "fire_smoke_chance":
		dst = &w.cfg.Params.FireSmokeChance
	case "fire_flicker_chance":
		dst = &w.cfg.Params.FireFlickerChance
	case "fire_rise_chance":
		dst = &w.cfg.Params.FireRiseChance
	case "smoke_rise_chance":
		dst = &w.cfg.Params.SmokeRiseChance
	default:
		return false
	}
	*dst = min(max(value, 0), 100) / 100
	return true
}

// SetIntParameter updates a lifetime bound or the smoke floor. Lifetime
// ranges stay ordered: raising a minimum above its maximum lifts the maximum.
func (w *World) SetIntParameter(key string, value int) bool {
	p := &w.cfg.Params
	switch key {
	case "fire_life_min":
		p.FireLifeMin = value
		if p.FireLifeMax < value {
			p.FireLifeMax = value
		}
	case "fire_life_max":
		p.FireLifeMax = value
		if p.FireLifeMin > value {
			p.FireLifeMin = value
		}
	case "smoke_life_min":
		p.SmokeLifeMin = value
		if p.SmokeLifeMax < value {
			p.SmokeLifeMax = value
		}
	case "smoke_life_max":
		p.SmokeLifeMax = value
		if p.SmokeLifeMin > value {
			p.SmokeLifeMin = value
		}
	case "smoke_floor":
		p.SmokeFloor = min(max(value, 0), 255)
		return true
	default:
		return false
	}
	p.normalize()
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func percentParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(math.Round(value*10000)/100, 'f', -1, 64),
	}
}
