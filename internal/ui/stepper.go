package ui

import (
	"math"
	"strconv"

	"sandpit/internal/core"
)

// stepper tracks the displayed value of one adjustable parameter and works
// out the value a +/- press would move it to.
type stepper struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool
}

func newStepper(ctrl core.ParameterControl) stepper {
	return stepper{control: ctrl, value: "--"}
}

// load refreshes the stepper from a snapshot.
func (s *stepper) load(snap core.ParameterSnapshot) {
	s.hasValue = false
	s.value = "--"
	param, ok := snap.Lookup(s.control.Key)
	if !ok {
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.intValue = parsed
		s.floatValue = float64(parsed)
		s.value = strconv.Itoa(parsed)
		s.hasValue = true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control, parsed)
		s.hasValue = true
	}
}

// nextInt returns the clamped integer target for direction. ok is false
// when the press would not change anything.
func (s *stepper) nextInt(direction int) (int, bool) {
	step := int(math.Round(s.control.Step))
	if step <= 0 {
		step = 1
	}
	target := s.intValue + direction*step
	if s.control.HasMin {
		target = max(target, int(math.Round(s.control.Min)))
	}
	if s.control.HasMax {
		target = min(target, int(math.Round(s.control.Max)))
	}
	return target, target != s.intValue
}

// nextFloat is the float counterpart of nextInt.
func (s *stepper) nextFloat(direction int) (float64, bool) {
	step := s.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := s.floatValue + float64(direction)*step
	if s.control.HasMin {
		target = math.Max(target, s.control.Min)
	}
	if s.control.HasMax {
		target = math.Min(target, s.control.Max)
	}
	return target, math.Abs(target-s.floatValue) >= 1e-9
}

// apply pushes a +/- press through the matching setter. Either setter may be
// nil.
func (s *stepper) apply(direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	if !s.hasValue || direction == 0 {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		target, ok := s.nextInt(direction)
		if !ok || ints == nil || !ints.SetIntParameter(s.control.Key, target) {
			return false
		}
		s.intValue = target
		s.floatValue = float64(target)
		s.value = strconv.Itoa(target)
		return true
	case core.ParamTypeFloat:
		target, ok := s.nextFloat(direction)
		if !ok || floats == nil || !floats.SetFloatParameter(s.control.Key, target) {
			return false
		}
		s.floatValue = target
		s.value = formatFloat(s.control, target)
		return true
	}
	return false
}

// enabled reports whether a press in direction would do anything.
func (s *stepper) enabled(direction int) bool {
	if !s.hasValue {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		_, ok := s.nextInt(direction)
		return ok
	case core.ParamTypeFloat:
		_, ok := s.nextFloat(direction)
		return ok
	}
	return false
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
