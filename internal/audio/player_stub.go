//go:build !audio

package audio

import "errors"

// ErrUnavailable is returned by NewPlayer in builds without speaker support.
var ErrUnavailable = errors.New("audio: built without the audio tag")

// Player is a placeholder in builds without speaker support.
type Player struct{}

// NewPlayer always fails in builds without speaker support.
func NewPlayer(float64) (*Player, error) { return nil, ErrUnavailable }

// SetFire is a no-op.
func (p *Player) SetFire(int) {}

// Close is a no-op.
func (p *Player) Close() {}
