package system

import (
	"errors"

	"github.com/lixenwraith/idle-city/core"
	"github.com/lixenwraith/idle-city/engine"
)

// Purchase rejections; state is left untouched when one is returned
var (
	ErrUnknownKey        = errors.New("no item bound to key")
	ErrMaxed             = errors.New("already at max")
	ErrInsufficientFunds = errors.New("not enough money")
	ErrInsufficientOre   = errors.New("not enough ore")
	ErrLocked            = errors.New("locked")
	ErrAlreadyOwned      = errors.New("already owned")
)

// reject plays the denied cue and passes err through
func reject(ctx *engine.GameContext, err error) error {
	ctx.PlaySound(core.SoundDenied)
	return err
}
