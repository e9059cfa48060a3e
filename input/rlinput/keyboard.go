// Package rlinput reads game keys from the raylib window.
package rlinput

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/peeps/input"
)

// bindings maps each game key to the raylib keys that trigger it.
var bindings = [input.NumKeys][]int32{
	input.KeyRight:   {rl.KeyRight, rl.KeyD},
	input.KeyLeft:    {rl.KeyLeft, rl.KeyA},
	input.KeyUp:      {rl.KeyUp, rl.KeyW},
	input.KeyDown:    {rl.KeyDown, rl.KeyS},
	input.KeySkip:    {rl.KeyQ, rl.KeyBackspace},
	input.KeyConfirm: {rl.KeyEnter, rl.KeySpace},
}

// Keyboard reads key state from the raylib window.
type Keyboard struct{}

// Down reports whether any binding for k is held this frame.
func (Keyboard) Down(k input.Key) bool {
	if k >= input.NumKeys {
		return false
	}
	for _, key := range bindings[k] {
		if rl.IsKeyDown(key) {
			return true
		}
	}
	return false
}
