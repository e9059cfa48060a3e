// Package renderer draws entities with raylib.
package renderer

import (
	"log/slog"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/peeps/components"
)

// textureFiles maps each sprite slot to its file in the assets directory.
var textureFiles = map[components.Slot]string{
	components.SlotPlayer: "player.png",
	components.SlotPeep:   "char.png",
	components.SlotWall:   "wall.png",
	components.SlotSplash: "monsta.png",
}

// fallbackColors are used for slots whose texture is missing.
var fallbackColors = map[components.Slot]rl.Color{
	components.SlotPlayer: rl.SkyBlue,
	components.SlotPeep:   rl.Gold,
	components.SlotWall:   rl.Maroon,
	components.SlotSplash: rl.Purple,
}

// fallbackSide is the texture size assumed for scaled sprites without a texture.
const fallbackSide = 256

// Atlas holds one texture per sprite slot.
type Atlas struct {
	dir         string
	textures    map[components.Slot]rl.Texture2D
	initialized bool
}

// NewAtlas creates an atlas reading textures from dir.
func NewAtlas(dir string) *Atlas {
	return &Atlas{
		dir:      dir,
		textures: make(map[components.Slot]rl.Texture2D),
	}
}

// Init loads the textures (must be called after raylib window is created).
// Missing files are logged and drawn as plain rectangles.
func (a *Atlas) Init() {
	if a.initialized {
		return
	}

	for slot, name := range textureFiles {
		path := filepath.Join(a.dir, name)
		if _, err := os.Stat(path); err != nil {
			slog.Warn("texture missing, using fallback", "slot", slot, "path", path)
			continue
		}
		tex := rl.LoadTexture(path)
		if tex.ID == 0 {
			slog.Warn("texture failed to load, using fallback", "slot", slot, "path", path)
			continue
		}
		a.textures[slot] = tex
	}

	a.initialized = true
}

// Texture returns the texture for slot, if one was loaded.
func (a *Atlas) Texture(slot components.Slot) (rl.Texture2D, bool) {
	tex, ok := a.textures[slot]
	return tex, ok
}

// Unload frees resources.
func (a *Atlas) Unload() {
	if !a.initialized {
		return
	}
	for slot, tex := range a.textures {
		rl.UnloadTexture(tex)
		delete(a.textures, slot)
	}
	a.initialized = false
}
