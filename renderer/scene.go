package renderer

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/peeps/camera"
	"github.com/pthm-cable/peeps/components"
	"github.com/pthm-cable/peeps/store"
)

type drawItem struct {
	pos    components.Position
	size   components.Size
	sprite components.Sprite
}

// SceneRenderer draws every entity with a sprite, back to front.
type SceneRenderer struct {
	atlas *Atlas
	items []drawItem
}

// NewSceneRenderer creates a scene renderer using the given atlas.
func NewSceneRenderer(atlas *Atlas) *SceneRenderer {
	return &SceneRenderer{atlas: atlas}
}

// Draw renders the store through the camera.
func (r *SceneRenderer) Draw(s *store.Store, cam *camera.Camera) {
	r.items = r.items[:0]
	s.ForEachDrawable(func(_ ecs.Entity, pos components.Position, size components.Size, sprite components.Sprite) {
		r.items = append(r.items, drawItem{pos: pos, size: size, sprite: sprite})
	})
	sort.SliceStable(r.items, func(i, j int) bool {
		return r.items[i].pos.Z < r.items[j].pos.Z
	})

	for _, it := range r.items {
		r.drawItem(it, cam)
	}
}

func (r *SceneRenderer) drawItem(it drawItem, cam *camera.Camera) {
	tex, hasTex := r.atlas.Texture(it.sprite.Slot)

	// Scaled sprites take their size from the texture, others fill their box
	var w, h float32
	if it.sprite.Scale > 0 {
		texW, texH := float32(fallbackSide), float32(fallbackSide)
		if hasTex {
			texW, texH = float32(tex.Width), float32(tex.Height)
		}
		w, h = texW*it.sprite.Scale, texH*it.sprite.Scale
	} else {
		box := components.BoxOf(it.pos, it.size)
		w, h = 2*box.HW, 2*box.HH
	}
	w, h = cam.Scale(w), cam.Scale(h)
	if !cam.IsVisible(it.pos.X, it.pos.Y, w/cam.Zoom/2, h/cam.Zoom/2) {
		return
	}

	sx, sy := cam.WorldToScreen(it.pos.X, it.pos.Y)
	dst := rl.Rectangle{X: sx, Y: sy, Width: w, Height: h}
	origin := rl.Vector2{X: w / 2, Y: h / 2}

	if !hasTex {
		rl.DrawRectanglePro(dst, origin, 0, fallbackColors[it.sprite.Slot])
		return
	}

	// Negative source extents mirror the texture
	src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
	if it.sprite.FlipX {
		src.Width = -src.Width
	}
	if it.sprite.FlipY {
		src.Height = -src.Height
	}
	rl.DrawTexturePro(tex, src, dst, origin, 0, rl.White)
}
