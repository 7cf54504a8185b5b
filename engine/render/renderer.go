package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/1siamBot/arena-engine/engine/actor"
)

// Palette used when an actor has no sprite
var (
	ColorPlayer   = colornames.Cornflowerblue
	ColorEnemy    = colornames.Sienna
	ColorDead     = colornames.Dimgray
	ColorDamaged  = colornames.Red
	ColorFacing   = colornames.White
	ColorHealth   = colornames.Limegreen
	ColorHealthBG = colornames.Darkred
	ColorFloor    = colornames.Darkslategray
)

// ArenaRenderer draws a level from above
type ArenaRenderer struct {
	Camera  *Camera
	Sprites *SpriteManager

	anim float64 // seconds of walk animation, drives sprite frames
}

// NewArenaRenderer creates a renderer. sprites may be nil.
func NewArenaRenderer(screenW, screenH int, sprites *SpriteManager) *ArenaRenderer {
	return &ArenaRenderer{
		Camera:  NewCamera(screenW, screenH),
		Sprites: sprites,
	}
}

// Advance moves sprite animation forward by dt seconds
func (r *ArenaRenderer) Advance(dt float64) {
	r.anim += dt
}

// ActorColor picks the fallback fill for an actor's current state
func ActorColor(a *actor.Actor) color.RGBA {
	switch {
	case a.IsDead():
		return ColorDead
	case a.HasState(actor.StateDamaged):
		return ColorDamaged
	case a.Kind() == actor.KindPlayer:
		return ColorPlayer
	default:
		return ColorEnemy
	}
}

// DrawFloor fills the screen and draws a one-unit grid
func (r *ArenaRenderer) DrawFloor(screen *ebiten.Image) {
	screen.Fill(ColorFloor)

	wx0, wy0 := r.Camera.ScreenToWorld(0, 0)
	wx1, wy1 := r.Camera.ScreenToWorld(r.Camera.ScreenW, r.Camera.ScreenH)
	gridColor := color.RGBA{255, 255, 255, 20}

	for x := math.Floor(wx0); x <= wx1; x++ {
		sx, _ := r.Camera.WorldToScreen(x, 0)
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), float32(r.Camera.ScreenH), 1, gridColor, false)
	}
	for y := math.Floor(wy0); y <= wy1; y++ {
		_, sy := r.Camera.WorldToScreen(0, y)
		vector.StrokeLine(screen, 0, float32(sy), float32(r.Camera.ScreenW), float32(sy), 1, gridColor, false)
	}
}

// DrawActors draws every actor, corpses first
func (r *ArenaRenderer) DrawActors(screen *ebiten.Image, actors []*actor.Actor) {
	for _, a := range actors {
		if a.IsDead() {
			r.drawActor(screen, a)
		}
	}
	for _, a := range actors {
		if !a.IsDead() {
			r.drawActor(screen, a)
		}
	}
}

func (r *ArenaRenderer) drawActor(screen *ebiten.Image, a *actor.Actor) {
	pos := a.Position()
	sx, sy := r.Camera.WorldToScreen(pos.X, pos.Y)
	rad := r.Camera.WorldLength(a.Radius())

	if !r.drawSprite(screen, a, sx, sy, rad) {
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(rad), ActorColor(a), true)
	}
	if a.IsDead() {
		return
	}

	// Facing
	fx := sx + math.Cos(a.Direction())*rad
	fy := sy + math.Sin(a.Direction())*rad
	vector.StrokeLine(screen, float32(sx), float32(sy), float32(fx), float32(fy), 2, ColorFacing, true)

	// Health bar
	if a.Health() < a.MaxHealth() {
		w := float32(rad * 2)
		x := float32(sx - rad)
		y := float32(sy - rad - 6)
		frac := float32(a.Health()) / float32(a.MaxHealth())
		vector.DrawFilledRect(screen, x, y, w, 3, ColorHealthBG, false)
		vector.DrawFilledRect(screen, x, y, w*frac, 3, ColorHealth, false)
	}
}

// drawSprite draws the actor's sprite scaled to its diameter
func (r *ArenaRenderer) drawSprite(screen *ebiten.Image, a *actor.Actor, sx, sy, rad float64) bool {
	frame := 0
	if !a.Velocity().IsZero() {
		frame = int(r.anim*8) % spriteFrames
	}
	sprite := r.Sprites.Get(a.Animation(), a.Direction(), frame)
	if sprite == nil {
		return false
	}

	sw := float64(sprite.Bounds().Dx())
	sh := float64(sprite.Bounds().Dy())
	scale := 2 * rad / math.Max(sw, sh)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-sw/2, -sh/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(sx, sy)

	switch {
	case a.IsDead():
		op.ColorScale.Scale(0.4, 0.4, 0.4, 1.0)
	case a.HasState(actor.StateDamaged):
		op.ColorScale.Scale(1.5, 0.6, 0.6, 1.0)
	}

	screen.DrawImage(sprite, op)
	return true
}

// DrawMinimap draws actor positions relative to the camera in a corner box.
// extent is the world distance from the camera shown at each edge.
func (r *ArenaRenderer) DrawMinimap(screen *ebiten.Image, actors []*actor.Actor, posX, posY, size int, extent float64) {
	minimap := ebiten.NewImage(size, size)
	minimap.Fill(color.RGBA{0, 0, 0, 180})

	scale := float64(size) / (2 * extent)
	half := float64(size) / 2
	for _, a := range actors {
		p := a.Position()
		px := float32((p.X-r.Camera.X)*scale + half)
		py := float32((p.Y-r.Camera.Y)*scale + half)
		if px < 0 || py < 0 || px >= float32(size) || py >= float32(size) {
			continue
		}
		vector.DrawFilledRect(minimap, px-1, py-1, 3, 3, ActorColor(a), false)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(posX), float64(posY))
	screen.DrawImage(minimap, op)
}
