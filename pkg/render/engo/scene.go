// pkg/render/engo/scene.go
package engo

import (
	"fmt"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-lander/pkg/entity"
	"github.com/opd-ai/go-lander/pkg/physics"
)

// Draw order, back to front.
const (
	zWall float32 = iota + 1
	zParticle
	zCraft
	zGauge
	zExplosion
	zBanner
)

// GameScene is the single engo scene of the lander window.
type GameScene struct {
	backend *Backend
	world   *ecs.World
}

// NewGameScene creates the scene for backend.
func NewGameScene(backend *Backend) *GameScene {
	return &GameScene{backend: backend}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "LanderScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {
	if err := scene.backend.assets.Preload(); err != nil {
		scene.backend.fail(err)
	}
}

// Setup is called when the scene starts (required by Engo). It builds the
// systems and starts the game on its own goroutine.
func (scene *GameScene) Setup(u engo.Updater) {
	b := scene.backend
	world, ok := u.(*ecs.World)
	if !ok {
		b.fail(fmt.Errorf("unexpected engo updater %T", u))
	}
	if b.Err() != nil {
		engo.Exit()
		return
	}
	scene.world = world

	common.SetBackground(color.Black)
	SetupInputBindings()

	if err := b.assets.LoadAssets(); err != nil {
		b.fail(err)
		engo.Exit()
		return
	}

	render := &common.RenderSystem{}
	world.AddSystem(render)
	world.AddSystem(NewInputSystem(b.input))
	world.AddSystem(NewFrameSystem(b.renderer, b.assets, render, b.arena))

	b.start()
}

// Exit is called when the window is asked to close. The game sees a quit on
// its next poll and the backend closes the window once it returns.
func (scene *GameScene) Exit() {
	scene.backend.input.RequestQuit()
}

// sprite is one drawable on screen.
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// FrameSystem moves the scene's sprites to match the last presented frame.
type FrameSystem struct {
	renderer *EngoRenderer
	assets   *AssetManager
	render   *common.RenderSystem
	arena    physics.Arena

	walls     []*sprite
	particles []*sprite
	craft     *sprite
	gauge     *sprite
	explosion *sprite
	banner    *sprite

	lastSeq uint64
}

// NewFrameSystem creates the fixed sprites and registers them with render.
func NewFrameSystem(renderer *EngoRenderer, assets *AssetManager, render *common.RenderSystem, arena physics.Arena) *FrameSystem {
	fs := &FrameSystem{
		renderer: renderer,
		assets:   assets,
		render:   render,
		arena:    arena,
	}
	fs.craft = fs.newSprite(assets.GetCraftSprite(entity.Helicopter), zCraft)
	fs.gauge = fs.newSprite(assets.block, zGauge)
	fs.explosion = fs.newSprite(assets.explosion, zExplosion)
	fs.banner = fs.newSprite(assets.banner, zBanner)
	return fs
}

func (fs *FrameSystem) newSprite(d common.Drawable, z float32) *sprite {
	s := &sprite{BasicEntity: ecs.NewBasic()}
	s.Drawable = d
	s.Scale = engo.Point{X: 1, Y: 1}
	s.Hidden = true
	s.SetZIndex(z)
	fs.render.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	return s
}

// pool grows sprites to n and hides the ones past n.
func (fs *FrameSystem) pool(sprites []*sprite, n int, d common.Drawable, z float32) []*sprite {
	for len(sprites) < n {
		sprites = append(sprites, fs.newSprite(d, z))
	}
	for _, s := range sprites[n:] {
		s.Hidden = true
	}
	return sprites
}

// Remove satisfies the ecs.System interface
func (fs *FrameSystem) Remove(ecs.BasicEntity) {}

// Update satisfies the ecs.System interface
func (fs *FrameSystem) Update(dt float32) {
	f, ok := fs.renderer.Latest()
	if !ok || f.Seq == fs.lastSeq {
		return
	}
	fs.lastSeq = f.Seq
	l := layoutFrame(f, fs.arena)

	fs.walls = fs.pool(fs.walls, len(l.Walls), fs.assets.block, zWall)
	for i, st := range l.Walls {
		place(fs.walls[i], st)
	}
	fs.particles = fs.pool(fs.particles, len(l.Particles), fs.assets.particle, zParticle)
	for i, st := range l.Particles {
		place(fs.particles[i], st)
	}

	if d := fs.assets.GetCraftSprite(f.CraftType); d != nil {
		fs.craft.Drawable = d
	}
	place(fs.craft, l.Craft)
	place(fs.gauge, l.Gauge)
	place(fs.explosion, l.Explosion)
	place(fs.banner, l.Banner)
}

// place positions s over st's rectangle, scaling textures to fit it.
func place(s *sprite, st spriteState) {
	s.Hidden = st.Hidden
	if st.Hidden {
		return
	}
	s.Position = engo.Point{X: float32(st.Rect.X), Y: float32(st.Rect.Y)}
	s.Width = float32(st.Rect.W)
	s.Height = float32(st.Rect.H)
	s.Color = st.Color
	if s.Drawable == nil {
		return
	}
	if w, h := s.Drawable.Width(), s.Drawable.Height(); w > 0 && h > 0 {
		s.Scale = engo.Point{X: s.Width / w, Y: s.Height / h}
	}
}
