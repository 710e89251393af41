// pkg/render/engo/backend.go
package engo

import (
	"context"
	"sync"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-lander/pkg/config"
	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/physics"
)

// PlayFunc runs one game against the backend's renderer and input.
type PlayFunc func(ctx context.Context) error

// Backend opens the engo window. engo must own the main thread, so Run blocks
// there while the game plays on another goroutine through Renderer and Input.
type Backend struct {
	opts  engo.RunOptions
	arena physics.Arena

	renderer *EngoRenderer
	input    *InputState
	assets   *AssetManager

	ctx  context.Context
	play PlayFunc
	done chan struct{}

	mu  sync.Mutex
	err error
}

// NewBackend prepares a window for cfg. Nothing is opened until Run. logger
// receives asset warnings and may be nil.
func NewBackend(cfg *config.GameConfig, logger *logging.Logger) *Backend {
	arena := cfg.ArenaBounds()
	return &Backend{
		opts: engo.RunOptions{
			Title:               cfg.Display.Title,
			Width:               int(arena.Width),
			Height:              int(arena.Height),
			Fullscreen:          cfg.Display.Fullscreen,
			VSync:               cfg.Display.VSync,
			NotResizable:        true,
			OverrideCloseAction: true,
			AssetsRoot:          cfg.Assets.Dir,
		},
		arena:    arena,
		renderer: NewEngoRenderer(),
		input:    NewInputState(),
		assets:   NewAssetManager(cfg.Assets, logger),
	}
}

// Renderer is the entity.Renderer the game draws to.
func (b *Backend) Renderer() *EngoRenderer {
	return b.renderer
}

// Input is the entity.InputSource the game reads.
func (b *Backend) Input() *InputState {
	return b.input
}

// Run opens the window and blocks until play returns or setup fails. It must
// be called from the main goroutine.
func (b *Backend) Run(ctx context.Context, play PlayFunc) error {
	b.ctx = ctx
	b.play = play
	engo.Run(b.opts, NewGameScene(b))
	if b.done != nil {
		<-b.done
	}
	return b.Err()
}

// start runs the game and closes the window when it returns.
func (b *Backend) start() {
	b.done = make(chan struct{})
	go func() {
		defer close(b.done)
		if err := b.play(b.ctx); err != nil {
			b.fail(err)
		}
		engo.Exit()
	}()
}

// fail records the first error.
func (b *Backend) fail(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err == nil {
		b.err = err
	}
}

// Err returns the first setup or game error.
func (b *Backend) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}
