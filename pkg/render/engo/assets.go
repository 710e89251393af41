// pkg/render/engo/assets.go
package engo

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-lander/pkg/config"
	"github.com/opd-ai/go-lander/pkg/entity"
	"github.com/opd-ai/go-lander/pkg/logging"
)

// AssetManager owns the textures of the window backend. Sprites are read from
// the assets directory; a missing file is replaced by a generated placeholder,
// while a file that exists but cannot be decoded is an error.
type AssetManager struct {
	cfg    config.AssetsConfig
	logger *logging.Logger

	craft     map[entity.CraftType]common.Drawable
	explosion common.Drawable
	banner    common.Drawable
	particle  common.Drawable
	block     common.Drawable
}

// NewAssetManager creates an asset manager for the configured files.
func NewAssetManager(cfg config.AssetsConfig, logger *logging.Logger) *AssetManager {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &AssetManager{
		cfg:    cfg,
		logger: logger,
		craft:  make(map[entity.CraftType]common.Drawable),
	}
}

// files lists the configured sprite names.
func (am *AssetManager) files() []string {
	return []string{am.cfg.Helicopter, am.cfg.Rocket, am.cfg.Explosion, am.cfg.Won}
}

// onDisk reports whether the named sprite exists in the assets directory.
func (am *AssetManager) onDisk(name string) bool {
	if name == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(am.cfg.Dir, name))
	return err == nil && !info.IsDir()
}

// Preload reads the sprite files that exist into engo's file cache.
func (am *AssetManager) Preload() error {
	for _, name := range am.files() {
		if !am.onDisk(name) {
			continue
		}
		if err := engo.Files.Load(name); err != nil {
			return fmt.Errorf("failed to load asset %s: %w", name, err)
		}
	}
	return nil
}

// LoadAssets creates the textures. It needs the OpenGL context, so it runs in
// the scene's Setup.
func (am *AssetManager) LoadAssets() error {
	var err error
	for _, t := range []entity.CraftType{entity.Helicopter, entity.Rocket} {
		name := am.cfg.Helicopter
		if t == entity.Rocket {
			name = am.cfg.Rocket
		}
		size := t.Size()
		craftType := t
		am.craft[t], err = am.sprite(name, func() *image.NRGBA {
			return CraftImage(craftType, int(size.W), int(size.H))
		})
		if err != nil {
			return err
		}
	}

	am.explosion, err = am.sprite(am.cfg.Explosion, func() *image.NRGBA {
		return ExplosionImage(int(entity.ExplosionSize.W), int(entity.ExplosionSize.H))
	})
	if err != nil {
		return err
	}

	am.banner, err = am.sprite(am.cfg.Won, func() *image.NRGBA {
		return BannerImage(bannerWidth, bannerHeight)
	})
	if err != nil {
		return err
	}

	am.particle = convertToEngoTexture(ParticleImage(particleSize))
	am.block = common.Rectangle{}
	return nil
}

// sprite returns the loaded file, or a placeholder when the file is absent.
func (am *AssetManager) sprite(name string, placeholder func() *image.NRGBA) (common.Drawable, error) {
	if am.onDisk(name) {
		tex, err := common.LoadedSprite(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create texture %s: %w", name, err)
		}
		return tex, nil
	}
	am.logger.Warn(context.Background(), "Sprite file not found, using placeholder",
		"asset", name,
		"dir", am.cfg.Dir,
	)
	return convertToEngoTexture(placeholder()), nil
}

// GetCraftSprite returns the sprite for a craft type, nil before LoadAssets.
func (am *AssetManager) GetCraftSprite(t entity.CraftType) common.Drawable {
	return am.craft[t]
}

// convertToEngoTexture uploads an image as an engo texture.
func convertToEngoTexture(img *image.NRGBA) common.Drawable {
	return common.NewTextureSingle(common.NewImageObject(img))
}

// maskImage paints c on every pixel of a w×h image where inside is true.
func maskImage(w, h int, c color.NRGBA, inside func(x, y int) bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if inside(x, y) {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

// CraftImage draws a placeholder craft: a rotor over a cabin for the
// helicopter, a nose cone over a hull with fins for the rocket.
func CraftImage(t entity.CraftType, w, h int) *image.NRGBA {
	if t == entity.Rocket {
		return maskImage(w, h, color.NRGBA{R: 220, G: 220, B: 230, A: 255}, func(x, y int) bool {
			cx := float64(w) / 2
			fx, fy := float64(x)+0.5, float64(y)+0.5
			nose := float64(h) / 4
			switch {
			case fy < nose:
				half := (fy / nose) * float64(w) / 4
				return fx >= cx-half && fx <= cx+half
			case fy < float64(h)*3/4:
				return fx >= cx-float64(w)/4 && fx <= cx+float64(w)/4
			default:
				return true
			}
		})
	}
	return maskImage(w, h, color.NRGBA{R: 90, G: 160, B: 90, A: 255}, func(x, y int) bool {
		rotor := h / 8
		if y < rotor {
			return true
		}
		if y < 2*rotor {
			return x >= w/2-1 && x <= w/2
		}
		// Cabin is an ellipse in the right half, the tail a bar to the left.
		cx, cy := float64(w)*0.6, float64(h)*0.6
		rx, ry := float64(w)*0.3, float64(h)*0.35
		dx, dy := (float64(x)+0.5-cx)/rx, (float64(y)+0.5-cy)/ry
		if dx*dx+dy*dy <= 1 {
			return true
		}
		return x < w/2 && y >= int(cy)-h/16 && y <= int(cy)+h/16
	})
}

// ExplosionImage draws a placeholder explosion as a filled ellipse.
func ExplosionImage(w, h int) *image.NRGBA {
	return maskImage(w, h, color.NRGBA{R: 255, G: 120, B: 20, A: 255}, func(x, y int) bool {
		dx := (float64(x) + 0.5 - float64(w)/2) / (float64(w) / 2)
		dy := (float64(y) + 0.5 - float64(h)/2) / (float64(h) / 2)
		return dx*dx+dy*dy <= 1
	})
}

// BannerImage draws a placeholder win banner with a dark border.
func BannerImage(w, h int) *image.NRGBA {
	img := maskImage(w, h, color.NRGBA{R: 40, G: 200, B: 60, A: 255}, func(int, int) bool { return true })
	border := color.NRGBA{R: 10, G: 60, B: 20, A: 255}
	for x := 0; x < w; x++ {
		for _, y := range []int{0, 1, h - 2, h - 1} {
			img.SetNRGBA(x, y, border)
		}
	}
	for y := 0; y < h; y++ {
		for _, x := range []int{0, 1, w - 2, w - 1} {
			img.SetNRGBA(x, y, border)
		}
	}
	return img
}

// ParticleImage draws a white plus of the given odd size. It is tinted grey
// with the particle's alpha when drawn.
func ParticleImage(size int) *image.NRGBA {
	mid := size / 2
	return maskImage(size, size, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, func(x, y int) bool {
		return x == mid || y == mid
	})
}
