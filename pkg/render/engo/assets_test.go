package engo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opd-ai/go-lander/pkg/config"
	"github.com/opd-ai/go-lander/pkg/entity"
)

func TestNewAssetManager(t *testing.T) {
	am := NewAssetManager(config.DefaultConfig().Assets, nil)

	if am.craft == nil {
		t.Fatal("craft sprite map not initialized")
	}
	if am.GetCraftSprite(entity.Helicopter) != nil {
		t.Error("craft sprite available before LoadAssets")
	}
	if got := am.files(); len(got) != 4 {
		t.Errorf("files() = %v, want 4 names", got)
	}
}

func TestAssetManager_OnDisk(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "rocket.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "won.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig().Assets
	cfg.Dir = dir
	am := NewAssetManager(cfg, nil)

	tests := []struct {
		name string
		want bool
	}{
		{"rocket.png", true},
		{"helicopter.png", false},
		{"won.png", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := am.onDisk(tt.name); got != tt.want {
			t.Errorf("onDisk(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAssetManager_PreloadSkipsMissingFiles(t *testing.T) {
	cfg := config.DefaultConfig().Assets
	cfg.Dir = t.TempDir()

	if err := NewAssetManager(cfg, nil).Preload(); err != nil {
		t.Errorf("Preload with no files = %v, want nil", err)
	}
}

func TestCraftImage(t *testing.T) {
	tests := []struct {
		craft entity.CraftType
		w, h  int
	}{
		{entity.Helicopter, 96, 48},
		{entity.Rocket, 64, 128},
	}

	for _, tt := range tests {
		t.Run(tt.craft.String(), func(t *testing.T) {
			img := CraftImage(tt.craft, tt.w, tt.h)
			if b := img.Bounds(); b.Dx() != tt.w || b.Dy() != tt.h {
				t.Fatalf("bounds = %v, want %dx%d", b, tt.w, tt.h)
			}
			// Centre of the body is painted, the top corners are not.
			if img.NRGBAAt(tt.w/2, tt.h*5/8).A == 0 {
				t.Error("body centre is transparent")
			}
			if tt.craft == entity.Rocket && img.NRGBAAt(0, 0).A != 0 {
				t.Error("rocket nose corner is painted")
			}
		})
	}
}

func TestExplosionImage(t *testing.T) {
	img := ExplosionImage(72, 60)

	if img.NRGBAAt(36, 30).A == 0 {
		t.Error("explosion centre is transparent")
	}
	if img.NRGBAAt(0, 0).A != 0 {
		t.Error("explosion corner is painted")
	}
}

func TestBannerImage(t *testing.T) {
	img := BannerImage(bannerWidth, bannerHeight)

	border, fill := img.NRGBAAt(0, 0), img.NRGBAAt(bannerWidth/2, bannerHeight/2)
	if border == fill {
		t.Errorf("border %v matches fill %v", border, fill)
	}
	if fill.A != 255 {
		t.Errorf("fill alpha = %d, want opaque", fill.A)
	}
}

func TestParticleImage(t *testing.T) {
	img := ParticleImage(particleSize)

	painted := 0
	for y := 0; y < particleSize; y++ {
		for x := 0; x < particleSize; x++ {
			if img.NRGBAAt(x, y).A != 0 {
				painted++
			}
		}
	}
	if painted != 2*particleSize-1 {
		t.Errorf("painted %d pixels, want a plus of %d", painted, 2*particleSize-1)
	}
}
