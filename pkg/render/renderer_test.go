// pkg/render/renderer_test.go
package render

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/opd-ai/go-lander/pkg/entity"
	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/physics"
)

func TestNullRenderer_LogsCraftState(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewNullRenderer(logging.NewLoggerWithWriter(&buf, slog.LevelDebug))
	craft := entity.NewCraft(entity.Rocket, physics.Vector2D{X: 100, Y: 200}, physics.Size{}, 4)

	renderer.Clear()
	renderer.RenderCraft(craft)
	renderer.Present()

	output := buf.String()
	for _, want := range []string{`"msg":"frame"`, `"x":100`, `"y":200`, `"fuel_percent":100`} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected log to contain %s, got: %s", want, output)
		}
	}
	if renderer.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", renderer.Frames())
	}
}

func TestNullRenderer_LogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewNullRenderer(logging.NewLoggerWithWriter(&buf, slog.LevelDebug))

	renderer.RenderOutcome(physics.Crashed, nil)

	if !strings.Contains(buf.String(), `"outcome":"crashed"`) {
		t.Errorf("Expected crashed outcome in log, got: %s", buf.String())
	}
}

func TestNullRenderer_NilSafe(t *testing.T) {
	renderer := NewNullRenderer(nil)

	renderer.Clear()
	renderer.RenderCraft(nil)
	renderer.RenderWall(nil)
	renderer.RenderParticle(entity.Particle{})
	renderer.RenderFuelGauge(entity.FuelGauge{})
	renderer.RenderOutcome(physics.Won, nil)
	renderer.Present()
}

func TestNullRenderer_QuietAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewNullRenderer(logging.NewLoggerWithWriter(&buf, slog.LevelInfo))

	renderer.RenderCraft(entity.NewCraft(entity.Helicopter, physics.Vector2D{}, physics.Size{}, 1))

	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got: %s", buf.String())
	}
}
