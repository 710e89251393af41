// Package input provides non-interactive input sources for headless runs.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/opd-ai/go-lander/pkg/entity"
)

// ErrInvalidScript is returned for malformed scripts.
var ErrInvalidScript = errors.New("invalid input script")

// Step holds a set of keys for a number of ticks.
type Step struct {
	Up, Left, Right bool
	Quit            bool
	Ticks           int
}

// Script replays a fixed key sequence, one tick per PollEvents call.
// When the sequence is exhausted it reports a quit on every poll.
type Script struct {
	steps []Step
	step  int
	used  int
	tick  int
	cur   Step
}

// ParseScript parses a comma-separated list of key sets with optional repeat counts,
// for example "up*120,up+right*60,none*30,quit". Key names are up, left, right and
// none; quit ends the run.
func ParseScript(s string) (*Script, error) {
	var steps []Step
	for i, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		step, err := parseStep(part)
		if err != nil {
			return nil, fmt.Errorf("%w: step %d %q: %v", ErrInvalidScript, i+1, part, err)
		}
		steps = append(steps, step)
	}
	return NewScript(steps), nil
}

func parseStep(part string) (Step, error) {
	step := Step{Ticks: 1}

	keys, count, hasCount := strings.Cut(part, "*")
	if hasCount {
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || n < 1 {
			return Step{}, fmt.Errorf("repeat count %q must be a positive integer", count)
		}
		step.Ticks = n
	}

	for _, key := range strings.Split(keys, "+") {
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "up":
			step.Up = true
		case "left":
			step.Left = true
		case "right":
			step.Right = true
		case "none", "":
		case "quit":
			step.Quit = true
		default:
			return Step{}, fmt.Errorf("unknown key %q", key)
		}
	}
	return step, nil
}

// NewScript creates a script from steps. Steps with no ticks are skipped.
func NewScript(steps []Step) *Script {
	kept := make([]Step, 0, len(steps))
	for _, s := range steps {
		if s.Ticks > 0 {
			kept = append(kept, s)
		}
	}
	return &Script{steps: kept, step: -1}
}

// PollEvents advances the script by one tick.
func (s *Script) PollEvents() []entity.InputEvent {
	s.advance()
	if s.cur.Quit {
		return []entity.InputEvent{{Type: entity.EventQuit}}
	}
	return nil
}

// KeyState reports whether k is held during the current tick.
func (s *Script) KeyState(k entity.Key) bool {
	switch k {
	case entity.KeyUp:
		return s.cur.Up
	case entity.KeyLeft:
		return s.cur.Left
	case entity.KeyRight:
		return s.cur.Right
	default:
		return false
	}
}

// Tick returns the number of ticks polled so far.
func (s *Script) Tick() int {
	return s.tick
}

// Done reports whether every step has been played.
func (s *Script) Done() bool {
	return s.step >= len(s.steps)
}

func (s *Script) advance() {
	s.tick++
	if s.step >= 0 && s.step < len(s.steps) {
		s.used++
		if s.used < s.steps[s.step].Ticks {
			return
		}
	}

	s.step++
	s.used = 0
	if s.step >= len(s.steps) {
		s.step = len(s.steps)
		s.cur = Step{Quit: true}
		return
	}
	s.cur = s.steps[s.step]
}
