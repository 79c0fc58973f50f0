// Package headless drives a simulation without a display, from a scripted
// input timeline. It is used for reproducible runs and smoke checks.
package headless

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/pipe-dodger/internal/core"
)

// ErrEmptyEntry is returned for a blank script entry such as "10:up,,20:down".
var ErrEmptyEntry = errors.New("headless: empty script entry")

// actionNames maps script words to actions.
var actionNames = map[string]core.Action{
	"up":           core.ActionUpPressed,
	"down":         core.ActionDownPressed,
	"release":      core.ActionUpReleased,
	"up-release":   core.ActionUpReleased,
	"down-release": core.ActionDownReleased,
	"start":        core.ActionStart,
}

// Step is one scripted input, applied just before tick At runs.
// Ticks are counted from zero.
type Step struct {
	At     int
	Action core.Action
}

// Script is a list of steps ordered by tick.
type Script []Step

// ParseScript parses a comma-separated list of "tick:action" entries,
// e.g. "10:up,40:release,55:down". Entries may come in any order; steps
// on the same tick keep their written order.
func ParseScript(s string) (Script, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var script Script
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			return nil, ErrEmptyEntry
		}

		at, name, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("headless: script entry %q: expected tick:action", entry)
		}
		tick, err := strconv.Atoi(strings.TrimSpace(at))
		if err != nil {
			return nil, fmt.Errorf("headless: script entry %q: bad tick: %w", entry, err)
		}
		if tick < 0 {
			return nil, fmt.Errorf("headless: script entry %q: tick must not be negative", entry)
		}
		action, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("headless: script entry %q: unknown action %q", entry, name)
		}
		script = append(script, Step{At: tick, Action: action})
	}

	sort.SliceStable(script, func(i, j int) bool {
		return script[i].At < script[j].At
	})
	return script, nil
}

// At returns the actions scheduled for tick.
func (s Script) At(tick int) []core.Action {
	var actions []core.Action
	for _, st := range s {
		if st.At == tick {
			actions = append(actions, st.Action)
		}
	}
	return actions
}

// Last returns the tick of the final step, or -1 for an empty script.
func (s Script) Last() int {
	if len(s) == 0 {
		return -1
	}
	return s[len(s)-1].At
}
