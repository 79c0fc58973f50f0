package game

import (
	"math/rand"

	"github.com/vovakirdan/pipe-dodger/internal/config"
	"github.com/vovakirdan/pipe-dodger/internal/core"
)

// Pipe represents a vertical obstacle with a gap for the player to pass through.
type Pipe struct {
	X         float64 // Horizontal position (left edge)
	GapY      float64 // Y position where gap starts (top of gap)
	GapHeight float64 // Height of the passable gap
	Scored    bool    // Whether the pass point was awarded
}

// GapBottom returns the y-coordinate where the lower solid region starts.
func (p Pipe) GapBottom() float64 {
	return p.GapY + p.GapHeight
}

// TopBox returns the solid region above the gap, clipped to the viewport.
func (p Pipe) TopBox(width float64) core.Box {
	return core.NewBox(p.X, 0, width, p.GapY)
}

// BottomBox returns the solid region below the gap, clipped to the viewport.
func (p Pipe) BottomBox(width, viewH float64) core.Box {
	return core.NewBox(p.X, p.GapBottom(), width, viewH-p.GapBottom())
}

// Collides reports whether b overlaps a solid region of the pipe.
// The solid regions extend without limit above and below the gap, so each
// is stretched one unit past b before testing.
func (p Pipe) Collides(b core.Box, width float64) bool {
	top := core.NewBox(p.X, b.Y-1, width, p.GapY-(b.Y-1))
	bottom := core.NewBox(p.X, p.GapBottom(), width, b.Bottom()+1-p.GapBottom())
	return b.Intersects(top) || b.Intersects(bottom)
}

// PipeManager handles spawning, movement, and removal of pipes.
type PipeManager struct {
	pipes  []Pipe
	rng    *rand.Rand
	vp     core.Viewport
	cfg    config.ObstacleConfig
	margin float64 // Ground band height at top and bottom
	frame  int     // Ticks since the last spawn
}

// NewPipeManager creates a pipe manager that draws gap offsets from rng.
func NewPipeManager(rng *rand.Rand, vp core.Viewport, cfg config.ObstacleConfig, margin float64) *PipeManager {
	return &PipeManager{
		pipes:  make([]Pipe, 0, 8),
		rng:    rng,
		vp:     vp,
		cfg:    cfg,
		margin: margin,
	}
}

// Reset clears all pipes and the spawn counter.
func (pm *PipeManager) Reset() {
	pm.pipes = pm.pipes[:0]
	pm.frame = 0
}

// Tick advances the spawn counter and spawns a pipe at the right edge when
// the interval is reached. Returns true if a pipe was spawned.
func (pm *PipeManager) Tick() bool {
	pm.frame++
	if pm.frame < pm.cfg.SpawnInterval {
		return false
	}
	pm.frame = 0
	pm.spawnPipe()
	return true
}

// spawnPipe creates a new pipe at the right edge of the viewport.
func (pm *PipeManager) spawnPipe() {
	gap := pm.cfg.GapHeight

	// Uniform over the whole viewport, then pulled inside the ground bands
	gapY := pm.rng.Float64() * max(pm.vp.H-gap, 0)
	minGapY := pm.margin
	maxGapY := pm.vp.H - pm.margin - gap
	if maxGapY < minGapY {
		maxGapY = minGapY // Edge case for very small viewports
	}
	gapY = core.ClampF(gapY, minGapY, maxGapY)

	pm.pipes = append(pm.pipes, Pipe{
		X:         pm.vp.W,
		GapY:      gapY,
		GapHeight: gap,
	})
}

// Advance moves every pipe left by speed.
func (pm *PipeManager) Advance(speed float64) {
	for i := range pm.pipes {
		pm.pipes[i].X -= speed
	}
}

// Collides tests if the given box collides with any pipe.
func (pm *PipeManager) Collides(b core.Box) bool {
	for _, p := range pm.pipes {
		if p.Collides(b, pm.cfg.Width) {
			return true
		}
	}
	return false
}

// Cull removes pipes that have moved off the left side.
func (pm *PipeManager) Cull() {
	valid := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.X+pm.cfg.Width > 0 {
			valid = append(valid, p)
		}
	}
	pm.pipes = valid
}

// ScorePassed marks pipes whose right edge is left of playerX as scored.
// Returns how many pipes were newly scored; a pipe scores at most once.
func (pm *PipeManager) ScorePassed(playerX float64) int {
	passed := 0
	for i := range pm.pipes {
		if !pm.pipes[i].Scored && pm.pipes[i].X+pm.cfg.Width < playerX {
			pm.pipes[i].Scored = true
			passed++
		}
	}
	return passed
}

// Pipes returns the current list of pipes.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// Width returns the configured pipe width.
func (pm *PipeManager) Width() float64 {
	return pm.cfg.Width
}
