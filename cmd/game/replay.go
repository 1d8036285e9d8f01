package main

import (
	"fmt"

	"github.com/younwookim/summit/internal/application/scene/playing"
	"github.com/younwookim/summit/internal/application/state"
)

// maxHeadlessFrames caps a headless run at ten minutes of play at 60fps
const maxHeadlessFrames = 60 * 60 * 10

// SimulationResult contains the results of a replay simulation
type SimulationResult struct {
	Frames     int
	FinalX     int
	FinalY     int
	LevelIndex int
	Deaths     int
	State      state.GameState
	VYMin      float64
	VYMax      float64
	// VYFluctuation is set when VY was nonzero on a frame that ended on the ground
	VYFluctuation bool
}

func (r SimulationResult) String() string {
	return fmt.Sprintf("%d frames, level %d, %s, deaths %d, final (%d, %d), vy [%.1f, %.1f]",
		r.Frames, r.LevelIndex+1, r.State, r.Deaths, r.FinalX, r.FinalY, r.VYMin, r.VYMax)
}

// simulateReplay ticks the scene until its replay runs out, the run is
// complete, or maxFrames have passed
func simulateReplay(p *playing.Playing, maxFrames int) SimulationResult {
	var result SimulationResult
	for result.Frames < maxFrames && !p.ReplayDone() && p.State() != state.StateComplete {
		p.Tick()
		result.Frames++

		player := p.Player()
		if result.Frames == 1 {
			result.VYMin, result.VYMax = player.VY, player.VY
		}
		result.VYMin = min(result.VYMin, player.VY)
		result.VYMax = max(result.VYMax, player.VY)
		if player.OnGround && player.VY != 0 {
			result.VYFluctuation = true
		}
	}

	result.FinalX = p.Player().X
	result.FinalY = p.Player().Y
	result.LevelIndex = p.LevelIndex()
	result.Deaths = p.Deaths()
	result.State = p.State()
	return result
}
