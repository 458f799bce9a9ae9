// Copyright (c) 2021, The Drylab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpg

import (
	"fmt"

	"github.com/emer/emergent/env"
	"github.com/emer/etable/etensor"
	"github.com/goki/mat32"
)

// SynthEnv is a synthetic proprioception environment: it stands in for
// the robot's ADC channels when no hardware is attached, reporting each
// actuator position as a phase-staggered sinusoid around the midpoint.
// Positions are in [0,1] as the hardware loop reports them.
type SynthEnv struct {

	// name of this environment
	Nm string `desc:"name of this environment"`

	// description of this environment
	Dsc string `desc:"description of this environment"`

	// number of actuator channels
	NAct int `desc:"number of actuator channels"`

	// oscillation frequency, Hz
	Freq float32 `def:"1" desc:"oscillation frequency, Hz"`

	// per-actuator phase offset, radians
	Phase float32 `desc:"per-actuator phase offset, radians"`

	// duration of one tick, ms
	DtMs float32 `def:"0.5" desc:"duration of one tick, ms"`

	// current synthetic actuator positions, in [0,1]
	Pos etensor.Float32 `desc:"current synthetic actuator positions, in [0,1]"`

	// simulated time since Init, ms
	TimeMs float32 `inactive:"+" desc:"simulated time since Init, ms"`

	// [view: inline] tick counter
	Tick env.Ctr `view:"inline" desc:"tick counter"`
}

func (ev *SynthEnv) Name() string { return ev.Nm }
func (ev *SynthEnv) Desc() string { return ev.Dsc }

// Config sets the number of actuator channels and tick duration and
// allocates the position state.
func (ev *SynthEnv) Config(nact int, dtMs float32) {
	ev.NAct = nact
	ev.DtMs = dtMs
	if ev.Freq == 0 {
		ev.Freq = 1
	}
	if ev.Phase == 0 {
		ev.Phase = 2 * mat32.Pi / float32(nact)
	}
	ev.Pos.SetShape([]int{nact}, nil, []string{"Act"})
}

func (ev *SynthEnv) Validate() error {
	if ev.NAct == 0 {
		return fmt.Errorf("SynthEnv: %v has NAct == 0 -- need to Config", ev.Nm)
	}
	return nil
}

// String returns the current state as a string
func (ev *SynthEnv) String() string {
	return fmt.Sprintf("t=%gms", ev.TimeMs)
}

func (ev *SynthEnv) State(element string) etensor.Tensor {
	switch element {
	case "Pos":
		return &ev.Pos
	}
	return nil
}

// Init is called to restart environment
func (ev *SynthEnv) Init(run int) {
	ev.Tick.Scale = env.Tick
	ev.Tick.Init()
	ev.TimeMs = 0
	ev.update()
}

// update recomputes the position channels for the current time
func (ev *SynthEnv) update() {
	w := 2 * mat32.Pi * ev.Freq / 1000 // rad per ms
	for i := 0; i < ev.NAct; i++ {
		ev.Pos.Values[i] = 0.5 + 0.5*mat32.Sin(w*ev.TimeMs+ev.Phase*float32(i))
	}
}

// Step is called to advance the environment state
func (ev *SynthEnv) Step() bool {
	ev.TimeMs += ev.DtMs
	ev.update()
	ev.Tick.Incr()
	return true
}

func (ev *SynthEnv) Action(element string, input etensor.Tensor) {
	// nop: the walker acts through the hardware loop, not the env
}

func (ev *SynthEnv) Counter(scale env.TimeScales) (cur, prv int, chg bool) {
	switch scale {
	case env.Tick:
		return ev.Tick.Query()
	}
	return -1, -1, false
}

// Compile-time check that implements Env interface
var _ env.Env = (*SynthEnv)(nil)
