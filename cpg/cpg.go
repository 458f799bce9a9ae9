// Copyright (c) 2021, The Drylab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package cpg builds central pattern generators from the organoid cell
presets: one half-center oscillator per actuator, with RegularSpiking
drive cells reciprocally coupled through LowThresholdSpiking inhibitory
cells.  Tonic drive current keeps the half-centers active, spike-rate
adaptation in the drive cells terminates each burst, and proprioceptive
feedback current steers the alternation toward the actuator midpoint.

The package also provides SynthEnv, an env.Env producing synthetic
sinusoidal proprioception, so the generator can be run and logged with
no hardware attached.
*/
package cpg

import (
	"fmt"

	"github.com/drylab/organoid/organoid"
	"github.com/drylab/organoid/stdp"
	"github.com/emer/emergent/prjn"
	"github.com/emer/etable/etensor"
	"github.com/goki/mat32"
)

// Cell block roles within the walker population: four blocks of NAct
// cells each, in this order.
const (
	FlexDrive = iota
	ExtDrive
	FlexInhib
	ExtInhib
	NBlocks
)

// Walker is a set of half-center CPG oscillators driving one actuator
// each, built on a single Organoid.  Population layout is four blocks
// of NAct cells: flexor drive, extensor drive, flexor inhibitory,
// extensor inhibitory; cell index = block*NAct + actuator.
type Walker struct {

	// the underlying cell population
	Org *organoid.Organoid `desc:"the underlying cell population"`

	// number of actuators (one half-center pair per actuator)
	NAct int `desc:"number of actuators (one half-center pair per actuator)"`

	// tonic drive current (pA) to the flexor drive cells
	Drive float32 `def:"150" desc:"tonic drive current (pA) to the flexor drive cells"`

	// fraction of Drive delivered to the extensor side -- slightly
	// below 1 so the two half-centers do not start in lockstep
	ExtBias float32 `def:"0.9" desc:"fraction of Drive delivered to the extensor side -- slightly below 1 so the two half-centers do not start in lockstep"`

	// gain (pA per unit position error) of the proprioceptive feedback
	// current steering each half-center toward the actuator midpoint
	Feedback float32 `def:"100" desc:"gain (pA per unit position error) of the proprioceptive feedback current"`

	// scaling from flexor-extensor activation difference to the
	// actuator command
	MotorGain float32 `def:"1" desc:"scaling from flexor-extensor activation difference to the actuator command"`

	iin []float32
}

// Defaults sets default currents and gains.
func (wk *Walker) Defaults() {
	wk.Drive = 150
	wk.ExtBias = 0.9
	wk.Feedback = 100
	wk.MotorGain = 1
}

// NewWalker builds a walker CPG for nact actuators, with STDP off (the
// gait network is hand-wired, not learned).
func NewWalker(nact int) (*Walker, error) {
	if nact <= 0 {
		return nil, fmt.Errorf("cpg.NewWalker: nact must be positive, got %d", nact)
	}
	wk := &Walker{NAct: nact}
	wk.Defaults()
	n := NBlocks * nact
	cp := organoid.NewCellParams(n)
	rs := organoid.Presets[organoid.RegularSpiking]
	lts := organoid.Presets[organoid.LowThresholdSpiking]
	for i := 0; i < n; i++ {
		if i < 2*nact {
			cp.SetCell(i, &rs)
		} else {
			cp.SetCell(i, &lts)
		}
	}
	g := etensor.NewFloat32([]int{n, n}, nil, []string{"Recv", "Send"})
	one := prjn.NewOneToOne()

	gexc := float32(3)
	ginh := float32(5)
	// each drive cell excites its own side's inhibitory cell
	SetPattern(g, one, FlexDrive*nact, FlexInhib*nact, nact, gexc)
	SetPattern(g, one, ExtDrive*nact, ExtInhib*nact, nact, gexc)
	// each inhibitory cell suppresses the opposite drive cell
	SetPattern(g, one, FlexInhib*nact, ExtDrive*nact, nact, ginh)
	SetPattern(g, one, ExtInhib*nact, FlexDrive*nact, nact, ginh)
	// weak rostral-to-caudal coupling between adjacent flexor drives
	// staggers the phases along the body
	if nact > 1 {
		SetPattern(g, one, FlexDrive*nact, FlexDrive*nact+1, nact-1, gexc/4)
		SetPattern(g, one, ExtDrive*nact, ExtDrive*nact+1, nact-1, gexc/4)
	}

	sp := stdp.Params{}
	sp.Defaults()
	og, err := organoid.New(g, nil, cp, &sp)
	if err != nil {
		return nil, err
	}
	wk.Org = og
	wk.iin = make([]float32, n)
	return wk, nil
}

// SetPattern lays down conductance wt over the connections generated by
// pat between a sending block starting at sendOff and a receiving block
// starting at recvOff, both of length n cells.  The connection bits are
// receiver-major, as prjn produces them.
func SetPattern(g *etensor.Float32, pat prjn.Pattern, sendOff, recvOff, n int, wt float32) {
	ssh := etensor.NewShape([]int{n}, nil, nil)
	rsh := etensor.NewShape([]int{n}, nil, nil)
	_, _, cons := pat.Connect(ssh, rsh, false)
	gn := g.Dim(1)
	for ri := 0; ri < n; ri++ {
		for si := 0; si < n; si++ {
			if !cons.Values.Index(ri*n + si) {
				continue
			}
			g.Values[(recvOff+ri)*gn+(sendOff+si)] = wt
		}
	}
}

// Step advances the CPG by one tick of duration dt (ms), given the
// current actuator positions pos in [0,1] (length NAct; nil means no
// feedback).  Drive and feedback currents are computed, then the
// organoid is stepped once.
func (wk *Walker) Step(dt float32, pos []float32) {
	na := wk.NAct
	for i := 0; i < na; i++ {
		var err float32
		if pos != nil {
			err = pos[i] - 0.5
		}
		wk.iin[FlexDrive*na+i] = wk.Drive - wk.Feedback*err
		wk.iin[ExtDrive*na+i] = wk.Drive*wk.ExtBias + wk.Feedback*err
		wk.iin[FlexInhib*na+i] = 0
		wk.iin[ExtInhib*na+i] = 0
	}
	wk.Org.Step(dt, wk.iin)
}

// Motor writes the current actuator commands into out (length NAct),
// as the flexor minus extensor synaptic activation scaled by MotorGain
// and clamped to [-1, 1].
func (wk *Walker) Motor(out []float32) {
	na := wk.NAct
	a := wk.Org.A()
	for i := 0; i < na; i++ {
		m := wk.MotorGain * (a[FlexDrive*na+i] - a[ExtDrive*na+i])
		out[i] = mat32.Clamp(m, -1, 1)
	}
}
