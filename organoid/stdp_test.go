// Copyright (c) 2021, The Drylab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package organoid

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/drylab/organoid/stdp"
	"github.com/emer/etable/etensor"
)

// pair returns a 2-cell regular-spiking population with zero initial
// weights and STDP enabled.
func pair(t *testing.T) *Organoid {
	g := etensor.NewFloat32([]int{2, 2}, nil, nil)
	sp := stdp.Params{On: true}
	sp.Defaults()
	og, err := NewHomogeneous(RegularSpiking, g, nil, &sp)
	if err != nil {
		t.Fatal(err)
	}
	return og
}

// kick is an input current strong enough to force a spike in one step.
const kick = float32(1e6)

func TestTraceDecayAcrossSteps(t *testing.T) {
	og := pair(t)
	dt := float32(0.5)
	zero := []float32{0, 0}
	og.Step(dt, []float32{kick, 0}) // cell 0 crosses the peak
	if !og.Fired[0] || og.Fired[1] {
		t.Fatalf("kick did not fire exactly cell 0: %v", og.Fired)
	}
	og.Step(dt, zero) // downstroke; traces increment at cell 0
	if og.Traces.Plus[0] != 1 || og.Traces.Minus[0] != 1 || og.Traces.Y[0] != 1 {
		t.Fatalf("traces after spike = %v %v %v, want 1", og.Traces.Plus[0], og.Traces.Minus[0], og.Traces.Y[0])
	}
	// idle steps: each trace decays by exactly exp(-dt/tau) per step
	fp := math32.Exp(-dt / og.STDP.TauPlus)
	fm := math32.Exp(-dt / og.STDP.TauMinus)
	fy := math32.Exp(-dt / og.STDP.TauY)
	p, m, y := og.Traces.Plus[0], og.Traces.Minus[0], og.Traces.Y[0]
	for s := 0; s < 10; s++ {
		og.Step(dt, zero)
		if math32.Abs(og.Traces.Plus[0]-p*fp) > 1e-6 {
			t.Fatalf("step %v: plus trace %v, want %v", s, og.Traces.Plus[0], p*fp)
		}
		if math32.Abs(og.Traces.Minus[0]-m*fm) > 1e-6 {
			t.Fatalf("step %v: minus trace %v, want %v", s, og.Traces.Minus[0], m*fm)
		}
		if math32.Abs(og.Traces.Y[0]-y*fy) > 1e-6 {
			t.Fatalf("step %v: y trace %v, want %v", s, og.Traces.Y[0], y*fy)
		}
		p, m, y = og.Traces.Plus[0], og.Traces.Minus[0], og.Traces.Y[0]
	}
	// cell 1 never fired; its traces stay exactly zero
	if og.Traces.Plus[1] != 0 || og.Traces.Minus[1] != 0 || og.Traces.Y[1] != 0 {
		t.Errorf("silent cell traces nonzero: %v %v %v", og.Traces.Plus[1], og.Traces.Minus[1], og.Traces.Y[1])
	}
}

// TestCausalPairing drives cell 0 (pre) then cell 1 (post) within the
// trace time constants and verifies the triplet rule: the post-from-pre
// weight G[1,0] potentiates, and the weight in the acausal direction
// G[0,1] depresses.  The slow y trace gates potentiation, so cell 1 is
// fired once beforehand to seed it, as in any ongoing spike train.
func TestCausalPairing(t *testing.T) {
	og := pair(t)
	dt := float32(1)
	zero := []float32{0, 0}
	step := func(iin []float32) {
		og.Step(dt, iin)
	}

	step([]float32{0, kick}) // seed: post cell fires once
	step(zero)               // traces increment at cell 1
	step(zero)
	step(zero)
	step([]float32{kick, 0}) // pre cell fires
	step(zero)               // traces increment at cell 0
	step(zero)
	g10before := og.G.Values[1*2+0]
	g01before := og.G.Values[0*2+1]
	step([]float32{0, kick}) // post cell fires again, shortly after pre
	step(zero)               // weight updates apply here
	g10 := og.G.Values[1*2+0]
	g01 := og.G.Values[0*2+1]
	if g10 <= g10before {
		t.Errorf("causal pre->post pairing must potentiate G[post,pre]: before %v after %v", g10before, g10)
	}
	if g01 >= g01before {
		t.Errorf("post spiking with a decayed minus trace must depress G[pre,post]: before %v after %v", g01before, g01)
	}
}

// TestWeightsFrozenWithoutSTDP checks the weight matrix is immutable
// when the rule is disabled, even with cells firing.
func TestWeightsFrozenWithoutSTDP(t *testing.T) {
	g := etensor.NewFloat32([]int{2, 2}, nil, nil)
	g.Values[1] = 2.5
	og, err := NewHomogeneous(RegularSpiking, g, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	for s := 0; s < 400; s++ {
		og.Step(0.5, []float32{250, 250})
	}
	if g.Values[0] != 0 || g.Values[1] != 2.5 || g.Values[2] != 0 || g.Values[3] != 0 {
		t.Errorf("weights changed with STDP off: %v", g.Values)
	}
}
