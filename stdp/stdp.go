// Copyright (c) 2021, The Drylab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stdp provides the triplet spike-timing-dependent plasticity rule
of Pfister & Gerstner, J. Neurosci. 26(38):9673 (2006), as used for
unsupervised learning in the drylab organoid.

The rule keeps three exponential spike traces per cell: a fast
"plus" trace driven by presynaptic spikes, a fast "minus" trace driven
by postsynaptic spikes, and a slow "y" trace also driven by postsynaptic
spikes.  Pair-based depression is keyed by the minus trace, and triplet
potentiation is the product of the presynaptic plus trace and the slow
postsynaptic y trace, so that the magnitude of potentiation grows with
recent postsynaptic activity.

The default parameters are the fit to Sjostrom's V1 data from the same
source.  Note that the rule places no bound on weight magnitude or sign:
the proper fix is synaptic scaling or homeostatic modulation of
intrinsic excitability, which is outside the scope of this package, so
weights are left unbounded here and clipping is deliberately not done.
*/
package stdp

import "github.com/goki/mat32"

// Params are the triplet STDP parameters: the learning rates for the
// pair and triplet terms and the time constants of the three traces.
// They are read once at construction of a simulation and never changed
// while it runs.
type Params struct {
	On       bool    `desc:"enable the STDP weight update -- when off, the weight matrix is immutable and no traces are allocated"`
	TauPlus  float32 `def:"15" viewif:"On" desc:"time constant (ms) of the fast presynaptic trace driving potentiation"`
	TauMinus float32 `def:"35" viewif:"On" desc:"time constant (ms) of the fast postsynaptic trace driving depression"`
	TauY     float32 `def:"115" viewif:"On" desc:"time constant (ms) of the slow postsynaptic trace gating triplet potentiation"`
	Aplus    float32 `def:"0.0065" viewif:"On" desc:"learning rate for potentiation on postsynaptic spikes"`
	Aminus   float32 `def:"0.007" viewif:"On" desc:"learning rate for depression on presynaptic spikes"`
}

// Defaults sets the Pfister & Gerstner visual-cortex fit values,
// leaving On as-is.
func (sp *Params) Defaults() {
	sp.TauPlus = 15
	sp.TauMinus = 35
	sp.TauY = 115
	sp.Aplus = 6.5e-3
	sp.Aminus = 7e-3
}

// Update must be called after any changes to parameters.
func (sp *Params) Update() {
}

// Traces holds the three exponential spike traces for every cell in a
// population, one row per trace component.  All rows share the
// population length and are mutated only by the owning simulation's
// step routine.
type Traces struct {
	Plus  []float32 `desc:"fast presynaptic trace, time constant TauPlus"`
	Minus []float32 `desc:"fast postsynaptic trace, time constant TauMinus"`
	Y     []float32 `desc:"slow postsynaptic trace, time constant TauY"`
}

// Init allocates (or reuses) the trace rows for n cells and zeros them.
func (tr *Traces) Init(n int) {
	if cap(tr.Plus) >= n {
		tr.Plus = tr.Plus[:n]
		tr.Minus = tr.Minus[:n]
		tr.Y = tr.Y[:n]
	} else {
		tr.Plus = make([]float32, n)
		tr.Minus = make([]float32, n)
		tr.Y = make([]float32, n)
	}
	tr.Zero()
}

// Zero clears all three trace rows.
func (tr *Traces) Zero() {
	for i := range tr.Plus {
		tr.Plus[i] = 0
		tr.Minus[i] = 0
		tr.Y[i] = 0
	}
}

// Decay applies exact exponential decay over interval dt (ms) to all
// three rows: each component is multiplied by exp(-dt/tau).  This is
// the closed-form solution, not an Euler approximation, so repeated
// small steps and one large step of the same total duration agree.
func (tr *Traces) Decay(sp *Params, dt float32) {
	fp := mat32.Exp(-dt / sp.TauPlus)
	fm := mat32.Exp(-dt / sp.TauMinus)
	fy := mat32.Exp(-dt / sp.TauY)
	for i := range tr.Plus {
		tr.Plus[i] *= fp
		tr.Minus[i] *= fm
		tr.Y[i] *= fy
	}
}

// Inc increments all three traces by 1 at every cell marked in fired.
// Called after Decay within a step, and after the weight updates have
// read the pre-increment values.
func (tr *Traces) Inc(fired []bool) {
	for i, f := range fired {
		if !f {
			continue
		}
		tr.Plus[i] += 1
		tr.Minus[i] += 1
		tr.Y[i] += 1
	}
}
