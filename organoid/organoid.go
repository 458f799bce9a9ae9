// Copyright (c) 2021, The Drylab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package organoid implements a simulated culture of cortical cells using
the models from Dynamical Systems in Neuroscience, with conductance-type
synapses whose activation follows an alpha-function waveform, and an
optional triplet STDP learning rule on the peak-conductance matrix.

The excitability of each cell is represented by four phase variables:
the membrane voltage V (mV), the recovery or leakage current U (pA),
the unitless synaptic activation A, and its derivative Adot.  All four
live in one packed per-cell buffer; the V / U / A / Adot accessors are
aliased views into that buffer, so writes through any accessor are seen
by the integrator and by every other accessor immediately.

Synaptic activation pulls the membrane voltage of the postsynaptic cell
toward the reversal potential of the presynaptic cell, scaled by the
peak conductance G[i,j] of the synapse from sending cell j onto
receiving cell i.

The external caller drives the simulation by calling Step once per
control tick with the tick duration and an input-current vector; the
core is single-threaded, never blocks, and given the same initial state
and input sequence is bit-for-bit reproducible.
*/
package organoid

import (
	"fmt"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/drylab/organoid/stdp"
	"github.com/emer/etable/etensor"
	"github.com/emer/etable/minmax"
)

// Organoid is a population of N conductance-synapse Izhikevich cells
// with a dense peak-conductance matrix and optional triplet STDP.
// Construct with New (or NewHomogeneous), then call Step once per tick.
type Organoid struct {

	// number of cells, inferred from G at construction and fixed for
	// the lifetime of the object
	N int `inactive:"+" desc:"number of cells, inferred from G at construction and fixed for the lifetime of the object"`

	// N x N peak synaptic conductances: G[i,j] drives receiving cell i
	// from sending cell j.  Mutable only when STDP is on.
	G *etensor.Float32 `view:"no-inline" desc:"N x N peak synaptic conductances: row = receiving cell, column = sending cell -- mutable only when STDP is on"`

	// optional N x 2 cell positions, for external visualization only --
	// never read by the dynamics
	XY *etensor.Float32 `view:"no-inline" desc:"optional N x 2 cell positions, for external visualization only -- never read by the dynamics"`

	// per-cell static model coefficients
	Cells *CellParams `view:"no-inline" desc:"per-cell static model coefficients"`

	// triplet STDP configuration, read once at construction
	STDP stdp.Params `view:"inline" desc:"triplet STDP configuration, read once at construction"`

	// the three STDP traces per cell; allocated only when STDP is on,
	// and mutated only inside Step
	Traces stdp.Traces `view:"no-inline" desc:"the three STDP traces per cell -- allocated only when STDP is on, and mutated only inside Step"`

	// cells that crossed the action-potential peak on the step just
	// completed; consumed at the start of the next step, giving the
	// one-tick latency between detection and the downstroke reset
	Fired []bool `desc:"cells that crossed the action-potential peak on the step just completed -- consumed at the start of the next step (one-tick reset latency)"`

	// packed phase state: 4 rows of length N (V, U, A, Adot) in one
	// contiguous buffer that the accessors alias into
	state []float32

	// derivative scratch buffers for the two midpoint evaluations
	k1, k2 []float32
}

// New constructs an Organoid from the peak conductance matrix g (N x N,
// receiving row major), optional position tensor xy (N x 2, passthrough
// only -- may be nil), the per-cell coefficients, and the STDP
// configuration (nil means disabled).  N is inferred from g; any shape
// disagreement fails with an error wrapping ErrDimensionMismatch.
// The returned population has been Reset.
func New(g, xy *etensor.Float32, cells *CellParams, sp *stdp.Params) (*Organoid, error) {
	if g == nil || g.NumDims() != 2 {
		return nil, fmt.Errorf("%w: G must be a 2D square matrix", ErrDimensionMismatch)
	}
	if g.Dim(0) != g.Dim(1) {
		return nil, fmt.Errorf("%w: G is %d x %d, must be square", ErrDimensionMismatch, g.Dim(0), g.Dim(1))
	}
	n := g.Dim(0)
	if xy != nil && (xy.NumDims() != 2 || xy.Dim(0) != n || xy.Dim(1) != 2) {
		return nil, fmt.Errorf("%w: XY must be %d x 2", ErrDimensionMismatch, n)
	}
	if cells == nil {
		return nil, fmt.Errorf("%w: nil cell coefficients", ErrDimensionMismatch)
	}
	if err := cells.Validate(n); err != nil {
		return nil, err
	}
	og := &Organoid{N: n, G: g, XY: xy, Cells: cells}
	if sp != nil {
		og.STDP = *sp
	}
	og.state = make([]float32, 4*n)
	og.k1 = make([]float32, 4*n)
	og.k2 = make([]float32, 4*n)
	og.Fired = make([]bool, n)
	if og.STDP.On {
		og.Traces.Init(n)
	}
	og.Reset()
	return og, nil
}

// NewHomogeneous constructs an Organoid in which every cell uses the
// preset coefficients of the given class.
func NewHomogeneous(class CellClass, g, xy *etensor.Float32, sp *stdp.Params) (*Organoid, error) {
	if g == nil || g.NumDims() != 2 {
		return nil, fmt.Errorf("%w: G must be a 2D square matrix", ErrDimensionMismatch)
	}
	n := g.Dim(0)
	cd := Presets[class]
	cp := NewCellParams(n)
	for i := 0; i < n; i++ {
		cp.SetCell(i, &cd)
	}
	return New(g, xy, cp, sp)
}

// Reset reinitializes the phase state: V to the resting voltage Vr,
// U, A and Adot to zero, recomputes Fired as V >= Vp (all-false in the
// normal Vr < Vp regime, which is not enforced), and zeros the STDP
// traces when the rule is on.  Called by New; call again to rerun a
// simulation from rest.
func (og *Organoid) Reset() {
	v, u, a, ad := og.V(), og.U(), og.A(), og.Adot()
	for i := 0; i < og.N; i++ {
		v[i] = og.Cells.Vr[i]
		u[i] = 0
		a[i] = 0
		ad[i] = 0
		og.Fired[i] = v[i] >= og.Cells.Vp[i]
	}
	if og.STDP.On {
		og.Traces.Zero()
	}
}

// V returns the membrane voltage row (mV) as a read/write view aliased
// into the packed state buffer: writes through it are seen by the next
// derivative evaluation with no copy.
func (og *Organoid) V() []float32 { return og.state[:og.N] }

// U returns the recovery current row (pA), aliased as V is.
func (og *Organoid) U() []float32 { return og.state[og.N : 2*og.N] }

// A returns the synaptic activation row (unitless), aliased as V is.
func (og *Organoid) A() []float32 { return og.state[2*og.N : 3*og.N] }

// Adot returns the synaptic activation derivative row, aliased as V is.
func (og *Organoid) Adot() []float32 { return og.state[3*og.N:] }

// VStats returns the average and maximum membrane voltage, for
// monitoring and datalogging.
func (og *Organoid) VStats() minmax.AvgMax32 {
	var am minmax.AvgMax32
	am.Init()
	for i, v := range og.V() {
		am.UpdateVal(v, i)
	}
	am.CalcAvg()
	return am
}

// SizeReport returns a string reporting the memory size of the state
// and synaptic weights.
func (og *Organoid) SizeReport() string {
	var b strings.Builder
	stMem := 4 * (len(og.state) + len(og.k1) + len(og.k2))
	trMem := 4 * (len(og.Traces.Plus) + len(og.Traces.Minus) + len(og.Traces.Y))
	synMem := 4 * len(og.G.Values)
	fmt.Fprintf(&b, "%14s:\t Cells: %d\t StateMem: %v\n", "Organoid", og.N, (datasize.ByteSize)(stMem+trMem).HumanReadable())
	fmt.Fprintf(&b, "%14s:\t Syns: %d\t SynMem: %v\n", "", og.N*og.N, (datasize.ByteSize)(synMem).HumanReadable())
	return b.String()
}
