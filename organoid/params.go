// Copyright (c) 2021, The Drylab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package organoid

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is the sentinel wrapped by all construction-time
// shape errors, so callers can test with errors.Is.
var ErrDimensionMismatch = errors.New("organoid: dimension mismatch")

// CellParams holds the static per-cell coefficients of the
// conductance-synapse Izhikevich model, one vector per coefficient, all
// of the population length N.  They are supplied at construction and
// immutable thereafter -- the simulation only ever reads them.
//
// The coefficient names follow Dynamical Systems in Neuroscience;
// since Go exports cannot distinguish C (capacitance) from c (reset
// voltage), capacitance is Cm here.
type CellParams struct {
	A   []float32 `desc:"1/ms time constant of the recovery current"`
	B   []float32 `desc:"nS steady-state conductance for the recovery current"`
	C   []float32 `desc:"mV membrane voltage after a downstroke"`
	D   []float32 `desc:"pA bump to the recovery current after a downstroke"`
	Cm  []float32 `desc:"pF membrane capacitance"`
	K   []float32 `desc:"nS/mV voltage-gated Na+ channel conductance"`
	Vr  []float32 `desc:"mV resting membrane voltage when u=0"`
	Vt  []float32 `desc:"mV threshold voltage when u=0"`
	Vp  []float32 `desc:"mV action potential peak, after which reset happens"`
	Vn  []float32 `desc:"mV Nernst reversal potential of the cell's neurotransmitter"`
	Tau []float32 `desc:"ms time constant for synaptic activation"`
}

// NewCellParams allocates all coefficient vectors for n cells, zeroed.
func NewCellParams(n int) *CellParams {
	cp := &CellParams{}
	cp.A = make([]float32, n)
	cp.B = make([]float32, n)
	cp.C = make([]float32, n)
	cp.D = make([]float32, n)
	cp.Cm = make([]float32, n)
	cp.K = make([]float32, n)
	cp.Vr = make([]float32, n)
	cp.Vt = make([]float32, n)
	cp.Vp = make([]float32, n)
	cp.Vn = make([]float32, n)
	cp.Tau = make([]float32, n)
	return cp
}

// SetCell sets all eleven coefficients of cell i from the given preset
// tuple.
func (cp *CellParams) SetCell(i int, cd *CellDefaults) {
	cp.A[i] = cd.A
	cp.B[i] = cd.B
	cp.C[i] = cd.C
	cp.D[i] = cd.D
	cp.Cm[i] = cd.Cm
	cp.K[i] = cd.K
	cp.Vr[i] = cd.Vr
	cp.Vt[i] = cd.Vt
	cp.Vp[i] = cd.Vp
	cp.Vn[i] = cd.Vn
	cp.Tau[i] = cd.Tau
}

// Validate checks that every coefficient vector has length n, returning
// an error wrapping ErrDimensionMismatch naming the offending vector.
func (cp *CellParams) Validate(n int) error {
	vecs := []struct {
		nm string
		v  []float32
	}{
		{"a", cp.A}, {"b", cp.B}, {"c", cp.C}, {"d", cp.D},
		{"C", cp.Cm}, {"k", cp.K}, {"Vr", cp.Vr}, {"Vt", cp.Vt},
		{"Vp", cp.Vp}, {"Vn", cp.Vn}, {"tau", cp.Tau},
	}
	for _, vc := range vecs {
		if len(vc.v) != n {
			return fmt.Errorf("%w: coefficient vector %s has length %d, G is %d x %d", ErrDimensionMismatch, vc.nm, len(vc.v), n, n)
		}
	}
	return nil
}
