// Copyright (c) 2021, The Drylab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package organoid

//////////////////////////////////////////////////////////////////////
//  step.go: the derivative function, midpoint integrator, and the
//  two-phase spike protocol, with the STDP block gated on config.

// Deriv computes the instantaneous rate of change of every phase
// variable given the packed state st and the input current vector iin,
// writing into dst (also packed 4 x N).  Pure with respect to st and
// iin: only dst is written.
//
// The synaptic current on cell i is r[i] - s[i]*V[i], where
// s = G @ A is the conductance-weighted activation and
// r = G @ (A * Vn) the reversal-weighted activation, so that active
// presynaptic cells pull V[i] toward their own reversal potentials.
func (og *Organoid) Deriv(st, iin, dst []float32) {
	n := og.N
	cp := og.Cells
	v, u, a, ad := st[:n], st[n:2*n], st[2*n:3*n], st[3*n:]
	dv, du, da, dad := dst[:n], dst[n:2*n], dst[2*n:3*n], dst[3*n:]
	gv := og.G.Values
	for i := 0; i < n; i++ {
		var s, r float32
		row := gv[i*n : (i+1)*n]
		for j, g := range row {
			ga := g * a[j]
			s += ga
			r += ga * cp.Vn[j]
		}
		naCur := cp.K[i] * (v[i] - cp.Vr[i]) * (v[i] - cp.Vt[i])
		dv[i] = (naCur - u[i] + r - s*v[i] + iin[i]) / cp.Cm[i]
		du[i] = cp.A[i] * (cp.B[i]*(v[i]-cp.Vr[i]) - u[i])
		da[i] = ad[i]
		dad[i] = -(a[i] + 2*ad[i]) / cp.Tau[i]
	}
}

// Step advances the simulation by one tick of duration dt (ms), subject
// to the input current vector iin (pA, length N).  The phase state, the
// Fired set, and (when STDP is on) the weight matrix and traces are
// updated in place; read results back through the V / U / A / Adot
// accessors.
//
// Order of operations each tick:
//  1. downstroke correction for cells that crossed the peak on the
//     previous step: V to the reset voltage c, U bumped by d, and a
//     unit impulse into Adot launching the alpha-function conductance
//     waveform of the cell's outgoing synapses.
//  2. STDP weight update and trace decay (when enabled).
//  3. midpoint integration of the packed state: two derivative
//     evaluations, second-order accurate.
//  4. peak detection: cells with V >= Vp are clamped to Vp for this
//     step's reported value and recorded in Fired for the next call.
//
// There are no error returns: dt stability relative to the fastest
// time constant is the caller's responsibility, and non-finite values
// from pathological parameters propagate rather than being checked in
// the hot path.
func (og *Organoid) Step(dt float32, iin []float32) {
	n := og.N
	cp := og.Cells
	v, u, ad := og.V(), og.U(), og.Adot()

	for i, fd := range og.Fired {
		if !fd {
			continue
		}
		v[i] = cp.C[i]
		u[i] += cp.D[i]
		ad[i] += 1
	}

	if og.STDP.On {
		og.stdpStep(dt)
	}

	og.Deriv(og.state, iin, og.k1)
	hdt := dt / 2
	for j, k := range og.k1 {
		og.state[j] += k * hdt
	}
	og.Deriv(og.state, iin, og.k2)
	// state is already half-advanced by k1, so finish with k2*dt - k1*dt/2
	for j := range og.state {
		og.state[j] += og.k2[j]*dt - og.k1[j]*hdt
	}

	for i := 0; i < n; i++ {
		fd := v[i] >= cp.Vp[i]
		og.Fired[i] = fd
		if fd {
			// clamp the reported peak; the downstroke itself happens
			// at the start of the next step
			v[i] = cp.Vp[i]
		}
	}
}

// stdpStep applies the triplet-rule weight updates for cells in the
// current Fired set and then evolves the traces.  Both weight updates
// read the trace values as they stood before this step's decay and
// increment.
func (og *Organoid) stdpStep(dt float32) {
	n := og.N
	gv := og.G.Values
	any := false
	for _, fd := range og.Fired {
		if fd {
			any = true
			break
		}
	}
	if any {
		// presynaptic spikes: depress the column of weights the fired
		// cell sends, keyed by its minus trace
		for j, fd := range og.Fired {
			if !fd {
				continue
			}
			dec := og.STDP.Aminus * og.Traces.Minus[j]
			for i := 0; i < n; i++ {
				gv[i*n+j] -= dec
			}
		}
		// postsynaptic spikes: potentiate the row of weights the fired
		// cell receives, by the presynaptic plus traces gated by the
		// cell's own slow y trace
		for i, fd := range og.Fired {
			if !fd {
				continue
			}
			mod := og.STDP.Aplus * og.Traces.Y[i]
			row := gv[i*n : (i+1)*n]
			for j := range row {
				row[j] += mod * og.Traces.Plus[j]
			}
		}
	}
	// traces decay even when no cell fired
	og.Traces.Decay(&og.STDP, dt)
	if any {
		og.Traces.Inc(og.Fired)
	}
}
