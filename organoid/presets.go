// Copyright (c) 2021, The Drylab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package organoid

import "github.com/goki/ki/kit"

// CellClass are the named neuron archetypes with preset coefficient
// tuples, from Dynamical Systems in Neuroscience.  NB: several of these
// models have extra bonus features in the book, used to more accurately
// reproduce electrophysiological traces in the appropriate model
// organisms (LTS caps u and lets it shift the effective threshold and
// reset; several types have piecewise-linear u nullclines).  Those are
// not modeled here.
type CellClass int

//go:generate stringer -type=CellClass

var KiT_CellClass = kit.Enums.AddEnum(CellClassN, kit.NotBitFlag, nil)

func (ev CellClass) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *CellClass) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The cell classes
const (
	// RegularSpiking is the typical excitatory cortical pyramidal cell
	RegularSpiking CellClass = iota

	// IntrinsicallyBursting fires an initial burst then single spikes
	IntrinsicallyBursting

	// Chattering fires high-frequency bursts of spikes
	Chattering

	// LowThresholdSpiking is an inhibitory interneuron with rebound spikes
	LowThresholdSpiking

	// LateSpiking is an inhibitory interneuron with delayed spike onset
	LateSpiking

	CellClassN
)

// CellDefaults is the ordered 11-coefficient tuple defining one cell
// archetype: a, b, c, d, C, k, Vr, Vt, Vp, Vn, tau.
type CellDefaults struct {
	A, B, C, D, Cm, K, Vr, Vt, Vp, Vn, Tau float32
}

// Presets maps each cell archetype to its coefficient tuple.  It is
// initialized once at process start and read-only thereafter: callers
// use it to build homogeneous populations, never to mutate at runtime.
// Excitatory classes carry a 0 mV reversal potential, inhibitory ones
// -70 mV.
var Presets = map[CellClass]CellDefaults{
	RegularSpiking:        {0.03, -2, -50, 100, 100, 0.7, -60, -40, 35, 0, 5},
	IntrinsicallyBursting: {0.01, 5, -56, 130, 150, 1.2, -75, -45, 50, 0, 5},
	Chattering:            {0.03, 1, -40, 150, 50, 1.5, -60, -40, 25, 0, 5},
	LowThresholdSpiking:   {0.03, 8, -53, 20, 100, 1.0, -56, -42, 20, -70, 20},
	LateSpiking:           {0.17, 5, -45, 100, 20, 0.3, -66, -40, 30, -70, 20},
}
