// Copyright (c) 2021, The Drylab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package organoid is the overall repository for the drylab simulated
organoid: a population of conductance-synapse Izhikevich spiking neurons
with optional triplet STDP learning, implemented in the Go language
(golang), intended to be driven one tick at a time by a real-time
control loop.

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* organoid: the core simulation -- per-cell parameters and presets,
the packed phase-state buffer with aliased V / U / A / Adot views,
the midpoint integrator with the two-phase spike-reset protocol, and
the embedded triplet-STDP weight update.

* stdp: the triplet spike-timing-dependent plasticity parameters and
the three-trace storage, as a standalone param subpackage.

* cpg: a central pattern generator built on the core -- half-center
oscillator populations from the cell presets, proprioceptive feedback
currents, and an actuator readout, plus a synthetic proprioception
environment for running without hardware.

* examples: these compile into runnable programs.  examples/forward
runs the CPG headless and datalogs to CSV; examples/bench benchmarks
stepping cost on a random culture.

The hardware side of the original robot (PRU ADC access, actuator PWM,
real-time loop synchronization) lives outside this repository; its only
contract with the core is an input-current vector in and the voltage
state out, once per tick.
*/
package organoid
