// Copyright (c) 2021, The Drylab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stdp

import (
	"testing"

	"github.com/chewxy/math32"
)

const difTol = float32(1.0e-5)

func TestDefaults(t *testing.T) {
	sp := Params{}
	sp.Defaults()
	if sp.TauPlus != 15 || sp.TauMinus != 35 || sp.TauY != 115 {
		t.Errorf("trace time constants wrong: %v %v %v", sp.TauPlus, sp.TauMinus, sp.TauY)
	}
	if sp.Aplus != 6.5e-3 || sp.Aminus != 7e-3 {
		t.Errorf("learning rates wrong: %v %v", sp.Aplus, sp.Aminus)
	}
	if sp.On {
		t.Errorf("Defaults must not turn the rule on")
	}
}

func TestDecayExact(t *testing.T) {
	sp := Params{}
	sp.Defaults()
	tr := Traces{}
	tr.Init(3)
	for i := range tr.Plus {
		tr.Plus[i] = 1
		tr.Minus[i] = 1
		tr.Y[i] = 1
	}
	dt := float32(0.5)
	nsteps := 20
	for s := 0; s < nsteps; s++ {
		tr.Decay(&sp, dt)
	}
	tot := dt * float32(nsteps)
	corp := math32.Exp(-tot / sp.TauPlus)
	corm := math32.Exp(-tot / sp.TauMinus)
	cory := math32.Exp(-tot / sp.TauY)
	for i := range tr.Plus {
		if math32.Abs(tr.Plus[i]-corp) > difTol {
			t.Errorf("plus trace: idx %v got %v want %v", i, tr.Plus[i], corp)
		}
		if math32.Abs(tr.Minus[i]-corm) > difTol {
			t.Errorf("minus trace: idx %v got %v want %v", i, tr.Minus[i], corm)
		}
		if math32.Abs(tr.Y[i]-cory) > difTol {
			t.Errorf("y trace: idx %v got %v want %v", i, tr.Y[i], cory)
		}
	}
}

func TestIncOnlyFired(t *testing.T) {
	tr := Traces{}
	tr.Init(4)
	tr.Inc([]bool{false, true, false, true})
	want := []float32{0, 1, 0, 1}
	for i := range want {
		if tr.Plus[i] != want[i] || tr.Minus[i] != want[i] || tr.Y[i] != want[i] {
			t.Errorf("idx %v: traces %v %v %v, want %v", i, tr.Plus[i], tr.Minus[i], tr.Y[i], want[i])
		}
	}
}
