//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWeightFn_Roundtrip verifies that inverseWeightFn undoes weightFn.
func TestWeightFn_Roundtrip(t *testing.T) {
	for _, v := range []float64{0, 1, 2.5, 7} {
		assert.InDelta(t, v, inverseWeightFn(weightFn(v, 1.2), 1.2), 1e-12)
	}
	assert.InDelta(t, math.Pow(2, 1.2), weightFn(2, 1.2), 1e-12)
}

// TestWlcsLength_ConsecutiveCredit verifies that a run of matches outweighs scattered ones.
func TestWlcsLength_ConsecutiveCredit(t *testing.T) {
	reference := []string{"w1", "w2", "w3", "w4"}
	consecutive := []string{"w1", "w2", "x", "y"}
	scattered := []string{"w1", "x", "w3", "y"}
	assert.Greater(t,
		wlcsLength(consecutive, reference, 1.2),
		wlcsLength(scattered, reference, 1.2),
	)
}

// TestWlcsLength_RunAccounting verifies the exact weighted total of a run plus a single match.
func TestWlcsLength_RunAccounting(t *testing.T) {
	// Matches split into the run [w1 w2] and the isolated [w4].
	got := wlcsLength([]string{"w1", "w2", "w3", "w4"}, []string{"w1", "w2", "w4"}, 1.2)
	assert.InDelta(t, math.Pow(2, 1.2)+1, got, 1e-12)

	assert.Zero(t, wlcsLength(nil, []string{"a"}, 1.2))
	assert.Zero(t, wlcsLength([]string{"a"}, nil, 1.2))
}
