//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import "math"

// weightFn raises a match-run length to the weight factor. Factors above
// 1.0 reward longer consecutive runs super-linearly.
func weightFn(v, weightFactor float64) float64 {
	return math.Pow(v, weightFactor)
}

// inverseWeightFn inverts weightFn so normalized scores return to [0, 1].
func inverseWeightFn(v, weightFactor float64) float64 {
	return math.Pow(v, 1/weightFactor)
}

// wlcsLength computes the weighted longest common subsequence statistic of
// x and y. Extending a consecutive match run from length k to k+1 adds
// weightFn(k+1) - weightFn(k), so a finished run of length k contributes
// weightFn(k) in total.
func wlcsLength(x, y []string, weightFactor float64) float64 {
	if len(x) == 0 || len(y) == 0 {
		return 0
	}
	prevWeighted := make([]float64, len(y)+1)
	currWeighted := make([]float64, len(y)+1)
	prevRun := make([]int, len(y)+1)
	currRun := make([]int, len(y)+1)
	for i := 1; i <= len(x); i++ {
		currWeighted[0] = 0
		currRun[0] = 0
		for j := 1; j <= len(y); j++ {
			if x[i-1] == y[j-1] {
				run := prevRun[j-1]
				currWeighted[j] = prevWeighted[j-1] +
					weightFn(float64(run+1), weightFactor) - weightFn(float64(run), weightFactor)
				currRun[j] = run + 1
				continue
			}
			currRun[j] = 0
			if prevWeighted[j] > currWeighted[j-1] {
				currWeighted[j] = prevWeighted[j]
			} else {
				currWeighted[j] = currWeighted[j-1]
			}
		}
		prevWeighted, currWeighted = currWeighted, prevWeighted
		prevRun, currRun = currRun, prevRun
	}
	return prevWeighted[len(y)]
}
