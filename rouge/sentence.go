//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

// SentenceN scores a summary sentence against a reference sentence with
// ROUGE-N. Overlap counts are clipped per n-gram, recall divides by the
// reference n-gram positions and precision by the summary n-gram
// positions. n must be positive; sentences shorter than n score zero.
func SentenceN(summary, reference []string, n int, opt ...Option) (Score, error) {
	opts := newOptions(opt...)
	if err := opts.validateAlpha(); err != nil {
		return Score{}, err
	}
	if n < 1 {
		return Score{}, ErrInvalidN
	}
	overlap := clippedOverlap(countNgrams(summary, n), countNgrams(reference, n))
	return newScore(
		float64(overlap),
		float64(numNgrams(reference, n)),
		float64(numNgrams(summary, n)),
		opts.alpha,
	), nil
}

// SentenceL scores a summary sentence against a reference sentence with
// ROUGE-L. The match count is the longest common subsequence length and
// the denominators are the raw token counts of each side.
func SentenceL(summary, reference []string, opt ...Option) (Score, error) {
	opts := newOptions(opt...)
	if err := opts.validateAlpha(); err != nil {
		return Score{}, err
	}
	length := lcsLength(summary, reference)
	return newScore(
		float64(length),
		float64(len(reference)),
		float64(len(summary)),
		opts.alpha,
	), nil
}

// SentenceW scores a summary sentence against a reference sentence with
// ROUGE-W, the weighted LCS variant that favors consecutive matches.
// Recall and precision pass through the inverse weight function so
// identical sequences score exactly 1.
func SentenceW(summary, reference []string, opt ...Option) (Score, error) {
	opts := newOptions(opt...)
	if err := opts.validateAlpha(); err != nil {
		return Score{}, err
	}
	if err := opts.validateWeightFactor(); err != nil {
		return Score{}, err
	}
	weighted := wlcsLength(summary, reference, opts.weightFactor)
	recall := inverseWeightFn(
		divideOrZero(weighted, weightFn(float64(len(reference)), opts.weightFactor)),
		opts.weightFactor,
	)
	precision := inverseWeightFn(
		divideOrZero(weighted, weightFn(float64(len(summary)), opts.weightFactor)),
		opts.weightFactor,
	)
	return Score{
		Precision: precision,
		Recall:    recall,
		FMeasure:  fMeasure(precision, recall, opts.alpha),
	}, nil
}
