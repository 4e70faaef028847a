//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package rouge implements ROUGE scoring for pre-tokenized text.
//
// The package provides sentence-level and summary-level variants of
// ROUGE-N, ROUGE-L and ROUGE-W over token sequences. Callers perform
// tokenization, casing and stemming up front; a sentence is a []string
// of tokens and a multi-sentence text is a [][]string.
package rouge

// Score holds ROUGE precision, recall and F-measure.
type Score struct {
	// Precision is the fraction of summary units that match the reference in range [0, 1].
	Precision float64
	// Recall is the fraction of reference units that are matched by the summary in range [0, 1].
	Recall float64
	// FMeasure is the weighted combination of precision and recall in range [0, 1].
	FMeasure float64
}

// divideOrZero divides numerator by denominator and returns zero for a
// zero denominator instead of NaN or infinity.
func divideOrZero(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// fMeasure computes the weighted F-measure of precision and recall.
// Alpha is the weight placed on recall; 0.5 reduces to the balanced F1
// harmonic mean. The caller validates alpha.
func fMeasure(precision, recall, alpha float64) float64 {
	return divideOrZero(precision*recall, (1-alpha)*precision+alpha*recall)
}

// newScore assembles a Score from a match count and the recall and
// precision denominators. Division is zero-safe on both axes.
func newScore(matches, recallDenominator, precisionDenominator, alpha float64) Score {
	recall := divideOrZero(matches, recallDenominator)
	precision := divideOrZero(matches, precisionDenominator)
	return Score{
		Precision: precision,
		Recall:    recall,
		FMeasure:  fMeasure(precision, recall, alpha),
	}
}
