//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package criterion defines configurable ROUGE scoring criteria.
package criterion

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"trpc.group/trpc-go/trpc-rouge-go/rouge"
)

// Criterion configures ROUGE scoring for pre-tokenized texts.
type Criterion struct {
	// Ignore skips ROUGE scoring when true.
	Ignore bool `json:"ignore,omitempty"`
	// RougeType selects the ROUGE variant and must be "rougeN" where N is a positive integer such as "rouge1" or "rouge2", "rougeL", or "rougeW".
	RougeType string `json:"rougeType,omitempty"`
	// Level selects summary or sentence granularity and defaults to "summary" when unset.
	Level Level `json:"level,omitempty"`
	// Measure selects which component is used as the primary score and defaults to "f1" when unset.
	Measure Measure `json:"measure,omitempty"`
	// Alpha overrides the default weight on recall in the F-measure when provided.
	Alpha *float64 `json:"alpha,omitempty"`
	// WeightFactor overrides the default ROUGE-W weight factor when provided and is ignored for other rouge types.
	WeightFactor *float64 `json:"weightFactor,omitempty"`
	// Threshold defines the minimum score requirement for each measure.
	Threshold Score `json:"threshold,omitempty"`
}

// Level selects the scoring granularity of a criterion.
type Level string

const (
	// LevelSummary scores whole multi-sentence texts.
	LevelSummary Level = "summary"
	// LevelSentence scores exactly one sentence per side.
	LevelSentence Level = "sentence"
)

// Measure selects which ROUGE component should be used as a scalar score.
type Measure string

const (
	// MeasureF1 uses the F-measure score.
	MeasureF1 Measure = "f1"
	// MeasurePrecision uses the precision score.
	MeasurePrecision Measure = "precision"
	// MeasureRecall uses the recall score.
	MeasureRecall Measure = "recall"
)

// Score holds ROUGE precision, recall and F1.
type Score struct {
	// Precision is the fraction of summary units that match the reference in range [0, 1].
	Precision float64 `json:"precision,omitempty"`
	// Recall is the fraction of reference units that are matched by the summary in range [0, 1].
	Recall float64 `json:"recall,omitempty"`
	// F1 is the weighted combination of precision and recall in range [0, 1].
	F1 float64 `json:"f1,omitempty"`
}

// MatchResult holds ROUGE scoring output for a single comparison.
type MatchResult struct {
	// RougeType is the configured ROUGE variant name.
	RougeType string
	// Measure is the score component used for Value.
	Measure Measure
	// Value is the scalar score selected by Measure.
	Value float64
	// Score holds the full precision/recall/F1 values.
	Score Score
	// Passed reports whether the computed scores meet the configured thresholds.
	Passed bool
}

// Reason formats the scoring output for display.
func (r MatchResult) Reason() string {
	return fmt.Sprintf("%s %s=%.6f precision=%.6f recall=%.6f f1=%.6f",
		r.RougeType, r.Measure, r.Value, r.Score.Precision, r.Score.Recall, r.Score.F1)
}

// Match scores summary against reference based on the configured options.
// Both texts are lists of pre-tokenized sentences, the summary first and
// the reference second.
func (c *Criterion) Match(ctx context.Context, summary, reference [][]string) (*MatchResult, error) {
	if c == nil {
		return nil, fmt.Errorf("rouge criterion is nil")
	}
	if c.Ignore {
		return &MatchResult{
			RougeType: c.RougeType,
			Measure:   MeasureF1,
			Value:     1.0,
			Score:     Score{Precision: 1.0, Recall: 1.0, F1: 1.0},
			Passed:    true,
		}, nil
	}
	if ctx == nil {
		return nil, fmt.Errorf("context is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.RougeType == "" {
		return nil, fmt.Errorf("rouge criterion requires rougeType")
	}
	measure := c.Measure
	if measure == "" {
		measure = MeasureF1
	}
	switch measure {
	case MeasureF1, MeasurePrecision, MeasureRecall:
	default:
		return nil, fmt.Errorf("unsupported rouge measure: %s", measure)
	}

	s, err := c.score(summary, reference)
	if err != nil {
		return nil, err
	}
	score := Score{Precision: s.Precision, Recall: s.Recall, F1: s.FMeasure}
	var value float64
	switch measure {
	case MeasureF1:
		value = score.F1
	case MeasurePrecision:
		value = score.Precision
	case MeasureRecall:
		value = score.Recall
	default:
		return nil, fmt.Errorf("unsupported rouge measure: %s", measure)
	}
	passed := score.Precision >= c.Threshold.Precision &&
		score.Recall >= c.Threshold.Recall &&
		score.F1 >= c.Threshold.F1
	return &MatchResult{
		RougeType: c.RougeType,
		Measure:   measure,
		Value:     value,
		Score:     score,
		Passed:    passed,
	}, nil
}

// MatchMulti scores one summary against several alternative references and
// returns the result with the highest F1.
func (c *Criterion) MatchMulti(ctx context.Context, summary [][]string, references ...[][]string) (*MatchResult, error) {
	if len(references) == 0 {
		return nil, fmt.Errorf("references are empty")
	}
	var best *MatchResult
	for _, reference := range references {
		result, err := c.Match(ctx, summary, reference)
		if err != nil {
			return nil, err
		}
		if best == nil || result.Score.F1 > best.Score.F1 {
			best = result
		}
	}
	return best, nil
}

// score dispatches to the engine variant selected by the criterion.
func (c *Criterion) score(summary, reference [][]string) (rouge.Score, error) {
	kind, n, err := parseRougeType(c.RougeType)
	if err != nil {
		return rouge.Score{}, err
	}
	level := c.Level
	if level == "" {
		level = LevelSummary
	}
	opt := make([]rouge.Option, 0, 2)
	if c.Alpha != nil {
		opt = append(opt, rouge.WithAlpha(*c.Alpha))
	}
	if c.WeightFactor != nil {
		opt = append(opt, rouge.WithWeightFactor(*c.WeightFactor))
	}

	switch level {
	case LevelSentence:
		if len(summary) != 1 || len(reference) != 1 {
			return rouge.Score{}, fmt.Errorf("sentence level requires exactly one sentence per side")
		}
		switch kind {
		case kindL:
			return rouge.SentenceL(summary[0], reference[0], opt...)
		case kindW:
			return rouge.SentenceW(summary[0], reference[0], opt...)
		default:
			return rouge.SentenceN(summary[0], reference[0], n, opt...)
		}
	case LevelSummary:
		switch kind {
		case kindL:
			return rouge.SummaryL(summary, reference, opt...)
		case kindW:
			return rouge.SummaryW(summary, reference, opt...)
		default:
			return rouge.SummaryN(summary, reference, n, opt...)
		}
	default:
		return rouge.Score{}, fmt.Errorf("unsupported rouge level: %s", level)
	}
}

// rougeKind is the parsed family of a ROUGE type identifier.
type rougeKind int

const (
	kindN rougeKind = iota
	kindL
	kindW
)

// parseRougeType parses a ROUGE type identifier such as rouge1, rougeL, or rougeW.
func parseRougeType(rougeType string) (rougeKind, int, error) {
	if rougeType == "rougeL" {
		return kindL, 0, nil
	}
	if rougeType == "rougeW" {
		return kindW, 0, nil
	}
	if !strings.HasPrefix(rougeType, "rouge") {
		return kindN, 0, fmt.Errorf("invalid rouge type: %s", rougeType)
	}
	nStr := strings.TrimPrefix(rougeType, "rouge")
	if nStr == "" {
		return kindN, 0, fmt.Errorf("invalid rouge type: %s", rougeType)
	}
	n, err := strconv.Atoi(nStr)
	if err != nil || n <= 0 {
		return kindN, 0, fmt.Errorf("invalid rouge type: %s", rougeType)
	}
	return kindN, n, nil
}
