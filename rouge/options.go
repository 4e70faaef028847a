//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

// Scoring defaults applied when no option overrides them.
const (
	// DefaultAlpha is the weight placed on recall in the F-measure.
	DefaultAlpha = 0.5
	// DefaultWeightFactor is the ROUGE-W exponent applied to consecutive match runs.
	DefaultWeightFactor = 1.2
)

// options holds internal configuration for ROUGE scoring.
type options struct {
	// alpha is the weight placed on recall in the F-measure.
	alpha float64
	// weightFactor is the exponent applied to consecutive match runs in ROUGE-W.
	weightFactor float64
}

// newOptions applies functional options to build a scoring configuration.
func newOptions(opt ...Option) *options {
	opts := &options{
		alpha:        DefaultAlpha,
		weightFactor: DefaultWeightFactor,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// validateAlpha checks that the F-measure weight lies in [0, 1].
func (o *options) validateAlpha() error {
	if o.alpha < 0 || o.alpha > 1 {
		return ErrInvalidAlpha
	}
	return nil
}

// validateWeightFactor checks that the ROUGE-W exponent rewards longer runs.
func (o *options) validateWeightFactor() error {
	if o.weightFactor <= 1.0 {
		return ErrInvalidWeightFactor
	}
	return nil
}

// Option configures ROUGE scoring.
type Option func(*options)

// WithAlpha sets the weight placed on recall when combining precision and
// recall into the F-measure. Valid values lie in [0, 1].
func WithAlpha(alpha float64) Option {
	return func(o *options) {
		o.alpha = alpha
	}
}

// WithWeightFactor sets the ROUGE-W weighting exponent. Valid values are
// greater than 1.0.
func WithWeightFactor(weightFactor float64) Option {
	return func(o *options) {
		o.weightFactor = weightFactor
	}
}
