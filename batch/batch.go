//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package batch scores many summary/reference pairs concurrently.
package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"trpc.group/trpc-go/trpc-rouge-go/criterion"
	"trpc.group/trpc-go/trpc-rouge-go/log"
)

// Pair is one summary/reference comparison. Both texts are lists of
// pre-tokenized sentences.
type Pair struct {
	// Summary is the candidate text to be scored.
	Summary [][]string
	// Reference is the text the summary is scored against.
	Reference [][]string
}

// Options holds the options for a batch run.
type Options struct {
	Parallelism   int                              // Parallelism is the number of pairs scored concurrently.
	RunIDSupplier func(ctx context.Context) string // RunIDSupplier is used to generate run IDs.
}

// Option defines a function type for configuring a batch run.
type Option func(*Options)

// NewOptions creates a new Options with the default values.
func NewOptions(opt ...Option) *Options {
	opts := &Options{
		Parallelism: 4,
		RunIDSupplier: func(ctx context.Context) string {
			return uuid.New().String()
		},
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithParallelism sets the number of pairs scored concurrently.
func WithParallelism(parallelism int) Option {
	return func(o *Options) {
		o.Parallelism = parallelism
	}
}

// WithRunIDSupplier sets the function used to generate run IDs.
// UUID generator is used by default.
func WithRunIDSupplier(s func(ctx context.Context) string) Option {
	return func(o *Options) {
		o.RunIDSupplier = s
	}
}

// Run scores every pair with the given criterion. Results keep the order
// of pairs; the slot of a failed pair is nil and its error is aggregated
// into the returned error.
func Run(ctx context.Context, crit *criterion.Criterion, pairs []Pair, opt ...Option) ([]*criterion.MatchResult, error) {
	if crit == nil {
		return nil, errors.New("criterion is nil")
	}
	opts := NewOptions(opt...)
	if opts.Parallelism <= 0 {
		return nil, errors.New("parallelism must be greater than 0")
	}
	if opts.RunIDSupplier == nil {
		return nil, errors.New("run id supplier is nil")
	}
	runID := opts.RunIDSupplier(ctx)
	log.Debugf("batch run %s: scoring %d pairs with parallelism %d", runID, len(pairs), opts.Parallelism)

	results := make([]*criterion.MatchResult, len(pairs))
	errs := make([]error, len(pairs))
	pool, err := newScorePool(opts.Parallelism)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := range pairs {
		param := scoreParamPool.Get().(*scoreParam)
		param.idx = i
		param.ctx = ctx
		param.crit = crit
		param.pair = pairs[i]
		param.results = results
		param.errs = errs
		param.wg = &wg
		wg.Add(1)
		if err := pool.Invoke(param); err != nil {
			wg.Done()
			param.reset()
			scoreParamPool.Put(param)
			errs[i] = fmt.Errorf("submit: %w", err)
		}
	}
	wg.Wait()

	var runErr error
	for i, e := range errs {
		if e == nil {
			continue
		}
		log.Warnf("batch run %s: pair %d failed: %v", runID, i, e)
		runErr = multierror.Append(runErr, fmt.Errorf("pair %d: %w", i, e))
	}
	log.Debugf("batch run %s: done", runID)
	return results, runErr
}
