//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"trpc.group/trpc-go/trpc-rouge-go/criterion"
)

type scoreParam struct {
	idx     int
	ctx     context.Context
	crit    *criterion.Criterion
	pair    Pair
	results []*criterion.MatchResult
	errs    []error
	wg      *sync.WaitGroup
}

func (p *scoreParam) reset() {
	p.idx = 0
	p.ctx = nil
	p.crit = nil
	p.pair = Pair{}
	p.results = nil
	p.errs = nil
	p.wg = nil
}

var scoreParamPool = &sync.Pool{
	New: func() any { return new(scoreParam) },
}

func newScorePool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*scoreParam)
		if !ok {
			panic("score pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			scoreParamPool.Put(param)
		}()
		result, err := param.crit.Match(param.ctx, param.pair.Summary, param.pair.Reference)
		if err != nil {
			param.errs[param.idx] = err
			return
		}
		param.results[param.idx] = result
	})
	if err != nil {
		return nil, fmt.Errorf("create score pool: %w", err)
	}
	return pool, nil
}
