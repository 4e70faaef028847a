//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import "errors"

// Sentinel errors for scoring argument validation.
var (
	// ErrInvalidAlpha is returned when the F-measure weight lies outside [0, 1].
	ErrInvalidAlpha = errors.New("rouge: alpha must be between [0, 1]")

	// ErrInvalidWeightFactor is returned when the ROUGE-W weight factor is not greater than 1.0.
	ErrInvalidWeightFactor = errors.New("rouge: weight factor must be > 1.0")

	// ErrInvalidN is returned when the n-gram order is not positive.
	ErrInvalidN = errors.New("rouge: n must be positive")
)
