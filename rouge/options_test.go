//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewOptions_Defaults verifies the default alpha and weight factor pass validation.
func TestNewOptions_Defaults(t *testing.T) {
	opts := newOptions()
	assert.InDelta(t, DefaultAlpha, opts.alpha, 1e-12)
	assert.InDelta(t, DefaultWeightFactor, opts.weightFactor, 1e-12)
	require.NoError(t, opts.validateAlpha())
	require.NoError(t, opts.validateWeightFactor())
}

// TestNewOptions_Overrides verifies that options replace the defaults.
func TestNewOptions_Overrides(t *testing.T) {
	opts := newOptions(WithAlpha(0.25), WithWeightFactor(1.5))
	assert.InDelta(t, 0.25, opts.alpha, 1e-12)
	assert.InDelta(t, 1.5, opts.weightFactor, 1e-12)
}

// TestOptions_BoundaryAlpha verifies that the inclusive alpha bounds validate.
func TestOptions_BoundaryAlpha(t *testing.T) {
	require.NoError(t, newOptions(WithAlpha(0)).validateAlpha())
	require.NoError(t, newOptions(WithAlpha(1)).validateAlpha())
	require.Error(t, newOptions(WithAlpha(1.0000001)).validateAlpha())
}
