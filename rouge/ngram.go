//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import "strings"

// ngramCounts is a multiset of n-grams keyed by a delimiter-joined token sequence.
type ngramCounts map[string]int

// countNgrams builds the n-gram multiset of tokens. The result is empty
// when fewer than n tokens are given.
func countNgrams(tokens []string, n int) ngramCounts {
	if n <= 0 || len(tokens) < n {
		return ngramCounts{}
	}
	counts := make(ngramCounts, len(tokens)-n+1)
	for i := 0; i <= len(tokens)-n; i++ {
		key := strings.Join(tokens[i:i+n], "\x00")
		counts[key]++
	}
	return counts
}

// numNgrams returns the number of n-gram positions in tokens, zero when
// the sequence is shorter than n. Score denominators count positions, not
// distinct n-grams.
func numNgrams(tokens []string, n int) int {
	if len(tokens) < n {
		return 0
	}
	return len(tokens) - n + 1
}

// clippedOverlap sums the per-key minimum of two multisets. The result is
// symmetric in its arguments.
func clippedOverlap(a, b ngramCounts) int {
	overlap := 0
	for key, cnt := range a {
		if other, ok := b[key]; ok {
			if other < cnt {
				cnt = other
			}
			overlap += cnt
		}
	}
	return overlap
}

// flattenSentences concatenates sentences into a single token sequence,
// preserving sentence order.
func flattenSentences(sentences [][]string) []string {
	total := 0
	for _, s := range sentences {
		total += len(s)
	}
	flat := make([]string, 0, total)
	for _, s := range sentences {
		flat = append(flat, s...)
	}
	return flat
}
