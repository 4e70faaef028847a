//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import "sort"

// Moves recorded while filling the LCS trace table. Ties between the up
// and left branches resolve left; the summary-level union depends on this
// order.
const (
	traceDiagonal byte = 'd'
	traceUp       byte = 'u'
	traceLeft     byte = 'l'
)

// matchPair is one aligned token position of a longest common subsequence.
type matchPair struct {
	// xi is the 0-based index into the first sequence.
	xi int
	// yi is the 0-based index into the second sequence.
	yi int
}

// lcsLength computes the length of the longest common subsequence of x
// and y using two rolling table rows.
func lcsLength(x, y []string) int {
	if len(x) == 0 || len(y) == 0 {
		return 0
	}
	prev := make([]int, len(y)+1)
	curr := make([]int, len(y)+1)
	for i := 1; i <= len(x); i++ {
		curr[0] = 0
		for j := 1; j <= len(y); j++ {
			if x[i-1] == y[j-1] {
				curr[j] = prev[j-1] + 1
				continue
			}
			if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(y)]
}

// lcsTrace builds the LCS length table together with the move taken at
// each cell. The up move is recorded only when the upper prefix is
// strictly longer.
func lcsTrace(x, y []string) ([][]int, [][]byte) {
	rows, cols := len(x), len(y)
	lengths := make([][]int, rows+1)
	trace := make([][]byte, rows+1)
	for i := range lengths {
		lengths[i] = make([]int, cols+1)
		trace[i] = make([]byte, cols+1)
	}
	for i := 1; i <= rows; i++ {
		for j := 1; j <= cols; j++ {
			switch {
			case x[i-1] == y[j-1]:
				lengths[i][j] = lengths[i-1][j-1] + 1
				trace[i][j] = traceDiagonal
			case lengths[i-1][j] > lengths[i][j-1]:
				lengths[i][j] = lengths[i-1][j]
				trace[i][j] = traceUp
			default:
				lengths[i][j] = lengths[i][j-1]
				trace[i][j] = traceLeft
			}
		}
	}
	return lengths, trace
}

// lcsMatches returns the aligned index pairs of one longest common
// subsequence of x and y, in ascending order on both sides. The trace
// tie-break makes the chosen pairs deterministic.
func lcsMatches(x, y []string) []matchPair {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	lengths, trace := lcsTrace(x, y)
	i, j := len(x), len(y)
	pairs := make([]matchPair, 0, lengths[i][j])
	for i > 0 && j > 0 {
		switch trace[i][j] {
		case traceDiagonal:
			pairs = append(pairs, matchPair{xi: i - 1, yi: j - 1})
			i--
			j--
		case traceUp:
			i--
		default:
			j--
		}
	}
	for left, right := 0, len(pairs)-1; left < right; left, right = left+1, right-1 {
		pairs[left], pairs[right] = pairs[right], pairs[left]
	}
	return pairs
}

// lcsUnion returns the sorted union of reference-side match indices of the
// longest common subsequences between each summary sentence and reference.
func lcsUnion(summaries [][]string, reference []string) []int {
	seen := make(map[int]struct{})
	for _, summary := range summaries {
		for _, pair := range lcsMatches(summary, reference) {
			seen[pair.yi] = struct{}{}
		}
	}
	union := make([]int, 0, len(seen))
	for idx := range seen {
		union = append(union, idx)
	}
	sort.Ints(union)
	return union
}
