//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

// SummaryN scores a multi-sentence summary against a multi-sentence
// reference with ROUGE-N. Both texts are flattened into one token
// sequence per side and scored at sentence level.
func SummaryN(summaries, references [][]string, n int, opt ...Option) (Score, error) {
	return SentenceN(flattenSentences(summaries), flattenSentences(references), n, opt...)
}

// SummaryL scores a multi-sentence summary against a multi-sentence
// reference with summary-level ROUGE-L. Every reference sentence takes
// the union of its LCS matches against all summary sentences, and a
// global unigram budget on both texts keeps any token occurrence from
// being credited twice. Denominators are the total token counts.
func SummaryL(summaries, references [][]string, opt ...Option) (Score, error) {
	opts := newOptions(opt...)
	if err := opts.validateAlpha(); err != nil {
		return Score{}, err
	}
	hits := 0
	for _, kept := range unionHits(summaries, references) {
		hits += len(kept)
	}
	return newScore(
		float64(hits),
		float64(totalTokens(references)),
		float64(totalTokens(summaries)),
		opts.alpha,
	), nil
}

// SummaryW scores a multi-sentence summary against a multi-sentence
// reference with summary-level ROUGE-W. Match indices are credited
// exactly as in SummaryL, then every maximal run of consecutive
// reference positions contributes its weighted run credit. Totals are
// normalized through the inverse weight function as at sentence level,
// so a summary identical to a single-sentence reference scores exactly 1.
func SummaryW(summaries, references [][]string, opt ...Option) (Score, error) {
	opts := newOptions(opt...)
	if err := opts.validateAlpha(); err != nil {
		return Score{}, err
	}
	if err := opts.validateWeightFactor(); err != nil {
		return Score{}, err
	}
	weighted := 0.0
	for _, kept := range unionHits(summaries, references) {
		for _, run := range consecutiveRuns(kept) {
			weighted += weightFn(float64(run), opts.weightFactor)
		}
	}
	recall := inverseWeightFn(
		divideOrZero(weighted, weightFn(float64(totalTokens(references)), opts.weightFactor)),
		opts.weightFactor,
	)
	precision := inverseWeightFn(
		divideOrZero(weighted, weightFn(float64(totalTokens(summaries)), opts.weightFactor)),
		opts.weightFactor,
	)
	return Score{
		Precision: precision,
		Recall:    recall,
		FMeasure:  fMeasure(precision, recall, opts.alpha),
	}, nil
}

// totalTokens counts the tokens of a multi-sentence text.
func totalTokens(sentences [][]string) int {
	total := 0
	for _, s := range sentences {
		total += len(s)
	}
	return total
}

// unionHits returns the credited reference-side match indices for every
// reference sentence, in ascending order. A position is credited only
// while the global unigram budgets of both texts remain positive, and
// crediting decrements both budgets.
func unionHits(summaries, references [][]string) [][]int {
	summaryBudget := make(map[string]int)
	for _, s := range summaries {
		for _, token := range s {
			summaryBudget[token]++
		}
	}
	referenceBudget := make(map[string]int)
	for _, s := range references {
		for _, token := range s {
			referenceBudget[token]++
		}
	}

	credited := make([][]int, 0, len(references))
	for _, reference := range references {
		union := lcsUnion(summaries, reference)
		kept := make([]int, 0, len(union))
		for _, idx := range union {
			token := reference[idx]
			if summaryBudget[token] <= 0 || referenceBudget[token] <= 0 {
				continue
			}
			summaryBudget[token]--
			referenceBudget[token]--
			kept = append(kept, idx)
		}
		credited = append(credited, kept)
	}
	return credited
}

// consecutiveRuns splits ascending indices into the lengths of their
// maximal consecutive runs.
func consecutiveRuns(indices []int) []int {
	if len(indices) == 0 {
		return nil
	}
	runs := make([]int, 0, len(indices))
	run := 1
	for i := 1; i < len(indices); i++ {
		if indices[i] == indices[i-1]+1 {
			run++
			continue
		}
		runs = append(runs, run)
		run = 1
	}
	runs = append(runs, run)
	return runs
}
