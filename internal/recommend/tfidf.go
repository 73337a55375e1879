// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package recommend

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// DefaultMaxFeatures caps the vocabulary of a Vectorizer.
const DefaultMaxFeatures = 5000

// Vectorizer embeds a batch of documents into a TF-IDF space of unigrams and
// bigrams. A Vectorizer is fit to exactly one batch; build a new one for every
// request so vocabularies never leak between unrelated catalogs.
type Vectorizer struct {
	maxFeatures int

	vocab map[string]int
	idf   []float64
}

// sparseVector maps vocabulary index to weight.
type sparseVector map[int]float64

// NewVectorizer creates an unfitted vectorizer. A non-positive maxFeatures
// selects DefaultMaxFeatures.
func NewVectorizer(maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	return &Vectorizer{maxFeatures: maxFeatures}
}

// VocabularySize returns the number of terms kept by the last fit.
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocab)
}

// Similarities fits the vectorizer on the item documents plus the user
// document and returns the cosine similarity of the user document with each
// item document, in item order. Every value is in [0, 1].
func (v *Vectorizer) Similarities(itemDocs []string, userDoc string) []float64 {
	docs := make([]string, 0, len(itemDocs)+1)
	docs = append(docs, itemDocs...)
	docs = append(docs, userDoc)

	vectors := v.FitTransform(docs)
	user := vectors[len(vectors)-1]

	sims := make([]float64, len(itemDocs))
	for i := range itemDocs {
		sims[i] = cosine(user, vectors[i])
	}
	return sims
}

// FitTransform learns the vocabulary and idf weights of docs and returns one
// L2-normalized vector per document.
func (v *Vectorizer) FitTransform(docs []string) []sparseVector {
	analyzed := make([][]string, len(docs))
	for i, d := range docs {
		analyzed[i] = analyze(d)
	}

	v.fit(analyzed)

	vectors := make([]sparseVector, len(analyzed))
	for i, terms := range analyzed {
		vectors[i] = v.transform(terms)
	}
	return vectors
}

type termStat struct {
	term      string
	df        int
	firstSeen int
}

func (v *Vectorizer) fit(analyzed [][]string) {
	stats := make(map[string]*termStat)
	order := 0
	for _, terms := range analyzed {
		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			st, ok := stats[t]
			if !ok {
				st = &termStat{term: t, firstSeen: order}
				stats[t] = st
				order++
			}
			if _, dup := seen[t]; !dup {
				seen[t] = struct{}{}
				st.df++
			}
		}
	}

	ranked := make([]*termStat, 0, len(stats))
	for _, st := range stats {
		ranked = append(ranked, st)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].df != ranked[j].df {
			return ranked[i].df > ranked[j].df
		}
		return ranked[i].firstSeen < ranked[j].firstSeen
	})
	if len(ranked) > v.maxFeatures {
		ranked = ranked[:v.maxFeatures]
	}

	n := float64(len(analyzed))
	v.vocab = make(map[string]int, len(ranked))
	v.idf = make([]float64, len(ranked))
	for i, st := range ranked {
		v.vocab[st.term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(st.df))) + 1
	}
}

func (v *Vectorizer) transform(terms []string) sparseVector {
	vec := make(sparseVector)
	for _, t := range terms {
		if idx, ok := v.vocab[t]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for idx, tf := range vec {
		w := tf * v.idf[idx]
		vec[idx] = w
		norm += w * w
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for idx := range vec {
		vec[idx] /= norm
	}
	return vec
}

// cosine returns the dot product of two L2-normalized vectors, clamped to
// [0, 1]. Zero vectors have similarity 0.
func cosine(a, b sparseVector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for idx, w := range a {
		dot += w * b[idx]
	}
	switch {
	case dot < 0:
		return 0
	case dot > 1:
		return 1
	default:
		return dot
	}
}

// analyze lowercases doc, tokenizes it into word runs of two or more
// characters, removes stop words, and appends bigrams of adjacent tokens.
func analyze(doc string) []string {
	tokens := tokenize(doc)
	if len(tokens) == 0 {
		return nil
	}
	terms := make([]string, 0, 2*len(tokens)-1)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

func tokenize(doc string) []string {
	fields := strings.FieldsFunc(strings.ToLower(doc), func(r rune) bool {
		return !isWordRune(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) < 2 || IsStopWord(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
