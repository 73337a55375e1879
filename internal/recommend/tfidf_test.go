// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package recommend

import (
	"fmt"
	"math"
	"reflect"
	"testing"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "unigrams and bigrams",
			doc:  "Veggie Pizza main",
			want: []string{"veggie", "pizza", "main", "veggie pizza", "pizza main"},
		},
		{
			name: "stop words removed before bigrams",
			doc:  "pasta with the sauce",
			want: []string{"pasta", "sauce", "pasta sauce"},
		},
		{
			name: "single characters dropped",
			doc:  "a b cd",
			want: []string{"cd"},
		},
		{
			name: "hyphen splits tokens",
			doc:  "gluten-free",
			want: []string{"gluten", "free", "gluten free"},
		},
		{
			name: "empty",
			doc:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := analyze(tt.doc)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("analyze(%q) = %v, want %v", tt.doc, got, tt.want)
			}
		})
	}
}

func TestVectorizer_SelfSimilarity(t *testing.T) {
	t.Parallel()

	doc := "spicy thai noodles vegetarian"
	sims := NewVectorizer(0).Similarities([]string{doc, "chocolate cake"}, doc)

	if math.Abs(sims[0]-1.0) > 1e-9 {
		t.Errorf("identical documents similarity = %f, want 1.0", sims[0])
	}
	if sims[1] != 0 {
		t.Errorf("disjoint documents similarity = %f, want 0", sims[1])
	}
}

func TestVectorizer_EmptyUserDocument(t *testing.T) {
	t.Parallel()

	sims := NewVectorizer(0).Similarities([]string{"pizza", "pasta"}, "")
	for i, s := range sims {
		if s != 0 {
			t.Errorf("sims[%d] = %f, want 0", i, s)
		}
	}
}

func TestVectorizer_SmoothIDF(t *testing.T) {
	t.Parallel()

	v := NewVectorizer(0)
	v.FitTransform([]string{"pizza", "pizza pasta"})

	n := 2.0
	wantPizza := math.Log((1+n)/(1+2)) + 1
	wantPasta := math.Log((1+n)/(1+1)) + 1

	if got := v.idf[v.vocab["pizza"]]; math.Abs(got-wantPizza) > 1e-12 {
		t.Errorf("idf(pizza) = %f, want %f", got, wantPizza)
	}
	if got := v.idf[v.vocab["pasta"]]; math.Abs(got-wantPasta) > 1e-12 {
		t.Errorf("idf(pasta) = %f, want %f", got, wantPasta)
	}
}

func TestVectorizer_MaxFeaturesKeepsMostFrequent(t *testing.T) {
	t.Parallel()

	v := NewVectorizer(2)
	v.FitTransform([]string{"rare common", "common shared", "common shared"})

	if v.VocabularySize() != 2 {
		t.Fatalf("VocabularySize() = %d, want 2", v.VocabularySize())
	}
	for _, term := range []string{"common", "shared"} {
		if _, ok := v.vocab[term]; !ok {
			t.Errorf("expected %q in vocabulary", term)
		}
	}
	if _, ok := v.vocab["rare"]; ok {
		t.Error("expected rare to be cut from vocabulary")
	}
}

func TestVectorizer_MaxFeaturesTieKeepsFirstSeen(t *testing.T) {
	t.Parallel()

	// zeta, alpha and omega all have document frequency 1.
	v := NewVectorizer(2)
	v.FitTransform([]string{"zeta alpha", "omega"})

	want := map[string]int{"zeta": 0, "alpha": 1}
	if len(v.vocab) != len(want) {
		t.Fatalf("vocab = %v, want %v", v.vocab, want)
	}
	for term, idx := range want {
		if got, ok := v.vocab[term]; !ok || got != idx {
			t.Errorf("vocab[%q] = %d (present %v), want %d", term, got, ok, idx)
		}
	}
	if _, ok := v.vocab["omega"]; ok {
		t.Error("expected omega, seen last, to be cut at the cap")
	}
}

func TestVectorizer_Deterministic(t *testing.T) {
	t.Parallel()

	docs := make([]string, 50)
	for i := range docs {
		docs[i] = fmt.Sprintf("dish%d special sauce item%d", i%7, i%3)
	}
	first := NewVectorizer(10).Similarities(docs, "special sauce dish3")
	for run := 0; run < 5; run++ {
		again := NewVectorizer(10).Similarities(docs, "special sauce dish3")
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs from first run", run)
		}
	}
}

func TestVectorizer_SimilarityBounds(t *testing.T) {
	t.Parallel()

	docs := []string{"pizza", "spicy pizza", "spicy", "cake", "mild cake with cream"}
	sims := NewVectorizer(0).Similarities(docs, "spicy pizza cream")
	for i, s := range sims {
		if s < 0 || s > 1 {
			t.Errorf("sims[%d] = %f, out of [0, 1]", i, s)
		}
	}
}
