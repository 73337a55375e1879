// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package pricing

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Forest is a bagged ensemble of CART regression trees.
type Forest struct {
	trees       []*regressionTree
	numFeatures int
}

type treeNode struct {
	feature   int
	threshold float64
	value     float64
	left      int32
	right     int32
}

func (n *treeNode) isLeaf() bool {
	return n.left < 0
}

// regressionTree stores its nodes in a flat slice; node 0 is the root.
type regressionTree struct {
	nodes []treeNode
}

func (t *regressionTree) predict(x []float64) float64 {
	i := int32(0)
	for {
		n := &t.nodes[i]
		if n.isLeaf() {
			return n.value
		}
		if x[n.feature] <= n.threshold {
			i = n.left
		} else {
			i = n.right
		}
	}
}

// FitForest trains cfg.NumTrees trees on bootstrap samples of (x, y). Tree i
// draws from its own generator seeded with cfg.Seed+i, so the result does not
// depend on cfg.Workers. ctx is checked before each tree starts.
//
//nolint:gocritic // hugeParam: cfg passed by value for immutability
func FitForest(ctx context.Context, cfg ForestConfig, x [][]float64, y []float64) (*Forest, error) {
	if len(x) == 0 {
		return nil, ErrNoSamples
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("feature rows (%d) and targets (%d) differ in length", len(x), len(y))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	f := &Forest{
		trees:       make([]*regressionTree, cfg.NumTrees),
		numFeatures: len(x[0]),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < cfg.NumTrees; i++ {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b := &treeBuilder{
				cfg: cfg,
				x:   x,
				y:   y,
				rng: rand.New(rand.NewSource(cfg.Seed + int64(i))), //nolint:gosec // reproducible model training
			}
			f.trees[i] = b.build(b.bootstrap())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fit forest: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fit forest: %w", err)
	}
	return f, nil
}

// Predict returns the mean prediction of all trees.
func (f *Forest) Predict(x []float64) float64 {
	var sum float64
	for _, t := range f.trees {
		sum += t.predict(x)
	}
	return sum / float64(len(f.trees))
}

// Size returns the number of trees.
func (f *Forest) Size() int {
	return len(f.trees)
}

// R2 returns the coefficient of determination of the forest on (x, y).
func (f *Forest) R2(x [][]float64, y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	var mean float64
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))

	var ssRes, ssTot float64
	for i := range x {
		d := y[i] - f.Predict(x[i])
		ssRes += d * d
		t := y[i] - mean
		ssTot += t * t
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}

type treeBuilder struct {
	cfg   ForestConfig
	x     [][]float64
	y     []float64
	rng   *rand.Rand
	nodes []treeNode
}

func (b *treeBuilder) bootstrap() []int {
	n := len(b.x)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = b.rng.Intn(n)
	}
	return idx
}

func (b *treeBuilder) build(idx []int) *regressionTree {
	b.nodes = make([]treeNode, 0, 64)
	b.grow(idx, 0)
	return &regressionTree{nodes: b.nodes}
}

// grow appends the subtree for idx and returns its node index.
func (b *treeBuilder) grow(idx []int, depth int) int32 {
	self := int32(len(b.nodes))
	b.nodes = append(b.nodes, treeNode{value: b.mean(idx), left: -1, right: -1})

	if depth >= b.cfg.MaxDepth || len(idx) < b.cfg.MinSamplesSplit {
		return self
	}

	s, ok := b.bestSplit(idx)
	if !ok {
		return self
	}

	left := make([]int, 0, len(idx))
	right := make([]int, 0, len(idx))
	for _, i := range idx {
		if b.x[i][s.feature] <= s.threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	l := b.grow(left, depth+1)
	r := b.grow(right, depth+1)
	n := &b.nodes[self]
	n.feature = s.feature
	n.threshold = s.threshold
	n.left = l
	n.right = r
	return self
}

type split struct {
	feature   int
	threshold float64
	sse       float64
}

// bestSplit finds the threshold minimizing the summed squared error of the
// two children. Thresholds sit halfway between distinct adjacent values.
func (b *treeBuilder) bestSplit(idx []int) (split, bool) {
	n := len(idx)
	minLeaf := b.cfg.MinSamplesLeaf

	var total, totalSq float64
	for _, i := range idx {
		total += b.y[i]
		totalSq += b.y[i] * b.y[i]
	}
	parentSSE := totalSq - total*total/float64(n)
	if parentSSE <= 1e-12 {
		return split{}, false
	}

	best := split{sse: parentSSE}
	found := false
	sorted := make([]int, n)

	for _, feature := range b.candidateFeatures() {
		copy(sorted, idx)
		sort.Slice(sorted, func(a, c int) bool {
			return b.x[sorted[a]][feature] < b.x[sorted[c]][feature]
		})

		var leftSum, leftSq float64
		for k := 0; k < n-1; k++ {
			yi := b.y[sorted[k]]
			leftSum += yi
			leftSq += yi * yi

			nl := k + 1
			nr := n - nl
			if nl < minLeaf {
				continue
			}
			if nr < minLeaf {
				break
			}
			cur := b.x[sorted[k]][feature]
			next := b.x[sorted[k+1]][feature]
			if cur == next {
				continue
			}

			rightSum := total - leftSum
			rightSq := totalSq - leftSq
			sse := leftSq - leftSum*leftSum/float64(nl) + rightSq - rightSum*rightSum/float64(nr)
			if sse < best.sse-1e-12 {
				best = split{feature: feature, threshold: (cur + next) / 2, sse: sse}
				found = true
			}
		}
	}
	return best, found
}

func (b *treeBuilder) candidateFeatures() []int {
	p := len(b.x[0])
	if b.cfg.MaxFeatures <= 0 || b.cfg.MaxFeatures >= p {
		all := make([]int, p)
		for i := range all {
			all[i] = i
		}
		return all
	}
	return b.rng.Perm(p)[:b.cfg.MaxFeatures]
}

func (b *treeBuilder) mean(idx []int) float64 {
	if len(idx) == 0 {
		return 0
	}
	var sum float64
	for _, i := range idx {
		sum += b.y[i]
	}
	return sum / float64(len(idx))
}

// errCanceled reports whether err stems from context cancellation.
func errCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
