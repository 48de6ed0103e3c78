package main

import (
	"errors"
	"runtime"
	"sort"
	"sync"
)

// KNN classifies by majority vote among the K nearest training points.
type KNN struct {
	K int
	X [][]float64
	y []int
}

// NewKNN creates and returns a new KNN model.
func NewKNN(k int) *KNN {
	return &KNN{K: k}
}

// Fit trains the model by simply storing the training data and labels.
// This is the "lazy" part of a KNN model.
func (m *KNN) Fit(X [][]float64, y []int) error {
	if len(X) != len(y) {
		return errors.New("the number of feature vectors must match the number of labels")
	}
	m.X = X
	m.y = y
	return nil
}

// Predict classifies every row of X, the rows split across the
// available cores.
func (m *KNN) Predict(X [][]float64) []int {
	if len(X) == 0 {
		return nil
	}

	out := make([]int, len(X))
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (len(X) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, len(X))
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				out[i] = m.predictSingle(X[i])
			}
		}(start, end)
	}

	wg.Wait()
	return out
}

// predictSingle keeps a small sorted list of the K closest training
// points and returns the winning class among them.
func (m *KNN) predictSingle(xi []float64) int {
	type pair struct {
		d float64
		v int
	}

	nbrs := make([]pair, 0, m.K+1)
	for j, xj := range m.X {
		distSquared := euclidSquared(xi, xj)
		neighbor := pair{d: distSquared, v: m.y[j]}

		if len(nbrs) < m.K {
			nbrs = append(nbrs, neighbor)
			sort.Slice(nbrs, func(a, b int) bool { return nbrs[a].d < nbrs[b].d })
		} else if distSquared < nbrs[len(nbrs)-1].d {
			nbrs[len(nbrs)-1] = neighbor
			sort.Slice(nbrs, func(a, b int) bool { return nbrs[a].d < nbrs[b].d })
		}
	}

	// Majority vote. Walking the neighbors closest-first means a tie
	// goes to the class of the nearer neighbor.
	votes := make(map[int]int)
	for _, p := range nbrs {
		votes[p.v]++
	}
	best, bestVotes := 0, 0
	for _, p := range nbrs {
		if votes[p.v] > bestVotes {
			best, bestVotes = p.v, votes[p.v]
		}
	}
	return best
}

// euclidSquared computes the squared Euclidean distance between two
// vectors. Squared distance orders neighbors the same and skips the
// square root.
func euclidSquared(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Accuracy is the share of predictions matching the true labels.
func Accuracy(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	c := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue))
}
