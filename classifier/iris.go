package main

import (
	_ "embed"
	"fmt"
	"math/rand"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

//go:embed iris.csv
var irisCSV string

const speciesColumn = "species"

// LoadIris reads the bundled iris dataset into a feature matrix and
// integer class labels, species numbered in order of first appearance.
func LoadIris() ([][]float64, []int, error) {
	df := dataframe.ReadCSV(strings.NewReader(irisCSV))
	if df.Err != nil {
		return nil, nil, fmt.Errorf("error reading iris data: %w", df.Err)
	}

	features := df.Drop(speciesColumn)
	if features.Err != nil {
		return nil, nil, fmt.Errorf("error selecting features: %w", features.Err)
	}

	cols := make([][]float64, 0, features.Ncol())
	for _, name := range features.Names() {
		cols = append(cols, features.Col(name).Float())
	}

	X := make([][]float64, features.Nrow())
	for i := range X {
		row := make([]float64, len(cols))
		for j := range cols {
			row[j] = cols[j][i]
		}
		X[i] = row
	}

	y := encodeLabels(df.Col(speciesColumn).Records())
	return X, y, nil
}

func encodeLabels(species []string) []int {
	classes := make(map[string]int)
	y := make([]int, len(species))
	for i, s := range species {
		idx, ok := classes[s]
		if !ok {
			idx = len(classes)
			classes[s] = idx
		}
		y[i] = idx
	}
	return y
}

// TrainTestSplit shuffles the rows with the given seed and carves off
// testRatio of them as the test set.
func TrainTestSplit(X [][]float64, y []int, testRatio float64, seed int64) (XTrain, XTest [][]float64, yTrain, yTest []int) {
	rng := rand.New(rand.NewSource(seed))
	indices := rng.Perm(len(X))
	nTest := int(float64(len(X)) * testRatio)
	for i, idx := range indices {
		if i < nTest {
			XTest = append(XTest, X[idx])
			yTest = append(yTest, y[idx])
		} else {
			XTrain = append(XTrain, X[idx])
			yTrain = append(yTrain, y[idx])
		}
	}
	return
}
