package main

import "fmt"

const (
	neighbors = 3
	testRatio = 0.2
	splitSeed = 42
)

func main() {
	X, y, err := LoadIris()
	if err != nil {
		fmt.Println(err)
		return
	}

	XTrain, XTest, yTrain, yTest := TrainTestSplit(X, y, testRatio, splitSeed)

	model := NewKNN(neighbors)
	if err := model.Fit(XTrain, yTrain); err != nil {
		fmt.Println(err)
		return
	}

	accuracy := Accuracy(yTest, model.Predict(XTest))
	fmt.Printf("Accuracy: %.2f%%\n", accuracy*100)
}
