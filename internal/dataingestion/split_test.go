package dataingestion

import (
	"fmt"
	"goDataIngestion/pkg/utils"
	"math"
	"testing"
)

func TestTrainTestSplitFixture(t *testing.T) {
	train, test, err := TrainTestSplit(10, 0.2, 42)
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	if err := utils.GetGotExpErr("test", fmt.Sprint(test), "[7 5]"); err != nil {
		t.Errorf("%v", err)
		return
	}
	if err := utils.GetGotExpErr("train", fmt.Sprint(train), "[8 9 2 1 6 0 3 4]"); err != nil {
		t.Errorf("%v", err)
		return
	}

	train, test, err = TrainTestSplit(5, 0.2, 42)
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	if err := utils.GetGotExpErr("test 5", fmt.Sprint(test), "[0]"); err != nil {
		t.Errorf("%v", err)
		return
	}
	if err := utils.GetGotExpErr("train 5", fmt.Sprint(train), "[1 3 4 2]"); err != nil {
		t.Errorf("%v", err)
		return
	}
}

func TestTrainTestSplitSizes(t *testing.T) {
	for n := 5; n <= 200; n++ {
		train, test, err := TrainTestSplit(n, CDefaultTestSize, CDefaultRandomState)
		if err != nil {
			t.Errorf("n=%d: %v", n, err)
			return
		}
		if err := utils.GetGotExpErr(fmt.Sprintf("n=%d total", n), len(train)+len(test), n); err != nil {
			t.Errorf("%v", err)
			return
		}
		if diff := math.Abs(float64(len(test)) - 0.2*float64(n)); diff > 1 {
			t.Errorf("n=%d test=%d is not close to 20%%", n, len(test))
			return
		}

		seen := make(map[int]bool, n)
		for _, idx := range append(append([]int{}, train...), test...) {
			if idx < 0 || idx >= n || seen[idx] {
				t.Errorf("n=%d: index %d duplicated or out of range", n, idx)
				return
			}
			seen[idx] = true
		}
	}
}

func TestTrainTestSplitDeterminism(t *testing.T) {
	train1, test1, err := TrainTestSplit(57, 0.2, 42)
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	train2, test2, err := TrainTestSplit(57, 0.2, 42)
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	if err := utils.GetGotExpErr("same train", fmt.Sprint(train1), fmt.Sprint(train2)); err != nil {
		t.Errorf("%v", err)
		return
	}
	if err := utils.GetGotExpErr("same test", fmt.Sprint(test1), fmt.Sprint(test2)); err != nil {
		t.Errorf("%v", err)
		return
	}

	_, test3, err := TrainTestSplit(57, 0.2, 7)
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	if fmt.Sprint(test1) == fmt.Sprint(test3) {
		t.Errorf("different seeds gave the same test set %v", test1)
		return
	}
}

func TestTrainTestSplitErrors(t *testing.T) {
	cases := []struct {
		n        int
		testSize float64
	}{
		{0, 0.2},
		{1, 0.2},
		{10, 0},
		{10, 1},
		{10, -0.5},
	}
	for _, c := range cases {
		if _, _, err := TrainTestSplit(c.n, c.testSize, 42); err == nil {
			t.Errorf("n=%d testSize=%v: expected error", c.n, c.testSize)
			return
		}
	}
}
