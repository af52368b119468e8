package dataingestion

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

// TrainTestSplit shuffles the row indexes [0,n) with a generator seeded by
// seed and returns ceil(testSize*n) of them as the test set, the rest as the
// train set. Both slices follow the shuffled order.
func TrainTestSplit(n int, testSize float64, seed int64) (train, test []int, err error) {
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, errors.New(fmt.Sprintf("testSize must be in (0,1), got %v", testSize))
	}
	if n <= 0 {
		return nil, nil, errors.New("cannot split an empty table")
	}
	nTest := int(math.Ceil(testSize * float64(n)))
	nTrain := n - nTest
	if nTrain <= 0 {
		return nil, nil, errors.New(fmt.Sprintf(
			"with n_samples=%d and testSize=%v the train set would be empty", n, testSize))
	}

	indices := rand.New(rand.NewSource(seed)).Perm(n)
	test = indices[:nTest]
	train = indices[nTest:]
	return train, test, nil
}
