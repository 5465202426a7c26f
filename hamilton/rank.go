// SPDX-License-Identifier: MIT
// Package: hamcycle/hamilton
//
// rank.go - lexicographic rank/unrank of k-combinations of [0,n).
//
// The order matches gonum's combin.CombinationGenerator:
// [0 1 2], [0 1 3], ..., [0 2 3], ..., [n-3 n-2 n-1].
//
// Overflow:
//   • combin.Binomial wraps silently once its intermediate product exceeds
//     int. binomial uses it only when log C(n,k) leaves room for that
//     product, and otherwise multiplies in 128 bits, reporting overflow when
//     C(n,k) itself does not fit in an int.

package hamilton

import (
	"fmt"
	"math"
	"math/bits"

	"gonum.org/v1/gonum/stat/combin"
)

// logMaxInt is ln(MaxInt) minus a margin for float rounding.
var logMaxInt = math.Log(float64(math.MaxInt)) - 1e-6

// Rank returns the lexicographic index of comb among all k-combinations of
// [0,n), where k = len(comb). comb must be strictly increasing.
//
// Complexity: O(n) binomial lookups.
func Rank(comb []int, n int) (int, error) {
	k := len(comb)
	if err := checkCombination(comb, n); err != nil {
		return 0, err
	}
	// Every prefix block counts a subset of C(n,k), so one check covers the sums.
	if _, ok := binomial(n, k); !ok {
		return 0, fmt.Errorf("Rank: C(%d,%d) overflows int: %w", n, k, ErrTooManyCombinations)
	}

	var (
		idx  int
		prev = -1
	)
	for i, c := range comb {
		// Count the combinations that start with the same prefix but a smaller
		// element at position i.
		for j := prev + 1; j < c; j++ {
			block, _ := binomial(n-1-j, k-1-i)
			idx += block
		}
		prev = c
	}

	return idx, nil
}

// Unrank is the inverse of Rank: it returns the k-combination of [0,n) at
// lexicographic position index. dst is reused when it has length k.
func Unrank(dst []int, index, n, k int) ([]int, error) {
	if n < 0 || k < 0 || k > n {
		return nil, fmt.Errorf("Unrank: n=%d k=%d: %w", n, k, ErrBadCombination)
	}
	total, ok := binomial(n, k)
	if !ok {
		return nil, fmt.Errorf("Unrank: C(%d,%d) overflows int: %w", n, k, ErrTooManyCombinations)
	}
	if index < 0 || index >= total {
		return nil, fmt.Errorf("Unrank: index=%d not in [0,%d): %w", index, total, ErrIndexOutOfRange)
	}
	if len(dst) != k {
		dst = make([]int, k)
	}

	next := 0
	for i := 0; i < k; i++ {
		for c := next; c < n; c++ {
			block, _ := binomial(n-1-c, k-1-i)
			if index < block {
				dst[i] = c
				next = c + 1
				break
			}
			index -= block
		}
	}

	return dst, nil
}

func checkCombination(comb []int, n int) error {
	if len(comb) > n {
		return fmt.Errorf("Rank: k=%d > n=%d: %w", len(comb), n, ErrBadCombination)
	}
	prev := -1
	for _, c := range comb {
		if c <= prev || c >= n {
			return fmt.Errorf("Rank: %v over n=%d: %w", comb, n, ErrBadCombination)
		}
		prev = c
	}

	return nil
}

// binomial returns C(n,k), with C(n,k)=0 for k>n or negative input. ok is
// false when the result does not fit in an int.
func binomial(n, k int) (c int, ok bool) {
	if n < 0 || k < 0 || k > n {
		return 0, true
	}
	k = min(k, n-k)
	if k == 0 {
		return 1, true
	}
	// combin.Binomial's largest intermediate is at most k·C(n,k).
	if combin.LogGeneralizedBinomial(float64(n), float64(k))+math.Log(float64(k)) < logMaxInt {
		return combin.Binomial(n, k), true
	}

	var b uint64 = 1
	for i := 1; i <= k; i++ {
		hi, lo := bits.Mul64(b, uint64(n-k+i))
		if hi >= uint64(i) {
			return 0, false
		}
		// b·(n-k+i) is divisible by i: the quotient is C(n-k+i, i).
		b, _ = bits.Div64(hi, lo, uint64(i))
		if b > math.MaxInt {
			return 0, false
		}
	}

	return int(b), true
}
