package fibo

import (
	"errors"
	"fmt"
	"strings"
)

// MaxN is the largest n Compute accepts.
const MaxN = 30

// Alphabet is appended to the accumulator once per non-base call.
const Alphabet = "abcdefghijklmnopqrstuvwxyz "

// ErrLimitExceeded is returned when n is above MaxN
var ErrLimitExceeded = errors.New("fibo: n exceeds limit")

// Compute returns the n-th Fibonacci number (Fib(1) = Fib(2) = 1) using naive
// double recursion. Every non-base call appends Alphabet to words.
// words may be nil, in which case nothing is recorded.
func Compute(n int, words *strings.Builder) (int, error) {
	if n > MaxN {
		return 0, fmt.Errorf("%w: n=%d, max=%d", ErrLimitExceeded, n, MaxN)
	}
	return fibo(n, words), nil
}

func fibo(n int, words *strings.Builder) int {
	if n <= 2 {
		return 1
	}

	if words != nil {
		words.WriteString(Alphabet)
	}

	a := fibo(n-2, words)
	b := fibo(n-1, words)

	return a + b
}

// NonBaseCalls returns how many times Compute recurses past the base case for n.
// This is Fib(n)-1 for n >= 1.
func NonBaseCalls(n int) int {
	if n <= 2 {
		return 0
	}
	return 1 + NonBaseCalls(n-2) + NonBaseCalls(n-1)
}

// WordsLen returns the expected accumulator length for n
func WordsLen(n int) int {
	return NonBaseCalls(n) * len(Alphabet)
}
