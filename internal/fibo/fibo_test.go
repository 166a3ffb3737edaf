package fibo

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeKnownValues(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 3},
		{5, 5},
		{10, 55},
		{20, 6765},
		{30, 832040},
	}

	for _, tt := range tests {
		var words strings.Builder
		got, err := Compute(tt.n, &words)
		if err != nil {
			t.Fatalf("Compute(%d) returned error: %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("Compute(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestComputeRecurrence(t *testing.T) {
	prev2, _ := Compute(1, nil)
	prev1, _ := Compute(2, nil)
	for n := 3; n <= 25; n++ {
		got, err := Compute(n, nil)
		require.NoError(t, err)
		assert.Equal(t, prev2+prev1, got, "n=%d", n)
		prev2, prev1 = prev1, got
	}
}

func TestComputeBaseCasesDoNotAppend(t *testing.T) {
	for _, n := range []int{-3, 0, 1, 2} {
		var words strings.Builder
		got, err := Compute(n, &words)
		require.NoError(t, err)
		assert.Equal(t, 1, got)
		assert.Zero(t, words.Len(), "n=%d should not record words", n)
	}
}

func TestComputeWords(t *testing.T) {
	var words strings.Builder
	got, err := Compute(10, &words)
	require.NoError(t, err)
	assert.Equal(t, 55, got)

	assert.Equal(t, 54, NonBaseCalls(10))
	assert.Equal(t, 1458, words.Len())
	assert.Equal(t, WordsLen(10), words.Len())
	assert.Equal(t, strings.Repeat(Alphabet, 54), words.String())
}

func TestComputeWordsReproducible(t *testing.T) {
	var first, second strings.Builder
	_, err := Compute(15, &first)
	require.NoError(t, err)
	_, err = Compute(15, &second)
	require.NoError(t, err)
	assert.Equal(t, first.String(), second.String())
}

func TestNonBaseCallsMatchesFib(t *testing.T) {
	for n := 1; n <= 20; n++ {
		fib, err := Compute(n, nil)
		require.NoError(t, err)
		assert.Equal(t, fib-1, NonBaseCalls(n), "n=%d", n)
	}
}

func TestComputeLimit(t *testing.T) {
	for _, n := range []int{31, 40, 1000} {
		var words strings.Builder
		got, err := Compute(n, &words)
		if !errors.Is(err, ErrLimitExceeded) {
			t.Fatalf("Compute(%d) error = %v, want ErrLimitExceeded", n, err)
		}
		if got != 0 {
			t.Errorf("Compute(%d) = %d on error, want 0", n, got)
		}
		if words.Len() != 0 {
			t.Errorf("Compute(%d) appended %d bytes before failing", n, words.Len())
		}
	}
}
