package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunAll_AllSucceed tests the happy path preserves input order.
func TestRunAll_AllSucceed(t *testing.T) {
	result := RunAll(context.Background(), []int{1, 2, 3}, nil,
		func(_ context.Context, n int) (int, error) {
			return n * 10, nil
		})

	require.Len(t, result.Successes, 3)
	assert.Empty(t, result.Failures)
	assert.Equal(t, 10, result.Successes[0].Data)
	assert.Equal(t, 20, result.Successes[1].Data)
	assert.Equal(t, 30, result.Successes[2].Data)
}

// TestRunAll_PartialFailure tests that one failing item never aborts the
// remaining items, and both lists keep input order.
func TestRunAll_PartialFailure(t *testing.T) {
	result := RunAll(context.Background(), []string{"a", "b", "c", "d"}, nil,
		func(_ context.Context, s string) (string, error) {
			if s == "b" {
				return "", errors.New("backend rejected b")
			}
			return s + "!", nil
		})

	require.Len(t, result.Successes, 3)
	require.Len(t, result.Failures, 1)

	assert.Equal(t, "a", result.Successes[0].Item)
	assert.Equal(t, "c", result.Successes[1].Item)
	assert.Equal(t, "d", result.Successes[2].Item)
	assert.Equal(t, "b", result.Failures[0].Item)
	assert.Equal(t, "backend rejected b", result.Failures[0].Err)
}

// TestRunAll_ValidationShortCircuits tests that an invalid item goes to
// Failures without the operation being invoked.
func TestRunAll_ValidationShortCircuits(t *testing.T) {
	opCalls := 0
	result := RunAll(context.Background(), []int{1, -2, 3},
		func(n int) error {
			if n < 0 {
				return fmt.Errorf("negative item %d", n)
			}
			return nil
		},
		func(_ context.Context, n int) (int, error) {
			opCalls++
			return n, nil
		})

	assert.Equal(t, 2, opCalls)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, -2, result.Failures[0].Item)
	assert.Equal(t, "negative item -2", result.Failures[0].Err)
}

// TestRunAll_Empty tests the degenerate empty input.
func TestRunAll_Empty(t *testing.T) {
	result := RunAll(context.Background(), nil, nil,
		func(_ context.Context, n int) (int, error) {
			t.Fatal("op must not be called")
			return 0, nil
		})

	assert.Empty(t, result.Successes)
	assert.Empty(t, result.Failures)
}

// TestRunAll_AllFail tests that an all-failure run is still a normal result.
func TestRunAll_AllFail(t *testing.T) {
	result := RunAll(context.Background(), []int{1, 2}, nil,
		func(_ context.Context, n int) (int, error) {
			return 0, fmt.Errorf("item %d failed", n)
		})

	assert.Empty(t, result.Successes)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, "item 1 failed", result.Failures[0].Err)
	assert.Equal(t, "item 2 failed", result.Failures[1].Err)
}
