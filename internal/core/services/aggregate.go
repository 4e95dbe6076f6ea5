package services

import "context"

// ItemSuccess pairs a work item with the data its operation produced.
type ItemSuccess[T, R any] struct {
	Item T
	Data R
}

// ItemFailure pairs a work item with the failure message that stopped it.
type ItemFailure[T any] struct {
	Item T
	Err  string
}

// AggregateResult collects the outcomes of a multi-item operation.
// Ordering within each list follows the input order of the items.
type AggregateResult[T, R any] struct {
	Successes []ItemSuccess[T, R]
	Failures  []ItemFailure[T]
}

// RunAll executes op for each item in input order. An item that fails
// validation goes straight to Failures without op being invoked; an error
// from op is captured as that item's failure and never aborts the
// remaining items. validate may be nil.
//
// Execution is sequential: item counts here are small and the backend
// already parallelises nothing on our behalf.
func RunAll[T, R any](
	ctx context.Context,
	items []T,
	validate func(T) error,
	op func(context.Context, T) (R, error),
) AggregateResult[T, R] {
	var result AggregateResult[T, R]

	for _, item := range items {
		if validate != nil {
			if err := validate(item); err != nil {
				result.Failures = append(result.Failures, ItemFailure[T]{Item: item, Err: err.Error()})
				continue
			}
		}

		data, err := op(ctx, item)
		if err != nil {
			result.Failures = append(result.Failures, ItemFailure[T]{Item: item, Err: err.Error()})
			continue
		}
		result.Successes = append(result.Successes, ItemSuccess[T, R]{Item: item, Data: data})
	}

	return result
}
