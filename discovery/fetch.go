package discovery

import "context"

// Result carries data together with where it came from. When a live call
// fails Data holds the fallback, UsingMockData is set and Error keeps the
// raw failure message for display.
type Result[T any] struct {
	Data          T      `json:"data"`
	UsingMockData bool   `json:"usingMockData"`
	Error         string `json:"error,omitempty"`
}

// Fetch runs live once. Any error yields fallback tagged as mock data.
// There is no retry; calling Fetch again is the retry.
func Fetch[T any](ctx context.Context, live func(context.Context) (T, error), fallback T) Result[T] {
	data, err := live(ctx)
	if err != nil {
		return Result[T]{Data: fallback, UsingMockData: true, Error: err.Error()}
	}
	return Result[T]{Data: data}
}

// Live wraps data that was obtained without a network call.
func Live[T any](data T) Result[T] {
	return Result[T]{Data: data}
}
