package korbit

import "time"

// QueryOption tunes list queries such as open orders and trade history.
type QueryOption func(*QueryOptions)

// QueryOptions holds the optional parameters of a list query.
// A nil StartTime or EndTime is left off the request.
type QueryOptions struct {
	Limit     int
	StartTime *time.Time
	EndTime   *time.Time
}

// WithLimit caps the number of records returned.
func WithLimit(limit int) QueryOption {
	return func(o *QueryOptions) {
		o.Limit = limit
	}
}

// WithStartTime restricts results to those at or after start.
func WithStartTime(start time.Time) QueryOption {
	return func(o *QueryOptions) {
		o.StartTime = &start
	}
}

// WithEndTime restricts results to those at or before end.
func WithEndTime(end time.Time) QueryOption {
	return func(o *QueryOptions) {
		o.EndTime = &end
	}
}

// WithTimeRange sets both ends of the time window.
func WithTimeRange(start, end time.Time) QueryOption {
	return func(o *QueryOptions) {
		o.StartTime = &start
		o.EndTime = &end
	}
}

// ApplyQueryOptions folds opts over a QueryOptions with the given default limit.
func ApplyQueryOptions(defaultLimit int, opts ...QueryOption) *QueryOptions {
	o := &QueryOptions{Limit: defaultLimit}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
