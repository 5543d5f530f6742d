package utils

import (
	"context"
	"time"
)

// Query budgets. Point lookups and writes use the default; exports and reports
// scan whole tables and get the slow budget.
const (
	DefaultQueryTimeout = 30 * time.Second
	FastQueryTimeout    = 10 * time.Second
	SlowQueryTimeout    = 60 * time.Second
)

// GetQueryContext derives a context bounded by timeout from parentCtx.
func GetQueryContext(parentCtx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	return context.WithTimeout(parentCtx, timeout)
}

func GetDefaultQueryContext(parentCtx context.Context) (context.Context, context.CancelFunc) {
	return GetQueryContext(parentCtx, DefaultQueryTimeout)
}

func GetFastQueryContext(parentCtx context.Context) (context.Context, context.CancelFunc) {
	return GetQueryContext(parentCtx, FastQueryTimeout)
}

func GetSlowQueryContext(parentCtx context.Context) (context.Context, context.CancelFunc) {
	return GetQueryContext(parentCtx, SlowQueryTimeout)
}
