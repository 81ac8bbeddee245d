package exchangerates

import (
	"context"
	"time"
)

type (
	Fetcher interface {
		Fetch(ctx context.Context, dates []time.Time) ([]DayResult, error)
	}

	Service interface {
		Collect(ctx context.Context, days int) ([]OutputRecord, error)
	}
)
