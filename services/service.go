package services

import (
	"context"
	"errors"
	"log"
	"time"

	exchangerates "github.com/malusev998/exchange-rates"
)

var ErrNoCurrencies = errors.New("no currencies to extract")

var _ exchangerates.Service = Service{}

// Service ties the fetcher to the formatter. Codes defaults to EUR and USD;
// Logger, when set, receives the per-date failures Format drops.
type Service struct {
	Fetcher exchangerates.Fetcher
	Codes   []exchangerates.Code
	Now     func() time.Time
	Logger  *log.Logger
}

func (s Service) codes() []exchangerates.Code {
	if s.Codes == nil {
		return exchangerates.DefaultCodes
	}

	return s.Codes
}

// Results fetches the raw per-day results for the last days days.
func (s Service) Results(ctx context.Context, days int) ([]exchangerates.DayResult, error) {
	if days < exchangerates.MinDays || days > exchangerates.MaxDays {
		return nil, exchangerates.ErrDaysOutOfRange
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	return s.Fetcher.Fetch(ctx, exchangerates.RequestDates(now(), days))
}

func (s Service) Collect(ctx context.Context, days int) ([]exchangerates.OutputRecord, error) {
	codes := s.codes()
	if len(codes) == 0 {
		return nil, ErrNoCurrencies
	}

	results, err := s.Results(ctx, days)
	if err != nil {
		return nil, err
	}

	if s.Logger != nil {
		for _, result := range results {
			if result.Err != nil {
				s.Logger.Printf("skipping %s: %v", exchangerates.FormatDate(result.Date), result.Err)
			}
		}
	}

	return Format(results, codes), nil
}
