package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	exchangerates "github.com/malusev998/exchange-rates"
)

const maxBodyBytes = 1 << 20

type PrivatBankFetcher struct {
	URL    string
	Client *http.Client
}

func NewPrivatBankFetcher(config BaseConfig) PrivatBankFetcher {
	return PrivatBankFetcher{
		URL:    config.URL,
		Client: &http.Client{Timeout: config.Timeout},
	}
}

func (p PrivatBankFetcher) fetchDay(ctx context.Context, client *http.Client, base *url.URL, date time.Time) (*exchangerates.DayRates, error) {
	req, err := getData(ctx, base, date)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if err := handleHTTPStatusCodeError(res); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var data exchangerates.DayRates
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &data, nil
}

// Fetch requests every date concurrently. The result at index i always
// belongs to dates[i]; a failed date carries its error in the slot and
// never cancels the others.
func (p PrivatBankFetcher) Fetch(ctx context.Context, dates []time.Time) ([]exchangerates.DayResult, error) {
	base, err := parseBaseURL(p.URL)
	if err != nil {
		return nil, err
	}

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	results := make([]exchangerates.DayResult, len(dates))

	var g errgroup.Group

	for i, date := range dates {
		g.Go(func() error {
			rates, err := p.fetchDay(ctx, client, base, date)
			if err != nil {
				err = fmt.Errorf("fetch %s: %w", exchangerates.FormatDate(date), err)
			}

			results[i] = exchangerates.DayResult{Date: date, Rates: rates, Err: err}

			return nil
		})
	}

	_ = g.Wait()

	return results, nil
}
