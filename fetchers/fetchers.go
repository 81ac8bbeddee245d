package fetchers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	exchangerates "github.com/malusev998/exchange-rates"
)

const PrivatBankURL = "https://api.privatbank.ua/p24api/exchange_rates"

var (
	ErrClient  = errors.New("client error")
	ErrServer  = errors.New("server error")
	ErrUnknown = errors.New("unknown error")
)

type BaseConfig struct {
	URL     string
	Timeout time.Duration
}

func handleHTTPStatusCodeError(res *http.Response) error {
	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		return nil
	case res.StatusCode >= 400 && res.StatusCode < 500:
		return fmt.Errorf("%w: http %d", ErrClient, res.StatusCode)
	case res.StatusCode >= 500:
		return fmt.Errorf("%w: http %d", ErrServer, res.StatusCode)
	default:
		return fmt.Errorf("%w: http %d", ErrUnknown, res.StatusCode)
	}
}

func parseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		raw = PrivatBankURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse base url: unsupported scheme %q", u.Scheme)
	}

	return u, nil
}

// getData builds the archive request for a single date. The API expects a
// bare "json" key, so the query is written by hand instead of url.Values.
func getData(ctx context.Context, base *url.URL, date time.Time) (*http.Request, error) {
	u := *base
	u.RawQuery = "json&date=" + url.QueryEscape(exchangerates.FormatDate(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/json")

	return req, nil
}
