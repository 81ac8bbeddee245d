package services

import (
	exchangerates "github.com/malusev998/exchange-rates"
)

// Resolve picks the commercial rate when present and falls back to the
// National Bank rate otherwise. The fallback may itself be absent.
func Resolve(primary, fallback exchangerates.Rate) exchangerates.Rate {
	if primary.Valid {
		return primary
	}

	return fallback
}

func quote(rate exchangerates.ExchangeRate) exchangerates.Quote {
	return exchangerates.Quote{
		Sale:     Resolve(rate.SaleRate, rate.SaleRateNB),
		Purchase: Resolve(rate.PurchaseRate, rate.PurchaseRateNB),
	}
}

// Format projects the requested currencies out of every successful day.
// Days that failed, carry no date, have no exchangeRate list or miss any of
// the codes are skipped. Input order is preserved.
func Format(results []exchangerates.DayResult, codes []exchangerates.Code) []exchangerates.OutputRecord {
	records := make([]exchangerates.OutputRecord, 0, len(results))

	for _, result := range results {
		if !result.Ok() || result.Rates.Date == "" || result.Rates.ExchangeRate == nil {
			continue
		}

		if record, ok := formatDay(result.Rates, codes); ok {
			records = append(records, record)
		}
	}

	return records
}

func formatDay(day *exchangerates.DayRates, codes []exchangerates.Code) (exchangerates.OutputRecord, bool) {
	quotes := make([]exchangerates.CurrencyQuote, 0, len(codes))

	for _, code := range codes {
		rate, ok := day.Find(code)
		if !ok {
			return exchangerates.OutputRecord{}, false
		}

		quotes = append(quotes, exchangerates.CurrencyQuote{Code: code, Quote: quote(rate)})
	}

	return exchangerates.OutputRecord{Date: day.Date, Quotes: quotes}, true
}
