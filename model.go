package exchangerates

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Rate is an optional exchange rate value. An absent or null JSON value
// decodes into a Rate that is not Valid.
type Rate struct {
	decimal.NullDecimal
	// fractional is set when the literal had a fraction or an exponent.
	fractional bool
}

func isFractional(literal string) bool {
	return strings.ContainsAny(literal, ".eE")
}

func NewRate(value string) Rate {
	return Rate{
		NullDecimal: decimal.NewNullDecimal(decimal.RequireFromString(value)),
		fractional:  isFractional(value),
	}
}

func (r *Rate) UnmarshalJSON(data []byte) error {
	if err := r.NullDecimal.UnmarshalJSON(data); err != nil {
		return err
	}

	r.fractional = r.Valid && isFractional(string(data))

	return nil
}

// MarshalJSON writes the rate as a bare JSON number. Fractional literals
// lose their trailing zeros but keep at least one decimal place, so
// 37.4500000 becomes 37.45 and 20.0000000 becomes 20.0; integer literals
// are written unchanged.
func (r Rate) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}

	str := r.Decimal.String()
	if r.fractional && !strings.Contains(str, ".") {
		str += ".0"
	}

	return []byte(str), nil
}

func (r Rate) String() string {
	if !r.Valid {
		return "null"
	}

	return r.Decimal.String()
}

type (
	ExchangeRate struct {
		BaseCurrency   string `json:"baseCurrency"`
		Currency       string `json:"currency"`
		SaleRateNB     Rate   `json:"saleRateNB"`
		PurchaseRateNB Rate   `json:"purchaseRateNB"`
		SaleRate       Rate   `json:"saleRate"`
		PurchaseRate   Rate   `json:"purchaseRate"`
	}

	// DayRates is the PrivatBank archive payload for a single date.
	// ExchangeRate is nil when the key is missing from the payload.
	DayRates struct {
		Date            string         `json:"date"`
		Bank            string         `json:"bank"`
		BaseCurrencyLit string         `json:"baseCurrencyLit"`
		ExchangeRate    []ExchangeRate `json:"exchangeRate"`
	}

	// DayResult is the outcome of fetching one date. Exactly one of Rates
	// and Err is set.
	DayResult struct {
		Date  time.Time
		Rates *DayRates
		Err   error
	}

	Quote struct {
		Sale     Rate `json:"sale"`
		Purchase Rate `json:"purchase"`
	}

	CurrencyQuote struct {
		Code  Code
		Quote Quote
	}

	// OutputRecord maps a date, as reported by the API, to the quotes of
	// the requested currencies. It is encoded as a single-key JSON object.
	OutputRecord struct {
		Date   string
		Quotes []CurrencyQuote
	}
)

func (r DayResult) Ok() bool {
	return r.Err == nil && r.Rates != nil
}

// Find returns the first entry for the given currency.
func (d *DayRates) Find(code Code) (ExchangeRate, bool) {
	for _, rate := range d.ExchangeRate {
		if rate.Currency == string(code) {
			return rate, true
		}
	}

	return ExchangeRate{}, false
}

func (o OutputRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	date, err := json.Marshal(o.Date)
	if err != nil {
		return nil, err
	}

	buf.WriteByte('{')
	buf.Write(date)
	buf.WriteString(":{")

	for i, q := range o.Quotes {
		if i > 0 {
			buf.WriteByte(',')
		}

		quote, err := json.Marshal(q.Quote)
		if err != nil {
			return nil, err
		}

		code, _ := json.Marshal(string(q.Code))
		buf.Write(code)
		buf.WriteByte(':')
		buf.Write(quote)
	}

	buf.WriteString("}}")

	return buf.Bytes(), nil
}
