package exchangerates_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	exchangerates "github.com/malusev998/exchange-rates"
)

func TestRate_JSON(t *testing.T) {
	t.Parallel()

	t.Run("Numbers", func(t *testing.T) {
		assert := require.New(t)

		values := []struct {
			value    string
			expected string
		}{
			{"37.0", "37.0"},
			{"40.1", "40.1"},
			{"36.5686", "36.5686"},
			{"41", "41"},
			{"0.00001", "0.00001"},
			{"37.4500000", "37.45"},
			{"41.6000000", "41.6"},
			{"20.0000000", "20.0"},
			{"18.7949200", "18.79492"},
			{"1e2", "100.0"},
		}

		for _, value := range values {
			var rate exchangerates.Rate

			assert.NoError(json.Unmarshal([]byte(value.value), &rate))
			assert.True(rate.Valid)

			data, err := json.Marshal(rate)
			assert.NoError(err)
			assert.Equal(value.expected, string(data), value.value)
		}

		data, err := json.Marshal(exchangerates.NewRate("39.5000"))
		assert.NoError(err)
		assert.Equal("39.5", string(data))
	})

	t.Run("Null", func(t *testing.T) {
		assert := require.New(t)
		var rate exchangerates.Rate

		assert.NoError(json.Unmarshal([]byte("null"), &rate))
		assert.False(rate.Valid)

		data, err := json.Marshal(rate)
		assert.NoError(err)
		assert.Equal("null", string(data))
	})

	t.Run("Invalid", func(t *testing.T) {
		var rate exchangerates.Rate
		require.Error(t, json.Unmarshal([]byte("true"), &rate))
	})
}

func TestDayRates_Find(t *testing.T) {
	t.Parallel()
	assert := require.New(t)
	payload := `{
		"date": "01.12.2014",
		"bank": "PB",
		"baseCurrency": 980,
		"baseCurrencyLit": "UAH",
		"exchangeRate": [
			{"baseCurrency": "UAH", "currency": "CHF", "saleRateNB": 15.6389750, "purchaseRateNB": 15.6389750},
			{"baseCurrency": "UAH", "currency": "EUR", "saleRateNB": 18.7949200, "purchaseRateNB": 18.7949200, "saleRate": 20.0000000, "purchaseRate": 19.2000000},
			{"baseCurrency": "UAH", "currency": "EUR", "saleRate": 99.0, "purchaseRate": 98.0}
		]
	}`

	var day exchangerates.DayRates
	assert.NoError(json.Unmarshal([]byte(payload), &day))
	assert.Equal("01.12.2014", day.Date)
	assert.Equal("UAH", day.BaseCurrencyLit)

	eur, ok := day.Find(exchangerates.EUR)
	assert.True(ok)
	assert.Equal("20", eur.SaleRate.String())
	assert.Equal("19.2", eur.PurchaseRate.String())

	chf, ok := day.Find("CHF")
	assert.True(ok)
	assert.False(chf.SaleRate.Valid)
	assert.True(chf.SaleRateNB.Valid)

	_, ok = day.Find(exchangerates.USD)
	assert.False(ok)
}

func TestDayRates_MissingExchangeRate(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	var day exchangerates.DayRates
	assert.NoError(json.Unmarshal([]byte(`{"date": "01.01.2024"}`), &day))
	assert.Nil(day.ExchangeRate)

	assert.NoError(json.Unmarshal([]byte(`{"date": "01.01.2024", "exchangeRate": []}`), &day))
	assert.NotNil(day.ExchangeRate)
}

func TestOutputRecord_MarshalJSON(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	records := []exchangerates.OutputRecord{
		{
			Date: "01.01.2024",
			Quotes: []exchangerates.CurrencyQuote{
				{Code: exchangerates.USD, Quote: exchangerates.Quote{Sale: exchangerates.NewRate("37.0"), Purchase: exchangerates.NewRate("36.5")}},
				{Code: exchangerates.EUR, Quote: exchangerates.Quote{Sale: exchangerates.NewRate("40.1")}},
			},
		},
	}

	data, err := json.Marshal(records)
	assert.NoError(err)
	assert.Equal(
		`[{"01.01.2024":{"USD":{"sale":37.0,"purchase":36.5},"EUR":{"sale":40.1,"purchase":null}}}]`,
		string(data),
	)
}
