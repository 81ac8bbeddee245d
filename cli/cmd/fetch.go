package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	exchangerates "github.com/malusev998/exchange-rates"
	"github.com/malusev998/exchange-rates/fetchers"
	"github.com/malusev998/exchange-rates/services"
)

const (
	usageMessage       = "Usage: exchange-rates <number_of_days>"
	invalidDaysMessage = "Invalid number of days."
	daysRangeMessage   = "Number of days must be between 1 and 10."
	errorMessage       = "Error fetching data: %v\n"
)

func writeJSON(w io.Writer, records []exchangerates.OutputRecord) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	return encoder.Encode(records)
}

func handleFetch(cmd *cobra.Command, config *Config, days int) error {
	v, err := newViper(cmd)
	if err != nil {
		return err
	}

	s, err := readSettings(v)
	if err != nil {
		return err
	}

	service := services.Service{
		Fetcher: fetchers.NewPrivatBankFetcher(fetchers.BaseConfig{
			URL:     s.URL,
			Timeout: s.Timeout,
		}),
		Codes: s.Currencies,
		Now:   config.Now,
	}

	var logger *log.Logger
	if s.Debug {
		logger = log.New(cmd.ErrOrStderr(), fmt.Sprintf("fetch %s ", uuid.NewString()), 0)
		logger.Printf("fetching %d days from %s for %v", days, s.URL, s.Currencies)
		service.Logger = logger
	}

	records, err := service.Collect(cmd.Context(), days)
	if err != nil {
		return err
	}

	if logger != nil {
		logger.Printf("%d of %d days formatted", len(records), days)
	}

	return writeJSON(cmd.OutOrStdout(), records)
}

func fetch(config *Config) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) != 1 {
			fmt.Fprintln(out, usageMessage)
			return nil
		}

		days, err := exchangerates.ParseDays(args[0])

		switch {
		case errors.Is(err, exchangerates.ErrInvalidDays):
			fmt.Fprintln(out, invalidDaysMessage)
			return nil
		case errors.Is(err, exchangerates.ErrDaysOutOfRange):
			fmt.Fprintln(out, daysRangeMessage)
			return nil
		}

		if err := loadEnv(config.EnvFiles); err != nil {
			fmt.Fprintf(out, errorMessage, err)
			return nil
		}

		if err := handleFetch(cmd, config, days); err != nil {
			fmt.Fprintf(out, errorMessage, err)
		}

		return nil
	}
}
