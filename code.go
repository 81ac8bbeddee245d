package exchangerates

import (
	"fmt"
	"strings"
)

type Code string

const (
	EUR Code = "EUR"
	USD Code = "USD"
)

var DefaultCodes = []Code{EUR, USD}

func ConvertToCodesFromStringSlice(strs []string) ([]Code, error) {
	codes := make([]Code, 0, len(strs))

	for _, str := range strs {
		code, err := ConvertToCodeFromString(str)
		if err != nil {
			return nil, err
		}

		codes = append(codes, code)
	}

	return codes, nil
}

func ConvertToCodeFromString(str string) (Code, error) {
	upper := strings.ToUpper(strings.TrimSpace(str))

	if len(upper) != 3 {
		return "", fmt.Errorf("value %s is not valid currency code", str)
	}

	for _, r := range upper {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("value %s is not valid currency code", str)
		}
	}

	return Code(upper), nil
}
