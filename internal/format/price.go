package format

import (
	"strconv"
	"strings"

	"github.com/meeplelog/meeplelog/internal/models"
)

// FormatPrice renders a monetary value with the currency symbol and decimal
// separator from the settings snapshot. A nil value renders as "".
func FormatPrice(v *float64, s models.Settings) string {
	if v == nil {
		return ""
	}
	num := strconv.FormatFloat(*v, 'f', 2, 64)
	if s.DecimalSeparator != "" && s.DecimalSeparator != "." {
		num = strings.Replace(num, ".", s.DecimalSeparator, 1)
	}
	if s.Currency == "" {
		return num
	}
	return s.Currency + " " + num
}
