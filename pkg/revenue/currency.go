package revenue

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency formata um valor em dólares inteiros no padrão en-US, sem
// centavos: 45000 vira "$45,000". NaN e infinitos viram "$0".
func FormatCurrency(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "$0"
	}

	// arredondamento half away from zero, como o Intl do navegador. O valor
	// fica em decimal/float até a impressão; não cabe em int64 acima de ~9.2e18.
	rounded := decimal.NewFromFloat(value).Round(0)
	digits := usdPrinter.Sprint(number.Decimal(rounded.Abs().InexactFloat64(), number.MaxFractionDigits(0)))
	if rounded.IsNegative() {
		return "-$" + digits
	}
	return "$" + digits
}
