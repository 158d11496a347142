package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// NoPrice is reported where a price aggregate has no rows to draw from,
// e.g. the highest price of a product without variations.
const NoPrice = "N/A"

var npr = accounting.Accounting{Symbol: "Rs. ", Precision: 0, Thousand: ","}

// Rupees renders a price the way the storefront displays it: "Rs. 120/-".
func Rupees(amount decimal.Decimal) string {
	return npr.FormatMoneyDecimal(amount) + "/-"
}

// UsdToNpr converts a USD amount using the tenant's configured exchange
// rate, rounded to paisa.
func UsdToNpr(usd, rate decimal.Decimal) decimal.Decimal {
	return usd.Mul(rate).Round(2)
}
