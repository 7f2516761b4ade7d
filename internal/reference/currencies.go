// Package reference holds the static currency table. Currency codes on
// invoices are informational labels; there is no exchange-rate math.
package reference

// Currency is one row of the display table.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// DefaultSymbol is used when an invoice carries a code the table does
// not know.
const DefaultSymbol = "$"

var currencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "CAD", Symbol: "CA$", Name: "Canadian Dollar"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "MXN", Symbol: "MX$", Name: "Mexican Peso"},
}

// Currencies returns the table in display order.
func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

// SymbolFor resolves the display symbol for a currency code, falling
// back to DefaultSymbol on a lookup miss.
func SymbolFor(code string) string {
	for _, c := range currencies {
		if c.Code == code {
			return c.Symbol
		}
	}
	return DefaultSymbol
}
