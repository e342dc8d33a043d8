package codetables

import "sort"

// currencies is ISO 4217, restricted to currencies plausible on an
// EN 16931 invoice (EU currencies plus the majors used in cross-border
// Peppol traffic).
var currencies = []string{
	"AUD", "BGN", "CAD", "CHF", "CNY", "CZK", "DKK", "EUR", "GBP", "HRK",
	"HUF", "ISK", "JPY", "NOK", "NZD", "PLN", "RON", "SEK", "USD",
}

// countries is ISO 3166-1 alpha-2, restricted to EU/EEA members plus the
// handful of third countries that routinely appear as buyer/seller
// country or VAT-id prefix on EN 16931 invoices. EL is accepted
// alongside GR for the Greek VAT-id prefix exception (BR-CO-9).
var countries = []string{
	"AT", "AU", "BE", "BG", "CA", "CH", "CN", "CY", "CZ", "DE", "DK", "EE",
	"EL", "ES", "FI", "FR", "GB", "GR", "HR", "HU", "IE", "IS", "IT", "JP",
	"LI", "LT", "LU", "LV", "MT", "NL", "NO", "NZ", "PL", "PT", "RO", "SE",
	"SI", "SK", "US",
}

func init() {
	sort.Strings(currencies)
	sort.Strings(countries)
}

func contains(sorted []string, v string) bool {
	i := sort.SearchStrings(sorted, v)
	return i < len(sorted) && sorted[i] == v
}

// IsValidCurrency reports whether code is a known ISO 4217 currency code.
func IsValidCurrency(code string) bool { return contains(currencies, code) }

// IsValidCountry reports whether code is a known ISO 3166-1 alpha-2
// country code.
func IsValidCountry(code string) bool { return contains(countries, code) }
