package einvoice

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/shopspring/decimal"
)

var percentageRE = regexp.MustCompile(`^(.*?)\.?0+$`)

// ErrUnsupportedSchema is returned when the library does not recognize the schema.
var ErrUnsupportedSchema = errors.New("unsupported schema")

// is returns true if the profile in the invoice is at least cp.
func is(cp CodeProfileType, inv *Invoice) bool {
	return inv.Profile >= cp
}

// formatPercent removes trailing zeros and the decimal point, if possible.
func formatPercent(d decimal.Decimal) string {
	str := d.StringFixed(4)

	return percentageRE.ReplaceAllString(str, "$1")
}

// Write serializes the invoice as XML using the syntax given by inv.SchemaType
// (CII for ZUGFeRD/Factur-X, UBL for UBL 2.1/XRechnung-UBL/Peppol BIS).
func (inv *Invoice) Write(w io.Writer) error {
	switch inv.SchemaType {
	case CII:
		return writeCII(inv, w)
	case UBL:
		return writeUBL(inv, w)
	default:
		return fmt.Errorf("schema type %v: %w", inv.SchemaType, ErrUnsupportedSchema)
	}
}
