package einvoice

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/speedata/cxpath"
)

// getDecimal evaluates the XPath expression and parses the result as a decimal.Decimal.
// An empty result is treated as zero, not an error.
func getDecimal(ctx *cxpath.Context, eval string) (decimal.Decimal, error) {
	str := ctx.Eval(eval).String()
	if str == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal %q at %s: %w", str, eval, err)
	}

	return d, nil
}

// ParseReader reads the XML from r and auto-detects the syntax (CII or UBL)
// from the root element's namespace URI.
func ParseReader(r io.Reader) (*Invoice, error) {
	ctx, err := cxpath.NewFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read from reader: %w", err)
	}

	rootns := ctx.Root().Eval("namespace-uri()").String()

	var inv *Invoice

	switch rootns {
	case "":
		return nil, fmt.Errorf("empty root element namespace")

	case "urn:un:unece:uncefact:data:standard:CrossIndustryInvoice:100":
		ctx.SetNamespace("rsm", "urn:un:unece:uncefact:data:standard:CrossIndustryInvoice:100")
		ctx.SetNamespace("ram", "urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:100")
		ctx.SetNamespace("udt", "urn:un:unece:uncefact:data:standard:UnqualifiedDataType:100")
		ctx.SetNamespace("qdt", "urn:un:unece:uncefact:data:standard:QualifiedDataType:100")

		inv, err = parseCII(ctx.Root())
		if err != nil {
			return nil, fmt.Errorf("parse CII: %w", err)
		}
		inv.SchemaType = CII

	case nsUBLInvoice, nsUBLCreditNote:
		inv, err = parseUBL(ctx)
		if err != nil {
			return nil, fmt.Errorf("parse UBL: %w", err)
		}

	default:
		return nil, fmt.Errorf("unknown root element namespace: %s", rootns)
	}

	return inv, nil
}

// ParseXMLFile reads and parses the invoice XML file at filename.
func ParseXMLFile(filename string) (*Invoice, error) {
	r, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("einvoice: cannot open file (%w)", err)
	}
	defer func() { _ = r.Close() }()

	return ParseReader(r)
}
