package einvoice

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xinvoice/einvoice/rules"
)

// smallInvoiceThreshold is the gross amount (in document currency) at or
// below which an invoice qualifies as a SmallInvoice (Kleinbetragsrechnung,
// §33 UStDV) and is exempt from some §14 UStG mandatory fields.
var smallInvoiceThreshold = decimal.NewFromInt(250)

// isSmallInvoice reports whether inv qualifies as a SmallInvoice.
func (inv *Invoice) isSmallInvoice() bool {
	return !inv.GrandTotal.IsZero() && inv.GrandTotal.LessThanOrEqual(smallInvoiceThreshold) || inv.GrandTotal.IsZero()
}

// validateUStG checks the §14 UStG mandatory invoice content requirements.
// It does not duplicate arithmetic or code-list checks already covered by
// the EN 16931 layer; it only checks presence of the fields German VAT law
// mandates on every invoice.
func (inv *Invoice) validateUStG() {
	small := inv.isSmallInvoice()

	if inv.Seller.Name == "" {
		inv.addViolation(rules.BR6, "Seller name is required (§14 (4) Nr. 1 UStG)")
	}
	if inv.Seller.PostalAddress == nil || inv.Seller.PostalAddress.City == "" || inv.Seller.PostalAddress.PostcodeCode == "" {
		inv.addViolation(rules.BR8, "Seller address (city, postcode) is required (§14 (4) Nr. 1 UStG)")
	}

	if inv.Buyer.Name == "" {
		inv.addViolation(rules.BR7, "Buyer name is required (§14 (4) Nr. 1 UStG)")
	}
	if inv.Buyer.PostalAddress == nil || inv.Buyer.PostalAddress.City == "" || inv.Buyer.PostalAddress.PostcodeCode == "" {
		inv.addViolation(rules.BR9, "Buyer address (city, postcode) is required (§14 (4) Nr. 1 UStG)")
	}

	if inv.InvoiceNumber == "" {
		inv.addViolation(rules.BR2, "Invoice number is required (§14 (4) Nr. 4 UStG)")
	}
	if inv.InvoiceDate.IsZero() {
		inv.addViolation(rules.BR1, "Invoice issue date is required (§14 (4) Nr. 3 UStG)")
	}

	if !small {
		hasDeliveryDate := !inv.OccurrenceDateTime.IsZero()
		hasPeriod := !inv.BillingSpecifiedPeriodStart.IsZero() || !inv.BillingSpecifiedPeriodEnd.IsZero()
		if !hasDeliveryDate && !hasPeriod {
			inv.addViolation(rules.BR10, "Delivery or performance date, or an invoicing period, is required unless the invoice is a SmallInvoice (§14 (4) Nr. 6 UStG)")
		}
	}

	for _, line := range inv.InvoiceLines {
		if line.BilledQuantity.IsZero() && line.BilledQuantityUnit == "" {
			inv.addViolation(rules.BR23, fmt.Sprintf("Invoice line %s must state quantity and kind of delivery (§14 (4) Nr. 5 UStG)", line.LineID))
		}
	}

	if !small {
		hasNetPerRate := len(inv.TradeTaxes) > 0
		if !hasNetPerRate {
			inv.addViolation(rules.BR45, "Net amount per applicable VAT rate is required (§14 (4) Nr. 7 UStG)")
		}
		for _, tt := range inv.TradeTaxes {
			if tt.CategoryCode == "" {
				inv.addViolation(rules.BR47, "VAT rate/category is required for every VAT breakdown entry (§14 (4) Nr. 8 UStG)")
			}
		}
		if inv.GrandTotal.IsZero() {
			inv.addViolation(rules.BR14, "Gross (tax-inclusive) total amount is required (§14 (4) Nr. 9 UStG)")
		}
	}

	hasTaxRepresentative := inv.SellerTaxRepresentativeTradeParty != nil && inv.SellerTaxRepresentativeTradeParty.VATaxRegistration != ""
	if inv.Seller.VATaxRegistration == "" && inv.Seller.FCTaxRegistration == "" && !hasTaxRepresentative {
		inv.addViolation(rules.BR5, "Seller VAT identifier or tax number is required unless a tax representative is stated (§14 (4) Nr. 2 UStG)")
	}
}
