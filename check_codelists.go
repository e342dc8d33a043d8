package einvoice

import (
	"fmt"

	"github.com/xinvoice/einvoice/codetables"
	"github.com/xinvoice/einvoice/rules"
)

// checkCodeLists validates that the currency and country codes on the
// invoice belong to their respective code lists (ISO 4217, ISO 3166-1
// alpha-2). It does not duplicate the presence checks already done by
// checkBRO/validateUStG; it only fires when a field is populated but
// holds a value outside the recognised list.
func (inv *Invoice) checkCodeLists() {
	if inv.InvoiceCurrencyCode != "" && !codetables.IsValidCurrency(inv.InvoiceCurrencyCode) {
		inv.addViolation(rules.BRCL01, fmt.Sprintf("Invoice currency code %q is not a recognised ISO 4217 currency", inv.InvoiceCurrencyCode))
	}
	if inv.TaxCurrencyCode != "" && !codetables.IsValidCurrency(inv.TaxCurrencyCode) {
		inv.addViolation(rules.BRCL10, fmt.Sprintf("Tax accounting currency code %q is not a recognised ISO 4217 currency", inv.TaxCurrencyCode))
	}

	if inv.Seller.PostalAddress != nil && inv.Seller.PostalAddress.CountryID != "" && !codetables.IsValidCountry(inv.Seller.PostalAddress.CountryID) {
		inv.addViolation(rules.BRCL04, fmt.Sprintf("Seller country code %q is not a recognised ISO 3166-1 alpha-2 code", inv.Seller.PostalAddress.CountryID))
	}
	if inv.Buyer.PostalAddress != nil && inv.Buyer.PostalAddress.CountryID != "" && !codetables.IsValidCountry(inv.Buyer.PostalAddress.CountryID) {
		inv.addViolation(rules.BRCL05, fmt.Sprintf("Buyer country code %q is not a recognised ISO 3166-1 alpha-2 code", inv.Buyer.PostalAddress.CountryID))
	}
	if inv.ShipTo != nil && inv.ShipTo.PostalAddress != nil && inv.ShipTo.PostalAddress.CountryID != "" && !codetables.IsValidCountry(inv.ShipTo.PostalAddress.CountryID) {
		inv.addViolation(rules.BRCL06, fmt.Sprintf("Deliver to country code %q is not a recognised ISO 3166-1 alpha-2 code", inv.ShipTo.PostalAddress.CountryID))
	}

	// BR-CL-23 (unit of measure) is intentionally not enforced here: the
	// codetables unit table is a curated subset of UN/CEFACT Rec 20, not
	// the full list, so an unmatched code is "uncommon", not invalid.

	for _, note := range inv.Notes {
		if note.SubjectCode != "" && codetables.TextSubjectQualifier(note.SubjectCode) == "Unknown" {
			inv.addViolation(rules.BRCL03, fmt.Sprintf("Invoice note subject code %q is not a recognised UNTDID 4451 code", note.SubjectCode))
		}
	}

	for _, ac := range inv.SpecifiedTradeAllowanceCharge {
		inv.checkAllowanceChargeReasonCode(ac.ReasonCode)
	}
	for _, line := range inv.InvoiceLines {
		for _, ac := range line.InvoiceLineAllowances {
			inv.checkAllowanceChargeReasonCode(ac.ReasonCode)
		}
		for _, ac := range line.InvoiceLineCharges {
			inv.checkAllowanceChargeReasonCode(ac.ReasonCode)
		}
		for _, ac := range line.AppliedTradeAllowanceCharge {
			inv.checkAllowanceChargeReasonCode(ac.ReasonCode)
		}
	}
}

// checkAllowanceChargeReasonCode validates a single BT-98/BT-105/BT-140/
// BT-145 allowance or charge reason code against UNTDID 5189. 0 (unset)
// is not a violation — the reason code is optional.
func (inv *Invoice) checkAllowanceChargeReasonCode(code int) {
	if !codetables.IsKnownAllowanceChargeReasonCode(code) {
		inv.addViolation(rules.BRCL26, fmt.Sprintf("Allowance/charge reason code %d is not a recognised UNTDID 5189 code", code))
	}
}
