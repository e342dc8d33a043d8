// Package codetables holds the immutable, process-wide code lists an
// invoice refers to: ISO 4217 currencies, ISO 3166-1 alpha-2 countries,
// UN/CEFACT Recommendation 20 unit codes, and the UNTDID 1001/4461/4451/
// 5189 lists for invoice type, payment means, text subject qualifiers,
// and allowance/charge reason codes.
//
// Every table is a slice sorted once by init and searched with sort.Search;
// nothing modifies a table after init.
package codetables

import (
	"sort"
	"strconv"
)

type entry struct {
	code string
	name string
}

// documentTypes is UNTDID 1001, restricted to the codes EN 16931 and its
// CIUS overlays reference.
var documentTypes = []entry{
	{"80", "Debit note related to goods or services"},
	{"81", "Credit note related to goods or services"},
	{"84", "Debit note related to financial adjustments"},
	{"130", "Invoice related to goods or services"},
	{"202", "Direct payment valuation"},
	{"203", "Provisional payment valuation"},
	{"204", "Payment valuation"},
	{"211", "Interim application for payment"},
	{"218", "Final payment request based on completion of work"},
	{"219", "Payment request for completed units"},
	{"261", "Self billed credit note"},
	{"262", "Consolidated credit note - goods and services"},
	{"295", "Credit note for price variation"},
	{"296", "Credit note - reimbursement of pre-payment"},
	{"308", "Delcredere credit note"},
	{"326", "Partial invoice"},
	{"331", "Commercial invoice which includes a packing list"},
	{"380", "Commercial invoice"},
	{"381", "Credit note"},
	{"382", "Commission note"},
	{"383", "Debit note"},
	{"384", "Corrected invoice"},
	{"385", "Consolidated invoice"},
	{"386", "Prepayment invoice"},
	{"387", "Hire invoice"},
	{"388", "Tax invoice"},
	{"389", "Self-billed invoice"},
	{"390", "Delcredere invoice"},
	{"393", "Factored invoice"},
	{"394", "Lease invoice"},
	{"395", "Consignment invoice"},
	{"396", "Factored credit note"},
	{"420", "Optical character reading (OCR) payment credit note"},
	{"456", "Debit advice"},
	{"457", "Reversal of debit"},
	{"458", "Reversal of credit"},
	{"527", "Self billed debit note"},
	{"532", "Forwarder's credit note"},
	{"553", "Forwarder's invoice discrepancy report"},
	{"575", "Insurer's invoice"},
	{"623", "Forwarder's invoice"},
	{"633", "Port charges documents"},
	{"751", "Invoice information for accounting purposes"},
	{"780", "Freight invoice"},
	{"817", "Claim notification"},
	{"870", "Consular invoice"},
	{"875", "Self-billed tax invoice"},
	{"876", "Delcredere tax invoice"},
	{"877", "Factored tax invoice"},
}

// unitCodes is UN/CEFACT Recommendation 20, restricted to the codes
// commonly seen on invoice lines.
var unitCodes = []entry{
	{"C62", "one"},
	{"DAY", "day"},
	{"GRM", "gram"},
	{"H87", "piece"},
	{"HUR", "hour"},
	{"KGM", "kilogram"},
	{"KTM", "kilometre"},
	{"LTR", "litre"},
	{"MIN", "minute"},
	{"MMT", "millimetre"},
	{"MTK", "square metre"},
	{"MTQ", "cubic metre"},
	{"MTR", "metre"},
	{"NAR", "number of articles"},
	{"PR", "pair"},
	{"SET", "set"},
	{"TNE", "tonne"},
	{"WEE", "week"},
	{"XPP", "piece"},
}

// textSubjectQualifiers is UNTDID 4451.
var textSubjectQualifiers = []entry{
	{"AAA", "Goods item description"},
	{"AAB", "Payment term"},
	{"AAC", "Rate additional information"},
	{"AAI", "General information"},
	{"ABL", "Additional conditions of sale"},
	{"ACB", "Additional packaging information"},
	{"AUT", "Authentication"},
	{"BLC", "Transport contract document clause"},
	{"PMT", "Payment information"},
	{"PMD", "Payment terms"},
	{"REG", "Regulatory information"},
	{"TAX", "Tax declaration"},
	{"TXD", "Tax declaration"},
}

// paymentMeansCodes is UNTDID 4461, restricted to the codes the CII/UBL
// writers and the XRechnung/Peppol overlays check against.
var paymentMeansCodes = []entry{
	{"10", "In cash"},
	{"20", "Cheque"},
	{"30", "Credit transfer"},
	{"31", "Debit transfer"},
	{"42", "Payment to bank account"},
	{"48", "Bank card"},
	{"49", "Direct debit"},
	{"54", "Credit card"},
	{"57", "Standing agreement"},
	{"58", "SEPA credit transfer"},
	{"59", "SEPA direct debit"},
	{"97", "Clearing between partners"},
}

// allowanceChargeReasonCodes is UNTDID 5189, the numeric reason-code list
// BT-98/BT-105 (document level) and BT-140/BT-145 (line level) allowance
// and charge reason codes are drawn from (UNTDID 7161 is the sibling
// alphanumeric "reason text" list UBL's cac:AllowanceCharge/cbc:AllowanceChargeReasonCode
// can also carry; since this module's AllowanceCharge.ReasonCode field is
// int-typed, only the numeric 5189 codes are representable here).
var allowanceChargeReasonCodes = []entry{
	{"41", "Bonus for works ahead of schedule"},
	{"42", "Other bonus"},
	{"60", "Manufacturer's consumer discount"},
	{"62", "Due to military status"},
	{"63", "Due to work accident"},
	{"64", "Special agreement"},
	{"65", "Production error discount"},
	{"66", "New outlet discount"},
	{"67", "Sample discount"},
	{"68", "End-of-range discount"},
	{"70", "Incoterm discount"},
	{"71", "Point of sales threshold allowance"},
	{"88", "Material surcharge/deduction"},
	{"95", "Discount"},
	{"100", "Special rebate"},
	{"102", "Fixed long term funding"},
	{"103", "Temporary"},
	{"104", "Standard"},
	{"105", "Yearly turnover"},
}

func lookup(table []entry, code string) (string, bool) {
	i := sort.Search(len(table), func(i int) bool { return table[i].code >= code })
	if i < len(table) && table[i].code == code {
		return table[i].name, true
	}
	return "", false
}

// DocumentType returns the UNTDID 1001 name for code, or "Unknown" if code
// is not a recognised invoice/credit-note type code.
func DocumentType(code string) string {
	if name, ok := lookup(documentTypes, code); ok {
		return name
	}
	return "Unknown"
}

// UnitCode returns the UN/CEFACT Rec 20 unit name for code. Unrecognised
// or empty codes are returned unchanged, matching EN 16931's
// forward-compatible "unknown/other" handling for unit codes.
func UnitCode(code string) string {
	if name, ok := lookup(unitCodes, code); ok {
		return name
	}
	return code
}

// IsKnownUnitCode reports whether code is present in the UN/CEFACT
// Recommendation 20 table held by this package. The table is a curated
// subset, not the full list, so callers should treat a false result as
// "uncommon", not necessarily invalid.
func IsKnownUnitCode(code string) bool {
	_, ok := lookup(unitCodes, code)
	return ok
}

// TextSubjectQualifier returns the UNTDID 4451 name for code, or "Unknown"
// if code is not recognised.
func TextSubjectQualifier(code string) string {
	if name, ok := lookup(textSubjectQualifiers, code); ok {
		return name
	}
	return "Unknown"
}

// PaymentMeansName returns the UNTDID 4461 name for code, or "Unknown" if
// code is not recognised.
func PaymentMeansName(code string) string {
	if name, ok := lookup(paymentMeansCodes, code); ok {
		return name
	}
	return "Unknown"
}

// IsKnownAllowanceChargeReasonCode reports whether code is present in the
// UNTDID 5189 allowance/charge reason-code table. 0 (the Go zero value
// for an unset, optional BT-98/BT-105/BT-140/BT-145 field) is always
// considered known, since absence is not a code-list violation.
func IsKnownAllowanceChargeReasonCode(code int) bool {
	if code == 0 {
		return true
	}
	_, ok := lookup(allowanceChargeReasonCodes, strconv.Itoa(code))
	return ok
}

// AllowanceChargeReasonCodeName returns the UNTDID 5189 name for code, or
// "Unknown" if code is not recognised.
func AllowanceChargeReasonCodeName(code int) string {
	if name, ok := lookup(allowanceChargeReasonCodes, strconv.Itoa(code)); ok {
		return name
	}
	return "Unknown"
}

func init() {
	sort.Slice(documentTypes, func(i, j int) bool { return documentTypes[i].code < documentTypes[j].code })
	sort.Slice(unitCodes, func(i, j int) bool { return unitCodes[i].code < unitCodes[j].code })
	sort.Slice(textSubjectQualifiers, func(i, j int) bool {
		return textSubjectQualifiers[i].code < textSubjectQualifiers[j].code
	})
	sort.Slice(paymentMeansCodes, func(i, j int) bool { return paymentMeansCodes[i].code < paymentMeansCodes[j].code })
	sort.Slice(allowanceChargeReasonCodes, func(i, j int) bool {
		return allowanceChargeReasonCodes[i].code < allowanceChargeReasonCodes[j].code
	})
}
