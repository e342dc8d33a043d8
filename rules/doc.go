// Package rules contains EN 16931 and Peppol BIS Billing 3.0 business rule
// definitions for electronic invoicing validation.
//
// Rule codes, field references and description text are transcribed from the
// CEN/TC 434 EN 16931 schematron and the OpenPEPPOL BIS Billing 3.0
// schematron. generated.go holds the transcribed rule table; custom.go holds
// rules specific to this module and the schematron rules generated.go lacks.
//
// # Usage
//
//	import "github.com/xinvoice/einvoice/rules"
//
//	func (inv *Invoice) validate() {
//	    if inv.GuidelineSpecifiedDocumentContextParameter == "" {
//	        inv.addViolation(rules.BR1, "Missing specification identifier")
//	    }
//	}
package rules
