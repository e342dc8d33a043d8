package einvoice

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Structural construction limits (spec-mandated, rejected by Build as
// StructuralError rather than a business rule violation).
const (
	maxInvoiceLines       = 10_000
	maxInvoiceNumberChars = 200
	maxInvoiceNotes       = 100
	maxInvoiceAttachments = 100
)

// StructuralError reports a violated structural invariant of the builder
// (a count ceiling, a missing mandatory field, or a duplicate line id).
// Unlike SemanticError it is a programmer-facing construction error, not
// a business-rule finding against already-built data.
type StructuralError struct {
	Field string
	Text  string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Text)
}

// Builder accumulates the pieces of an invoice before Build/BuildStrict
// assembles and derives it. Fields are exported so callers can populate
// them directly; Builder itself adds no behaviour beyond Build/BuildStrict.
type Builder struct {
	Invoice Invoice

	// ExemptionReason maps a VAT category code to its exemption reason
	// text, used when deriving the VAT breakdown (BT-120/BT-121 equivalent).
	ExemptionReason map[string]string
}

// NewBuilder returns a Builder wrapping an empty Invoice with sensible
// defaults (BT-3 invoice type code 380 - commercial invoice).
func NewBuilder() *Builder {
	return &Builder{
		Invoice:         Invoice{InvoiceTypeCode: 380},
		ExemptionReason: map[string]string{},
	}
}

// checkStructure validates the builder's structural invariants: count
// ceilings, mandatory identity fields, and line id uniqueness. It does
// not touch totals or run any business-rule layer.
func (b *Builder) checkStructure() error {
	inv := &b.Invoice

	if len(inv.InvoiceNumber) > maxInvoiceNumberChars {
		return &StructuralError{Field: "InvoiceNumber", Text: fmt.Sprintf("exceeds %d characters", maxInvoiceNumberChars)}
	}
	if inv.InvoiceNumber == "" {
		return &StructuralError{Field: "InvoiceNumber", Text: "must not be empty"}
	}
	if inv.InvoiceDate.IsZero() {
		return &StructuralError{Field: "InvoiceDate", Text: "must not be zero"}
	}
	if inv.InvoiceCurrencyCode == "" {
		return &StructuralError{Field: "InvoiceCurrencyCode", Text: "must not be empty"}
	}
	if inv.Seller.Name == "" {
		return &StructuralError{Field: "Seller.Name", Text: "must not be empty"}
	}
	if inv.Buyer.Name == "" {
		return &StructuralError{Field: "Buyer.Name", Text: "must not be empty"}
	}

	if len(inv.InvoiceLines) > maxInvoiceLines {
		return &StructuralError{Field: "InvoiceLines", Text: fmt.Sprintf("exceeds %d lines", maxInvoiceLines)}
	}
	if len(inv.Notes) > maxInvoiceNotes {
		return &StructuralError{Field: "Notes", Text: fmt.Sprintf("exceeds %d notes", maxInvoiceNotes)}
	}
	if len(inv.AdditionalReferencedDocument) > maxInvoiceAttachments {
		return &StructuralError{Field: "AdditionalReferencedDocument", Text: fmt.Sprintf("exceeds %d attachments", maxInvoiceAttachments)}
	}

	seen := make(map[string]bool, len(inv.InvoiceLines))
	for i, line := range inv.InvoiceLines {
		if line.LineID == "" {
			return &StructuralError{Field: "InvoiceLines", Text: fmt.Sprintf("line %d: LineID must not be empty", i)}
		}
		if seen[line.LineID] {
			return &StructuralError{Field: "InvoiceLines", Text: fmt.Sprintf("duplicate LineID %q", line.LineID)}
		}
		seen[line.LineID] = true
	}

	return nil
}

// deriveLineTotals computes each line's net amount (BT-131) from quantity,
// price and base quantity, then applies the line-level allowances and
// charges (BG-27/BG-28), per the BR-CO-style formula transcribed as
// rules.BRUSER05: qty × price ÷ base qty ± allowances/charges.
func deriveLineTotals(lines []InvoiceLine) {
	for i := range lines {
		line := &lines[i]

		basis := line.BasisQuantity
		if basis.IsZero() {
			basis = decimal.NewFromInt(1)
		}

		total := line.BilledQuantity.Mul(line.NetPrice).Div(basis)

		for _, a := range line.InvoiceLineAllowances {
			total = total.Sub(a.ActualAmount)
		}
		for _, c := range line.InvoiceLineCharges {
			total = total.Add(c.ActualAmount)
		}

		line.Total = total.RoundBank(2)
	}
}

// Build assembles the invoice: it checks structural invariants, derives
// every line's net amount, the VAT breakdown, and the document totals.
// It does not run any business-rule or legal validation layer; use
// BuildStrict for that. Build returns a *StructuralError when a
// structural invariant is violated; the returned *Invoice is nil in
// that case.
func (b *Builder) Build() (*Invoice, error) {
	if err := b.checkStructure(); err != nil {
		return nil, err
	}

	inv := b.Invoice

	deriveLineTotals(inv.InvoiceLines)
	inv.UpdateApplicableTradeTax(b.ExemptionReason)
	inv.UpdateTotals()

	return &inv, nil
}

// BuildStrict calls Build and, on structural success, additionally runs
// the full validation layer (§14 UStG mandatory fields, EN 16931 BR-*,
// and the CIUS overlay implied by inv.Profile). It refuses to return an
// invoice that has any validation finding.
func (b *Builder) BuildStrict() (*Invoice, error) {
	inv, err := b.Build()
	if err != nil {
		return nil, err
	}

	if err := inv.Validate(); err != nil {
		return nil, err
	}

	return inv, nil
}
