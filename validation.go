package einvoice

import (
	"fmt"
	"sort"

	"github.com/xinvoice/einvoice/rules"
)

// SemanticError describes a single business rule violation found while
// validating an Invoice. Rule is the EN 16931/XRechnung/Peppol rule
// identifier (e.g. "BR-05", "BR-CO-17", "BR-DE-18"); InvFields names the
// BT-/BG- business terms the rule is about; Text is a human-readable
// description of what failed.
type SemanticError struct {
	Rule      rules.Rule
	InvFields []string
	Text      string
}

// addViolation records a business rule violation against the invoice.
func (inv *Invoice) addViolation(rule rules.Rule, text string) {
	inv.violations = append(inv.violations, SemanticError{
		Rule:      rule,
		InvFields: rule.Fields,
		Text:      text,
	})
}

// addWarning records a finding that should be surfaced to the caller
// without failing Validate(). Used for rules like BR-DE-21 that a
// strict schematron treats as advisory for non-XRechnung profiles.
func (inv *Invoice) addWarning(rule rules.Rule, text string) {
	inv.warnings = append(inv.warnings, SemanticError{
		Rule:      rule,
		InvFields: rule.Fields,
		Text:      text,
	})
}

// Warnings returns a copy of the advisory findings from the last Validate() call.
func (inv *Invoice) Warnings() []SemanticError {
	if inv.warnings == nil {
		return nil
	}
	warnings := make([]SemanticError, len(inv.warnings))
	copy(warnings, inv.warnings)
	return warnings
}

// HasWarnings reports whether the last Validate() call produced any warnings.
func (inv *Invoice) HasWarnings() bool {
	return len(inv.warnings) > 0
}

// ValidationError is returned when invoice validation fails.
// It contains all EN 16931 business rule violations found during validation.
//
// Example usage:
//
//	err := inv.Validate()
//	if err != nil {
//	    var valErr *ValidationError
//	    if errors.As(err, &valErr) {
//	        for _, v := range valErr.Violations() {
//	            fmt.Printf("Rule %s: %s\n", v.Rule.Code, v.Text)
//	        }
//	    }
//	}
type ValidationError struct {
	violations []SemanticError
	warnings   []SemanticError
}

// Error implements the error interface.
// Returns a human-readable description of the validation failure.
func (e *ValidationError) Error() string {
	if len(e.violations) == 0 {
		return "validation failed with no violations"
	}

	if len(e.violations) == 1 {
		v := e.violations[0]
		return fmt.Sprintf("validation failed: %s - %s", v.Rule.Code, v.Text)
	}

	return fmt.Sprintf("validation failed with %d violations (first: %s - %s)",
		len(e.violations),
		e.violations[0].Rule.Code,
		e.violations[0].Text)
}

// Violations returns a copy of all validation violations.
// This ensures the internal violations slice cannot be modified externally.
func (e *ValidationError) Violations() []SemanticError {
	if e.violations == nil {
		return nil
	}

	// Return a copy to prevent external modification
	violations := make([]SemanticError, len(e.violations))
	copy(violations, e.violations)
	return violations
}

// Count returns the number of validation violations.
func (e *ValidationError) Count() int {
	return len(e.violations)
}

// Warnings returns a copy of the advisory findings collected alongside the violations.
func (e *ValidationError) Warnings() []SemanticError {
	if e.warnings == nil {
		return nil
	}
	warnings := make([]SemanticError, len(e.warnings))
	copy(warnings, e.warnings)
	return warnings
}

// WarningCount returns the number of advisory findings.
func (e *ValidationError) WarningCount() int {
	return len(e.warnings)
}

// HasWarnings reports whether any advisory findings were collected.
func (e *ValidationError) HasWarnings() bool {
	return len(e.warnings) > 0
}

// HasRule checks if a specific business rule violation exists.
func (e *ValidationError) HasRule(rule rules.Rule) bool {
	return e.HasRuleCode(rule.Code)
}

// HasRuleCode checks if a violation with the given rule code exists, e.g. "BR-1", "BR-S-8".
func (e *ValidationError) HasRuleCode(code string) bool {
	for _, v := range e.violations {
		if v.Rule.Code == code {
			return true
		}
	}
	return false
}

// Validate runs every applicable validation layer against the invoice and
// concatenates their findings: §14 UStG mandatory fields, EN 16931
// (BR-*, BR-CO-*, BR-DEC-*), and the CIUS overlay implied by inv.Profile
// (XRechnung BR-DE-* when the profile is CProfileXRechnung, Peppol
// PEPPOL-EN16931-* when the invoice declares a Peppol business process).
// Layers do not stop at the first finding; every violation is collected.
// Returns nil when no layer reports a violation.
func (inv *Invoice) Validate() error {
	inv.violations = nil
	inv.warnings = nil

	// An invoice built in code may leave Profile unset; for this run the
	// profile is then taken from the specification identifier (BT-24).
	if inv.Profile == CProfileUnknown {
		inv.Profile = ProfileFromSpecificationIdentifier(inv.GuidelineSpecifiedDocumentContextParameter)
		defer func() { inv.Profile = CProfileUnknown }()
	}

	inv.validateUStG()
	inv.checkBRO()
	inv.checkBR()
	inv.checkBRDEC()
	inv.checkCodeLists()

	// BR-DE-21 applies to every German seller regardless of the chosen
	// profile; it is advisory (not fatal) outside XRechnung.
	inv.validateGermanSpecID()

	if inv.Profile == CProfileXRechnung {
		inv.validateGerman()
	}
	isPeppol := ValidatePEPPOLSpecificationID(inv.GuidelineSpecifiedDocumentContextParameter) == nil || inv.UsesPEPPOLBusinessProcess()
	if isPeppol {
		// validatePEPPOL already invokes validatePEPPOLLineCalculations
		// (R120/R121/R130) at the end of its own checks.
		inv.validatePEPPOL()
	}

	if len(inv.violations) == 0 {
		return nil
	}

	sort.SliceStable(inv.violations, func(i, j int) bool {
		if inv.violations[i].Rule.Code != inv.violations[j].Rule.Code {
			return inv.violations[i].Rule.Code < inv.violations[j].Rule.Code
		}
		fi, fj := "", ""
		if len(inv.violations[i].InvFields) > 0 {
			fi = inv.violations[i].InvFields[0]
		}
		if len(inv.violations[j].InvFields) > 0 {
			fj = inv.violations[j].InvFields[0]
		}
		return fi < fj
	})

	return &ValidationError{violations: inv.violations, warnings: inv.warnings}
}
