package rules

// This file contains rules used in the validation logic that generated.go
// lacks: custom rules with no schematron equivalent, and schematron rules
// missing from its transcription. These are manually maintained.

var (
	// BR-USER-01..04: Custom rules (not part of EN 16931 schematron) validating
	// that allowance and charge amounts are non-negative.
	BRUSER01 = Rule{
		Code:        "BR-USER-01",
		Fields:      []string{"BT-92"},
		Description: `Document level allowance amount (BT-92) must not be negative.`,
	}
	BRUSER02 = Rule{
		Code:        "BR-USER-02",
		Fields:      []string{"BT-93"},
		Description: `Document level allowance base amount (BT-93) must not be negative.`,
	}
	BRUSER03 = Rule{
		Code:        "BR-USER-03",
		Fields:      []string{"BT-99"},
		Description: `Document level charge amount (BT-99) must not be negative.`,
	}
	BRUSER04 = Rule{
		Code:        "BR-USER-04",
		Fields:      []string{"BT-100"},
		Description: `Document level charge base amount (BT-100) must not be negative.`,
	}
	BRUSER05 = Rule{
		Code:        "BR-USER-05",
		Fields:      []string{"BT-131", "BT-129", "BT-146"},
		Description: `Invoice line net amount must match calculated amount (qty × price ÷ base qty ± allowances/charges).`,
	}

	// UNEXPECTED_TAX_CURRENCY: Validates that TaxTotalAmount elements use only
	// the invoice currency (BT-5) and optionally the accounting currency (BT-6).
	// EN 16931 only defines BT-110 and BT-111, no additional currencies are allowed.
	UNEXPECTED_TAX_CURRENCY = Rule{
		Code:        "UNEXPECTED-TAX-CURRENCY",
		Fields:      []string{"BT-110", "BT-111"},
		Description: `TaxTotalAmount with unexpected currency (expected invoice currency BT-5 or accounting currency BT-6).`,
	}

	// BR-CL-*: a selection of EN 16931 code list rules, transcribed from the
	// CEN/TC 434 schematron's codelist checks (clause 7).
	BRCL01 = Rule{
		Code:        "BR-CL-01",
		Fields:      []string{"BT-5"},
		Description: `Invoice currency code (BT-5) must be coded using ISO 4217.`,
	}
	BRCL03 = Rule{
		Code:        "BR-CL-03",
		Fields:      []string{"BT-21"},
		Description: `Invoice note subject code (BT-21) must be coded using UNTDID 4451.`,
	}
	BRCL04 = Rule{
		Code:        "BR-CL-04",
		Fields:      []string{"BT-40"},
		Description: `Seller country code (BT-40) must be coded using ISO 3166-1 alpha-2.`,
	}
	BRCL05 = Rule{
		Code:        "BR-CL-05",
		Fields:      []string{"BT-55"},
		Description: `Buyer country code (BT-55) must be coded using ISO 3166-1 alpha-2.`,
	}
	BRCL06 = Rule{
		Code:        "BR-CL-06",
		Fields:      []string{"BT-80"},
		Description: `Deliver to country code (BT-80) must be coded using ISO 3166-1 alpha-2.`,
	}
	BRCL10 = Rule{
		Code:        "BR-CL-10",
		Fields:      []string{"BT-6"},
		Description: `Tax accounting currency code (BT-6) must be coded using ISO 4217.`,
	}
	BRCL23 = Rule{
		Code:        "BR-CL-23",
		Fields:      []string{"BT-130"},
		Description: `Invoiced quantity unit of measure code (BT-130) should be coded using UN/CEFACT Recommendation 20.`,
	}
	BRCL26 = Rule{
		Code:        "BR-CL-26",
		Fields:      []string{"BT-98", "BT-105", "BT-140", "BT-145"},
		Description: `Document level and Invoice line allowance/charge reason codes (BT-98, BT-105, BT-140, BT-145) must be coded using UNTDID 5189.`,
	}

	// PEPPOL-EN16931-R080/R100: missing from the generated schematron
	// transcription, which does hold R120/R121/R130.
	PEPPOLEN16931R080 = Rule{
		Code:        "PEPPOL-EN16931-R080",
		Fields:      []string{"BT-125"},
		Description: `The total size of all additional document attachments (BT-125) included in the Invoice MUST not exceed 200 MB.`,
	}
	PEPPOLEN16931R100 = Rule{
		Code:        "PEPPOL-EN16931-R100",
		Fields:      []string{"BT-131", "BT-129", "BT-146", "BT-149"},
		Description: `The Invoice line extension amount MUST equal invoiced quantity times item net price divided by item price base quantity, plus line charges, minus line allowances, within a tolerance of 0.01.`,
	}

	// PEPPOL-EAS-FORMAT: not a schematron rule code, but the format check
	// OpenPEPPOL's PEPPOL-EN16931-R010/R020 imply for the endpoint id
	// scheme attribute (BT-34, BT-49).
	PEPPOLEASFORMAT = Rule{
		Code:        "PEPPOL-EAS-FORMAT",
		Fields:      []string{"BT-34", "BT-49"},
		Description: `Electronic address scheme identifier must be a 4-digit EAS code.`,
	}

	// BR-E-1..10: EN 16931 "Exempt from VAT" category rules, also missing
	// from the schematron transcription.
	BRE1  = Rule{Code: "BR-E-1", Fields: []string{"BG-23", "BT-118"}, Description: `An Invoice that contains an Invoice line, a Document level allowance or a Document level charge where the VAT category code is "Exempt from VAT" MUST contain exactly one VAT breakdown group with the VAT category code "Exempt from VAT".`}
	BRE2  = Rule{Code: "BR-E-2", Fields: []string{"BT-31", "BT-32", "BT-63"}, Description: `An Invoice line where the VAT category code is "Exempt from VAT" MUST contain the seller VAT identifier, seller tax registration identifier or seller tax representative VAT identifier.`}
	BRE3  = Rule{Code: "BR-E-3", Fields: []string{"BT-31", "BT-32", "BT-63"}, Description: `A Document level allowance where the VAT category code is "Exempt from VAT" MUST contain the seller VAT identifier, seller tax registration identifier or seller tax representative VAT identifier.`}
	BRE4  = Rule{Code: "BR-E-4", Fields: []string{"BT-31", "BT-32", "BT-63"}, Description: `A Document level charge where the VAT category code is "Exempt from VAT" MUST contain the seller VAT identifier, seller tax registration identifier or seller tax representative VAT identifier.`}
	BRE5  = Rule{Code: "BR-E-5", Fields: []string{"BG-25", "BT-152"}, Description: `An Invoice line where the VAT category code is "Exempt from VAT" MUST have a VAT rate of 0 (zero).`}
	BRE6  = Rule{Code: "BR-E-6", Fields: []string{"BG-20", "BT-96"}, Description: `A Document level allowance where the VAT category code is "Exempt from VAT" MUST have a VAT rate of 0 (zero).`}
	BRE7  = Rule{Code: "BR-E-7", Fields: []string{"BG-21", "BT-103"}, Description: `A Document level charge where the VAT category code is "Exempt from VAT" MUST have a VAT rate of 0 (zero).`}
	BRE8  = Rule{Code: "BR-E-8", Fields: []string{"BG-23", "BT-116"}, Description: `The VAT category taxable amount, in a VAT breakdown with VAT category code "Exempt from VAT", MUST equal the sum of Invoice line net amounts minus allowances plus charges at that VAT category.`}
	BRE9  = Rule{Code: "BR-E-9", Fields: []string{"BG-23", "BT-117"}, Description: `The VAT category tax amount in a VAT breakdown with VAT category code "Exempt from VAT" MUST be 0 (zero).`}
	BRE10 = Rule{Code: "BR-E-10", Fields: []string{"BG-23", "BT-120", "BT-121"}, Description: `A VAT breakdown with VAT category code "Exempt from VAT" MUST have a VAT exemption reason code or VAT exemption reason text.`}

	// BR-IG-1..10: Canary Islands general indirect tax (IGIC) rules.
	BRIG1  = Rule{Code: "BR-IG-1", Fields: []string{"BT-31", "BT-32", "BT-63"}, Description: `An Invoice line, Document level allowance or charge where the VAT category code is "IGIC" MUST contain the seller VAT identifier, seller tax registration identifier or seller tax representative VAT identifier.`}
	BRIG5  = Rule{Code: "BR-IG-5", Fields: []string{"BT-116"}, Description: `The VAT category taxable amount, in a VAT breakdown with VAT category code "IGIC", MUST equal the sum of Invoice line net amounts minus allowances plus charges at that VAT category.`}
	BRIG6  = Rule{Code: "BR-IG-6", Fields: []string{"BT-117"}, Description: `The VAT category tax amount in a VAT breakdown with VAT category code "IGIC" MUST equal the category taxable amount multiplied by the category rate.`}
	BRIG7  = Rule{Code: "BR-IG-7", Fields: []string{"BT-116"}, Description: `Each VAT breakdown with VAT category code "IGIC" MUST have a distinct category rate, and its taxable amount must equal the sum of the lines/allowances/charges at that rate.`}
	BRIG8  = Rule{Code: "BR-IG-8", Fields: []string{"BT-117"}, Description: `Each VAT breakdown with VAT category code "IGIC" MUST have a category tax amount equal to its taxable amount multiplied by its rate.`}
	BRIG9  = Rule{Code: "BR-IG-9", Fields: []string{"BG-23", "BT-120", "BT-121"}, Description: `A VAT breakdown with VAT category code "IGIC" MUST NOT have a VAT exemption reason code or VAT exemption reason text.`}
	BRIG10 = Rule{Code: "BR-IG-10", Fields: []string{"BT-31", "BT-32", "BT-48"}, Description: `An Invoice that contains a line, allowance or charge with VAT category "IGIC" MUST contain the seller VAT/tax registration identifier and MUST NOT contain a buyer VAT identifier.`}

	// BR-IP-1..10: Ceuta/Melilla production, services and import tax (IPSI) rules.
	BRIP1  = Rule{Code: "BR-IP-1", Fields: []string{"BT-31", "BT-32", "BT-63"}, Description: `An Invoice line, Document level allowance or charge where the VAT category code is "IPSI" MUST contain the seller VAT identifier, seller tax registration identifier or seller tax representative VAT identifier.`}
	BRIP5  = Rule{Code: "BR-IP-5", Fields: []string{"BT-116"}, Description: `The VAT category taxable amount, in a VAT breakdown with VAT category code "IPSI", MUST equal the sum of Invoice line net amounts minus allowances plus charges at that VAT category.`}
	BRIP6  = Rule{Code: "BR-IP-6", Fields: []string{"BT-117"}, Description: `The VAT category tax amount in a VAT breakdown with VAT category code "IPSI" MUST equal the category taxable amount multiplied by the category rate.`}
	BRIP7  = Rule{Code: "BR-IP-7", Fields: []string{"BT-116"}, Description: `Each VAT breakdown with VAT category code "IPSI" MUST have a distinct category rate, and its taxable amount must equal the sum of the lines/allowances/charges at that rate.`}
	BRIP8  = Rule{Code: "BR-IP-8", Fields: []string{"BT-117"}, Description: `Each VAT breakdown with VAT category code "IPSI" MUST have a category tax amount equal to its taxable amount multiplied by its rate.`}
	BRIP9  = Rule{Code: "BR-IP-9", Fields: []string{"BG-23", "BT-120", "BT-121"}, Description: `A VAT breakdown with VAT category code "IPSI" MUST NOT have a VAT exemption reason code or VAT exemption reason text.`}
	BRIP10 = Rule{Code: "BR-IP-10", Fields: []string{"BT-31", "BT-32", "BT-48"}, Description: `An Invoice that contains a line, allowance or charge with VAT category "IPSI" MUST contain the seller VAT/tax registration identifier and MUST NOT contain a buyer VAT identifier.`}

	// BR-DE-17: missing from the schematron transcription. Restricts the
	// Invoice type code (BT-3) to the UNTDID 1001 subset XRechnung permits.
	BRDE17 = Rule{
		Code:        "BR-DE-17",
		Fields:      []string{"BT-3"},
		Description: `Invoice type code (BT-3) must be coded using the UNTDID 1001 entries permitted by XRechnung (380, 384, 389, 381, 875, 876, 877).`,
	}
)
