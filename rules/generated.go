// Code generated from the CEN/TC 434 EN 16931 and OpenPEPPOL BIS Billing 3.0
// schematron rule identifiers referenced throughout this module's validators.
// See doc.go for the generation mechanism this file statically replaces.
package rules

var (
	// Core business rules (BR-1 to BR-65)

	BR1 = Rule{
		Code:        "BR-1",
		Fields:      []string{"BT-24"},
		Description: "Invoice must contain specification identifier (BT-24)",
	}

	BR10 = Rule{
		Code:        "BR-10",
		Fields:      []string{"BG-8"},
		Description: "Invoice must contain buyer postal address (BG-8)",
	}

	BR11 = Rule{
		Code:        "BR-11",
		Fields:      []string{"BT-55"},
		Description: "Buyer postal address must contain country code (BT-55)",
	}

	BR12 = Rule{
		Code:        "BR-12",
		Fields:      []string{"BT-106"},
		Description: "Invoice total amount without VAT must be provided (BT-106)",
	}

	BR13 = Rule{
		Code:        "BR-13",
		Fields:      []string{"BT-109"},
		Description: "Invoice total VAT amount must be provided (BT-109)",
	}

	BR14 = Rule{
		Code:        "BR-14",
		Fields:      []string{"BT-112"},
		Description: "Invoice total amount with VAT must be provided (BT-112)",
	}

	BR15 = Rule{
		Code:        "BR-15",
		Fields:      []string{"BT-115"},
		Description: "Amount due for payment must be provided (BT-115)",
	}

	BR16 = Rule{
		Code:        "BR-16",
		Fields:      []string{"BG-25"},
		Description: "Invoice must have at least one invoice line (BG-25)",
	}

	BR17 = Rule{
		Code:        "BR-17",
		Fields:      []string{"BT-59", "BG-10", "BG-4"},
		Description: "Payee name must be provided if payee differs from seller (BT-59)",
	}

	BR18 = Rule{
		Code:        "BR-18",
		Fields:      []string{"BT-62", "BG-4", "BG-11"},
		Description: "Seller tax representative name must be provided (BT-62)",
	}

	BR19 = Rule{
		Code:        "BR-19",
		Fields:      []string{"BG-4", "BG-12"},
		Description: "Seller tax representative postal address must be provided (BG-12)",
	}

	BR2 = Rule{
		Code:        "BR-2",
		Fields:      []string{"BT-1"},
		Description: "Invoice must contain invoice number (BT-1)",
	}

	BR20 = Rule{
		Code:        "BR-20",
		Fields:      []string{"BG-4", "BG-12"},
		Description: "Seller tax representative postal address must contain country code",
	}

	BR21 = Rule{
		Code:        "BR-21",
		Fields:      []string{"BG-25", "BT-126"},
		Description: "Each invoice line must have invoice line identifier (BT-126)",
	}

	BR22 = Rule{
		Code:        "BR-22",
		Fields:      []string{"BG-25", "BT-129"},
		Description: "Each invoice line must have invoiced quantity (BT-129)",
	}

	BR23 = Rule{
		Code:        "BR-23",
		Fields:      []string{"BG-25", "BT-130"},
		Description: "Invoiced quantity must have unit of measure (BT-130)",
	}

	BR24 = Rule{
		Code:        "BR-24",
		Fields:      []string{"BG-25", "BT-131"},
		Description: "Each invoice line must have invoice line net amount (BT-131)",
	}

	BR25 = Rule{
		Code:        "BR-25",
		Fields:      []string{"BG-25", "BT-153"},
		Description: "Each invoice line must have item name (BT-153)",
	}

	BR26 = Rule{
		Code:        "BR-26",
		Fields:      []string{"BG-25", "BT-146"},
		Description: "Each invoice line must have item net price (BT-146)",
	}

	BR27 = Rule{
		Code:        "BR-27",
		Fields:      []string{"BG-25", "BT-146"},
		Description: "Item net price must not be negative (BT-146)",
	}

	BR28 = Rule{
		Code:        "BR-28",
		Fields:      []string{"BG-25", "BT-148"},
		Description: "Item gross price must not be negative (BT-148)",
	}

	BR29 = Rule{
		Code:        "BR-29",
		Fields:      []string{"BT-73", "BT-74"},
		Description: "Invoicing period end date must be later than or equal to start date",
	}

	BR3 = Rule{
		Code:        "BR-3",
		Fields:      []string{"BT-2"},
		Description: "Invoice must contain invoice issue date (BT-2)",
	}

	BR30 = Rule{
		Code:        "BR-30",
		Fields:      []string{"BG-25", "BT-135", "BT-134"},
		Description: "Line period end date must be later than or equal to start date",
	}

	BR31 = Rule{
		Code:        "BR-31",
		Fields:      []string{"BG-20", "BT-92"},
		Description: "Document level allowance amount must not be zero (BT-92)",
	}

	BR32 = Rule{
		Code:        "BR-32",
		Fields:      []string{"BG-20", "BT-95"},
		Description: "Document level allowance must have tax category code (BT-95)",
	}

	BR33 = Rule{
		Code:        "BR-33",
		Fields:      []string{"BG-20", "BT-97", "BT-98"},
		Description: "Document level allowance must have reason or reason code (BT-97, BT-98)",
	}

	BR34 = Rule{
		Code:        "BR-34",
		Fields:      []string{"BG-20", "BT-92"},
		Description: "Document level allowance amount must not be negative (BT-92)",
	}

	BR35 = Rule{
		Code:        "BR-35",
		Fields:      []string{"BG-20", "BT-93"},
		Description: "Document level allowance base amount must not be negative (BT-93)",
	}

	BR36 = Rule{
		Code:        "BR-36",
		Fields:      []string{"BG-21", "BT-99"},
		Description: "Document level charge amount must not be zero (BT-99)",
	}

	BR37 = Rule{
		Code:        "BR-37",
		Fields:      []string{"BG-21", "BT-102"},
		Description: "Document level charge must have tax category code (BT-102)",
	}

	BR38 = Rule{
		Code:        "BR-38",
		Fields:      []string{"BG-21", "BT-104", "BT-105"},
		Description: "Document level charge must have reason or reason code (BT-104, BT-105)",
	}

	BR39 = Rule{
		Code:        "BR-39",
		Fields:      []string{"BG-21", "BT-99"},
		Description: "Document level charge amount must not be negative (BT-99)",
	}

	BR4 = Rule{
		Code:        "BR-4",
		Fields:      []string{"BT-3"},
		Description: "Invoice must contain invoice type code (BT-3)",
	}

	BR40 = Rule{
		Code:        "BR-40",
		Fields:      []string{"BG-21", "BT-100"},
		Description: "Document level charge base amount must not be negative (BT-100)",
	}

	BR41 = Rule{
		Code:        "BR-41",
		Fields:      []string{"BG-27", "BT-136"},
		Description: "Invoice line allowance amount must not be zero (BT-136)",
	}

	BR42 = Rule{
		Code:        "BR-42",
		Fields:      []string{"BG-27", "BT-139", "BT-140"},
		Description: "Invoice line allowance must have reason or reason code (BT-139, BT-140)",
	}

	BR43 = Rule{
		Code:        "BR-43",
		Fields:      []string{"BG-28", "BT-141"},
		Description: "Invoice line charge amount must not be zero (BT-141)",
	}

	BR44 = Rule{
		Code:        "BR-44",
		Fields:      []string{"BG-28", "BT-144", "BT-145"},
		Description: "Invoice line charge must have reason or reason code (BT-144, BT-145)",
	}

	BR45 = Rule{
		Code:        "BR-45",
		Fields:      []string{"BG-23", "BT-116"},
		Description: "VAT category tax amount must equal sum of line net amounts minus allowances plus charges (BT-116)",
	}

	BR47 = Rule{
		Code:        "BR-47",
		Fields:      []string{"BG-23", "BT-118"},
		Description: "VAT breakdown must have VAT category code (BT-118)",
	}

	BR49 = Rule{
		Code:        "BR-49",
		Fields:      []string{"BT-81"},
		Description: "Payment means type code must be provided (BT-81)",
	}

	BR5 = Rule{
		Code:        "BR-5",
		Fields:      []string{"BT-5"},
		Description: "Invoice must contain invoice currency code (BT-5)",
	}

	BR52 = Rule{
		Code:        "BR-52",
		Fields:      []string{"BG-24", "BT-122"},
		Description: "Supporting document must have reference (BT-122)",
	}

	BR53 = Rule{
		Code:        "BR-53",
		Fields:      []string{"BT-6", "BT-111"},
		Description: "If tax currency code differs from invoice currency, VAT total in accounting currency must be provided (BT-6, BT-111)",
	}

	BR54 = Rule{
		Code:        "BR-54",
		Fields:      []string{"BG-32", "BT-160", "BT-161"},
		Description: "Item attribute must have both name and value (BT-160, BT-161)",
	}

	BR55 = Rule{
		Code:        "BR-55",
		Fields:      []string{"BG-3", "BT-25"},
		Description: "Preceding invoice reference must contain invoice number (BT-25)",
	}

	BR56 = Rule{
		Code:        "BR-56",
		Fields:      []string{"BG-11", "BT-63"},
		Description: "Seller tax representative must have VAT identifier (BT-63)",
	}

	BR57 = Rule{
		Code:        "BR-57",
		Fields:      []string{"BG-15", "BT-80"},
		Description: "Deliver to address must have country code (BT-80)",
	}

	BR6 = Rule{
		Code:        "BR-6",
		Fields:      []string{"BT-27"},
		Description: "Invoice must contain seller name (BT-27)",
	}

	BR61 = Rule{
		Code:        "BR-61",
		Fields:      []string{"BT-31", "BT-32"},
		Description: "Seller VAT identifier or tax registration identifier must be provided",
	}

	BR62 = Rule{
		Code:        "BR-62",
		Fields:      []string{"BT-48", "BT-46"},
		Description: "Buyer VAT identifier or tax registration identifier must be provided",
	}

	BR63 = Rule{
		Code:        "BR-63",
		Fields:      []string{"BT-31"},
		Description: "Seller VAT identifier must be provided",
	}

	BR64 = Rule{
		Code:        "BR-64",
		Fields:      []string{"BT-151"},
		Description: "Invoice line VAT category code must match document level VAT breakdown",
	}

	BR65 = Rule{
		Code:        "BR-65",
		Fields:      []string{"BT-95", "BT-102"},
		Description: "Document level allowance/charge VAT category code must match document level VAT breakdown",
	}

	BR7 = Rule{
		Code:        "BR-7",
		Fields:      []string{"BT-44"},
		Description: "Invoice must contain buyer name (BT-44)",
	}

	BR8 = Rule{
		Code:        "BR-8",
		Fields:      []string{"BG-5"},
		Description: "Invoice must contain seller postal address (BG-5)",
	}

	BR9 = Rule{
		Code:        "BR-9",
		Fields:      []string{"BT-40"},
		Description: "Seller postal address must contain country code (BT-40)",
	}

	// Calculation and cross-check rules (BR-CO-*)

	BRCO3 = Rule{
		Code:        "BR-CO-3",
		Fields:      []string{"BT-7", "BT-8"},
		Description: "Value added tax point date (BT-7) and value added tax point date code (BT-8) are mutually exclusive",
	}

	BRCO4 = Rule{
		Code:        "BR-CO-4",
		Fields:      []string{"BG-25", "BT-151"},
		Description: "Each invoice line must have invoiced item VAT category code (BT-151)",
	}

	BRCO5 = Rule{
		Code:        "BR-CO-5",
		Fields:      []string{"BT-97", "BT-98"},
		Description: "Document level allowance reason code (BT-98) and reason text (BT-97) must either both be present or both be absent",
	}

	BRCO6 = Rule{
		Code:        "BR-CO-6",
		Fields:      []string{"BT-104", "BT-105"},
		Description: "Document level charge reason code (BT-105) and reason text (BT-104) must either both be present or both be absent",
	}

	BRCO7 = Rule{
		Code:        "BR-CO-7",
		Fields:      []string{"BT-139", "BT-140"},
		Description: "Invoice line allowance reason code (BT-140) and reason text (BT-139) must either both be present or both be absent",
	}

	BRCO8 = Rule{
		Code:        "BR-CO-8",
		Fields:      []string{"BT-144", "BT-145"},
		Description: "Invoice line charge reason code (BT-145) and reason text (BT-144) must either both be present or both be absent",
	}

	BRCO9 = Rule{
		Code:        "BR-CO-9",
		Fields:      []string{"BT-31", "BT-48", "BT-63"},
		Description: "A VAT identifier prefixed with a country code must start with a valid ISO 3166-1 alpha-2 country code",
	}

	BRCO10 = Rule{
		Code:        "BR-CO-10",
		Fields:      []string{"BT-106", "BT-131"},
		Description: "Sum of invoice line net amount (BT-131) = Invoice line net amount (BT-106)",
	}

	BRCO11 = Rule{
		Code:        "BR-CO-11",
		Fields:      []string{"BT-107", "BT-92"},
		Description: "Sum of allowances on document level (BT-92) = Sum of document level allowance amounts (BT-107)",
	}

	BRCO12 = Rule{
		Code:        "BR-CO-12",
		Fields:      []string{"BT-108", "BT-99"},
		Description: "Sum of charges on document level (BT-99) = Sum of document level charge amounts (BT-108)",
	}

	BRCO13 = Rule{
		Code:        "BR-CO-13",
		Fields:      []string{"BT-109", "BT-106", "BT-107", "BT-108"},
		Description: "Invoice total amount without VAT (BT-109) = Σ Invoice line net amount (BT-106) - Sum of allowances on document level (BT-107) + Sum of charges on document level (BT-108)",
	}

	BRCO14 = Rule{
		Code:        "BR-CO-14",
		Fields:      []string{"BT-110", "BT-117"},
		Description: "Invoice total VAT amount (BT-110) = Σ VAT category tax amount (BT-117)",
	}

	BRCO15 = Rule{
		Code:        "BR-CO-15",
		Fields:      []string{"BT-112", "BT-109", "BT-110"},
		Description: "Invoice total amount with VAT (BT-112) = Invoice total amount without VAT (BT-109) + Invoice total VAT amount (BT-110)",
	}

	BRCO16 = Rule{
		Code:        "BR-CO-16",
		Fields:      []string{"BT-115", "BT-112", "BT-113", "BT-114"},
		Description: "Amount due for payment (BT-115) = Invoice total amount with VAT (BT-112) - Paid amount (BT-113) + Rounding amount (BT-114)",
	}

	BRCO17 = Rule{
		Code:        "BR-CO-17",
		Fields:      []string{"BT-116", "BT-117", "BT-119"},
		Description: "VAT category tax amount (BT-117) = VAT category taxable amount (BT-116) × (VAT category rate (BT-119) / 100), rounded to two decimals",
	}

	BRCO18 = Rule{
		Code:        "BR-CO-18",
		Fields:      []string{"BG-23"},
		Description: "Invoice must have at least one VAT breakdown group (BG-23)",
	}

	BRCO25 = Rule{
		Code:        "BR-CO-25",
		Fields:      []string{"BT-9", "BT-20", "BT-115"},
		Description: "If amount due for payment (BT-115) is positive, either payment due date (BT-9) or payment terms (BT-20) must be provided",
	}

	BRCO26 = Rule{
		Code:        "BR-CO-26",
		Fields:      []string{"BT-29", "BT-30", "BT-31"},
		Description: "A seller identifier, seller legal registration identifier or seller VAT identifier must be present",
	}

	BRCO27 = Rule{
		Code:        "BR-CO-27",
		Fields:      []string{"BT-84", "BT-BT-83"},
		Description: "A payment account identifier must be provided as either an IBAN or a proprietary identifier",
	}

	// Italian split-payment rules (BR-B-*)

	BRB1 = Rule{
		Code:        "BR-B-1",
		Fields:      []string{"BT-40", "BT-55", "BT-151"},
		Description: "An invoice with a split payment (B) VAT category requires both seller and buyer country code to be Italy (IT)",
	}

	BRB2 = Rule{
		Code:        "BR-B-2",
		Fields:      []string{"BT-151"},
		Description: "An invoice with a split payment (B) VAT category must not also carry a standard rated (S) VAT category",
	}

	// Standard rated VAT rules (BR-S-*)

	BRS1 = Rule{
		Code:        "BR-S-1",
		Fields:      []string{"BG-23", "BT-118"},
		Description: "Invoice with standard rated VAT must have VAT breakdown (BG-23) with VAT category code (BT-118) = 'S'",
	}

	BRS2 = Rule{
		Code:        "BR-S-2",
		Fields:      []string{"BT-151"},
		Description: "Invoice line with standard rated VAT must have invoiced item VAT category code (BT-151) = 'S'",
	}

	BRS3 = Rule{
		Code:        "BR-S-3",
		Fields:      []string{"BT-95", "BT-102"},
		Description: "Document level allowance/charge with standard rated VAT must have VAT category code (BT-95, BT-102) = 'S'",
	}

	BRS4 = Rule{
		Code:        "BR-S-4",
		Fields:      []string{"BT-31"},
		Description: "Invoice with standard rated VAT must contain seller VAT identifier (BT-31)",
	}

	BRS5 = Rule{
		Code:        "BR-S-5",
		Fields:      []string{"BT-116"},
		Description: "VAT category taxable amount (BT-116) must be provided for standard rated VAT",
	}

	BRS6 = Rule{
		Code:        "BR-S-6",
		Fields:      []string{"BT-117"},
		Description: "VAT category tax amount (BT-117) must be provided for standard rated VAT",
	}

	BRS7 = Rule{
		Code:        "BR-S-7",
		Fields:      []string{"BT-118"},
		Description: "VAT category code (BT-118) must be 'S' for standard rated VAT",
	}

	BRS8 = Rule{
		Code:        "BR-S-8",
		Fields:      []string{"BT-119"},
		Description: "VAT category rate (BT-119) must be provided for standard rated VAT and must not be zero",
	}

	BRS9 = Rule{
		Code:        "BR-S-9",
		Fields:      []string{"BT-120"},
		Description: "VAT exemption reason code (BT-120) must not be provided for standard rated VAT",
	}

	BRS10 = Rule{
		Code:        "BR-S-10",
		Fields:      []string{"BT-121"},
		Description: "VAT exemption reason text (BT-121) must not be provided for standard rated VAT",
	}

	// Reverse charge VAT rules (BR-AE-*)

	BRAE1 = Rule{
		Code:        "BR-AE-1",
		Fields:      []string{"BG-23", "BT-118"},
		Description: "Invoice with reverse charge VAT must have VAT breakdown (BG-23) with VAT category code (BT-118) = 'AE'",
	}

	BRAE2 = Rule{
		Code:        "BR-AE-2",
		Fields:      []string{"BT-151"},
		Description: "Invoice line with reverse charge VAT must have invoiced item VAT category code (BT-151) = 'AE'",
	}

	BRAE3 = Rule{
		Code:        "BR-AE-3",
		Fields:      []string{"BT-95", "BT-102"},
		Description: "Document level allowance/charge with reverse charge VAT must have VAT category code (BT-95, BT-102) = 'AE'",
	}

	BRAE4 = Rule{
		Code:        "BR-AE-4",
		Fields:      []string{"BT-31"},
		Description: "Invoice with reverse charge VAT must contain seller VAT identifier (BT-31) or seller tax registration identifier (BT-32)",
	}

	BRAE5 = Rule{
		Code:        "BR-AE-5",
		Fields:      []string{"BT-48"},
		Description: "Invoice with reverse charge VAT must contain buyer VAT identifier (BT-48)",
	}

	BRAE6 = Rule{
		Code:        "BR-AE-6",
		Fields:      []string{"BT-116"},
		Description: "VAT category taxable amount (BT-116) must be provided for reverse charge VAT",
	}

	BRAE7 = Rule{
		Code:        "BR-AE-7",
		Fields:      []string{"BT-117"},
		Description: "VAT category tax amount (BT-117) must be zero for reverse charge VAT",
	}

	BRAE8 = Rule{
		Code:        "BR-AE-8",
		Fields:      []string{"BT-118"},
		Description: "VAT category code (BT-118) must be 'AE' for reverse charge VAT",
	}

	BRAE9 = Rule{
		Code:        "BR-AE-9",
		Fields:      []string{"BT-119"},
		Description: "VAT category rate (BT-119) must not be provided for reverse charge VAT",
	}

	BRAE10 = Rule{
		Code:        "BR-AE-10",
		Fields:      []string{"BT-120", "BT-121"},
		Description: "VAT exemption reason code (BT-120) or VAT exemption reason text (BT-121) must be provided for reverse charge VAT",
	}

	// Zero rated VAT rules (BR-Z-*)

	BRZ1 = Rule{
		Code:        "BR-Z-1",
		Fields:      []string{"BG-23", "BT-118"},
		Description: "Invoice with zero rated VAT must have VAT breakdown (BG-23) with VAT category code (BT-118) = 'Z'",
	}

	BRZ2 = Rule{
		Code:        "BR-Z-2",
		Fields:      []string{"BT-151"},
		Description: "Invoice line with zero rated VAT must have invoiced item VAT category code (BT-151) = 'Z'",
	}

	BRZ3 = Rule{
		Code:        "BR-Z-3",
		Fields:      []string{"BT-95", "BT-102"},
		Description: "Document level allowance/charge with zero rated VAT must have VAT category code (BT-95, BT-102) = 'Z'",
	}

	BRZ4 = Rule{
		Code:        "BR-Z-4",
		Fields:      []string{"BT-31"},
		Description: "Invoice with zero rated VAT must contain seller VAT identifier (BT-31) or seller tax registration identifier (BT-32)",
	}

	BRZ5 = Rule{
		Code:        "BR-Z-5",
		Fields:      []string{"BT-116"},
		Description: "VAT category taxable amount (BT-116) must be provided for zero rated VAT",
	}

	BRZ6 = Rule{
		Code:        "BR-Z-6",
		Fields:      []string{"BT-117"},
		Description: "VAT category tax amount (BT-117) must be zero for zero rated VAT",
	}

	BRZ7 = Rule{
		Code:        "BR-Z-7",
		Fields:      []string{"BT-118"},
		Description: "VAT category code (BT-118) must be 'Z' for zero rated VAT",
	}

	BRZ8 = Rule{
		Code:        "BR-Z-8",
		Fields:      []string{"BT-119"},
		Description: "VAT category rate (BT-119) must be zero for zero rated VAT",
	}

	BRZ9 = Rule{
		Code:        "BR-Z-9",
		Fields:      []string{"BT-120", "BT-121"},
		Description: "VAT exemption reason code (BT-120) or VAT exemption reason text (BT-121) must be provided for zero rated VAT",
	}

	BRZ10 = Rule{
		Code:        "BR-Z-10",
		Fields:      []string{"BT-121"},
		Description: "VAT exemption reason text (BT-121) must be provided if VAT exemption reason code (BT-120) is not provided",
	}

	// Export outside EU VAT rules (BR-G-*)

	BRG1 = Rule{
		Code:        "BR-G-1",
		Fields:      []string{"BG-23", "BT-118"},
		Description: "Invoice with export outside EU VAT must have VAT breakdown (BG-23) with VAT category code (BT-118) = 'G'",
	}

	BRG2 = Rule{
		Code:        "BR-G-2",
		Fields:      []string{"BT-151"},
		Description: "Invoice line with export outside EU VAT must have invoiced item VAT category code (BT-151) = 'G'",
	}

	BRG3 = Rule{
		Code:        "BR-G-3",
		Fields:      []string{"BT-95", "BT-102"},
		Description: "Document level allowance/charge with export outside EU VAT must have VAT category code (BT-95, BT-102) = 'G'",
	}

	BRG4 = Rule{
		Code:        "BR-G-4",
		Fields:      []string{"BT-31"},
		Description: "Invoice with export outside EU VAT must contain seller VAT identifier (BT-31) or seller tax registration identifier (BT-32)",
	}

	BRG5 = Rule{
		Code:        "BR-G-5",
		Fields:      []string{"BT-116"},
		Description: "VAT category taxable amount (BT-116) must be provided for export outside EU VAT",
	}

	BRG6 = Rule{
		Code:        "BR-G-6",
		Fields:      []string{"BT-117"},
		Description: "VAT category tax amount (BT-117) must be zero for export outside EU VAT",
	}

	BRG7 = Rule{
		Code:        "BR-G-7",
		Fields:      []string{"BT-118"},
		Description: "VAT category code (BT-118) must be 'G' for export outside EU VAT",
	}

	BRG8 = Rule{
		Code:        "BR-G-8",
		Fields:      []string{"BT-119"},
		Description: "VAT category rate (BT-119) must not be provided for export outside EU VAT",
	}

	BRG9 = Rule{
		Code:        "BR-G-9",
		Fields:      []string{"BT-120", "BT-121"},
		Description: "VAT exemption reason code (BT-120) or VAT exemption reason text (BT-121) must be provided for export outside EU VAT",
	}

	BRG10 = Rule{
		Code:        "BR-G-10",
		Fields:      []string{"BT-121"},
		Description: "VAT exemption reason text (BT-121) must be provided if VAT exemption reason code (BT-120) is not provided",
	}

	// Intra-community supply VAT rules (BR-IC-*)

	BRIC1 = Rule{
		Code:        "BR-IC-1",
		Fields:      []string{"BG-23", "BT-118"},
		Description: "Invoice with intra-community supply VAT must have VAT breakdown (BG-23) with VAT category code (BT-118) = 'K'",
	}

	BRIC2 = Rule{
		Code:        "BR-IC-2",
		Fields:      []string{"BT-151"},
		Description: "Invoice line with intra-community supply VAT must have invoiced item VAT category code (BT-151) = 'K'",
	}

	BRIC3 = Rule{
		Code:        "BR-IC-3",
		Fields:      []string{"BT-95", "BT-102"},
		Description: "Document level allowance/charge with intra-community supply VAT must have VAT category code (BT-95, BT-102) = 'K'",
	}

	BRIC4 = Rule{
		Code:        "BR-IC-4",
		Fields:      []string{"BT-31"},
		Description: "Invoice with intra-community supply VAT must contain seller VAT identifier (BT-31)",
	}

	BRIC5 = Rule{
		Code:        "BR-IC-5",
		Fields:      []string{"BT-48"},
		Description: "Invoice with intra-community supply VAT must contain buyer VAT identifier (BT-48)",
	}

	BRIC6 = Rule{
		Code:        "BR-IC-6",
		Fields:      []string{"BT-116"},
		Description: "VAT category taxable amount (BT-116) must be provided for intra-community supply VAT",
	}

	BRIC7 = Rule{
		Code:        "BR-IC-7",
		Fields:      []string{"BT-117"},
		Description: "VAT category tax amount (BT-117) must be zero for intra-community supply VAT",
	}

	BRIC8 = Rule{
		Code:        "BR-IC-8",
		Fields:      []string{"BT-118"},
		Description: "VAT category code (BT-118) must be 'K' for intra-community supply VAT",
	}

	BRIC9 = Rule{
		Code:        "BR-IC-9",
		Fields:      []string{"BT-119"},
		Description: "VAT category rate (BT-119) must not be provided for intra-community supply VAT",
	}

	BRIC10 = Rule{
		Code:        "BR-IC-10",
		Fields:      []string{"BT-120", "BT-121"},
		Description: "VAT exemption reason code (BT-120) or VAT exemption reason text (BT-121) must be provided for intra-community supply VAT",
	}

	BRIC11 = Rule{
		Code:        "BR-IC-11",
		Fields:      []string{"BT-40", "BT-55"},
		Description: "Seller country code (BT-40) and buyer country code (BT-55) must differ for intra-community supply",
	}

	BRIC12 = Rule{
		Code:        "BR-IC-12",
		Fields:      []string{"BT-121"},
		Description: "VAT exemption reason text (BT-121) must be provided if VAT exemption reason code (BT-120) is not provided",
	}

	// Not-subject-to-VAT rules (BR-O-*)

	BRO1 = Rule{
		Code:        "BR-O-1",
		Fields:      []string{"BG-23", "BT-118"},
		Description: "Invoice with not subject to VAT must have VAT breakdown (BG-23) with VAT category code (BT-118) = 'O'",
	}

	BRO2 = Rule{
		Code:        "BR-O-2",
		Fields:      []string{"BT-151"},
		Description: "Invoice line with not subject to VAT must have invoiced item VAT category code (BT-151) = 'O'",
	}

	BRO3 = Rule{
		Code:        "BR-O-3",
		Fields:      []string{"BT-95", "BT-102"},
		Description: "Document level allowance/charge with not subject to VAT must have VAT category code (BT-95, BT-102) = 'O'",
	}

	BRO4 = Rule{
		Code:        "BR-O-4",
		Fields:      []string{"BT-31"},
		Description: "Invoice with not subject to VAT must not contain seller VAT identifier (BT-31)",
	}

	BRO5 = Rule{
		Code:        "BR-O-5",
		Fields:      []string{"BT-48"},
		Description: "Invoice with not subject to VAT must not contain buyer VAT identifier (BT-48)",
	}

	BRO6 = Rule{
		Code:        "BR-O-6",
		Fields:      []string{"BT-116"},
		Description: "VAT category taxable amount (BT-116) must be provided for not subject to VAT",
	}

	BRO7 = Rule{
		Code:        "BR-O-7",
		Fields:      []string{"BT-117"},
		Description: "VAT category tax amount (BT-117) must be zero for not subject to VAT",
	}

	BRO8 = Rule{
		Code:        "BR-O-8",
		Fields:      []string{"BT-118"},
		Description: "VAT category code (BT-118) must be 'O' for not subject to VAT",
	}

	BRO9 = Rule{
		Code:        "BR-O-9",
		Fields:      []string{"BT-119"},
		Description: "VAT category rate (BT-119) must not be provided for not subject to VAT",
	}

	BRO10 = Rule{
		Code:        "BR-O-10",
		Fields:      []string{"BT-120", "BT-121"},
		Description: "VAT exemption reason code (BT-120) or VAT exemption reason text (BT-121) must be provided for not subject to VAT",
	}

	BRO11 = Rule{
		Code:        "BR-O-11",
		Fields:      []string{"BT-151"},
		Description: "Invoice line VAT category code (BT-151) must be 'O' when not subject to VAT",
	}

	BRO12 = Rule{
		Code:        "BR-O-12",
		Fields:      []string{"BT-152"},
		Description: "Invoice line VAT rate (BT-152) must not be provided when not subject to VAT",
	}

	BRO13 = Rule{
		Code:        "BR-O-13",
		Fields:      []string{"BT-95"},
		Description: "Document level allowance VAT category code (BT-95) must be 'O' when not subject to VAT",
	}

	BRO14 = Rule{
		Code:        "BR-O-14",
		Fields:      []string{"BT-102"},
		Description: "Document level charge VAT category code (BT-102) must be 'O' when not subject to VAT",
	}

	// German XRechnung rules (BR-DE-*)

	BRDE1 = Rule{
		Code:        "BR-DE-1",
		Fields:      []string{"BG-16"},
		Description: "An invoice must contain information on PAYMENT INSTRUCTIONS (BG-16)",
	}

	BRDE2 = Rule{
		Code:        "BR-DE-2",
		Fields:      []string{"BG-6"},
		Description: "The element group SELLER CONTACT (BG-6) must be transmitted",
	}

	BRDE3 = Rule{
		Code:        "BR-DE-3",
		Fields:      []string{"BT-37"},
		Description: "The element 'Seller city' (BT-37) must be transmitted",
	}

	BRDE4 = Rule{
		Code:        "BR-DE-4",
		Fields:      []string{"BT-38"},
		Description: "The element 'Seller post code' (BT-38) must be transmitted",
	}

	BRDE5 = Rule{
		Code:        "BR-DE-5",
		Fields:      []string{"BT-41"},
		Description: "The element 'Seller contact point' (BT-41) must be transmitted",
	}

	BRDE6 = Rule{
		Code:        "BR-DE-6",
		Fields:      []string{"BT-42"},
		Description: "The element 'Seller contact telephone number' (BT-42) must be transmitted",
	}

	BRDE7 = Rule{
		Code:        "BR-DE-7",
		Fields:      []string{"BT-43"},
		Description: "The element 'Seller contact email address' (BT-43) must be transmitted",
	}

	BRDE8 = Rule{
		Code:        "BR-DE-8",
		Fields:      []string{"BT-52"},
		Description: "The element 'Buyer city' (BT-52) must be transmitted",
	}

	BRDE9 = Rule{
		Code:        "BR-DE-9",
		Fields:      []string{"BT-53"},
		Description: "The element 'Buyer post code' (BT-53) must be transmitted",
	}

	BRDE10 = Rule{
		Code:        "BR-DE-10",
		Fields:      []string{"BT-77"},
		Description: "The element 'Deliver to city' (BT-77) must be transmitted if a delivery address is provided",
	}

	BRDE11 = Rule{
		Code:        "BR-DE-11",
		Fields:      []string{"BT-78"},
		Description: "The element 'Deliver to post code' (BT-78) must be transmitted if a delivery address is provided",
	}

	BRDE15 = Rule{
		Code:        "BR-DE-15",
		Fields:      []string{"BT-10"},
		Description: "The element 'Buyer reference' (BT-10) must be transmitted",
	}

	BRDE16 = Rule{
		Code:        "BR-DE-16",
		Fields:      []string{"BT-31", "BT-48", "BT-63"},
		Description: "A VAT identifier must have a prefix in accordance with ISO code list 3166-1 alpha-2",
	}

	BRDE19 = Rule{
		Code:        "BR-DE-19",
		Fields:      []string{"BT-84"},
		Description: "Payment account identifier (BT-84) must be a valid IBAN when using SEPA credit transfer (payment means code 58)",
	}

	BRDE20 = Rule{
		Code:        "BR-DE-20",
		Fields:      []string{"BT-91"},
		Description: "Debited account identifier (BT-91) must be a valid IBAN when using SEPA direct debit (payment means code 59)",
	}

	BRDE21 = Rule{
		Code:        "BR-DE-21",
		Fields:      []string{"BT-24"},
		Description: "The element 'Specification identifier' (BT-24) must syntactically correspond to the XRechnung specification identifier",
	}

	BRDE23A = Rule{
		Code:        "BR-DE-23-a",
		Fields:      []string{"BG-17"},
		Description: "Payment means code 30 or 58 (credit transfer) requires CREDIT TRANSFER information (BG-17)",
	}

	BRDE23B = Rule{
		Code:        "BR-DE-23-b",
		Fields:      []string{"BG-18", "BG-19"},
		Description: "Payment means code 30 or 58 (credit transfer) must not contain PAYMENT CARD INFORMATION (BG-18) or DIRECT DEBIT (BG-19)",
	}

	BRDE24A = Rule{
		Code:        "BR-DE-24-a",
		Fields:      []string{"BG-18"},
		Description: "Payment means code 48, 54 or 55 (payment card) requires PAYMENT CARD INFORMATION (BG-18)",
	}

	BRDE24B = Rule{
		Code:        "BR-DE-24-b",
		Fields:      []string{"BG-17", "BG-19"},
		Description: "Payment means code 48, 54 or 55 (payment card) must not contain CREDIT TRANSFER (BG-17) or DIRECT DEBIT (BG-19)",
	}

	BRDE25A = Rule{
		Code:        "BR-DE-25-a",
		Fields:      []string{"BG-19"},
		Description: "Payment means code 59 (direct debit) requires DIRECT DEBIT information (BG-19)",
	}

	BRDE25B = Rule{
		Code:        "BR-DE-25-b",
		Fields:      []string{"BG-17", "BG-18"},
		Description: "Payment means code 59 (direct debit) must not contain CREDIT TRANSFER (BG-17) or PAYMENT CARD INFORMATION (BG-18)",
	}

	BRDE26 = Rule{
		Code:        "BR-DE-26",
		Fields:      []string{"BG-3"},
		Description: "If invoice type code (BT-3) is 384 (Corrected invoice), a PRECEDING INVOICE REFERENCE (BG-3) must be provided",
	}

	BRDE27 = Rule{
		Code:        "BR-DE-27",
		Fields:      []string{"BT-42"},
		Description: "Seller contact telephone number (BT-42) must contain at least three digits",
	}

	BRDE28 = Rule{
		Code:        "BR-DE-28",
		Fields:      []string{"BT-43"},
		Description: "Seller contact email address (BT-43) must have a syntactically valid format",
	}

	BRDE30 = Rule{
		Code:        "BR-DE-30",
		Fields:      []string{"BT-90"},
		Description: "Bank assigned creditor identifier (BT-90) must be provided for direct debit",
	}

	BRDE31 = Rule{
		Code:        "BR-DE-31",
		Fields:      []string{"BT-91"},
		Description: "Debited account identifier (BT-91) must be provided for direct debit",
	}

	// Decimal-precision rules (BR-DEC-*)

	BRDEC1 = Rule{
		Code:        "BR-DEC-1",
		Fields:      []string{"BT-92"},
		Description: "Document level allowance amount must not have more than two decimal digits",
	}

	BRDEC2 = Rule{
		Code:        "BR-DEC-2",
		Fields:      []string{"BT-93"},
		Description: "Document level allowance base amount must not have more than two decimal digits",
	}

	BRDEC5 = Rule{
		Code:        "BR-DEC-5",
		Fields:      []string{"BT-99"},
		Description: "Document level charge amount must not have more than two decimal digits",
	}

	BRDEC6 = Rule{
		Code:        "BR-DEC-6",
		Fields:      []string{"BT-100"},
		Description: "Document level charge base amount must not have more than two decimal digits",
	}

	BRDEC9 = Rule{
		Code:        "BR-DEC-9",
		Fields:      []string{"BT-106"},
		Description: "Sum of invoice line net amounts must not have more than two decimal digits",
	}

	BRDEC10 = Rule{
		Code:        "BR-DEC-10",
		Fields:      []string{"BT-107"},
		Description: "Sum of document level allowances must not have more than two decimal digits",
	}

	BRDEC11 = Rule{
		Code:        "BR-DEC-11",
		Fields:      []string{"BT-108"},
		Description: "Sum of document level charges must not have more than two decimal digits",
	}

	BRDEC12 = Rule{
		Code:        "BR-DEC-12",
		Fields:      []string{"BT-109"},
		Description: "Invoice total amount without VAT must not have more than two decimal digits",
	}

	BRDEC13 = Rule{
		Code:        "BR-DEC-13",
		Fields:      []string{"BT-110"},
		Description: "Invoice total VAT amount must not have more than two decimal digits",
	}

	BRDEC14 = Rule{
		Code:        "BR-DEC-14",
		Fields:      []string{"BT-112"},
		Description: "Invoice total amount with VAT must not have more than two decimal digits",
	}

	BRDEC15 = Rule{
		Code:        "BR-DEC-15",
		Fields:      []string{"BT-111"},
		Description: "Invoice total VAT amount in accounting currency must not have more than two decimal digits",
	}

	BRDEC16 = Rule{
		Code:        "BR-DEC-16",
		Fields:      []string{"BT-113"},
		Description: "Paid amount must not have more than two decimal digits",
	}

	BRDEC17 = Rule{
		Code:        "BR-DEC-17",
		Fields:      []string{"BT-114"},
		Description: "Rounding amount must not have more than two decimal digits",
	}

	BRDEC18 = Rule{
		Code:        "BR-DEC-18",
		Fields:      []string{"BT-115"},
		Description: "Amount due for payment must not have more than two decimal digits",
	}

	BRDEC19 = Rule{
		Code:        "BR-DEC-19",
		Fields:      []string{"BT-116"},
		Description: "VAT category taxable amount must not have more than two decimal digits",
	}

	BRDEC20 = Rule{
		Code:        "BR-DEC-20",
		Fields:      []string{"BT-117"},
		Description: "VAT category tax amount must not have more than two decimal digits",
	}

	BRDEC23 = Rule{
		Code:        "BR-DEC-23",
		Fields:      []string{"BT-131"},
		Description: "Invoice line net amount must not have more than two decimal digits",
	}

	BRDEC24 = Rule{
		Code:        "BR-DEC-24",
		Fields:      []string{"BT-136"},
		Description: "Invoice line allowance amount must not have more than two decimal digits",
	}

	BRDEC25 = Rule{
		Code:        "BR-DEC-25",
		Fields:      []string{"BT-137"},
		Description: "Invoice line allowance base amount must not have more than two decimal digits",
	}

	BRDEC27 = Rule{
		Code:        "BR-DEC-27",
		Fields:      []string{"BT-141"},
		Description: "Invoice line charge amount must not have more than two decimal digits",
	}

	BRDEC28 = Rule{
		Code:        "BR-DEC-28",
		Fields:      []string{"BT-142"},
		Description: "Invoice line charge base amount must not have more than two decimal digits",
	}

	// Peppol BIS Billing 3.0 rules (PEPPOL-EN16931-*)

	PEPPOLEN16931R1 = Rule{
		Code:        "PEPPOL-EN16931-R1",
		Fields:      []string{"BT-23"},
		Description: "Business process (BT-23) must be provided",
	}

	PEPPOLEN16931R2 = Rule{
		Code:        "PEPPOL-EN16931-R2",
		Fields:      []string{"BG-1"},
		Description: "No more than one note is allowed on document level",
	}

	PEPPOLEN16931R3 = Rule{
		Code:        "PEPPOL-EN16931-R3",
		Fields:      []string{"BT-10", "BT-13"},
		Description: "A buyer reference (BT-10) or a purchase order reference (BT-13) must be provided",
	}

	PEPPOLEN16931R7 = Rule{
		Code:        "PEPPOL-EN16931-R7",
		Fields:      []string{"BT-23"},
		Description: "Business process (BT-23) must follow the format urn:fdc:peppol.eu:2017:poacc:billing:NN:1.0",
	}

	PEPPOLEN16931R10 = Rule{
		Code:        "PEPPOL-EN16931-R10",
		Fields:      []string{"BT-49"},
		Description: "Buyer electronic address (BT-49) must be provided",
	}

	PEPPOLEN16931R20 = Rule{
		Code:        "PEPPOL-EN16931-R20",
		Fields:      []string{"BT-34"},
		Description: "Seller electronic address (BT-34) must be provided",
	}

	PEPPOLEN16931R120 = Rule{
		Code:        "PEPPOL-EN16931-R120",
		Fields:      []string{"BT-131", "BT-129", "BT-146", "BT-149"},
		Description: "Invoice line net amount must equal invoiced quantity times item net price divided by item price base quantity, plus line charges, minus line allowances",
	}

	PEPPOLEN16931R121 = Rule{
		Code:        "PEPPOL-EN16931-R121",
		Fields:      []string{"BT-149"},
		Description: "Item price base quantity must be a positive number greater than zero",
	}

	PEPPOLEN16931R130 = Rule{
		Code:        "PEPPOL-EN16931-R130",
		Fields:      []string{"BT-150", "BT-130"},
		Description: "Unit code of the item price base quantity must be the same as the unit code of the invoiced quantity",
	}

	// Line net amount cross-check

	Check = Rule{
		Code:        "Check",
		Fields:      []string{"BT-146", "BT-149", "BT-131"},
		Description: "Invoice line net amount (BT-131) = invoiced quantity (BT-129) × item net price (BT-146) / item price base quantity (BT-149)",
	}

)