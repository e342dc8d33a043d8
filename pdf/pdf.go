// Package pdf embeds and extracts the ZUGFeRD/Factur-X invoice XML that
// travels as a PDF/A-3 attachment alongside the human-readable invoice.
package pdf

import (
	"errors"
	"fmt"
	"io"
	"strings"

	pdfcpuapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/xinvoice/einvoice"
)

// ErrNoInvoiceXML is returned by Extract when the PDF carries no
// attachment recognisable as a ZUGFeRD/Factur-X/XRechnung invoice XML.
var ErrNoInvoiceXML = errors.New("pdf: no invoice XML attachment found")

// knownInvoiceXMLNames lists attachment filenames used in the wild by
// Factur-X, ZUGFeRD 1.x/2.x and XRechnung-as-PDF producers, in order of
// preference.
var knownInvoiceXMLNames = []string{
	"factur-x.xml",
	"ZUGFeRD-invoice.xml",
	"zugferd-invoice.xml",
	"xrechnung.xml",
}

// Extract reads the PDF in r (size bytes long) and returns the embedded
// invoice XML together with the attachment's filename. If more than one
// attachment looks like invoice XML, the first match against
// knownInvoiceXMLNames wins; otherwise the first ".xml" attachment is
// returned. ErrNoInvoiceXML is returned if the PDF carries no attachment
// at all, or none of them is XML.
func Extract(r io.ReaderAt, size int64) ([]byte, string, error) {
	rs := io.NewSectionReader(r, 0, size)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	attachments, err := pdfcpuapi.ExtractAttachmentsRaw(rs, "", nil, conf)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: extract attachments: %w", err)
	}
	if len(attachments) == 0 {
		return nil, "", ErrNoInvoiceXML
	}

	for _, name := range knownInvoiceXMLNames {
		for _, att := range attachments {
			if att.FileName == name {
				data, err := readAttachment(att)
				if err != nil {
					return nil, "", err
				}
				return data, att.FileName, nil
			}
		}
	}

	for _, att := range attachments {
		if strings.HasSuffix(strings.ToLower(att.FileName), ".xml") {
			data, err := readAttachment(att)
			if err != nil {
				return nil, "", err
			}
			return data, att.FileName, nil
		}
	}

	return nil, "", ErrNoInvoiceXML
}

func readAttachment(att model.Attachment) ([]byte, error) {
	data, err := io.ReadAll(att)
	if err != nil {
		return nil, fmt.Errorf("pdf: read attachment %q: %w", att.FileName, err)
	}
	return data, nil
}

// attachmentFilename returns the conventional embedded-XML filename for
// a profile. XRechnung invoices travel under xrechnung.xml; every other
// Factur-X/ZUGFeRD profile uses the CEN-recommended factur-x.xml.
func attachmentFilename(profile einvoice.CodeProfileType) string {
	if profile == einvoice.CProfileXRechnung {
		return "xrechnung.xml"
	}
	return "factur-x.xml"
}

// Embed returns pdf with xmlDoc attached as a ZUGFeRD/Factur-X PDF/A-3
// hybrid invoice container, named per the invoice's profile (see
// attachmentFilename). Per spec.md's ISO 19005-3 embed contract it
// appends an incremental update (see embedPDFA3) carrying:
//
//   - an sRGB ICC OutputIntent (§6.2.2)
//   - XMP metadata declaring pdfaid:part=3/conformance=B and
//     zf:ConformanceLevel for the invoice's profile
//   - the XML as a file-specification with AFRelationship Alternative,
//     listed in the catalog's /AF array and /Names/EmbeddedFiles tree
//   - a trailer /ID array (§6.1.3)
//
// pdfcpu's attachment API (used by Extract) has no way to produce this
// structure — AddAttachmentsRaw only knows how to add a generic
// attachment, not an OutputIntent/XMP/AF-declared PDF/A-3 one — so Embed
// builds the update directly, following the hand-rolled PDF object
// construction _examples/audrenbdb-facturx/pdf.go uses for its own
// from-scratch Factur-X PDFs.
func Embed(pdf []byte, xmlDoc []byte, profile einvoice.CodeProfileType) ([]byte, error) {
	filename := attachmentFilename(profile)
	conformance := conformanceLevel(profile)
	out, err := embedPDFA3(pdf, xmlDoc, filename, conformance)
	if err != nil {
		return nil, fmt.Errorf("pdf: embed attachment: %w", err)
	}
	return out, nil
}
