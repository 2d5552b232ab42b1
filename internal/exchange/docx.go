package exchange

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MdRaihanAli/staff-management-system-sub000/internal/staff"
)

// WriteDOCX renders the record list as a Word report: a title, the
// generation timestamp and one bordered table. A .docx is an OPC zip of
// XML parts; for this fixed single-table layout the three parts are
// written directly rather than through a document library.
func WriteDOCX(w io.Writer, records []staff.Record, generatedAt time.Time) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", buildDocumentXML(records, generatedAt)},
	}
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("docx part %s: %w", part.name, err)
		}
		if _, err := io.WriteString(f, part.body); err != nil {
			return fmt.Errorf("docx part %s: %w", part.name, err)
		}
	}
	return zw.Close()
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

func buildDocumentXML(records []staff.Record, generatedAt time.Time) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	writeParagraph(&b, "Staff Report", true, 32)
	writeParagraph(&b, "Generated: "+generatedAt.Format("2006-01-02 15:04:05"), false, 0)

	b.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/><w:tblBorders>`)
	for _, edge := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		fmt.Fprintf(&b, `<w:%s w:val="single" w:sz="4" w:space="0" w:color="auto"/>`, edge)
	}
	b.WriteString(`</w:tblBorders></w:tblPr>`)

	writeTableRow(&b, Headers(), true)
	for _, rec := range records {
		writeTableRow(&b, Row(rec), false)
	}
	b.WriteString(`</w:tbl>`)

	b.WriteString(`<w:sectPr/></w:body></w:document>`)
	return b.String()
}

func writeParagraph(b *strings.Builder, text string, bold bool, halfPoints int) {
	b.WriteString(`<w:p><w:r><w:rPr>`)
	if bold {
		b.WriteString(`<w:b/>`)
	}
	if halfPoints > 0 {
		fmt.Fprintf(b, `<w:sz w:val="%d"/>`, halfPoints)
	}
	b.WriteString(`</w:rPr><w:t xml:space="preserve">`)
	b.WriteString(escapeXML(text))
	b.WriteString(`</w:t></w:r></w:p>`)
}

func writeTableRow(b *strings.Builder, cells []string, header bool) {
	b.WriteString(`<w:tr>`)
	for _, cell := range cells {
		b.WriteString(`<w:tc><w:tcPr/><w:p><w:r><w:rPr>`)
		if header {
			b.WriteString(`<w:b/>`)
		}
		b.WriteString(`</w:rPr><w:t xml:space="preserve">`)
		b.WriteString(escapeXML(cell))
		b.WriteString(`</w:t></w:r></w:p></w:tc>`)
	}
	b.WriteString(`</w:tr>`)
}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
