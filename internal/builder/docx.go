package builder

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Render produces a DOCX document from the structured resume content.
// The output is a minimal OOXML package: content types, package
// relationships and a single word/document.xml part.
func Render(content ResumeContent) ([]byte, error) {
	if err := content.Validate(); err != nil {
		return nil, err
	}

	var output bytes.Buffer
	writer := zip.NewWriter(&output)

	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", documentXML(content)},
	}
	for _, part := range parts {
		f, err := writer.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.data)); err != nil {
			return nil, fmt.Errorf("write %s: %w", part.name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// Twentieths of a point. The right tab stop sits at the printable edge
// of a letter page with one-inch margins.
const rightTabTwips = 9360

func documentXML(content ResumeContent) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	writeTitle(&b, content.PersonalInfo.FullName)
	writeContactLine(&b, content.PersonalInfo)

	if strings.TrimSpace(content.Summary) != "" {
		writeHeading(&b, "Professional Summary")
		writeParagraph(&b, content.Summary)
	}

	if len(content.Experience) > 0 {
		writeHeading(&b, "Experience")
		for _, exp := range content.Experience {
			writeTabbedLine(&b, joinNonEmpty(" - ", exp.Role, exp.Company), exp.Duration, true)
			if strings.TrimSpace(exp.Description) != "" {
				writeParagraph(&b, exp.Description)
			}
		}
	}

	if len(content.Education) > 0 {
		writeHeading(&b, "Education")
		for _, edu := range content.Education {
			writeTabbedLine(&b, joinNonEmpty(", ", edu.Degree, edu.School), edu.Year, false)
		}
	}

	if len(content.Skills) > 0 {
		writeHeading(&b, "Skills")
		writeParagraph(&b, strings.Join(content.Skills, ", "))
	}

	b.WriteString(`<w:sectPr><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/></w:sectPr>`)
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func writeTitle(b *strings.Builder, name string) {
	fmt.Fprintf(b,
		`<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:rPr><w:b/><w:sz w:val="48"/></w:rPr><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		escapeXML(name))
}

func writeContactLine(b *strings.Builder, info PersonalInfo) {
	contact := joinNonEmpty(" | ", info.Email, info.Phone, info.LinkedIn, info.Location)
	if contact == "" {
		return
	}
	fmt.Fprintf(b,
		`<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:rPr><w:sz w:val="20"/></w:rPr><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		escapeXML(contact))
}

func writeHeading(b *strings.Builder, title string) {
	fmt.Fprintf(b,
		`<w:p><w:pPr><w:spacing w:before="240" w:after="60"/><w:pBdr><w:bottom w:val="single" w:sz="6" w:space="1"/></w:pBdr></w:pPr><w:r><w:rPr><w:b/><w:sz w:val="26"/></w:rPr><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		escapeXML(title))
}

func writeParagraph(b *strings.Builder, text string) {
	fmt.Fprintf(b,
		`<w:p><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		escapeXML(text))
}

// writeTabbedLine emits a paragraph with the left text and a
// right-aligned trailer separated by a tab stop.
func writeTabbedLine(b *strings.Builder, left, right string, bold bool) {
	boldTag := ""
	if bold {
		boldTag = "<w:b/>"
	}
	fmt.Fprintf(b,
		`<w:p><w:pPr><w:tabs><w:tab w:val="right" w:pos="%d"/></w:tabs></w:pPr><w:r><w:rPr>%s</w:rPr><w:t xml:space="preserve">%s</w:t></w:r>`,
		rightTabTwips, boldTag, escapeXML(left))
	if strings.TrimSpace(right) != "" {
		fmt.Fprintf(b,
			`<w:r><w:tab/></w:r><w:r><w:rPr><w:i/></w:rPr><w:t xml:space="preserve">%s</w:t></w:r>`,
			escapeXML(right))
	}
	b.WriteString(`</w:p>`)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, sep)
}

func escapeXML(s string) string {
	var b bytes.Buffer
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return ""
	}
	return b.String()
}
