package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
)

// DocxExporter writes one Word paragraph per line of the brief.
type DocxExporter struct{}

func NewDocxExporter() *DocxExporter {
	return &DocxExporter{}
}

func (e *DocxExporter) Export(text string) ([]byte, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("docx: failed to create document: %w", err)
	}

	for _, line := range strings.Split(text, "\n") {
		doc.AddParagraph(line)
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, fmt.Errorf("docx: failed to write document: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *DocxExporter) ContentType() string { return DocxContentType }

func (e *DocxExporter) FileName() string { return baseFileName + ".docx" }
