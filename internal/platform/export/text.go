package export

const (
	TextContentType = "text/plain; charset=utf-8"
	DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	baseFileName = "舆情快报"
)

// TextExporter serves the brief as UTF-8 plain text.
type TextExporter struct{}

func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

func (e *TextExporter) Export(text string) ([]byte, error) {
	return []byte(text), nil
}

func (e *TextExporter) ContentType() string { return TextContentType }

func (e *TextExporter) FileName() string { return baseFileName + ".txt" }
