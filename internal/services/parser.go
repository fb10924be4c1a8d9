package services

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"alfredoptarigan/cv-matcher/internal/analysis"
)

// DocumentParserService resolves an uploaded CV into plain text. Supported
// inputs: PDF, DOCX and plain text. An empty or corrupt document is an
// extraction error; the document itself is the problem, so it is never
// retried.
type DocumentParserService interface {
	ExtractText(filename, contentType string, data []byte) (string, error)
}

type documentParserService struct{}

func NewDocumentParserService() DocumentParserService {
	return &documentParserService{}
}

func (p *documentParserService) ExtractText(filename, contentType string, data []byte) (string, error) {
	var text string
	var err error

	switch resolveFormat(filename, contentType) {
	case "pdf":
		text, err = extractPDFText(data)
	case "docx":
		text, err = extractDocxText(data)
	case "txt":
		text = string(data)
	default:
		return "", analysis.NewValidationError(
			fmt.Sprintf("unsupported document type for %q (expected PDF, DOCX or plain text)", filename))
	}

	if err != nil {
		return "", analysis.NewExtractionError("failed to extract text from document", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", analysis.NewExtractionError("document contains no extractable text", nil)
	}

	return text, nil
}

func resolveFormat(filename, contentType string) string {
	switch contentType {
	case "application/pdf":
		return "pdf"
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return "docx"
	case "text/plain":
		return "txt"
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "pdf"
	case ".docx":
		return "docx"
	case ".txt":
		return "txt"
	}
	return ""
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}

// docxTagPattern strips the WordprocessingML markup GetContent leaves in.
var docxTagPattern = regexp.MustCompile(`<[^>]+>`)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = docxTagPattern.ReplaceAllString(content, "")

	return content, nil
}
