// Package extraction converts resume files into raw lowercase text.
//
// PDF files are read through their text layer first; scanned or rasterized
// PDFs with no extractable text fall back to rendering each page to an image
// and running OCR. DOCX files concatenate paragraph text in document order.
package extraction

import (
	"bytes"
	"fmt"
	"html"
	"image/png"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/otiai10/gosseract/v2"
)

// FromFile extracts lowercase text from the resume at path. Unsupported
// extensions yield an empty string, not an error: callers treat empty text as
// "nothing extracted" and let field extraction degrade to empty results.
func FromFile(path string) string {
	logger := slog.With("component", "extraction", "path", path)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err := pdfText(path)
		if err != nil {
			logger.Warn("pdf text layer unreadable", "error", err)
			text = ""
		}
		if strings.TrimSpace(text) == "" {
			logger.Info("no text layer, falling back to ocr")
			ocrText, err := ocrPDF(path)
			if err != nil {
				logger.Warn("ocr fallback failed", "error", err)
			} else {
				text = ocrText
			}
		}
		return strings.ToLower(text)

	case ".docx":
		text, err := docxText(path)
		if err != nil {
			logger.Warn("docx unreadable", "error", err)
			return ""
		}
		return strings.ToLower(text)

	default:
		return ""
	}
}

// pdfText concatenates the text layer of every page, with no separator.
func pdfText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

// ocrPDF renders each page to an image and runs tesseract on it, concatenating
// the per-page output. Pages that fail to render or recognize are skipped.
func ocrPDF(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to render pdf: %w", err)
	}
	defer doc.Close()

	client := gosseract.NewClient()
	defer client.Close()

	var sb strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		img, err := doc.Image(n)
		if err != nil {
			continue
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			continue
		}
		if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
			continue
		}
		text, err := client.Text()
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTag          = regexp.MustCompile(`<[^>]+>`)
)

// docxText joins paragraph text in document order with newline separators.
func docxText(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}
	defer doc.Close()

	return stripDocxMarkup(doc.Editable().GetContent()), nil
}

// stripDocxMarkup turns raw document.xml content into plain text: paragraph
// boundaries become newlines, remaining tags are dropped, entities unescaped.
func stripDocxMarkup(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
