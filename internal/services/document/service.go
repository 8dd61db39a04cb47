package document

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog/log"
)

const ContentType = "application/pdf"

// renderDate is stamped into every document so output is byte-identical across calls
var renderDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Document is a rendered PDF ready to be sent as an attachment
type Document struct {
	Filename string
	Data     []byte
}

// Service renders the built-in documents
type Service interface {
	Render(t Type) (Document, error)
}

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Render(t Type) (Document, error) {
	content, ok := catalog[t]
	if !ok {
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownType, string(t))
	}

	data, err := renderPDF(content)
	if err != nil {
		return Document{}, err
	}

	log.Debug().
		Str("type", string(t)).
		Int("bytes", len(data)).
		Msg("Document rendered")

	return Document{Filename: t.Filename(), Data: data}, nil
}

func renderPDF(content Content) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(renderDate)
	pdf.SetModificationDate(renderDate)
	pdf.SetCatalogSort(true)
	pdf.SetCompression(false)
	pdf.SetTitle(content.Title, false)

	pdf.AddPage()
	pdf.SetFont("Arial", "", 14)
	pdf.MultiCell(0, 10, content.Title+"\n\n"+content.Body, "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
