package certifying

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/vfg2006/atelier-manager-api/pkg/utils"
)

// certificateData reúne tudo que o certificado imprime
type certificateData struct {
	Number         string
	IssuerName     string
	IssuerCity     string
	Appraiser      string
	IssuedAt       time.Time
	InstrumentName string
	Maker          string
	Type           string
	Model          string
	SerialNumber   string
	Year           int
	AppraisedValue float64
	ClientName     string
	Notes          string
}

type sectionKind int

const (
	sectionHeader sectionKind = iota
	sectionFields
	sectionParagraph
	sectionSignature
)

type field struct {
	Label string
	Value string
}

// section é um bloco do layout declarativo do certificado. O renderizador
// apenas percorre a lista na ordem em que foi montada
type section struct {
	Kind   sectionKind
	Title  string
	Text   string
	Fields []field
}

// buildSections monta a descrição declarativa do documento.
// Seções condicionais (cliente, observações) só entram quando há conteúdo
func buildSections(data certificateData) []section {
	sections := []section{
		{
			Kind:  sectionHeader,
			Title: data.IssuerName,
			Text:  "Certificado de Autenticidade nº " + data.Number,
		},
		{
			Kind:  sectionFields,
			Title: "Instrumento",
			Fields: []field{
				{Label: "Fabricante", Value: data.Maker},
				{Label: "Tipo", Value: data.Type},
				{Label: "Modelo", Value: data.Model},
				{Label: "Número de série", Value: data.SerialNumber},
				{Label: "Ano", Value: yearOrDash(data.Year)},
				{Label: "Valor de avaliação", Value: utils.FormatBRL(data.AppraisedValue)},
			},
		},
		{
			Kind: sectionParagraph,
			Text: fmt.Sprintf(
				"Certificamos que o instrumento %s foi examinado por %s e corresponde às características acima descritas.",
				data.InstrumentName,
				data.Appraiser,
			),
		},
	}

	if data.ClientName != "" {
		sections = append(sections, section{
			Kind: sectionParagraph,
			Text: "Emitido em favor de " + data.ClientName + ".",
		})
	}

	if data.Notes != "" {
		sections = append(sections, section{
			Kind:  sectionParagraph,
			Title: "Observações",
			Text:  data.Notes,
		})
	}

	sections = append(sections, section{
		Kind: sectionSignature,
		Text: fmt.Sprintf("%s, %s", data.IssuerCity, utils.FormatDateBR(data.IssuedAt)),
		Fields: []field{
			{Label: data.Appraiser, Value: "Avaliador responsável"},
		},
	})

	return sections
}

// renderPDF percorre as seções e desenha o documento
func renderPDF(sections []section) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(25, 25, 25)
	pdf.AddPage()

	translator := pdf.UnicodeTranslatorFromDescriptor("")

	for _, sec := range sections {
		switch sec.Kind {
		case sectionHeader:
			pdf.SetFont("Times", "B", 20)
			pdf.CellFormat(0, 12, translator(sec.Title), "", 1, "C", false, 0, "")
			pdf.SetFont("Times", "", 13)
			pdf.CellFormat(0, 8, translator(sec.Text), "", 1, "C", false, 0, "")
			pdf.Ln(8)

		case sectionFields:
			if sec.Title != "" {
				pdf.SetFont("Times", "B", 13)
				pdf.CellFormat(0, 8, translator(sec.Title), "", 1, "L", false, 0, "")
				pdf.Ln(2)
			}
			pdf.SetFont("Times", "", 11)
			for _, f := range sec.Fields {
				if f.Value == "" {
					continue
				}
				pdf.SetFont("Times", "B", 11)
				pdf.CellFormat(55, 7, translator(f.Label), "B", 0, "L", false, 0, "")
				pdf.SetFont("Times", "", 11)
				pdf.CellFormat(0, 7, translator(f.Value), "B", 1, "L", false, 0, "")
			}
			pdf.Ln(6)

		case sectionParagraph:
			if sec.Title != "" {
				pdf.SetFont("Times", "B", 13)
				pdf.CellFormat(0, 8, translator(sec.Title), "", 1, "L", false, 0, "")
			}
			pdf.SetFont("Times", "", 11)
			pdf.MultiCell(0, 6, translator(sec.Text), "", "J", false)
			pdf.Ln(4)

		case sectionSignature:
			pdf.Ln(12)
			pdf.SetFont("Times", "", 11)
			pdf.CellFormat(0, 7, translator(sec.Text), "", 1, "R", false, 0, "")
			pdf.Ln(14)
			for _, f := range sec.Fields {
				pdf.CellFormat(0, 6, "_________________________________", "", 1, "C", false, 0, "")
				pdf.SetFont("Times", "B", 11)
				pdf.CellFormat(0, 6, translator(f.Label), "", 1, "C", false, 0, "")
				pdf.SetFont("Times", "I", 10)
				pdf.CellFormat(0, 6, translator(f.Value), "", 1, "C", false, 0, "")
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func yearOrDash(year int) string {
	if year == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", year)
}
