package certifying

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newCertificateData() certificateData {
	return certificateData{
		Number:         "a1b2c3d4e5",
		IssuerName:     "Atelier de Instrumentos",
		IssuerCity:     "São Paulo",
		Appraiser:      "João Luthier",
		IssuedAt:       time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		InstrumentName: "Violino Antonio Rossi, nº de série AR-1922",
		Maker:          "Antonio Rossi",
		Type:           "Violino",
		Model:          "Modelo Guarneri",
		SerialNumber:   "AR-1922",
		Year:           1922,
		AppraisedValue: 25000,
	}
}

func TestBuildSections(t *testing.T) {
	sections := buildSections(newCertificateData())

	// Cabeçalho, campos, parágrafo de certificação e assinatura
	assert.Len(t, sections, 4)

	assert.Equal(t, sectionHeader, sections[0].Kind)
	assert.Equal(t, "Atelier de Instrumentos", sections[0].Title)
	assert.Contains(t, sections[0].Text, "a1b2c3d4e5")

	assert.Equal(t, sectionFields, sections[1].Kind)
	assert.Len(t, sections[1].Fields, 6)
	assert.Equal(t, "R$ 25.000,00", sections[1].Fields[5].Value)

	assert.Equal(t, sectionParagraph, sections[2].Kind)
	assert.Contains(t, sections[2].Text, "João Luthier")

	signature := sections[3]
	assert.Equal(t, sectionSignature, signature.Kind)
	assert.Equal(t, "São Paulo, 02/06/2024", signature.Text)
}

func TestBuildSections_ConditionalSections(t *testing.T) {
	data := newCertificateData()
	data.ClientName = "Ana Souza"
	data.Notes = "Restauração no cavalete em 2019"

	sections := buildSections(data)

	assert.Len(t, sections, 6)
	assert.Contains(t, sections[3].Text, "Ana Souza")
	assert.Equal(t, "Observações", sections[4].Title)
	assert.Equal(t, "Restauração no cavalete em 2019", sections[4].Text)
}

func TestBuildSections_YearMissing(t *testing.T) {
	data := newCertificateData()
	data.Year = 0

	sections := buildSections(data)

	assert.Equal(t, "-", sections[1].Fields[4].Value)
}

func TestRenderPDF(t *testing.T) {
	pdf, err := renderPDF(buildSections(newCertificateData()))

	assert.NoError(t, err)
	assert.NotEmpty(t, pdf)
	// Todo PDF começa com o marcador %PDF
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
