// internal/pkg/receipt/service.go
package receipt

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/pos-terminal/internal/backend"
	"github.com/your-org/pos-terminal/internal/config"
	"github.com/your-org/pos-terminal/internal/domain/cart"
)

// Service renders printable boletas locally, for terminals that print
// without fetching the backend PDF.
type Service struct {
	config *config.Config
}

// NewService creates a new receipt service
func NewService(cfg *config.Config) *Service {
	return &Service{config: cfg}
}

type boletaData struct {
	Venta   *backend.Venta
	Company config.CompanyConfig
}

// GenerateBoleta renders a sale as a printable PDF
func (s *Service) GenerateBoleta(venta *backend.Venta) (*bytes.Buffer, error) {
	htmlContent, err := s.generateHTML(boletaData{
		Venta:   venta,
		Company: s.config.Company,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(true)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(htmlContent))
	page.EnableLocalFileAccess.Set(false)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return pdfg.Buffer(), nil
}

func (s *Service) generateHTML(data boletaData) ([]byte, error) {
	tmpl, err := template.New("boleta").Funcs(template.FuncMap{
		"pesos": cart.FormatPesos,
	}).Parse(boletaTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}
