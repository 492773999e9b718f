// Package report renders analysis results into downloadable documents.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Liorohan10/Skin-Sage/internal/domain"
	"github.com/go-pdf/fpdf"
)

const (
	fontFamily  = "Helvetica"
	lineHeight  = 6.0
	pageMargin  = 15.0
	titleText   = "SkinSage Skincare Recommendations"
	contentType = "application/pdf"
)

// PDFExporter renders an analysis result as an A4 PDF.
// It implements domain.DocumentExporter.
type PDFExporter struct{}

// NewPDFExporter creates a PDF exporter
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// ContentType returns the MIME type of exported documents
func (e *PDFExporter) ContentType() string {
	return contentType
}

// Export renders the result with sections for profile, analysis, advice,
// products and both routines
func (e *PDFExporter) Export(result *domain.AnalysisResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("nil analysis result")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(titleText, true)
	pdf.SetCreator("SkinSage", true)

	// Core fonts are cp1252; translate UTF-8 input
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 18)
	pdf.CellFormat(0, 10, tr(titleText), "", 1, "C", false, 0, "")
	pdf.SetFont(fontFamily, "", 9)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Result %s, generated %s", result.ID, result.CreatedAt.Format("January 2, 2006"))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	profile := result.UserProfile
	section(pdf, tr, "Your Skin Profile")
	field(pdf, tr, "Skin Type", profile.SkinType)
	field(pdf, tr, "Age Range", profile.AgeRange)
	field(pdf, tr, "Budget", profile.Budget)
	field(pdf, tr, "Concerns", joinOrNone(profile.Concerns))
	field(pdf, tr, "Preferred Ingredients", joinOrNone(profile.PreferredIngredients))
	field(pdf, tr, "Ingredients to Avoid", joinOrNone(profile.AvoidIngredients))

	section(pdf, tr, "Skin Analysis")
	paragraph(pdf, tr, result.SkinConditionAnalysis)

	if result.SkinCareAdvice != "" {
		section(pdf, tr, "Skincare Advice")
		paragraph(pdf, tr, result.SkinCareAdvice)
	}

	section(pdf, tr, "Recommended Products")
	if len(result.RecommendedProducts) == 0 {
		paragraph(pdf, tr, "No products matched your profile.")
	}
	for i, p := range result.RecommendedProducts {
		pdf.SetFont(fontFamily, "B", 11)
		pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("%d. %s", i+1, p.Name)), "", "L", false)
		pdf.SetFont(fontFamily, "", 10)
		if p.Price != "" {
			field(pdf, tr, "Price", p.Price)
		}
		if p.Description != "" {
			paragraph(pdf, tr, p.Description)
		}
		if p.Ingredients != "" {
			field(pdf, tr, "Key Ingredients", p.Ingredients)
		}
		if p.SuitableFor != "" {
			field(pdf, tr, "Suitable For", p.SuitableFor)
		}
		if len(p.MatchReasons) > 0 {
			field(pdf, tr, "Why", strings.Join(p.MatchReasons, "; "))
		}
		pdf.Ln(2)
	}

	section(pdf, tr, "Morning Routine")
	paragraph(pdf, tr, result.MorningRoutine)

	section(pdf, tr, "Night Routine")
	paragraph(pdf, tr, result.NightRoutine)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.Ln(3)
	pdf.SetFont(fontFamily, "B", 13)
	pdf.SetFillColor(237, 242, 247)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", true, 0, "")
	pdf.Ln(1)
	pdf.SetFont(fontFamily, "", 10)
}

func field(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.MultiCell(0, lineHeight, tr(label+": "+value), "", "L", false)
}

func paragraph(pdf *fpdf.Fpdf, tr func(string) string, text string) {
	if text == "" {
		return
	}
	pdf.MultiCell(0, lineHeight, tr(text), "", "L", false)
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}
