package services

import (
	"bytes"
	"fmt"
	"time"

	"agriadmin/models"

	"github.com/jung-kurt/gofpdf"
)

// AnalysisReport renders diagnosis results as an A4 table.
func AnalysisReport(results []models.AnalysisResult, generated time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(190, 10, "Disease Analysis Report")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(190, 6, fmt.Sprintf("Generated: %s    Results: %d", generated.Format("02-Jan-2006 15:04"), len(results)))
	pdf.Ln(10)

	widths := []float64{18, 22, 18, 30, 48, 70, 22, 32}
	headers := []string{"ID", "User", "Crop", "Plant", "Disease", "Remedy", "Conf. %", "Date"}

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, r := range results {
		pdf.CellFormat(widths[0], 8, fmt.Sprint(r.ID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 8, fmt.Sprint(r.UserID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 8, r.CropID, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 8, tr(clip(r.PlantName, 16)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 8, tr(clip(r.DiseaseName, 26)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[5], 8, tr(clip(r.Remedy, 40)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[6], 8, fmt.Sprintf("%.1f", r.Confidence), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[7], 8, r.CreatedAt.Format("02-Jan-2006"), "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}
