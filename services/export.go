package services

import (
	"bytes"
	"fmt"

	"agriadmin/models"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Sheet1"

// XLSXContentType is the media type of the workbooks built below.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// workbook writes a single styled sheet: one bold header row, then rows.
func workbook(headers []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   12,
			Family: "Arial",
			Color:  "#FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#548235"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(xlsxSheet, cell, h)
	}
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(xlsxSheet, first, last, headerStyle); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	f.SetColWidth(xlsxSheet, "A", lastCol, 18)

	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(xlsxSheet, cell, deref(v))
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// deref flattens optional columns so nil pointers become empty cells.
func deref(v any) any {
	switch p := v.(type) {
	case *string:
		if p == nil {
			return ""
		}
		return *p
	case *int64:
		if p == nil {
			return ""
		}
		return *p
	case *float64:
		if p == nil {
			return ""
		}
		return *p
	}
	return v
}

func UsersWorkbook(users []models.User) ([]byte, error) {
	rows := make([][]any, 0, len(users))
	for _, u := range users {
		rows = append(rows, []any{u.UserID, u.Name, u.PhoneNumber, u.Email, u.Category,
			u.DOB, u.Address, u.Pincode, u.CreatedAt.Format(models.DateLayout)})
	}
	return workbook([]string{"User ID", "Name", "Phone", "Email", "Category",
		"Date of Birth", "Address", "Pincode", "Created"}, rows)
}

func FarmsWorkbook(farms []models.Farm) ([]byte, error) {
	rows := make([][]any, 0, len(farms))
	for _, f := range farms {
		rows = append(rows, []any{f.FarmID, f.UserID, f.OwnerName, f.FarmSize, f.SurveyNumber,
			f.Pincode, f.SoilType, f.Irrigation, f.WaterSource, f.CreatedAt.Format(models.DateLayout)})
	}
	return workbook([]string{"Farm ID", "Owner ID", "Owner", "Size (acres)", "Survey Number",
		"Pincode", "Soil Type", "Irrigation", "Water Source", "Created"}, rows)
}

func CropsWorkbook(crops []models.Crop) ([]byte, error) {
	rows := make([][]any, 0, len(crops))
	for _, c := range crops {
		active := "No"
		if c.IsActive {
			active = "Yes"
		}
		rows = append(rows, []any{c.CropID, c.FarmID, c.PlantName, c.PlantingDate, c.HarvestDate,
			c.Duration, c.FieldSize, c.SoilTypeName, c.WaterRequirement, c.Status, active})
	}
	return workbook([]string{"Crop ID", "Farm ID", "Plant", "Planting Date", "Harvest Date",
		"Duration (days)", "Field Size", "Soil Type", "Water Requirement", "Status", "Active"}, rows)
}
