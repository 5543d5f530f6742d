package services

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"agriadmin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestFarmsWorkbook(t *testing.T) {
	data, err := FarmsWorkbook([]models.Farm{
		{FarmID: "000123", UserID: 482913, OwnerName: strp("Ravi Kumar"), FarmSize: float64p(2.5), SoilType: strp("Red Soil")},
		{FarmID: "000124", UserID: 482913},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsxSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Farm ID", rows[0][0])
	assert.Equal(t, "000123", rows[1][0])
	assert.Equal(t, "Ravi Kumar", rows[1][2])
	assert.Equal(t, "Red Soil", rows[1][6])
	assert.Equal(t, "000124", rows[2][0])
}

func TestCropsWorkbookMarksActive(t *testing.T) {
	data, err := CropsWorkbook([]models.Crop{{CropID: "004512", PlantName: "Tomato", Duration: 30, IsActive: true}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	active, err := f.GetCellValue(xlsxSheet, "K2")
	require.NoError(t, err)
	assert.Equal(t, "Yes", active)
}

func TestUsersWorkbookEmpty(t *testing.T) {
	data, err := UsersWorkbook(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestAnalysisReport(t *testing.T) {
	data, err := AnalysisReport([]models.AnalysisResult{{
		ID: 77310, UserID: 482913, CropID: "004512", PlantName: "Tomato",
		DiseaseName: "Early Blight", Remedy: "Copper fungicide spray", Confidence: 92.5,
		CreatedAt: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
	}}, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestClip(t *testing.T) {
	assert.Equal(t, "Tomato", clip("Tomato", 10))
	assert.Equal(t, "Tom~", clip("Tomato", 4))
}

func TestFarmLabel(t *testing.T) {
	data, err := FarmLabel(models.Farm{FarmID: "000123", UserID: 482913, OwnerName: strp("Ravi Kumar")})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Greater(t, bounds.Dy(), bounds.Dx(), "caption sits below the square code")

	assert.Equal(t, qrSize, bounds.Dx())
}
