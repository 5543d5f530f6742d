package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"agriadmin/models"

	"github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

const (
	qrSize       = 384
	qrPadding    = 24
	qrLineHeight = 24
)

// farmQRPayload is what a field scanner reads back from the label.
type farmQRPayload struct {
	FarmID       string  `json:"farm_id"`
	UserID       int64   `json:"user_id"`
	SurveyNumber *string `json:"survey_number,omitempty"`
	Pincode      *string `json:"pincode,omitempty"`
}

func drawText(img *image.RGBA, x, y int, text string, face font.Face, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

// FarmLabel renders a PNG with the farm's QR code above a short caption.
func FarmLabel(f models.Farm) ([]byte, error) {
	payload, err := json.Marshal(farmQRPayload{
		FarmID:       f.FarmID,
		UserID:       f.UserID,
		SurveyNumber: f.SurveyNumber,
		Pincode:      f.Pincode,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal qr payload: %w", err)
	}
	qr, err := qrcode.New(string(payload), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("generate qr code: %w", err)
	}
	qrImg := qr.Image(qrSize)

	lines := [][2]string{
		{"Farm:", f.FarmID},
		{"Owner:", valueOr(f.OwnerName, "N/A")},
		{"Survey:", valueOr(f.SurveyNumber, "N/A")},
	}
	side := qrImg.Bounds().Dx()
	height := side + qrPadding + len(lines)*qrLineHeight + qrPadding

	label := image.NewRGBA(image.Rect(0, 0, side, height))
	draw.Draw(label, label.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)
	draw.Draw(label, qrImg.Bounds(), qrImg, image.Point{}, draw.Src)

	sep := side + qrPadding/2
	for x := 0; x < side; x++ {
		label.Set(x, sep, color.RGBA{200, 200, 200, 255})
	}

	y := side + qrPadding + qrLineHeight/2
	for _, l := range lines {
		drawText(label, 20, y, l[0], inconsolata.Bold8x16, color.RGBA{30, 30, 30, 255})
		drawText(label, 100, y, l[1], inconsolata.Regular8x16, color.Black)
		y += qrLineHeight
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, label); err != nil {
		return nil, fmt.Errorf("encode label: %w", err)
	}
	return buf.Bytes(), nil
}

func valueOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
