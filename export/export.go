package export

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"wayfare/dialogue"
	"wayfare/models"
	"wayfare/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

const defaultQRSecret = "dev-only-secret"

func qrSecret() string {
	if s := os.Getenv("QR_SECRET"); s != "" {
		return s
	}
	return defaultQRSecret
}

// QRPayload returns conversationID|destination|timestamp|signature so a
// verifier can check a printed plan came from us.
func QRPayload(conversationID, destination string) string {
	data := fmt.Sprintf("%s|%s|%d", conversationID, destination, time.Now().Unix())

	h := hmac.New(sha256.New, []byte(qrSecret()))
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// VerifyQRPayload checks the signature on a scanned payload.
func VerifyQRPayload(payload string) bool {
	i := strings.LastIndex(payload, "|")
	if i < 0 {
		return false
	}
	data, sig := payload[:i], payload[i+1:]

	h := hmac.New(sha256.New, []byte(qrSecret()))
	h.Write([]byte(data))
	want := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(sig), []byte(want))
}

// PrintItinerary renders the conversation's itinerary as a PDF with a
// signed QR code in the corner.
func PrintItinerary(engine *dialogue.Engine) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		convid := ps.ByName("convid")

		it, ok := engine.Itinerary(convid)
		if !ok {
			utils.RespondWithError(w, http.StatusNotFound, "No itinerary generated for this conversation yet")
			return
		}

		qrPNG, err := qrcode.Encode(QRPayload(convid, it.Destination), qrcode.Medium, 256)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
			return
		}

		pdf := buildPDF(convid, it, qrPNG)

		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename=trip-"+convid+".pdf")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}
}

func buildPDF(convid string, it *models.Itinerary, qrPNG []byte) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Trip Itinerary")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	// The destination is the catalog's canonical name, already cased.
	pdf.Cell(0, 10, fmt.Sprintf("Destination: %s", it.Destination))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Hotel: %s (%.1f stars, %d per night)", it.Hotel.Name, it.Hotel.Rating, it.Hotel.PricePerNight))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Total cost: %d, remaining budget: %d", it.TotalCost, it.RemainingBudget))
	pdf.Ln(8)
	if it.OverBudget {
		pdf.Cell(0, 10, "Note: this plan runs over the stated budget.")
		pdf.Ln(8)
	}
	for _, rel := range it.Relaxations {
		pdf.Cell(0, 10, "Note: "+rel)
		pdf.Ln(8)
	}
	pdf.Ln(4)

	for _, day := range it.Days {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 9, fmt.Sprintf("Day %d (%s)", day.DayIndex, day.Role))
		pdf.Ln(9)
		pdf.SetFont("Arial", "", 11)
		for _, item := range day.Items {
			line := fmt.Sprintf("  %s: %s", item.TimeSlot, item.Name)
			if item.Cost > 0 {
				line += fmt.Sprintf(" (%d)", item.Cost)
			}
			pdf.Cell(0, 7, line)
			pdf.Ln(7)
		}
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 155, 15, 40, 40, false, imageOpts, 0, "")

	return pdf
}
