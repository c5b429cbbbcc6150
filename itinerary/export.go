package itinerary

import (
	"bytes"
	"fmt"
	"net/url"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	fontFamily   = "Helvetica"
	bannerHeight = 20.0
	qrSize       = 16.0
)

var (
	colorBlack = [3]int{0, 0, 0}
	colorBlue  = [3]int{59, 130, 246}
	colorGray  = [3]int{100, 100, 100}
)

// MapLink points at the first located activity on OpenStreetMap, or at a
// search for the destination when nothing has coordinates.
func MapLink(doc Document) string {
	for _, d := range doc.Itinerary.Days {
		for _, a := range d.Activities {
			if c := a.Coordinates; c != nil && c.Lat != 0 && c.Lon != 0 {
				return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.5f&mlon=%.5f#map=15/%.5f/%.5f", c.Lat, c.Lon, c.Lat, c.Lon)
			}
		}
	}
	dest := firstNonEmpty(doc.Itinerary.Destination, doc.Request.Destination)
	return "https://www.openstreetmap.org/search?query=" + url.QueryEscape(dest)
}

// ExportPDF renders the document. Any failure aborts the whole export.
func ExportPDF(doc Document) ([]byte, error) {
	page := A4
	generated := doc.Generated
	if generated.IsZero() {
		generated = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(page.Left, page.Top, page.Right)
	pdf.SetAutoPageBreak(false, page.Bottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetFont(fontFamily, "", 8)
		pdf.SetTextColor(150, 150, 150)
		footer := fmt.Sprintf("Page %d - Generated by TripAI", pdf.PageNo())
		pdf.Text((page.Width-pdf.GetStringWidth(footer))/2, page.Height-10, footer)
		date := generated.Format("2006-01-02")
		pdf.Text(page.Width-page.Right-pdf.GetStringWidth(date), page.Height-10, date)
	})

	pdf.SetFont(fontFamily, "", 10)
	measure := func(s string) float64 { return pdf.GetStringWidth(tr(s)) }
	placed := Layout(Blocks(doc, page, func(text string, width float64) []string {
		return WrapWords(text, width, measure)
	}), page)

	pdf.AddPage()
	drawBanner(pdf, page)
	if err := drawQR(pdf, page, MapLink(doc)); err != nil {
		return nil, err
	}

	current := 1
	for _, p := range placed {
		for current < p.Page {
			pdf.AddPage()
			current++
		}
		if p.Text == "" {
			continue
		}
		applyStyle(pdf, p.Style)
		text := tr(p.Text)
		x := page.Left + p.Indent
		if p.Style == StyleHeading {
			x = (page.Width - pdf.GetStringWidth(text)) / 2
		}
		pdf.Text(x, p.Y, text)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "render pdf")
	}
	return buf.Bytes(), nil
}

func drawBanner(pdf *gofpdf.Fpdf, page PageSpec) {
	pdf.SetFillColor(colorBlue[0], colorBlue[1], colorBlue[2])
	pdf.Rect(0, 0, page.Width, bannerHeight, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(fontFamily, "B", 16)
	title := "TRIP ITINERARY"
	pdf.Text((page.Width-pdf.GetStringWidth(title))/2, 13, title)
}

func drawQR(pdf *gofpdf.Fpdf, page PageSpec, link string) error {
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return errors.Wrap(err, "encode map qr code")
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("map-qr", opts, bytes.NewReader(png))
	x, y := qrOrigin(page)
	pdf.ImageOptions("map-qr", x, y, qrSize, qrSize, false, opts, 0, link)
	return nil
}

// qrOrigin puts the code at the right end of the banner, clear of the
// text area that starts at page.Top.
func qrOrigin(page PageSpec) (x, y float64) {
	return page.Width - page.Right - qrSize, (bannerHeight - qrSize) / 2
}

func applyStyle(pdf *gofpdf.Fpdf, style Style) {
	color := colorBlack
	switch style {
	case StyleHeading:
		pdf.SetFont(fontFamily, "B", 14)
	case StyleSection:
		pdf.SetFont(fontFamily, "B", 11)
	case StyleDay:
		pdf.SetFont(fontFamily, "B", 12)
		color = colorBlue
	case StyleMuted:
		pdf.SetFont(fontFamily, "", 9)
		color = colorGray
	default:
		pdf.SetFont(fontFamily, "", 10)
	}
	pdf.SetTextColor(color[0], color[1], color[2])
}
