package itinerary

import (
	"fmt"
	"strings"
	"time"

	"tripai/models"
)

// Document is everything the export prints.
type Document struct {
	Request   models.TripRequest
	Itinerary models.Itinerary
	Generated time.Time
}

// PageSpec describes the printable area in millimetres.
type PageSpec struct {
	Width  float64
	Height float64
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// A4 matches the default jsPDF page the frontend used to print.
var A4 = PageSpec{Width: 210, Height: 297, Top: 30, Bottom: 20, Left: 20, Right: 20}

// Style selects font and color for a block.
type Style int

const (
	StyleBody Style = iota
	StyleHeading
	StyleSection
	StyleDay
	StyleActivity
	StyleMuted
)

// Block is one printed line.
type Block struct {
	Text   string
	Indent float64
	Height float64
	// Need is the free space required before the block is placed; it
	// keeps headings from being stranded at the bottom of a page.
	Need  float64
	Style Style
}

// Placed is a block with its final position.
type Placed struct {
	Block
	Page int
	Y    float64
}

// WrapFunc splits text into lines no wider than width.
type WrapFunc func(text string, width float64) []string

// Layout places blocks top to bottom, starting a new page whenever the next
// block would cross the bottom margin. Pages are numbered from 1.
func Layout(blocks []Block, page PageSpec) []Placed {
	limit := page.Height - page.Bottom
	y := page.Top
	pageNo := 1

	placed := make([]Placed, 0, len(blocks))
	for _, b := range blocks {
		need := b.Height
		if b.Need > need {
			need = b.Need
		}
		if y+need > limit && y > page.Top {
			pageNo++
			y = page.Top
		}
		placed = append(placed, Placed{Block: b, Page: pageNo, Y: y})
		y += b.Height
	}
	return placed
}

// Pages returns the number of pages a layout spans.
func Pages(placed []Placed) int {
	if len(placed) == 0 {
		return 1
	}
	return placed[len(placed)-1].Page
}

// Blocks turns a document into printable lines.
func Blocks(doc Document, page PageSpec, wrap WrapFunc) []Block {
	width := page.Width - page.Left - page.Right
	it := doc.Itinerary
	req := doc.Request

	var out []Block
	line := func(text string, style Style, indent, height float64) {
		out = append(out, Block{Text: text, Style: style, Indent: indent, Height: height})
	}
	wrapped := func(text string, style Style, indent, height float64) {
		for _, l := range wrap(text, width-indent) {
			line(l, style, indent, height)
		}
	}

	totalDays := it.TotalDays
	if totalDays == 0 {
		totalDays = len(it.Days)
	}
	line("Destination: "+firstNonEmpty(it.Destination, req.Destination), StyleBody, 0, 7)
	line(fmt.Sprintf("Duration: %d days", totalDays), StyleBody, 0, 7)
	if req.StartDate != "" || req.EndDate != "" {
		line(fmt.Sprintf("Dates: %s to %s", req.StartDate, req.EndDate), StyleBody, 0, 7)
	}
	if req.Budget != nil {
		line(fmt.Sprintf("Budget: $%s", formatAmount(*req.Budget)), StyleBody, 0, 7)
	}
	if req.Travelers != nil {
		line(fmt.Sprintf("Travelers: %d", *req.Travelers), StyleBody, 0, 7)
	}
	if req.TravelStyle != "" {
		line("Style: "+req.TravelStyle, StyleBody, 0, 7)
	}
	if req.Accommodation != "" {
		line("Accommodation: "+req.Accommodation, StyleBody, 0, 7)
	}

	out = append(out, Block{Text: "Selected Interests:", Style: StyleSection, Height: 7, Need: 20})
	if len(req.Interests) == 0 {
		line("No specific interests selected", StyleBody, 5, 6)
	}
	for _, interest := range req.Interests {
		line("- "+models.InterestLabel(interest), StyleBody, 5, 6)
	}

	out = append(out, Block{Text: "Trip Overview:", Style: StyleSection, Height: 8, Need: 20})
	summary := it.Summary
	if strings.TrimSpace(summary) == "" {
		summary = "Your personalized trip itinerary generated by TripAI."
	}
	wrapped(summary, StyleBody, 0, 5)

	out = append(out, Block{Text: "DAILY ITINERARY", Style: StyleHeading, Height: 12, Need: 30})
	for _, day := range it.Days {
		title := fmt.Sprintf("Day %d", day.Day)
		if day.Date != "" {
			title += " - " + day.Date
		}
		out = append(out, Block{Text: title, Style: StyleDay, Height: 8, Need: 40})

		if len(day.Activities) == 0 {
			line("No specific activities planned for this day", StyleBody, 5, 8)
		}
		for _, a := range day.Activities {
			name := a.Name
			if a.Time != "" {
				name = a.Time + "  " + name
			}
			wrapped("- "+name, StyleActivity, 5, 5)
			if a.Description != "" {
				wrapped(a.Description, StyleBody, 10, 4)
			}
			if a.Address != "" {
				line("Address: "+a.Address, StyleMuted, 12, 4)
			}
			if a.TimeSlot != nil {
				line(fmt.Sprintf("Time: %s - %s", a.TimeSlot.Start, a.TimeSlot.End), StyleMuted, 12, 4)
			}
			if a.Cost > 0 {
				line("Cost: "+formatAmount(a.Cost), StyleMuted, 12, 4)
			}
			out = append(out, Block{Height: 4})
		}
		if day.DailyCost > 0 {
			line("Daily cost: "+formatAmount(day.DailyCost), StyleMuted, 5, 5)
		}
		out = append(out, Block{Height: 6})
	}
	if it.EstimatedTotalCost > 0 {
		line("Estimated total cost: "+formatAmount(it.EstimatedTotalCost), StyleSection, 0, 8)
	}
	return out
}

// WrapWords breaks text on spaces so that every line measures at most width.
// A single word wider than width gets a line of its own.
func WrapWords(text string, width float64, measure func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if measure(candidate) > width {
			lines = append(lines, current)
			current = w
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
