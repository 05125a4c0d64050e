package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"portfolio-deck-api/report"
)

// Widescreen slide geometry, in inches.
const (
	pageWidth  = 13.33
	pageHeight = 7.5
)

const cellPad = 0.04

// Deck chrome colors.
var (
	coverDark   = [3]int{68, 68, 68}   // cover panel, section titles
	coverAccent = [3]int{214, 124, 34} // cover side panel
	coverBar    = [3]int{184, 71, 42}  // cover date bar, section footer
	borderGray  = [3]int{89, 89, 89}   // table cell borders
)

// Canvas renders deck pages into a single landscape PDF document. A Canvas
// is single-use: paint the deck, call Bytes, discard.
type Canvas struct {
	doc       *fpdf.Fpdf
	translate func(string) string
}

// NewCanvas returns an empty deck document.
func NewCanvas() *Canvas {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	return &Canvas{doc: doc, translate: doc.UnicodeTranslatorFromDescriptor("")}
}

func (c *Canvas) fillRect(x, y, w, h float64, color [3]int) {
	c.doc.SetFillColor(color[0], color[1], color[2])
	c.doc.Rect(x, y, w, h, "F")
}

// AddCoverPage paints the deck cover: a dark title panel with an accent
// side panel and a date bar.
func (c *Canvas) AddCoverPage(title, date string) {
	c.doc.AddPage()
	c.fillRect(0, 0, 9.3, pageHeight, coverDark)
	c.fillRect(9.3, 0, pageWidth-9.3, 5.1, coverAccent)
	c.fillRect(0, 5.1, 9.3, 1.3, coverBar)

	c.doc.SetTextColor(255, 255, 255)
	c.doc.SetFont("Arial", "B", 44)
	c.doc.SetXY(0.8, 2.5)
	c.doc.MultiCell(7.9, 0.75, c.translate(title), "", "L", false)

	c.doc.SetFont("Arial", "", 20)
	c.doc.SetXY(0.8, 5.4)
	c.doc.CellFormat(7.9, 0.6, c.translate(date), "", 0, "L", false, 0, "")
}

// AddSectionPage paints a divider slide with the section title and a footer
// accent bar.
func (c *Canvas) AddSectionPage(title string) {
	c.doc.AddPage()
	c.fillRect(0, 6.6, pageWidth, 0.9, coverBar)

	c.doc.SetTextColor(coverDark[0], coverDark[1], coverDark[2])
	c.doc.SetFont("Arial", "B", 48)
	c.doc.SetXY(0.8, 2.8)
	c.doc.MultiCell(pageWidth-1.6, 0.85, c.translate(title), "", "L", false)
}

// AddTablePage starts a content slide and returns the table handle for it.
func (c *Canvas) AddTablePage(title string, titleSize float64, rows, cols int, frame report.Frame) report.Table {
	c.doc.AddPage()
	c.doc.SetTextColor(coverDark[0], coverDark[1], coverDark[2])
	c.doc.SetFont("Arial", "B", titleSize)
	c.doc.SetXY(0.5, 0.4)
	c.doc.CellFormat(pageWidth-1.0, titleSize/72*1.1, c.translate(title), "", 0, "L", false, 0, "")

	return &table{
		c:      c,
		frame:  frame,
		rowH:   frame.H / float64(rows),
		widths: make([]float64, cols),
	}
}

// Bytes closes the document and returns the PDF bytes.
func (c *Canvas) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

// PageCount returns the number of pages painted so far.
func (c *Canvas) PageCount() int {
	return c.doc.PageCount()
}

// table draws cells immediately onto the current page. Rows share one fixed
// height derived from the frame; column widths come from the schema.
type table struct {
	c      *Canvas
	frame  report.Frame
	rowH   float64
	widths []float64
}

func (t *table) SetColumnWidth(col int, width float64) {
	t.widths[col] = width
}

func (t *table) colX(col int) float64 {
	x := t.frame.X
	for i := 0; i < col; i++ {
		x += t.widths[i]
	}
	return x
}

func (t *table) SetCell(row, col int, cell report.Cell) {
	x := t.colX(col)
	y := t.frame.Y + float64(row)*t.rowH
	w := t.widths[col]
	doc := t.c.doc

	if cell.Fill != nil {
		doc.SetFillColor(cell.Fill.R, cell.Fill.G, cell.Fill.B)
		doc.Rect(x, y, w, t.rowH, "F")
	}
	doc.SetDrawColor(borderGray[0], borderGray[1], borderGray[2])
	doc.Rect(x, y, w, t.rowH, "D")

	style := ""
	if cell.Bold {
		style = "B"
	}
	doc.SetFont("Arial", style, cell.FontSize)
	doc.SetTextColor(0, 0, 0)

	align := "L"
	if cell.Centered {
		align = "C"
	}

	lineH := cell.FontSize / 72 * 1.2
	textY := y + cellPad
	if cell.Centered {
		lines := strings.Count(cell.Text, "\n") + 1
		if offset := (t.rowH - float64(lines)*lineH) / 2; offset > cellPad {
			textY = y + offset
		}
	}
	doc.SetXY(x+cellPad, textY)
	doc.MultiCell(w-2*cellPad, lineH, t.c.translate(cell.Text), "", align, false)
}

// SetGlyph paints a status dot centered in the cell. The glyph string is a
// hint only: the built-in fonts are cp1252 and cannot encode the dot
// character, so the dot is drawn as a vector circle instead.
func (t *table) SetGlyph(row, col int, _ string, color report.RGB) {
	x := t.colX(col)
	y := t.frame.Y + float64(row)*t.rowH
	w := t.widths[col]
	doc := t.c.doc

	doc.SetDrawColor(borderGray[0], borderGray[1], borderGray[2])
	doc.Rect(x, y, w, t.rowH, "D")

	r := t.rowH * 0.22
	if limit := w * 0.2; r > limit {
		r = limit
	}
	doc.SetFillColor(color.R, color.G, color.B)
	doc.Circle(x+w/2, y+t.rowH/2, r, "F")
}
