package report

// Frame positions a table on its page, in inches from the top-left corner.
type Frame struct {
	X, Y, W, H float64
}

// Cell is one fully resolved table cell ready to paint.
type Cell struct {
	Text     string
	Fill     *RGB // nil leaves the cell background untouched
	FontSize float64
	Bold     bool
	Centered bool
}

// Table is the handle to one table being painted. Column widths must be set
// before any cell in that column is written.
type Table interface {
	SetColumnWidth(col int, width float64)
	SetCell(row, col int, cell Cell)
	// SetGlyph paints a large colored status indicator instead of text.
	SetGlyph(row, col int, glyph string, color RGB)
}

// Canvas is the opaque document capability the core paints against. Calls
// are ordered and sequential; implementations are not reentrant. The core
// never depends on a concrete rendering library beyond this surface.
type Canvas interface {
	AddCoverPage(title, date string)
	AddSectionPage(title string)
	AddTablePage(title string, titleSize float64, rows, cols int, frame Frame) Table
}
