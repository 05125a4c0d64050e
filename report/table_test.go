package report

import (
	"testing"

	"portfolio-deck-api/domain"
)

type cellKey struct{ row, col int }

type fakeGlyph struct {
	glyph string
	color RGB
}

type fakeTable struct {
	title      string
	rows, cols int
	widths     map[int]float64
	cells      map[cellKey]Cell
	glyphs     map[cellKey]fakeGlyph
}

func (t *fakeTable) SetColumnWidth(col int, width float64) { t.widths[col] = width }
func (t *fakeTable) SetCell(row, col int, cell Cell)       { t.cells[cellKey{row, col}] = cell }
func (t *fakeTable) SetGlyph(row, col int, glyph string, color RGB) {
	t.glyphs[cellKey{row, col}] = fakeGlyph{glyph, color}
}

type fakeCanvas struct {
	covers   []string
	dates    []string
	sections []string
	tables   []*fakeTable
}

func (c *fakeCanvas) AddCoverPage(title, date string) {
	c.covers = append(c.covers, title)
	c.dates = append(c.dates, date)
}

func (c *fakeCanvas) AddSectionPage(title string) {
	c.sections = append(c.sections, title)
}

func (c *fakeCanvas) AddTablePage(title string, titleSize float64, rows, cols int, frame Frame) Table {
	t := &fakeTable{
		title:  title,
		rows:   rows,
		cols:   cols,
		widths: map[int]float64{},
		cells:  map[cellKey]Cell{},
		glyphs: map[cellKey]fakeGlyph{},
	}
	c.tables = append(c.tables, t)
	return t
}

func (t *fakeTable) cellAt(tb testing.TB, row, col int) Cell {
	tb.Helper()
	cell, ok := t.cells[cellKey{row, col}]
	if !ok {
		tb.Fatalf("no cell at (%d,%d)", row, col)
	}
	return cell
}

func requireFill(tb testing.TB, cell Cell, want RGB) {
	tb.Helper()
	if cell.Fill == nil {
		tb.Fatalf("cell %q has no fill, want %v", cell.Text, want)
	}
	if *cell.Fill != want {
		tb.Fatalf("cell %q fill = %v, want %v", cell.Text, *cell.Fill, want)
	}
}

func TestRenderHealthSectionColors(t *testing.T) {
	records := []domain.Record{
		{
			"Project Name":                       "Aurora",
			"PMD Name":                           "R. Vance",
			"Overall Status":                     "Green",
			"Staffing Status":                    "Amber",
			"Up-sell / Cross-sell Opportunities": "Data migration phase 2",
			"Up-sell / Cross-sell Details":       "Scoping call booked",
		},
		{
			"Project Name":   "Borealis",
			"Overall Status": "Red",
		},
	}

	c := &fakeCanvas{}
	if err := RenderSection(c, &projectHealthSchema, records); err != nil {
		t.Fatal(err)
	}
	if len(c.tables) != 1 {
		t.Fatalf("expected one table page, got %d", len(c.tables))
	}
	table := c.tables[0]
	if table.rows != 3 || table.cols != len(projectHealthSchema.Columns) {
		t.Fatalf("table is %dx%d", table.rows, table.cols)
	}

	header := table.cellAt(t, 0, 0)
	if header.Text != "Project\nName" || !header.Bold {
		t.Fatalf("unexpected header cell: %+v", header)
	}
	requireFill(t, header, colorHeaderGray)

	if got := table.cellAt(t, 1, 2).Text; got != contractDatesPlaceholder {
		t.Fatalf("contract cell = %q", got)
	}

	requireFill(t, table.cellAt(t, 1, 3), colorGreen)
	requireFill(t, table.cellAt(t, 1, 4), colorAmber)
	requireFill(t, table.cellAt(t, 2, 3), colorRed)

	// Absent status field reads as N/A and fills light gray.
	scope := table.cellAt(t, 2, 5)
	if scope.Text != "N/A" {
		t.Fatalf("absent scope cell = %q", scope.Text)
	}
	requireFill(t, scope, colorLightGray)

	upsell := table.cellAt(t, 1, 11)
	if upsell.Text != "Data migration phase 2\nScoping call booked" {
		t.Fatalf("upsell join = %q", upsell.Text)
	}
	if got := table.cellAt(t, 2, 11).Text; got != "None" {
		t.Fatalf("default upsell cell = %q", got)
	}
}

func TestRenderSalesforceSectionRules(t *testing.T) {
	rec := domain.Record{
		"Project Name": "Aurora",
		"Are NexGen Portal updates completed for the project?":                "Partial",
		"If NexGen updates are partial or pending, please provide details_x002e_": "Two modules left",
		"Are SME Reviews conducted for the project?":                          "Yes",
		"If SME reviews are scheduled or not applicable, please provide details_x002e_": "Scheduled for next sprint",
		"Is Concourse being used for RAID logs and documentation?":            "Yes",
		"Are risks, issues, and documents regularly updated in Concourse?":    "Yes",
		"Is capacity planning completed and reviewed?":                        "Yes",
		"Is vacation tracking and shift roster maintained for the team?":      "No",
		"Are Peer Reviews conducted regularly?":                               "Pending",
	}

	c := &fakeCanvas{}
	if err := RenderSection(c, &salesforceQualitySchema, []domain.Record{rec}); err != nil {
		t.Fatal(err)
	}
	table := c.tables[0]

	nexgen := table.cellAt(t, 1, 5)
	if nexgen.Text != "Two modules left" {
		t.Fatalf("details override text = %q", nexgen.Text)
	}
	requireFill(t, nexgen, colorAmber)

	sme := table.cellAt(t, 1, 7)
	if sme.Text != "Scheduled for next sprint" {
		t.Fatalf("scheduled details text = %q", sme.Text)
	}
	requireFill(t, sme, colorAmber)

	concourse := table.cellAt(t, 1, 8)
	if concourse.Text != "Concourse available\nRisks, documents\nare updated" {
		t.Fatalf("paired usage text = %q", concourse.Text)
	}
	requireFill(t, concourse, colorDeepGreen)

	capacity := table.cellAt(t, 1, 11)
	if capacity.Text != "Partial" {
		t.Fatalf("paired rollup text = %q", capacity.Text)
	}
	requireFill(t, capacity, colorAmber)

	requireFill(t, table.cellAt(t, 1, 6), colorAmber) // pending peer reviews

	// Absent DEH answer lands in the neutral bucket.
	deh := table.cellAt(t, 1, 4)
	if deh.Text != "N/A" {
		t.Fatalf("absent DEH cell = %q", deh.Text)
	}
	requireFill(t, deh, colorSlate)
}

func TestRenderTicketSectionLayout(t *testing.T) {
	records := []domain.Record{
		{"Project Name": "Aurora", "Tool": "Jira", "Description": "Yes", "RCA": "No"},
		{"Project Name": "Borealis", "Description": "N/A"},
		{"SLA": "Yes"}, // no project name at all
	}

	c := &fakeCanvas{}
	if err := RenderSection(c, &ticketQualitySchema, records); err != nil {
		t.Fatal(err)
	}
	table := c.tables[0]
	if table.cols != 5 || table.rows != 1+len(ticketQualitySchema.Params) {
		t.Fatalf("table is %dx%d", table.rows, table.cols)
	}

	if table.widths[0] != 1.8 || table.widths[1] != 3.2 {
		t.Fatalf("label widths = %v / %v", table.widths[0], table.widths[1])
	}
	want := (ticketQualitySchema.Frame.W - ticketQualitySchema.AllocFixed) / 3
	for col := 2; col <= 4; col++ {
		if got := table.widths[col]; got < want-0.001 || got > want+0.001 {
			t.Fatalf("dynamic width[%d] = %v, want %v", col, got, want)
		}
	}

	if got := table.cellAt(t, 0, 2).Text; got != "Aurora" {
		t.Fatalf("project header = %q", got)
	}
	if got := table.cellAt(t, 0, 4).Text; got != "Project 3" {
		t.Fatalf("fallback project header = %q", got)
	}

	// Free text stays on the unrecognized gray, yes/no map to green/pink,
	// and placeholders take the muted gray.
	requireFill(t, table.cellAt(t, 1, 2), colorDimGray)   // "Jira"
	requireFill(t, table.cellAt(t, 2, 2), colorGreen)     // "Yes"
	requireFill(t, table.cellAt(t, 8, 2), colorPink)      // "No"
	requireFill(t, table.cellAt(t, 2, 3), colorLightGray) // "N/A"

	absent := table.cellAt(t, 1, 3)
	if absent.Text != "N/A" {
		t.Fatalf("absent parameter cell = %q", absent.Text)
	}
	requireFill(t, absent, colorLightGray)
}

func TestRenderDeliverySectionGlyphs(t *testing.T) {
	records := []domain.Record{
		{
			"Project Name":             "Aurora",
			"Operational / Governance": "Green",
			"Quality":                  "Amber",
			"Environment Health":       "Red",
			"If Amber or Red is selected for any question, please provide the reason_x002e_": "Sandbox refresh overdue",
		},
		{"Project Name": "Borealis"},
	}

	c := &fakeCanvas{}
	if err := RenderSection(c, &deliveryReviewSchema, records); err != nil {
		t.Fatal(err)
	}
	table := c.tables[0]
	if table.rows != 1+len(deliveryReviewSchema.Params)+1 {
		t.Fatalf("rows = %d", table.rows)
	}

	wantGlyphs := map[cellKey]RGB{
		{1, 1}: colorDeepGreen,
		{2, 1}: colorAmber,
		{3, 1}: colorRed,
		{4, 1}: colorSlate, // absent answer
		{1, 2}: colorSlate,
	}
	for key, want := range wantGlyphs {
		g, ok := table.glyphs[key]
		if !ok {
			t.Fatalf("no glyph at (%d,%d)", key.row, key.col)
		}
		if g.glyph != indicatorGlyph || g.color != want {
			t.Fatalf("glyph at (%d,%d) = %q %v, want %v", key.row, key.col, g.glyph, g.color, want)
		}
	}

	reasonRow := table.rows - 1
	if got := table.cellAt(t, reasonRow, 0).Text; got != "Reasons for Amber status" {
		t.Fatalf("reason label = %q", got)
	}
	reason := table.cellAt(t, reasonRow, 1)
	if reason.Text != "Sandbox refresh overdue" {
		t.Fatalf("reason cell = %q", reason.Text)
	}
	requireFill(t, reason, colorTan)

	blank := table.cellAt(t, reasonRow, 2)
	if blank.Text != "NA" {
		t.Fatalf("blank reason cell = %q", blank.Text)
	}
	requireFill(t, blank, colorLightGray)
}

func TestRenderFeedbackSectionHighlights(t *testing.T) {
	records := []domain.Record{
		{
			"Project Name":                       "Aurora",
			"Onshore Team Feedback":              "Team is very happy with the cadence",
			"Overall Onshore Satisfaction":       "High",
			"Client Feedback":                    "Some escalation concerns remain",
			"Up-sell / Cross-sell Opportunities1": "Archive add-on",
			"Are there any active Up-Sell/Cross-Sell opportunities?": "Yes",
		},
		{"Project Name": "Borealis"},
	}

	c := &fakeCanvas{}
	if err := RenderSection(c, &feedbackSummarySchema, records); err != nil {
		t.Fatal(err)
	}
	table := c.tables[0]

	requireFill(t, table.cellAt(t, 1, 4), colorGreen)      // satisfaction level wins
	requireFill(t, table.cellAt(t, 1, 5), colorPink)       // concern keyword
	requireFill(t, table.cellAt(t, 1, 6), colorLightGray)  // plain column keeps static fill

	flagged := table.cellAt(t, 1, 7)
	if flagged.Text != "Archive add-on" {
		t.Fatalf("upsell flag cell = %q", flagged.Text)
	}
	requireFill(t, flagged, colorSoftYellow)

	unflagged := table.cellAt(t, 2, 7)
	if unflagged.Text != "None" {
		t.Fatalf("default upsell flag cell = %q", unflagged.Text)
	}
	requireFill(t, unflagged, colorLightGray)
}

func TestRenderSectionPagination(t *testing.T) {
	records := make([]domain.Record, 12)
	for i := range records {
		records[i] = domain.Record{"Project Name": "p"}
	}

	c := &fakeCanvas{}
	if err := RenderSection(c, &projectHealthSchema, records); err != nil {
		t.Fatal(err)
	}
	if len(c.tables) != 3 {
		t.Fatalf("expected 3 table pages, got %d", len(c.tables))
	}
	for i, table := range c.tables {
		if table.rows != 5 { // 4 records + header
			t.Fatalf("page %d has %d rows", i, table.rows)
		}
	}
}

func TestRenderSectionNoRecords(t *testing.T) {
	c := &fakeCanvas{}
	if err := RenderSection(c, &projectHealthSchema, nil); err != nil {
		t.Fatal(err)
	}
	if len(c.tables) != 0 {
		t.Fatalf("expected no table pages, got %d", len(c.tables))
	}
}
