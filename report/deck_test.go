package report

import (
	"testing"
	"time"

	"portfolio-deck-api/domain"
)

func TestBuildDeckPageSequence(t *testing.T) {
	records := []domain.Record{
		{"Project Name": "Aurora", "Overall Status": "Green"},
		{"Project Name": "Borealis", "Overall Status": "Red"},
	}

	c := &fakeCanvas{}
	now := time.Date(2025, time.November, 14, 10, 0, 0, 0, time.UTC)
	if err := BuildDeckAt(c, records, now); err != nil {
		t.Fatal(err)
	}

	if len(c.covers) != 1 || c.covers[0] != CoverTitle {
		t.Fatalf("covers = %v", c.covers)
	}
	if c.dates[0] != "November 2025" {
		t.Fatalf("cover date = %q", c.dates[0])
	}

	wantSections := []string{
		"Delivery Review Summary",
		"Project Health Status",
		"Salesforce Project Quality",
		"Ticket Quality Checks - Incidents",
		"Quality Checks - Enhancements/Bugs",
		"Feedback Summary",
	}
	if len(c.sections) != len(wantSections) {
		t.Fatalf("sections = %v", c.sections)
	}
	for i, want := range wantSections {
		if c.sections[i] != want {
			t.Fatalf("section %d = %q, want %q", i, c.sections[i], want)
		}
	}

	// Two records fit one page per section.
	if len(c.tables) != len(wantSections) {
		t.Fatalf("expected one table page per section, got %d", len(c.tables))
	}
	if c.tables[1].title != "Project Health Status" {
		t.Fatalf("second table title = %q", c.tables[1].title)
	}
}

func TestBuildDeckEmptyPayloadStillPaintsStructure(t *testing.T) {
	c := &fakeCanvas{}
	if err := BuildDeck(c, nil); err != nil {
		t.Fatal(err)
	}
	if len(c.covers) != 1 || len(c.sections) != 6 || len(c.tables) != 0 {
		t.Fatalf("covers=%d sections=%d tables=%d", len(c.covers), len(c.sections), len(c.tables))
	}
}
