package report

import (
	"time"

	"portfolio-deck-api/domain"
)

// CoverTitle is the deck's cover headline.
const CoverTitle = "XYZ Managed Services Portfolio\nDelivery Overview"

// BuildDeck paints the complete deck onto the canvas: cover page, then for
// each of the six report types a section divider followed by its table
// pages. Section order and count are static; only the table page count per
// section varies with the record list.
func BuildDeck(c Canvas, records []domain.Record) error {
	return BuildDeckAt(c, records, time.Now())
}

// BuildDeckAt is BuildDeck with an explicit clock for the cover date.
func BuildDeckAt(c Canvas, records []domain.Record, now time.Time) error {
	c.AddCoverPage(CoverTitle, now.Format("January 2006"))
	for _, s := range Sections() {
		c.AddSectionPage(s.Section)
		if err := RenderSection(c, s, records); err != nil {
			return err
		}
	}
	return nil
}
