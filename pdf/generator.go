package pdf

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"portfolio-deck-api/domain"
	"portfolio-deck-api/report"
)

// Generator renders record lists into complete report decks.
type Generator struct {
	logger *log.Logger
}

// NewGenerator returns a ready deck generator.
func NewGenerator(logger *log.Logger) *Generator {
	return &Generator{logger: logger}
}

// Generate builds the full deck for the given records and returns the PDF
// bytes and page count. Rendering is in-memory and synchronous; the context
// is only consulted before work starts.
func (g *Generator) Generate(ctx context.Context, records []domain.Record) ([]byte, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	canvas := NewCanvas()
	if err := report.BuildDeck(canvas, records); err != nil {
		return nil, 0, fmt.Errorf("build deck: %w", err)
	}
	deck, err := canvas.Bytes()
	if err != nil {
		return nil, 0, err
	}

	g.logger.WithFields(log.Fields{
		"records": len(records),
		"pages":   canvas.PageCount(),
		"bytes":   len(deck),
	}).Debug("Deck rendered")
	return deck, canvas.PageCount(), nil
}
