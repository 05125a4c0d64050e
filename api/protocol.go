package api

import "time"

const postDeckMaxSize = 1 << 20 // 1 MiB

// Deck request outcomes, reported verbatim in the response status field.
const (
	statusSuccess        = "Success"
	statusPartialSuccess = "Partial Success"
	statusError          = "Error"
	statusDuplicate      = "Duplicate"
)

// POST /api/decks response body
type postDeckResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	DeckID   string `json:"deckId,omitempty"`
	Records  int    `json:"records,omitempty"`
	Filename string `json:"filename,omitempty"`
	Pages    int    `json:"pages,omitempty"`
	Error    string `json:"error,omitempty"`
}

func deckFilename(now time.Time) string {
	return "Complete_Project_Report_" + now.Format("20060102_150405") + ".pdf"
}
