package report

import "strings"

// The classifiers below are pure functions over a cell's own string value
// (plus one companion field for feedback cells). Schemas pick a classifier
// explicitly per column; nothing is inferred from field names at runtime.

// ClassifySentiment grades traffic-light style free-text status fields.
// Substring matches, affirmative wording first, so "green, minor delay"
// still reads as Positive.
func ClassifySentiment(value string) Category {
	if value == "" {
		return Unknown
	}
	v := strings.ToLower(value)
	switch {
	case strings.Contains(v, "green") || strings.Contains(v, "yes"):
		return Positive
	case strings.Contains(v, "amber") || strings.Contains(v, "yellow"):
		return Warning
	case strings.Contains(v, "red") || strings.Contains(v, "no"):
		return Negative
	default:
		return NotApplicable
	}
}

// ClassifyCompletion grades yes/no/partial style audit answers. Whole-token
// matches run first; free-text answers fall back to substring tiers. "No" and
// "Not Applicable" share the neutral bucket here: red is reserved for
// explicit traffic-light wording, which this classifier never sees.
func ClassifyCompletion(value string) Category {
	if value == "" {
		return Unknown
	}

	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "YES", "Y", "COMPLETE", "COMPLETED", "DONE", "UP TO DATE":
		return Positive
	case "PARTIAL", "PENDING", "IN PROGRESS", "SCHEDULED", "ONGOING":
		return Warning
	case "N/A", "NA", "NOT APPLICABLE", "NO", "NONE":
		return NotApplicable
	}

	v := strings.ToLower(value)
	switch {
	case strings.Contains(v, "not applicable") || strings.Contains(v, "n/a"):
		return NotApplicable
	case containsAny(v, "pending", "partial", "missing"):
		return Warning
	case containsAny(v, "yes", "complete", "available"):
		return Positive
	}
	return Unknown
}

// ClassifyAudit grades the strict yes/no checks of the ticket-quality
// schemas. Exact tokens only; here an explicit "No" is a real negative.
func ClassifyAudit(value string) Category {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "YES", "GREEN":
		return Positive
	case "NO", "RED":
		return Negative
	case "N/A", "NOT APPLICABLE":
		return NotApplicable
	}
	return Unknown
}

// ClassifyFeedback grades free-text feedback cells. The companion
// satisfaction field wins when it carries a recognizable level; only then is
// the feedback text itself scanned for keyword lists. Positive wording in the
// text lands on the soft-yellow highlight, the same slot as a medium
// satisfaction level.
func ClassifyFeedback(satisfaction, feedback string) Category {
	if satisfaction != "" {
		s := strings.ToLower(satisfaction)
		switch {
		case containsAny(s, "high", "positive", "good"):
			return Positive
		case containsAny(s, "low", "negative", "poor"):
			return Negative
		case containsAny(s, "medium", "neutral"):
			return Warning
		}
	}

	if feedback != "" && feedback != "N/A" {
		f := strings.ToLower(feedback)
		if containsAny(f, "happy", "appreciated", "successful", "good", "excellent", "satisfied") {
			return Warning
		}
		if containsAny(f, "unhappy", "issue", "problem", "concern", "disappointed") {
			return Negative
		}
	}
	return Unknown
}

// ClassifyIndicator grades the delivery-summary glyph cells. Like sentiment,
// except only a bare "Yes" counts as green and "No" has no red mapping.
func ClassifyIndicator(value string) Category {
	if value == "" {
		return Unknown
	}
	v := strings.ToLower(value)
	switch {
	case strings.Contains(v, "green") || strings.ToUpper(strings.TrimSpace(value)) == "YES":
		return Positive
	case strings.Contains(v, "amber") || strings.Contains(v, "yellow"):
		return Warning
	case strings.Contains(v, "red"):
		return Negative
	}
	return Unknown
}

func containsAny(haystack string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
