package domain

import (
	"errors"
	"testing"
)

func TestParseRecordsList(t *testing.T) {
	payload := `[{"Project Name":"Alpha","Overall Status":"Green"},{"Project Name":"Beta","Total FTEs":12}]`
	records, err := ParseRecords([]byte(payload))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Name() != "Alpha" {
		t.Fatalf("unexpected name: %q", records[0].Name())
	}
	if got := records[1].Field("Total FTEs"); got != "12" {
		t.Fatalf("expected numeric field to be stringified, got %q", got)
	}
}

func TestParseRecordsSingleObjectPromoted(t *testing.T) {
	records, err := ParseRecords([]byte(`{"Project Name":"Solo"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(records) != 1 || records[0].Name() != "Solo" {
		t.Fatalf("unexpected records: %#v", records)
	}
}

func TestParseRecordsRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"scalar_payload": `42`,
		"string_payload": `"nope"`,
		"scalar_record":  `["not a record"]`,
		"nested_value":   `[{"Project Name":{"deep":true}}]`,
		"invalid_json":   `{`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseRecords([]byte(payload)); err == nil {
				t.Fatalf("expected rejection for %s", payload)
			}
		})
	}
}

func TestParseRecordsMalformedSentinel(t *testing.T) {
	if _, err := ParseRecords([]byte(`[1, 2]`)); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestFieldDefaultsMissingToNA(t *testing.T) {
	rec := Record{"Overall Status": "Green", "Reason": ""}

	if got := rec.Field("Overall Status"); got != "Green" {
		t.Fatalf("unexpected value: %q", got)
	}
	if got := rec.Field("Scope Status"); got != Missing {
		t.Fatalf("expected %q for missing key, got %q", Missing, got)
	}
	// Present-but-empty stays empty; only absent keys get the placeholder.
	if got := rec.Field("Reason"); got != "" {
		t.Fatalf("expected empty value to be preserved, got %q", got)
	}
	if got := rec.Optional("Scope Status"); got != "" {
		t.Fatalf("expected empty optional value, got %q", got)
	}
}
