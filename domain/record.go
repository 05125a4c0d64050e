package domain

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
)

// Missing is the display value substituted for absent fields.
const Missing = "N/A"

// Record is one project's flat set of named string fields. Keys come from a
// known but extensible vocabulary; schemas ignore keys they do not reference.
// Records are built once per request and read-only afterwards.
type Record map[string]string

// ErrMalformedPayload is returned when the inbound payload is neither a
// record nor a list of records.
var ErrMalformedPayload = errors.New("payload must be a record or a list of records")

// Field returns the value for name, substituting Missing for absent keys.
// A key that is present with an empty value stays empty so classifiers can
// distinguish "not answered" from "not asked".
func (r Record) Field(name string) string {
	v, ok := r[name]
	if !ok {
		return Missing
	}
	return v
}

// Optional returns the value for name or "" when the key is absent. Used for
// companion fields (satisfaction levels, free-text details) that have no
// placeholder representation.
func (r Record) Optional(name string) string {
	return r[name]
}

// Name returns the record's identity key. Project names are not guaranteed
// unique; duplicates are treated as distinct rows.
func (r Record) Name() string {
	return r.Field("Project Name")
}

// ParseRecords decodes the inbound payload into records. A single JSON object
// is promoted to a one-element list. Any record that is not a string-keyed
// mapping of scalar values is rejected before pagination begins.
func ParseRecords(payload []byte) ([]Record, error) {
	var raw any
	if err := sonic.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	var items []any
	switch v := raw.(type) {
	case map[string]any:
		items = []any{v}
	case []any:
		items = v
	default:
		return nil, ErrMalformedPayload
	}

	records := make([]Record, 0, len(items))
	for i, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d: %w", i, ErrMalformedPayload)
		}
		rec := make(Record, len(fields))
		for key, val := range fields {
			s, err := scalarString(val)
			if err != nil {
				return nil, fmt.Errorf("record %d, field %q: %w", i, key, err)
			}
			rec[key] = s
		}
		records = append(records, rec)
	}
	return records, nil
}

func scalarString(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return "", errors.New("field value is not a scalar")
	}
}
