package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"patterns/internal/platform/clock"
)

type Shape string

const (
	ShapeAbsent  Shape = "absent"
	ShapeLegacy  Shape = "legacy"
	ShapeCurrent Shape = "current"
)

// Decoded is a normalized completion blob.
type Decoded struct {
	Store *Store
	Shape Shape
	// Dropped lists map keys that could not be read as a completion record.
	Dropped []string
	// Repaired lists ids whose source or date was defaulted.
	Repaired []int
}

// Decode normalizes a persisted completion blob. A JSON array is the legacy
// list of completed ids and migrates to records dated today with source help.
// A JSON object is the current id -> record map; unusable entries in it are
// dropped one by one and incomplete records are repaired. Anything else is
// malformed.
func Decode(raw, today string) (Decoded, error) {
	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 {
		return Decoded{}, fmt.Errorf("empty payload")
	}
	switch trimmed[0] {
	case '[':
		store, err := decodeLegacy(trimmed, today)
		if err != nil {
			return Decoded{}, err
		}
		return Decoded{Store: store, Shape: ShapeLegacy}, nil
	case '{':
		return decodeCurrent(trimmed, today)
	default:
		return Decoded{}, fmt.Errorf("unexpected payload starting with %q", trimmed[0])
	}
}

func decodeLegacy(raw []byte, today string) (*Store, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode legacy list: %w", err)
	}
	store := NewStore()
	for _, item := range items {
		id, err := parseLegacyID(item)
		if err != nil {
			return nil, err
		}
		store.records[id] = NewRecord(today)
	}
	return store, nil
}

func parseLegacyID(item json.RawMessage) (int, error) {
	var s string
	if err := json.Unmarshal(item, &s); err == nil {
		return parseID(s)
	}
	var n float64
	if err := json.Unmarshal(item, &n); err != nil {
		return 0, fmt.Errorf("legacy id %s is neither string nor number", string(item))
	}
	if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
		return 0, fmt.Errorf("legacy id %v is not an integer", n)
	}
	return int(n), nil
}

// storedRecord accepts any record object; missing fields are repaired.
type storedRecord struct {
	DateCompleted json.RawMessage `json:"dateCompleted"`
	Source        json.RawMessage `json:"solutionSource"`
}

func stringField(raw json.RawMessage) (string, bool) {
	var value string
	if len(raw) == 0 || json.Unmarshal(raw, &value) != nil {
		return "", false
	}
	return value, true
}

func decodeCurrent(raw []byte, today string) (Decoded, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return Decoded{}, fmt.Errorf("decode completion map: %w", err)
	}
	out := Decoded{Store: NewStore(), Shape: ShapeCurrent}
	for _, key := range slices.Sorted(maps.Keys(entries)) {
		value := bytes.TrimSpace(entries[key])
		id, err := parseID(key)
		if err != nil || len(value) == 0 || value[0] != '{' {
			out.Dropped = append(out.Dropped, key)
			continue
		}
		var stored storedRecord
		if err := json.Unmarshal(value, &stored); err != nil {
			out.Dropped = append(out.Dropped, key)
			continue
		}
		record, repaired := repairRecord(stored, today)
		if repaired {
			out.Repaired = append(out.Repaired, id)
		}
		out.Store.records[id] = record
	}
	return out, nil
}

// repairRecord defaults an unknown source to help and an unreadable date to
// today, the same values a legacy migration assigns.
func repairRecord(stored storedRecord, today string) (Record, bool) {
	record := NewRecord(today)
	repaired := false
	if source, ok := stringField(stored.Source); ok && SolutionSource(source).Validate() == nil {
		record.Source = SolutionSource(source)
	} else {
		repaired = true
	}
	value, ok := stringField(stored.DateCompleted)
	if !ok {
		return record, true
	}
	date, ok := normalizeDate(value)
	if !ok {
		return record, true
	}
	record.DateCompleted = date
	return record, repaired || date != value
}

var dateLayouts = []string{clock.DateLayout, "2006-1-2", time.RFC3339Nano}

func normalizeDate(value string) (string, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(clock.DateLayout), true
		}
	}
	return "", false
}

func parseID(value string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid problem id %q", value)
	}
	return id, nil
}

// Encode renders the current shape. Keys are emitted in sorted order by
// encoding/json, so equal stores encode to identical text.
func Encode(store *Store) (string, error) {
	out := make(map[string]Record, len(store.records))
	for id, record := range store.records {
		out[strconv.Itoa(id)] = record
	}
	payload, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode completion map: %w", err)
	}
	return string(payload), nil
}
