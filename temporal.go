package homehive

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"
)

// NoMonth marks a temporal record scoped to a whole year.
const NoMonth time.Month = 0

// TemporalRecord is a generic, type-tagged, year (or year-month) scoped
// snapshot. Its ID is "2025" or "2025-01". A record freezes on its first
// successful write: Immutable is always true once stored.
type TemporalRecord struct {
	ID        string          `json:"id"`
	Year      int             `json:"year"`
	Month     time.Month      `json:"month,omitempty"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"createdAt"`
	Immutable bool            `json:"immutable"`
}

// Decode unmarshals the record's payload into v.
func (r TemporalRecord) Decode(v any) error {
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("corrupt temporal record %q: %w", r.ID, err)
	}
	return nil
}

// recordID computes the storage id for a year or year-month scope.
func recordID(year int, month time.Month) string {
	if month == NoMonth {
		return fmt.Sprintf("%d", year)
	}
	return fmt.Sprintf("%d-%02d", year, month)
}

// TemporalStore keeps per-type, per-property lists of temporal records under
// the "temporal_<type>_<propertyId>" namespace.
//
// The first write to a given (type, property, year[, month]) succeeds and
// freezes the record forever; any later write under the same id is rejected.
type TemporalStore struct {
	storage Storage
	clock   Clock
}

// NewTemporalStore returns a store over the given storage and clock.
func NewTemporalStore(storage Storage, clock Clock) *TemporalStore {
	return &TemporalStore{storage: storage, clock: clock}
}

// Save stores data for (recordType, propertyID, year[, month]). Use NoMonth
// for a year-level record. It returns false, without mutating anything, when
// a record with the same id is already frozen or when the write fails.
func (ts *TemporalStore) Save(recordType, propertyID string, year int, month time.Month, data any) bool {
	records := ts.GetAll(recordType, propertyID)
	id := recordID(year, month)
	for _, r := range records {
		if r.ID == id && r.Immutable {
			log.Printf("warning: temporal record %s/%s %s is sealed, write rejected", recordType, propertyID, id)
			return false
		}
	}

	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("warning: cannot encode temporal record %s/%s %s: %v", recordType, propertyID, id, err)
		return false
	}
	record := TemporalRecord{
		ID:        id,
		Year:      year,
		Month:     month,
		Data:      raw,
		CreatedAt: time.Now(),
		Immutable: true,
	}

	// replace any non-frozen record with the same id, else append.
	replaced := false
	for i, r := range records {
		if r.ID == id {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}
	if err := saveJSON(ts.storage, temporalKey(recordType, propertyID), records); err != nil {
		log.Printf("warning: %v", err)
		return false
	}
	return true
}

// GetAll returns every record of a type for a property, oldest first.
func (ts *TemporalStore) GetAll(recordType, propertyID string) []TemporalRecord {
	var records []TemporalRecord
	if _, err := loadJSON(ts.storage, temporalKey(recordType, propertyID), &records); err != nil {
		log.Printf("warning: %v", err)
		return nil
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records
}

// GetForYear returns every record of a type for a property and year.
func (ts *TemporalStore) GetForYear(recordType, propertyID string, year int) []TemporalRecord {
	var out []TemporalRecord
	for _, r := range ts.GetAll(recordType, propertyID) {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}

// GetForMonth returns the record for (year, month), or false if absent.
// Duplicates should not exist given the immutability rule, but if they do the
// most recent by CreatedAt wins.
func (ts *TemporalStore) GetForMonth(recordType, propertyID string, year int, month time.Month) (TemporalRecord, bool) {
	id := recordID(year, month)
	var best TemporalRecord
	found := false
	for _, r := range ts.GetAll(recordType, propertyID) {
		if r.ID != id {
			continue
		}
		if !found || r.CreatedAt.After(best.CreatedAt) {
			best = r
			found = true
		}
	}
	return best, found
}

// IsMutable reports whether a (year[, month]) scope may still be edited
// through the live path: only the current year, and within it only the
// current or a future month. Past years and sealed records must go through
// the historical-isolation editors.
func (ts *TemporalStore) IsMutable(year int, month time.Month) bool {
	today := ts.clock.Today()
	if year != today.Year() {
		return false
	}
	if month == NoMonth {
		return true
	}
	return month >= today.Month()
}

// Clear erases every temporal record type for a property. It is the caller's
// responsibility to invoke it on property deletion; nothing cascades here.
func (ts *TemporalStore) Clear(propertyID string) error {
	keys, err := ts.storage.Keys("temporal_")
	if err != nil {
		return fmt.Errorf("cannot list temporal records: %w", err)
	}
	suffix := "_" + propertyID
	for _, key := range keys {
		if !strings.HasSuffix(key, suffix) {
			continue
		}
		if err := ts.storage.Delete(key); err != nil {
			return fmt.Errorf("cannot delete %q: %w", key, err)
		}
	}
	return nil
}
