package order

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Milestone is one shipment step of an order, in original ledger order.
type Milestone struct {
	Timestamp time.Time `json:"timestamp"`
	Label     string    `json:"label"`
	Completed bool      `json:"completed"`
}

// Record is a single order with its nested shipment milestones.
type Record struct {
	ID           string      `json:"id"`
	Date         time.Time   `json:"date"`
	Status       string      `json:"status"`
	Items        []string    `json:"items"`
	Total        float64     `json:"total"`
	Address      string      `json:"address"`
	Carrier      string      `json:"carrier"`
	TrackingCode string      `json:"tracking_code"`
	Milestones   []Milestone `json:"milestones"`
}

// Ledger is a keyed store of order records with case-insensitive exact
// lookup. Immutable after construction.
type Ledger struct {
	records map[string]Record
}

// NewLedger seeds a ledger from the given records. Duplicate ids (compared
// case-insensitively) are an error.
func NewLedger(records ...Record) (*Ledger, error) {
	byID := make(map[string]Record, len(records))
	for _, rec := range records {
		if rec.ID == "" {
			return nil, fmt.Errorf("order record without an id")
		}
		key := strings.ToUpper(rec.ID)
		if _, exists := byID[key]; exists {
			return nil, fmt.Errorf("duplicate order id %s", key)
		}
		byID[key] = rec
	}
	return &Ledger{records: byID}, nil
}

// LoadLedger reads the order seed document at path. Unlike the knowledge
// base there is no sensible built-in default, so a missing or corrupt file
// fails fast.
func LoadLedger(path string) (*Ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read order ledger: %w", err)
	}
	var doc struct {
		Orders []Record `json:"orders"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse order ledger %s: %w", path, err)
	}
	return NewLedger(doc.Orders...)
}

// Get returns the record for id using case-insensitive exact match.
func (l *Ledger) Get(id string) (Record, bool) {
	rec, ok := l.records[strings.ToUpper(id)]
	return rec, ok
}

// Len returns the number of seeded orders.
func (l *Ledger) Len() int { return len(l.records) }
