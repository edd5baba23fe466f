package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Entry is a single question/answer record. Immutable after load.
type Entry struct {
	Question string   `json:"question"`
	Answer   string   `json:"reponse"`
	Tags     []string `json:"tags,omitempty"`
}

// Validate reports whether the entry satisfies the base invariants.
func (e Entry) Validate() error {
	if e.Question == "" {
		return fmt.Errorf("knowledge entry has an empty question")
	}
	if e.Answer == "" {
		return fmt.Errorf("knowledge entry %q has an empty answer", e.Question)
	}
	return nil
}

// Base is the ordered, immutable collection of knowledge entries. Entry
// position is the stable identity used by the similarity index.
type Base struct {
	entries []Entry
}

// document mirrors the on-disk JSON shape.
type document struct {
	Questions []Entry `json:"questions"`
}

// New builds a Base from the given entries, validating each one.
func New(entries []Entry) (*Base, error) {
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return &Base{entries: copied}, nil
}

// Load reads the knowledge base from the JSON document at path. When the file
// does not exist the built-in default set is used and persisted back to path
// for future runs. A present but unreadable or corrupt file is an error.
func Load(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return writeDefaults(path)
		}
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse knowledge file %s: %w", path, err)
	}
	if len(doc.Questions) == 0 {
		return nil, fmt.Errorf("knowledge file %s contains no questions", path)
	}
	return New(doc.Questions)
}

// Save writes the base back to a JSON document at path, creating parent
// directories as needed.
func Save(path string, b *Base) error {
	data, err := json.MarshalIndent(document{Questions: b.entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal knowledge base: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create knowledge dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write knowledge file: %w", err)
	}
	return nil
}

func writeDefaults(path string) (*Base, error) {
	base, err := New(DefaultEntries())
	if err != nil {
		return nil, err
	}
	if err := Save(path, base); err != nil {
		return nil, err
	}
	return base, nil
}

// Len returns the number of entries.
func (b *Base) Len() int { return len(b.entries) }

// Entry returns the entry at position i.
func (b *Base) Entry(i int) Entry { return b.entries[i] }

// Entries returns a defensive copy of the ordered entry slice.
func (b *Base) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Questions returns the ordered question texts, in entry order.
func (b *Base) Questions() []string {
	out := make([]string, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.Question
	}
	return out
}
