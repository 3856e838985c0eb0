package reconcile

import "fmt"

// RecordChange names one updated record and its field-level changes.
type RecordChange struct {
	Key     string   `json:"key"`
	Changes []string `json:"changes"`
}

// EntityChanges lists, in snapshot order, what one merge staged for a
// single entity type.
type EntityChanges struct {
	Inserted []string       `json:"inserted"`
	Updated  []RecordChange `json:"updated"`
}

func (ec EntityChanges) count() int {
	return len(ec.Inserted) + len(ec.Updated)
}

// Summary is the ephemeral result of one merge. It is returned to the
// caller and never persisted. TotalChanges counts inserts plus updates
// across all three entity types; unchanged records contribute nothing.
// A zero-change, zero-warning summary means "nothing to do"; callers must
// not conflate it with a failed run.
type Summary struct {
	Equipment    EntityChanges `json:"equipment"`
	Inventory    EntityChanges `json:"inventory"`
	Maintenance  EntityChanges `json:"maintenance"`
	Warnings     []string      `json:"warnings"`
	TotalChanges int           `json:"total_changes"`
}

func (s *Summary) warnf(format string, args ...any) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}

func (s *Summary) finalize() {
	s.TotalChanges = s.Equipment.count() + s.Inventory.count() + s.Maintenance.count()
}
