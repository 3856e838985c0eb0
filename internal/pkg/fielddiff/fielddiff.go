// Package fielddiff renders field-level change descriptions for the
// reconciliation summary. Only the entity packages decide WHICH fields are
// tracked; this package only knows how to describe a single change.
package fielddiff

import (
	"math"
	"strconv"
	"time"
)

// Epsilon bounds float comparison for usage readings (fractional hours).
const Epsilon = 1e-6

const emptyPlaceholder = "—"

type ChangeList struct {
	changes []string
}

func (c *ChangeList) String(label, before, after string) {
	if before == after {
		return
	}
	c.append(label, formatString(before), formatString(after))
}

func (c *ChangeList) Bool(label string, before, after bool) {
	if before == after {
		return
	}
	c.append(label, formatBool(before), formatBool(after))
}

func (c *ChangeList) Int(label string, before, after int) {
	if before == after {
		return
	}
	c.append(label, strconv.Itoa(before), strconv.Itoa(after))
}

func (c *ChangeList) Float(label string, before, after float64) {
	if FloatEqual(before, after) {
		return
	}
	c.append(label, formatFloat(before), formatFloat(after))
}

func (c *ChangeList) Date(label string, before, after *time.Time) {
	if datesEqual(before, after) {
		return
	}
	c.append(label, formatDate(before), formatDate(after))
}

func (c *ChangeList) append(label, before, after string) {
	c.changes = append(c.changes, label+": "+before+" → "+after)
}

// Changes returns nil when no tracked field differed (the no-op case).
func (c *ChangeList) Changes() []string {
	return c.changes
}

func (c *ChangeList) Empty() bool {
	return len(c.changes) == 0
}

func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func datesEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func formatString(s string) string {
	if s == "" {
		return emptyPlaceholder
	}
	return s
}

func formatBool(b bool) string {
	if b {
		return "active"
	}
	return "inactive"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return emptyPlaceholder
	}
	return t.Format("2006-01-02")
}
