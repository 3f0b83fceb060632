// Package leadfields manages the twenty custom lead field labels an account
// can configure in the dashboard.
package leadfields

import (
	"fmt"
	"unicode/utf8"

	"conectezap-dashboard/internal/apperr"
	"conectezap-dashboard/internal/models"
)

const (
	SlotCount      = 20
	MaxLabelLength = 255
)

type FieldSlot struct {
	Index int    `json:"index"`
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Configuration is the full set of slots for one account. It is a value:
// copies never share state, and two configurations can be compared with ==.
type Configuration struct {
	labels [SlotCount]string
}

func NewConfiguration() Configuration {
	return Configuration{}
}

// SlotKey returns the storage key for a slot, e.g. lead_field_07.
func SlotKey(index int) string {
	return fmt.Sprintf("lead_field_%02d", index)
}

func (c Configuration) Label(index int) (string, error) {
	if err := checkIndex(index); err != nil {
		return "", err
	}
	return c.labels[index-1], nil
}

// Slots lists all slots in index order.
func (c Configuration) Slots() []FieldSlot {
	out := make([]FieldSlot, SlotCount)
	for i, l := range c.labels {
		out[i] = FieldSlot{Index: i + 1, Key: SlotKey(i + 1), Label: l}
	}
	return out
}

// WithLabel returns a copy of c with the slot at index set to label,
// truncated to MaxLabelLength runes. On error c is returned as is.
func (c Configuration) WithLabel(index int, label string) (Configuration, error) {
	if err := checkIndex(index); err != nil {
		return c, err
	}
	c.labels[index-1] = truncate(label, MaxLabelLength)
	return c, nil
}

// UpdateLabel is WithLabel as a function.
func UpdateLabel(c Configuration, index int, label string) (Configuration, error) {
	return c.WithLabel(index, label)
}

type Edit struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

// ApplyLabels applies edits in order and collects every validation error.
// When errs is non-empty the returned configuration still reflects the
// valid edits, but callers must not persist it.
func ApplyLabels(c Configuration, edits []Edit) (Configuration, []*apperr.ValidationError) {
	var errs []*apperr.ValidationError
	for _, e := range edits {
		next, err := c.WithLabel(e.Index, e.Label)
		if err != nil {
			errs = append(errs, err.(*apperr.ValidationError))
			continue
		}
		c = next
	}
	return c, errs
}

func FromRecord(rec *models.LeadFieldConfig) Configuration {
	c := NewConfiguration()
	if rec == nil {
		return c
	}
	for i, f := range rec.Fields() {
		if *f != nil {
			c.labels[i] = truncate(**f, MaxLabelLength)
		}
	}
	return c
}

// ToRecord stores empty labels as NULL.
func ToRecord(accountID string, c Configuration) *models.LeadFieldConfig {
	rec := &models.LeadFieldConfig{AccountID: accountID}
	for i, f := range rec.Fields() {
		if l := c.labels[i]; l != "" {
			*f = &l
		}
	}
	return rec
}

func checkIndex(index int) *apperr.ValidationError {
	if index < 1 || index > SlotCount {
		return &apperr.ValidationError{
			Kind:    apperr.OutOfRange,
			Field:   SlotKey(index),
			Message: fmt.Sprintf("slot index must be between 1 and %d, got %d", SlotCount, index),
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
