// Package item defines the lost & found record type and its field-level
// validation rules. It carries no storage or presentation concerns.
package item

import (
	"fmt"
	"strings"
)

// NoMatch is the MatchedItemID value of a record that has no counterpart.
const NoMatch int32 = -1

// Status reports whether an item was lost by its owner or found by
// someone else.
type Status string

const (
	StatusLost  Status = "Lost"
	StatusFound Status = "Found"
)

// ParseStatus canonicalizes a user-supplied status string.
// Matching is case-insensitive.
func ParseStatus(s string) (Status, error) {
	switch {
	case strings.EqualFold(s, string(StatusLost)):
		return StatusLost, nil
	case strings.EqualFold(s, string(StatusFound)):
		return StatusFound, nil
	}
	return "", fmt.Errorf("invalid status %q (must be %q or %q)", s, StatusLost, StatusFound)
}

// Valid reports whether the status is one of the two known values.
func (s Status) Valid() bool {
	return s == StatusLost || s == StatusFound
}

// Opposite returns the counterpart status: Lost for Found, Found for Lost.
func (s Status) Opposite() Status {
	if s == StatusLost {
		return StatusFound
	}
	return StatusLost
}

// Item is a single lost or found report.
//
// Matched, Claimed and MatchedItemID form the pairing lifecycle and are
// only ever modified by the registry's match and claim operations; the
// remaining fields are set at creation and editable afterwards.
type Item struct {
	ID            int32    // Unique identifier, assigned by the registry
	Name          string   // Short name of the item
	Category      Category // One of the fixed categories
	Description   string   // Free-text description
	Date          Date     // Date lost or found
	Location      string   // Where the item was lost or found
	Status        Status   // Lost or Found
	Matched       bool     // Paired with a counterpart report
	Claimed       bool     // Returned to its owner
	MatchedItemID int32    // ID of the counterpart, NoMatch if none
	PersonName    string   // Owner (lost) or finder (found), optional
	PersonContact string   // Contact details, optional
}

// Changes describes a partial update to an item. Nil fields are left
// untouched. The pairing lifecycle fields are deliberately absent:
// matching and claiming go through their own operations.
type Changes struct {
	Name          *string
	Category      *Category
	Description   *string
	Date          *Date
	Location      *string
	PersonName    *string
	PersonContact *string
}

// Empty reports whether the change set would modify nothing.
func (c Changes) Empty() bool {
	return c.Name == nil && c.Category == nil && c.Description == nil &&
		c.Date == nil && c.Location == nil &&
		c.PersonName == nil && c.PersonContact == nil
}

// Validate checks the provided fields against their field rules.
func (c Changes) Validate() error {
	if c.Category != nil && !c.Category.Valid() {
		return fmt.Errorf("invalid category %q", *c.Category)
	}
	if c.Date != nil && c.Date.IsZero() {
		return fmt.Errorf("invalid date (empty)")
	}
	return nil
}

// Apply copies the non-nil fields of the change set onto the item.
func (it *Item) Apply(c Changes) {
	if c.Name != nil {
		it.Name = *c.Name
	}
	if c.Category != nil {
		it.Category = *c.Category
	}
	if c.Description != nil {
		it.Description = *c.Description
	}
	if c.Date != nil {
		it.Date = *c.Date
	}
	if c.Location != nil {
		it.Location = *c.Location
	}
	if c.PersonName != nil {
		it.PersonName = *c.PersonName
	}
	if c.PersonContact != nil {
		it.PersonContact = *c.PersonContact
	}
}
