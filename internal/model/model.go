// Package model holds the records exposed by the listing service and the
// inputs accepted when writing them.
package model

import (
	"errors"

	"github.com/google/uuid"
)

// ErrRecordNotFound is returned by every persistence adapter when an id does
// not resolve. Services translate it into a 404.
var ErrRecordNotFound = errors.New("record not found")

// NewID returns a fresh record identifier.
func NewID() string {
	return uuid.NewString()
}

// orEmpty keeps list fields non-nil so JSON renders [] instead of null.
func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// cleanList trims entries and drops blanks.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = trim(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// DeletePolicy tells whether deleting an entity removes the row or only
// deactivates it.
type DeletePolicy int

const (
	// DeleteHard physically removes the record.
	DeleteHard DeletePolicy = iota
	// DeleteSoft flips an active flag. Records referenced by foreign keys
	// (agents) use it so history keeps resolving.
	DeleteSoft
)

func (p DeletePolicy) String() string {
	if p == DeleteSoft {
		return "soft"
	}
	return "hard"
}
