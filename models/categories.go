// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"time"
)

// CategoryKind splits categories into income and expense lists.
type CategoryKind string

const (
	CategoryIncome  CategoryKind = "income"
	CategoryExpense CategoryKind = "expense"
)

// ErrUnknownCategoryKind is returned when a kind is neither income nor expense.
var ErrUnknownCategoryKind = errors.New("unknown category kind")

// Validate checks that k is a known kind.
func (k CategoryKind) Validate() error {
	switch k {
	case CategoryIncome, CategoryExpense:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCategoryKind, string(k))
	}
}

// Categories maps each kind to its ordered list of category names.
type Categories map[CategoryKind][]string

// Count returns the total number of names across all kinds.
func (c Categories) Count() int {
	n := 0
	for _, names := range c {
		n += len(names)
	}
	return n
}

// CategoryAction is the intent recorded in a queued category change.
type CategoryAction string

const (
	CategoryAdd     CategoryAction = "add"
	CategoryRemove  CategoryAction = "remove"
	CategoryReorder CategoryAction = "reorder"
)

// CategoryOp is the payload of a queued category change. Names is only set
// for reorder.
type CategoryOp struct {
	Action CategoryAction `json:"action"`
	Kind   CategoryKind   `json:"kind"`
	Name   string         `json:"name,omitempty"`
	Names  []string       `json:"names,omitempty"`
}

// CategoryEntityID is the queue key of a single category name.
func CategoryEntityID(kind CategoryKind, name string) string {
	return "category:" + string(kind) + ":" + name
}

// CategoryOrderEntityID is the queue key of the ordering of one kind.
func CategoryOrderEntityID(kind CategoryKind) string {
	return "category-order:" + string(kind)
}

// ActivityNote is a free-form note attached to a key (for example a sheet
// id or a date) and shown in the activity panel.
type ActivityNote struct {
	Key       string    `json:"key"`
	Text      string    `json:"text"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteEntityID is the queue key of an activity note.
func NoteEntityID(key string) string {
	return "note:" + key
}
