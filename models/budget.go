// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single booked income or expense line on a sheet.
type Transaction struct {
	Meta

	SheetID     string          `json:"sheet_id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Kind        CategoryKind    `json:"kind"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
}

func (*Transaction) EntityType() EntityType { return EntityTransaction }

// NewTransaction returns an empty *Transaction. Used as a decode target by
// generic stores.
func NewTransaction() *Transaction { return &Transaction{} }

// Recurrence is how often a planned template repeats.
type Recurrence string

const (
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

// PlannedTemplate describes a recurring expected transaction.
type PlannedTemplate struct {
	Meta

	SheetID    string          `json:"sheet_id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Kind       CategoryKind    `json:"kind"`
	Category   string          `json:"category"`
	Recurrence Recurrence      `json:"recurrence"`
	DayOfMonth int             `json:"day_of_month,omitempty"`
}

func (*PlannedTemplate) EntityType() EntityType { return EntityPlannedTemplate }

func NewPlannedTemplate() *PlannedTemplate { return &PlannedTemplate{} }

// Sheet groups transactions, usually one per month or per account.
type Sheet struct {
	Meta

	Name     string `json:"name"`
	Currency string `json:"currency"`
	Archived bool   `json:"archived,omitempty"`
}

func (*Sheet) EntityType() EntityType { return EntitySheet }

func NewSheet() *Sheet { return &Sheet{} }
