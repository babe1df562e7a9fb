package models

import (
	"fmt"
	"time"

	"github.com/gigwallet/insights/internal/analytics"
)

// EarningsRecord represents a single earning in a request body
type EarningsRecord struct {
	Date     string  `json:"date" validate:"required"`
	Amount   float64 `json:"amount"`
	Platform string  `json:"platform,omitempty"`
}

// ExpenseRecord represents a single expense in a request body
type ExpenseRecord struct {
	Date     string  `json:"date" validate:"required"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category,omitempty"`
}

// FeeRecord represents a single payout with its platform fee
type FeeRecord struct {
	Date        string  `json:"date" validate:"required"`
	GrossAmount float64 `json:"gross_amount"`
	Fees        float64 `json:"fees"`
	Platform    string  `json:"platform,omitempty"`
}

// AnalyzeRequest represents an anomaly analysis request
type AnalyzeRequest struct {
	Earnings []EarningsRecord `json:"earnings,omitempty"`
	Expenses []ExpenseRecord  `json:"expenses,omitempty"`
	Fees     []FeeRecord      `json:"fees,omitempty"`
}

// RecordCount returns the total number of records across all types
func (r *AnalyzeRequest) RecordCount() int {
	return len(r.Earnings) + len(r.Expenses) + len(r.Fees)
}

// EarningsForecastRequest represents an earnings forecast request
type EarningsForecastRequest struct {
	Earnings []EarningsRecord `json:"earnings" validate:"required,min=1"`
}

// ExpenseForecastRequest represents an expense forecast request
type ExpenseForecastRequest struct {
	Expenses      []ExpenseRecord `json:"expenses" validate:"required,min=1"`
	MonthlyBudget float64         `json:"monthly_budget,omitempty"`
}

// VelocityRequest represents an income velocity request
type VelocityRequest struct {
	Earnings []EarningsRecord `json:"earnings" validate:"required,min=1"`
	Target   float64          `json:"target,omitempty"`
}

// ParseDate accepts a bare date (2006-01-02) or a full RFC3339 timestamp
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("date %q must be YYYY-MM-DD or RFC3339", s)
}

// ToEntry converts the wire record to an engine entry
func (r EarningsRecord) ToEntry() (analytics.EarningsEntry, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return analytics.EarningsEntry{}, err
	}
	return analytics.EarningsEntry{Date: date, Amount: r.Amount, Platform: r.Platform}, nil
}

// ToEntry converts the wire record to an engine entry
func (r ExpenseRecord) ToEntry() (analytics.ExpenseEntry, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return analytics.ExpenseEntry{}, err
	}
	return analytics.ExpenseEntry{Date: date, Amount: r.Amount, Category: r.Category}, nil
}

// ToEntry converts the wire record to an engine entry
func (r FeeRecord) ToEntry() (analytics.FeeEntry, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return analytics.FeeEntry{}, err
	}
	return analytics.FeeEntry{Date: date, GrossAmount: r.GrossAmount, Fees: r.Fees, Platform: r.Platform}, nil
}
