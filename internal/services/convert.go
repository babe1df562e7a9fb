package services

import (
	"github.com/gigwallet/insights/internal/analytics"
	"github.com/gigwallet/insights/internal/models"
)

// The converters reject the whole request on the first bad date so callers
// never analyze a silently truncated data set.

func convertEarnings(records []models.EarningsRecord) ([]analytics.EarningsEntry, *ServiceError) {
	entries := make([]analytics.EarningsEntry, 0, len(records))
	for i, r := range records {
		entry, err := r.ToEntry()
		if err != nil {
			return nil, invalidDate("earnings", i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func convertExpenses(records []models.ExpenseRecord) ([]analytics.ExpenseEntry, *ServiceError) {
	entries := make([]analytics.ExpenseEntry, 0, len(records))
	for i, r := range records {
		entry, err := r.ToEntry()
		if err != nil {
			return nil, invalidDate("expenses", i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func convertFees(records []models.FeeRecord) ([]analytics.FeeEntry, *ServiceError) {
	entries := make([]analytics.FeeEntry, 0, len(records))
	for i, r := range records {
		entry, err := r.ToEntry()
		if err != nil {
			return nil, invalidDate("fees", i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func invalidDate(kind string, index int, err error) *ServiceError {
	return NewServiceErrorWithDetails(CodeInvalidDate, err.Error(), map[string]interface{}{
		"record_type": kind,
		"index":       index,
	})
}
