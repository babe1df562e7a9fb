package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/gigwallet/insights/internal/config"
	"github.com/gigwallet/insights/internal/logging"
	"github.com/gigwallet/insights/internal/models"
	"github.com/gigwallet/insights/internal/services"
	"github.com/rs/zerolog"
)

// Report is the combined JSON output of the offline analyzer
type Report struct {
	Analysis         *models.AnalyzeResponse          `json:"analysis,omitempty"`
	EarningsForecast *models.EarningsForecastResponse `json:"earnings_forecast,omitempty"`
	ExpenseForecast  *models.ExpenseForecastResponse  `json:"expense_forecast,omitempty"`
	IncomeVelocity   *models.VelocityResponse         `json:"income_velocity,omitempty"`
	Notes            []string                         `json:"notes,omitempty"`
}

func main() {
	// Command line flags
	earningsFile := flag.String("earnings", "", "Earnings CSV (date,amount,platform)")
	expensesFile := flag.String("expenses", "", "Expenses CSV (date,amount,category)")
	feesFile := flag.String("fees", "", "Fees CSV (date,gross_amount,fees,platform)")
	budget := flag.Float64("budget", 0, "Monthly expense budget (optional)")
	target := flag.Float64("target", 0, "Income target for days-to-target (optional)")

	flag.Parse()

	if *earningsFile == "" && *expensesFile == "" && *feesFile == "" {
		log.Fatal("Error: at least one of -earnings, -expenses, -fees is required")
	}

	var (
		earnings []models.EarningsRecord
		expenses []models.ExpenseRecord
		fees     []models.FeeRecord
		err      error
	)

	if *earningsFile != "" {
		earnings, err = readEarnings(*earningsFile)
		if err != nil {
			log.Fatalf("Error reading earnings: %v\n", err)
		}
	}
	if *expensesFile != "" {
		expenses, err = readExpenses(*expensesFile)
		if err != nil {
			log.Fatalf("Error reading expenses: %v\n", err)
		}
	}
	if *feesFile != "" {
		fees, err = readFees(*feesFile)
		if err != nil {
			log.Fatalf("Error reading fees: %v\n", err)
		}
	}

	// Keep service logs on stderr so stdout stays clean JSON
	logger := logging.NewWithWriter(os.Stderr, zerolog.WarnLevel)
	engineCfg := config.DefaultConfig().Engine
	analysisService := services.NewAnalysisService(logger, engineCfg)
	forecastService := services.NewForecastService(logger, engineCfg)

	ctx := context.Background()
	var report Report

	analysis, err := analysisService.Execute(ctx, &models.AnalyzeRequest{
		Earnings: earnings,
		Expenses: expenses,
		Fees:     fees,
	})
	if err != nil {
		log.Fatalf("Error analyzing records: %v\n", err)
	}
	report.Analysis = analysis

	if len(earnings) > 0 {
		if fc, err := forecastService.Earnings(ctx, &models.EarningsForecastRequest{Earnings: earnings}); err == nil {
			report.EarningsForecast = fc
		} else {
			report.Notes = append(report.Notes, fmt.Sprintf("earnings forecast skipped: %v", err))
		}
		if v, err := forecastService.Velocity(ctx, &models.VelocityRequest{Earnings: earnings, Target: *target}); err == nil {
			report.IncomeVelocity = v
		} else {
			report.Notes = append(report.Notes, fmt.Sprintf("velocity skipped: %v", err))
		}
	}
	if len(expenses) > 0 {
		if fc, err := forecastService.Expenses(ctx, &models.ExpenseForecastRequest{
			Expenses:      expenses,
			MonthlyBudget: *budget,
		}); err == nil {
			report.ExpenseForecast = fc
		} else {
			report.Notes = append(report.Notes, fmt.Sprintf("expense forecast skipped: %v", err))
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatalf("Error writing report: %v\n", err)
	}
}

// readRows reads a CSV file, skipping a header row when the first field is not
// a parseable date.
func readRows(path string, wantFields int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var rows [][]string
	first := true
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if first {
			first = false
			if len(row) > 0 {
				if _, dateErr := models.ParseDate(row[0]); dateErr != nil {
					continue // header row
				}
			}
		}
		if len(row) < wantFields {
			return nil, fmt.Errorf("row %d: expected at least %d fields, got %d", len(rows)+1, wantFields, len(row))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseAmount(row []string, col, rowNum int, what string) (float64, error) {
	v, err := strconv.ParseFloat(row[col], 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: bad %s %q", rowNum, what, row[col])
	}
	return v, nil
}

func readEarnings(path string) ([]models.EarningsRecord, error) {
	rows, err := readRows(path, 2)
	if err != nil {
		return nil, err
	}

	records := make([]models.EarningsRecord, 0, len(rows))
	for i, row := range rows {
		amount, err := parseAmount(row, 1, i+1, "amount")
		if err != nil {
			return nil, err
		}
		platform := ""
		if len(row) > 2 {
			platform = row[2]
		}
		records = append(records, models.EarningsRecord{Date: row[0], Amount: amount, Platform: platform})
	}
	return records, nil
}

func readExpenses(path string) ([]models.ExpenseRecord, error) {
	rows, err := readRows(path, 2)
	if err != nil {
		return nil, err
	}

	records := make([]models.ExpenseRecord, 0, len(rows))
	for i, row := range rows {
		amount, err := parseAmount(row, 1, i+1, "amount")
		if err != nil {
			return nil, err
		}
		category := ""
		if len(row) > 2 {
			category = row[2]
		}
		records = append(records, models.ExpenseRecord{Date: row[0], Amount: amount, Category: category})
	}
	return records, nil
}

func readFees(path string) ([]models.FeeRecord, error) {
	rows, err := readRows(path, 3)
	if err != nil {
		return nil, err
	}

	records := make([]models.FeeRecord, 0, len(rows))
	for i, row := range rows {
		gross, err := parseAmount(row, 1, i+1, "gross amount")
		if err != nil {
			return nil, err
		}
		feeAmt, err := parseAmount(row, 2, i+1, "fee amount")
		if err != nil {
			return nil, err
		}
		platform := ""
		if len(row) > 3 {
			platform = row[3]
		}
		records = append(records, models.FeeRecord{Date: row[0], GrossAmount: gross, Fees: feeAmt, Platform: platform})
	}
	return records, nil
}
