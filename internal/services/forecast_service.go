package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gigwallet/insights/internal/analytics/forecast"
	"github.com/gigwallet/insights/internal/config"
	"github.com/gigwallet/insights/internal/logging"
	"github.com/gigwallet/insights/internal/models"
)

// ForecastService runs the earnings, expense and velocity forecasters
type ForecastService struct {
	logger *logging.Logger
	engine config.EngineConfig
}

// NewForecastService creates a new ForecastService
func NewForecastService(logger *logging.Logger, engine config.EngineConfig) *ForecastService {
	return &ForecastService{
		logger: logger,
		engine: engine,
	}
}

// Earnings projects next-week and next-month earnings
func (s *ForecastService) Earnings(ctx context.Context, req *models.EarningsForecastRequest) (*models.EarningsForecastResponse, error) {
	if err := s.checkSize(len(req.Earnings)); err != nil {
		return nil, err
	}
	entries, svcErr := convertEarnings(req.Earnings)
	if svcErr != nil {
		return nil, svcErr
	}

	fc, err := forecast.ForecastEarnings(entries)
	if err != nil {
		return nil, forecastError(err)
	}

	s.logger.WithContext(ctx).Info("Earnings forecast completed",
		"records", len(entries),
		"basis_days", fc.ForecastBasis,
		"trend", string(fc.Trend))

	return &models.EarningsForecastResponse{
		PredictedNextWeek:  fc.PredictedNextWeek,
		PredictedNextMonth: fc.PredictedNextMonth,
		Confidence:         fc.Confidence,
		Trend:              string(fc.Trend),
		SeasonalAdjustment: fc.SeasonalAdjustment,
		ForecastBasisDays:  fc.ForecastBasis,
	}, nil
}

// Expenses projects monthly spending with an optional budget runway
func (s *ForecastService) Expenses(ctx context.Context, req *models.ExpenseForecastRequest) (*models.ExpenseForecastResponse, error) {
	if err := s.checkSize(len(req.Expenses)); err != nil {
		return nil, err
	}
	entries, svcErr := convertExpenses(req.Expenses)
	if svcErr != nil {
		return nil, svcErr
	}

	fc, err := forecast.ForecastExpenses(entries, req.MonthlyBudget)
	if err != nil {
		return nil, forecastError(err)
	}

	s.logger.WithContext(ctx).Info("Expense forecast completed",
		"records", len(entries),
		"categories", len(fc.CategoryForecasts))

	categories := make([]models.CategoryForecastView, len(fc.CategoryForecasts))
	for i, cf := range fc.CategoryForecasts {
		categories[i] = models.CategoryForecastView{
			Category:         cf.Category,
			PredictedMonthly: cf.PredictedMonthly,
			Trend:            string(cf.Trend),
		}
	}

	return &models.ExpenseForecastResponse{
		PredictedMonthlyExpenses: fc.PredictedMonthlyExpenses,
		CategoryForecasts:        categories,
		BurnRatePerDay:           fc.BurnRatePerDay,
		DaysUntilBudgetExhausted: fc.DaysUntilBudgetExhausted,
	}, nil
}

// Velocity compares the recent earning rate against the prior period
func (s *ForecastService) Velocity(ctx context.Context, req *models.VelocityRequest) (*models.VelocityResponse, error) {
	if err := s.checkSize(len(req.Earnings)); err != nil {
		return nil, err
	}
	entries, svcErr := convertEarnings(req.Earnings)
	if svcErr != nil {
		return nil, svcErr
	}

	v, err := forecast.ForecastVelocity(entries, req.Target)
	if err != nil {
		return nil, forecastError(err)
	}

	s.logger.WithContext(ctx).Info("Velocity forecast completed",
		"records", len(entries),
		"acceleration", v.Acceleration)

	return &models.VelocityResponse{
		CurrentDailyRate: v.CurrentDailyRate,
		PriorDailyRate:   v.PriorDailyRate,
		Acceleration:     v.Acceleration,
		DaysToTarget:     v.DaysToTarget,
	}, nil
}

func (s *ForecastService) checkSize(records int) *ServiceError {
	if records == 0 {
		return NewServiceError(CodeEmptyRequest, "at least one record is required")
	}
	if records > s.engine.MaxRecords {
		return NewServiceErrorWithDetails(CodeTooManyRecords,
			fmt.Sprintf("request exceeds %d records", s.engine.MaxRecords),
			map[string]interface{}{"records": records, "max_records": s.engine.MaxRecords})
	}
	return nil
}

// forecastError maps engine failures to coded service errors
func forecastError(err error) error {
	if errors.Is(err, forecast.ErrInsufficientData) {
		return NewServiceError(CodeInsufficientData, err.Error())
	}
	return err
}
