package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gigwallet/insights/internal/analytics/anomaly"
	"github.com/gigwallet/insights/internal/config"
	"github.com/gigwallet/insights/internal/logging"
	"github.com/gigwallet/insights/internal/models"
)

// AnalysisService runs anomaly detection over money records
type AnalysisService struct {
	logger *logging.Logger
	engine config.EngineConfig
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(logger *logging.Logger, engine config.EngineConfig) *AnalysisService {
	return &AnalysisService{
		logger: logger,
		engine: engine,
	}
}

// Execute validates the request, runs every detector and returns the merged
// anomaly list. Requests below the detectors' sample minimums succeed with an
// empty list rather than failing.
func (s *AnalysisService) Execute(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	start := time.Now()

	if req.RecordCount() == 0 {
		return nil, NewServiceError(CodeEmptyRequest, "at least one record is required")
	}
	if req.RecordCount() > s.engine.MaxRecords {
		return nil, NewServiceErrorWithDetails(CodeTooManyRecords,
			fmt.Sprintf("request exceeds %d records", s.engine.MaxRecords),
			map[string]interface{}{"records": req.RecordCount(), "max_records": s.engine.MaxRecords})
	}

	earnings, svcErr := convertEarnings(req.Earnings)
	if svcErr != nil {
		return nil, svcErr
	}
	expenses, svcErr := convertExpenses(req.Expenses)
	if svcErr != nil {
		return nil, svcErr
	}
	fees, svcErr := convertFees(req.Fees)
	if svcErr != nil {
		return nil, svcErr
	}

	anomalies := anomaly.AnalyzeAll(earnings, expenses, fees)

	s.logger.WithContext(ctx).Info("Analysis completed",
		"records", req.RecordCount(),
		"anomalies", len(anomalies),
		"duration", time.Since(start))

	views := make([]models.AnomalyView, len(anomalies))
	for i, a := range anomalies {
		views[i] = anomalyView(a)
	}

	return &models.AnalyzeResponse{
		Anomalies: views,
		Count:     len(views),
	}, nil
}

func anomalyView(a anomaly.Anomaly) models.AnomalyView {
	return models.AnomalyView{
		Type:     string(a.Type),
		Severity: string(a.Severity),
		Metric:   a.Metric,
		Observed: a.Observed,
		Expected: models.RangeView{
			Low:  a.Expected.Low,
			High: a.Expected.High,
		},
		ZScore:         a.ZScore,
		Description:    a.Description,
		Recommendation: a.Recommendation,
		DetectedAt:     a.DetectedAt.Format("2006-01-02"),
	}
}
