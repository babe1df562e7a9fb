package models

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// RangeView represents the expected band for an observed value
type RangeView struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// AnomalyView represents a single detected anomaly in a response
type AnomalyView struct {
	Type           string    `json:"type"`
	Severity       string    `json:"severity"`
	Metric         string    `json:"metric"`
	Observed       float64   `json:"observed"`
	Expected       RangeView `json:"expected"`
	ZScore         float64   `json:"z_score"`
	Description    string    `json:"description"`
	Recommendation string    `json:"recommendation,omitempty"`
	DetectedAt     string    `json:"detected_at"` // Format: YYYY-MM-DD
}

// AnalyzeResponse represents anomaly analysis response
type AnalyzeResponse struct {
	Anomalies []AnomalyView `json:"anomalies"`
	Count     int           `json:"count"`
}

// EarningsForecastResponse represents earnings forecast response
type EarningsForecastResponse struct {
	PredictedNextWeek  float64 `json:"predicted_next_week"`
	PredictedNextMonth float64 `json:"predicted_next_month"`
	Confidence         float64 `json:"confidence"`
	Trend              string  `json:"trend"`
	SeasonalAdjustment float64 `json:"seasonal_adjustment"`
	ForecastBasisDays  int     `json:"forecast_basis_days"`
}

// CategoryForecastView represents a per-category spending projection
type CategoryForecastView struct {
	Category         string  `json:"category"`
	PredictedMonthly float64 `json:"predicted_monthly"`
	Trend            string  `json:"trend"`
}

// ExpenseForecastResponse represents expense forecast response
type ExpenseForecastResponse struct {
	PredictedMonthlyExpenses float64                `json:"predicted_monthly_expenses"`
	CategoryForecasts        []CategoryForecastView `json:"category_forecasts"`
	BurnRatePerDay           float64                `json:"burn_rate_per_day"`
	DaysUntilBudgetExhausted *int                   `json:"days_until_budget_exhausted,omitempty"`
}

// VelocityResponse represents income velocity response
type VelocityResponse struct {
	CurrentDailyRate float64 `json:"current_daily_rate"`
	PriorDailyRate   float64 `json:"prior_daily_rate"`
	Acceleration     float64 `json:"acceleration"`
	DaysToTarget     *int    `json:"days_to_target,omitempty"`
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Path    string                 `json:"path,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}
