package calculate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"calc-golang/internal/storage"
	"calc-golang/internal/storage/mysql"
)

type MockCalculator struct {
	mock.Mock
}

func (m *MockCalculator) ComputeMetrics(state storage.CalculatorState) storage.CalculatedMetrics {
	args := m.Called(state)
	return args.Get(0).(storage.CalculatedMetrics)
}

func (m *MockCalculator) MetricsForSession(ctx context.Context, sessionID string) (*storage.CalculatedMetrics, *storage.CalculatorSession, error) {
	args := m.Called(ctx, sessionID)
	var metrics *storage.CalculatedMetrics
	if args.Get(0) != nil {
		metrics = args.Get(0).(*storage.CalculatedMetrics)
	}
	var session *storage.CalculatorSession
	if args.Get(1) != nil {
		session = args.Get(1).(*storage.CalculatorSession)
	}
	return metrics, session, args.Error(2)
}

func TestCalculateMetrics_Success(t *testing.T) {
	mockCalc := new(MockCalculator)

	metrics := storage.CalculatedMetrics{
		TotalMonthlyUnits: 20,
		TotalGrossProfit:  113.3,
	}
	mockCalc.On("ComputeMetrics", mock.Anything).Return(metrics)

	handler := CalculateMetrics(slog.Default(), mockCalc)

	body := `{"products":[{"id":"p1","selling_price":25,"monthly_units":20}],"hourly_rate":25}`
	req := httptest.NewRequest(http.MethodPost, "/api/metrics/calculate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got storage.CalculatedMetrics
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 20.0, got.TotalMonthlyUnits)
	assert.InDelta(t, 113.3, got.TotalGrossProfit, 0.001)

	mockCalc.AssertExpectations(t)
}

func TestCalculateMetrics_InvalidJSON(t *testing.T) {
	mockCalc := new(MockCalculator)
	handler := CalculateMetrics(slog.Default(), mockCalc)

	req := httptest.NewRequest(http.MethodPost, "/api/metrics/calculate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockCalc.AssertNotCalled(t, "ComputeMetrics")
}

func TestCalculateMetrics_EmptyDocument(t *testing.T) {
	mockCalc := new(MockCalculator)
	mockCalc.On("ComputeMetrics", storage.CalculatorState{}).Return(storage.CalculatedMetrics{})

	handler := CalculateMetrics(slog.Default(), mockCalc)

	req := httptest.NewRequest(http.MethodPost, "/api/metrics/calculate", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	// Malformed-but-parseable input degrades to a zeroed snapshot, never an
	// engine failure.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCalculateSessionMetrics_Success(t *testing.T) {
	mockCalc := new(MockCalculator)

	metrics := &storage.CalculatedMetrics{TotalMonthlyRevenue: 500}
	session := &storage.CalculatorSession{ID: "s1", Name: "shop"}
	mockCalc.On("MetricsForSession", mock.Anything, "s1").Return(metrics, session, nil)

	router := chi.NewRouter()
	router.Get("/api/metrics/session/{id}", CalculateSessionMetrics(slog.Default(), mockCalc))

	req := httptest.NewRequest(http.MethodGet, "/api/metrics/session/s1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got storage.CalculatedMetrics
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.InDelta(t, 500.0, got.TotalMonthlyRevenue, 0.001)

	mockCalc.AssertExpectations(t)
}

func TestCalculateSessionMetrics_NotFound(t *testing.T) {
	mockCalc := new(MockCalculator)
	mockCalc.On("MetricsForSession", mock.Anything, "missing").Return(nil, nil, mysql.ErrSessionNotFound)

	router := chi.NewRouter()
	router.Get("/api/metrics/session/{id}", CalculateSessionMetrics(slog.Default(), mockCalc))

	req := httptest.NewRequest(http.MethodGet, "/api/metrics/session/missing", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
