package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/household_finance/internal/adapters/memory"
	portsrepo "github.com/SscSPs/household_finance/internal/core/ports/repositories"
	"github.com/SscSPs/household_finance/internal/core/services"
	"github.com/SscSPs/household_finance/internal/dto"
	"github.com/SscSPs/household_finance/internal/handlers"
	"github.com/SscSPs/household_finance/internal/middleware"
	"github.com/SscSPs/household_finance/internal/notify"
	"github.com/SscSPs/household_finance/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type HandlersTestSuite struct {
	suite.Suite
	router  *gin.Engine
	finance *services.FinanceService
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func testConfig() *config.Config {
	return &config.Config{
		Locale:             "en",
		CurrencySuffix:     "Toman",
		SaveTimeoutSeconds: 5,
		ReminderWindowDays: 7,
	}
}

func newRouter(cfg *config.Config) (*gin.Engine, *services.FinanceService) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repos := portsrepo.RepositoryProvider{DocumentRepo: memory.NewDocumentRepository()}
	container, finance := services.NewServiceContainer(cfg, repos, notify.NewLogNotifier(logger), logger)

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	handlers.RegisterRoutes(r, cfg, container)
	return r, finance
}

func (s *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *HandlersTestSuite) SetupTest() {
	s.router, s.finance = newRouter(testConfig())
	s.Require().NoError(s.finance.Init(context.Background()))
}

func (s *HandlersTestSuite) TearDownTest() {
	s.Require().NoError(s.finance.Close(context.Background()))
}

func (s *HandlersTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlersTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (s *HandlersTestSuite) createMember(name string) dto.MemberResponse {
	w := s.do(http.MethodPost, "/api/v1/members", map[string]any{"name": name})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var m dto.MemberResponse
	s.decode(w, &m)
	return m
}

func (s *HandlersTestSuite) createLiability(memberID string, total int64, count int) dto.LiabilityResponse {
	w := s.do(http.MethodPost, "/api/v1/liabilities", map[string]any{
		"memberId":         memberID,
		"title":            "Car loan",
		"totalAmount":      total,
		"repaymentType":    "installment",
		"installmentCount": count,
		"startDate":        "2024-01-15",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var l dto.LiabilityResponse
	s.decode(w, &l)
	return l
}

func (s *HandlersTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlersTestSuite) TestMembers_CreateListDelete() {
	ali := s.createMember("Ali")
	s.NotEmpty(ali.ID)
	s.Equal("Ali", ali.Name)

	w := s.do(http.MethodGet, "/api/v1/members", nil)
	s.Equal(http.StatusOK, w.Code)
	var members []dto.MemberResponse
	s.decode(w, &members)
	s.Len(members, 1)

	w = s.do(http.MethodDelete, "/api/v1/members/"+ali.ID, nil)
	s.Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, "/api/v1/members", nil)
	s.decode(w, &members)
	s.Empty(members)
}

func (s *HandlersTestSuite) TestMembers_CreateRequiresName() {
	w := s.do(http.MethodPost, "/api/v1/members", map[string]any{})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestAssets_Lifecycle() {
	ali := s.createMember("Ali")

	w := s.do(http.MethodPost, "/api/v1/assets", map[string]any{
		"memberId": ali.ID,
		"type":     "cash",
		"title":    "Wallet",
		"amount":   1500000,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var asset dto.AssetResponse
	s.decode(w, &asset)
	s.Equal("Ali", asset.MemberName)
	s.Equal("1,500,000 Toman", asset.AmountFormatted)

	w = s.do(http.MethodPatch, "/api/v1/assets/"+asset.ID, map[string]any{"amount": 0})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.decode(w, &asset)
	s.Equal(int64(0), asset.Amount)

	w = s.do(http.MethodPatch, "/api/v1/assets/missing", map[string]any{"amount": 10})
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/v1/assets", nil)
	var assets []dto.AssetResponse
	s.decode(w, &assets)
	s.Len(assets, 1)

	w = s.do(http.MethodDelete, "/api/v1/assets/"+asset.ID, nil)
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *HandlersTestSuite) TestAssets_UnknownMemberRejected() {
	w := s.do(http.MethodPost, "/api/v1/assets", map[string]any{
		"memberId": "nobody",
		"type":     "cash",
		"title":    "Wallet",
		"amount":   10,
	})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestAssets_InvalidTypeRejected() {
	ali := s.createMember("Ali")
	w := s.do(http.MethodPost, "/api/v1/assets", map[string]any{
		"memberId": ali.ID,
		"type":     "crypto",
		"title":    "Coins",
		"amount":   10,
	})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestLiabilities_ScheduleAndInstallments() {
	ali := s.createMember("Ali")
	l := s.createLiability(ali.ID, 1000, 3)

	s.Require().Len(l.Installments, 3)
	s.Equal(int64(333), l.Installments[0].Amount)
	s.Equal(int64(334), l.Installments[2].Amount)
	s.Equal("2024-03-15", l.Installments[2].DueDate.String())
	s.Equal(3, l.Progress.TotalCount)

	first := l.Installments[0].ID
	w := s.do(http.MethodPost, "/api/v1/liabilities/"+l.ID+"/installments/"+first+"/toggle", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.decode(w, &l)
	s.True(l.Installments[0].IsPaid)
	s.Equal(1, l.Progress.PaidCount)
	s.Equal(int64(1000), l.TotalAmount)

	w = s.do(http.MethodPut, "/api/v1/liabilities/"+l.ID+"/installments/"+first, map[string]any{"amountText": "1,333"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.decode(w, &l)
	s.Equal(int64(1333), l.Installments[0].Amount)
	s.Equal(int64(2000), l.TotalAmount)

	w = s.do(http.MethodPut, "/api/v1/liabilities/"+l.ID+"/installments/"+first, map[string]any{})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/v1/liabilities/"+l.ID, nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodPost, "/api/v1/liabilities/"+l.ID+"/installments/missing/toggle", nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodDelete, "/api/v1/liabilities/"+l.ID, nil)
	s.Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, "/api/v1/liabilities/"+l.ID, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestLiabilities_InvalidStartDate() {
	ali := s.createMember("Ali")
	w := s.do(http.MethodPost, "/api/v1/liabilities", map[string]any{
		"memberId":      ali.ID,
		"title":         "Loan",
		"totalAmount":   1000,
		"repaymentType": "installment",
		"startDate":     "15/01/2024",
	})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestIncomes_Lifecycle() {
	ali := s.createMember("Ali")

	w := s.do(http.MethodPost, "/api/v1/incomes", map[string]any{
		"memberId":    ali.ID,
		"source":      "Salary",
		"amount":      2000,
		"isRecurring": true,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var income dto.IncomeResponse
	s.decode(w, &income)
	s.Equal("Ali", income.MemberName)

	w = s.do(http.MethodGet, "/api/v1/incomes", nil)
	var incomes []dto.IncomeResponse
	s.decode(w, &incomes)
	s.Len(incomes, 1)

	w = s.do(http.MethodDelete, "/api/v1/incomes/"+income.ID, nil)
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *HandlersTestSuite) TestReports() {
	ali := s.createMember("Ali")
	s.do(http.MethodPost, "/api/v1/assets", map[string]any{"memberId": ali.ID, "type": "cash", "title": "Wallet", "amount": 5000})
	s.do(http.MethodPost, "/api/v1/incomes", map[string]any{"memberId": ali.ID, "source": "Salary", "amount": 2000, "isRecurring": true})
	s.createLiability(ali.ID, 1000, 3)

	w := s.do(http.MethodGet, "/api/v1/reports/summary", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var summary dto.SummaryResponse
	s.decode(w, &summary)
	s.Equal(int64(5000), summary.TotalAssets)
	s.Equal(int64(1000), summary.OutstandingLiabilities)
	s.Equal(int64(4000), summary.NetWorth)

	w = s.do(http.MethodGet, "/api/v1/reports/members", nil)
	var members []dto.MemberSummaryResponse
	s.decode(w, &members)
	s.Require().Len(members, 1)
	s.Equal(int64(2000), members[0].MonthlyIncome)

	w = s.do(http.MethodGet, "/api/v1/reports/repayments", nil)
	var repayments []dto.MonthlyRepaymentResponse
	s.decode(w, &repayments)
	s.Require().Len(repayments, 3)
	s.Equal("2024-01", repayments[0].MonthKey)
	s.NotEmpty(repayments[0].MonthLabel)

	w = s.do(http.MethodGet, "/api/v1/reports/forecast", nil)
	var forecast []dto.ForecastMonthResponse
	s.decode(w, &forecast)
	s.Len(forecast, 12)
	s.Equal(time.Now().Format("2006-01"), forecast[0].MonthKey)

	// All three installments lie in the past, so they are overdue.
	w = s.do(http.MethodGet, "/api/v1/reports/reminders?days=3", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var due []dto.DueInstallmentResponse
	s.decode(w, &due)
	s.Len(due, 3)
	s.True(due[0].Overdue)

	w = s.do(http.MethodGet, "/api/v1/reports/reminders?days=-1", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestDocument() {
	s.createMember("Ali")

	w := s.do(http.MethodGet, "/api/v1/document", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.True(strings.Contains(w.Body.String(), `"members":[{"id":`))
	s.Contains(w.Body.String(), `"liabilities":[]`)
}

func TestHandlers_NotReadyBeforeInit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, _ := newRouter(testConfig())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/members", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}
