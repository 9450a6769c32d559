package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/handlers"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/SscSPs/bizledger/internal/platform/config"
	"github.com/SscSPs/bizledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, session domain.Session, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, session, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, session domain.Session, params dto.ListAccountsParams) ([]domain.Account, error) {
	args := m.Called(ctx, session, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, session domain.Session, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) GetJournalEntryByID(ctx context.Context, session domain.Session, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, session, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListJournalEntries(ctx context.Context, session domain.Session, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	args := m.Called(ctx, session, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalEntriesResponse), args.Error(1)
}

func (m *MockJournalService) CreateJournalEntry(ctx context.Context, session domain.Session, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ValidateJournalEntry(ctx context.Context, req dto.ValidateJournalEntryRequest) dto.ValidateJournalEntryResponse {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.ValidateJournalEntryResponse)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) IncomeStatement(ctx context.Context, session domain.Session, params dto.IncomeStatementParams) (*domain.IncomeStatementReport, error) {
	args := m.Called(ctx, session, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatementReport), args.Error(1)
}

func (m *MockReportingService) MonthlyTrend(ctx context.Context, session domain.Session, params dto.MonthlyTrendParams) (*domain.MonthlyTrendReport, error) {
	args := m.Called(ctx, session, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyTrendReport), args.Error(1)
}

func (m *MockReportingService) ProjectReport(ctx context.Context, session domain.Session, projectID string, params dto.ProjectReportParams) (*domain.ProjectReport, error) {
	args := m.Called(ctx, session, projectID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectReport), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *MockAuthService) EnsureAdmin(ctx context.Context, email, name, password string) error {
	return m.Called(ctx, email, name, password).Error(0)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// testServer wires the real router, middleware and validators to mocked services.
type testServer struct {
	router    *gin.Engine
	account   *MockAccountService
	journal   *MockJournalService
	reporting *MockReportingService
	auth      *MockAuthService
}

func newTestServer(t *testing.T, overrides ...func(*config.Config)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		IsProduction:       true,
		JWTSecret:          testJWTSecret,
		RateLimit:          "1000-M",
		LoginRateLimit:     "100-M",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	}
	for _, o := range overrides {
		o(cfg)
	}

	srv := &testServer{
		router:    gin.New(),
		account:   new(MockAccountService),
		journal:   new(MockJournalService),
		reporting: new(MockReportingService),
		auth:      new(MockAuthService),
	}
	srv.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	err := handlers.RegisterRoutes(srv.router, cfg, &portssvc.ServiceContainer{
		Account:   srv.account,
		Journal:   srv.journal,
		Reporting: srv.reporting,
		Auth:      srv.auth,
	})
	require.NoError(t, err)
	return srv
}

func (s *testServer) token(t *testing.T, userID string, role domain.Role) string {
	t.Helper()
	token, _, err := utils.GenerateJWT(userID, role, testJWTSecret, time.Hour, "bizledger-test")
	require.NoError(t, err)
	return token
}

func (s *testServer) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func sessionOf(userID string, role domain.Role) domain.Session {
	return domain.Session{UserID: userID, Role: role}
}
