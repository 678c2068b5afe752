package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"

	"cobalt/internal/platform/config"
	"cobalt/internal/seeder"
	id "cobalt/pkg/domain"
)

type WiringSuite struct {
	suite.Suite
	app *app
}

func TestWiringSuite(t *testing.T) {
	suite.Run(t, new(WiringSuite))
}

func testConfig() *config.Config {
	ny, _ := time.LoadLocation("America/New_York")
	return &config.Config{
		Environment: config.EnvironmentLocal,
		Server:      config.Server{RequestTimeout: 5 * time.Second},
		Kafka:       config.Kafka{AuditTopic: "cobalt.audit.test"},
		Uploads: config.Uploads{
			Bucket:            "cobalt-test-uploads",
			Region:            "us-east-1",
			AccessKeyID:       "test",
			SecretAccessKey:   "test",
			ExpirationMinutes: 15,
		},
		Auth: config.Auth{JWTSigningKey: "test-signing-key", Issuer: "cobalt"},
		Locale: config.Locale{
			Default:   language.AmericanEnglish,
			Supported: []language.Tag{language.Spanish},
			TimeZone:  ny,
		},
	}
}

func (s *WiringSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := buildApp(context.Background(), testConfig(), &infra{}, prometheus.NewRegistry(), logger)
	s.Require().NoError(err)
	s.app = a
}

func (s *WiringSuite) TearDownTest() {
	s.app.publisher.Close()
}

func (s *WiringSuite) get(target, token string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.app.router.ServeHTTP(rec, req)
	var body map[string]any
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	}
	return rec, body
}

func (s *WiringSuite) token(accountID id.AccountID, role id.RoleID) string {
	token, err := s.app.tokens.Issue(context.Background(), accountID, role, seeder.DemoInstitutionID)
	s.Require().NoError(err)
	return token
}

func (s *WiringSuite) TestLiveness() {
	rec, body := s.get("/health/live", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("alive", body["status"])
}

func (s *WiringSuite) TestSeededInstitutionIsServed() {
	rec, body := s.get("/institutions/COBALT", "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	institution := body["institution"].(map[string]any)
	s.Equal("COBALT", institution["institutionId"])
	s.NotEmpty(rec.Header().Get("X-Request-ID"))
}

func (s *WiringSuite) TestAccountRequiresMatchingViewer() {
	target := "/accounts/" + seeder.DemoPatientID.String()

	s.Run("own account", func() {
		rec, body := s.get(target, s.token(seeder.DemoPatientID, id.RoleIDPatient))
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		s.Equal(seeder.DemoPatientID.String(), body["account"].(map[string]any)["accountId"])
	})

	s.Run("staff in the same institution", func() {
		rec, _ := s.get(target, s.token(seeder.DemoMHICID, id.RoleIDMHIC))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("invalid token", func() {
		rec, body := s.get(target, "not-a-jwt")
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("unauthorized", body["error"])
	})
}

func (s *WiringSuite) TestSeededPatientOrderVisibleToStaff() {
	rec, _ := s.get("/patient-orders/"+seeder.DemoPatientOrderID.String(), s.token(seeder.DemoMHICID, id.RoleIDMHIC))
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (s *WiringSuite) TestMetricsEndpoint() {
	rec, _ := s.get("/metrics", "")
	s.Equal(http.StatusOK, rec.Code)
}
