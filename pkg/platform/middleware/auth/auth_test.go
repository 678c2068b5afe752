package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	id "cobalt/pkg/domain"
	"cobalt/pkg/requestcontext"
)

type MockTokenValidator struct {
	mock.Mock
}

func (m *MockTokenValidator) ValidateToken(tokenString string) (*Viewer, error) {
	args := m.Called(tokenString)
	if v := args.Get(0); v != nil {
		return v.(*Viewer), args.Error(1)
	}
	return nil, args.Error(1)
}

type recordingHandler struct {
	called  bool
	context context.Context
}

func (h *recordingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.context = r.Context()
	w.WriteHeader(http.StatusOK)
}

type AuthMiddlewareSuite struct {
	suite.Suite
	validator *MockTokenValidator
	logger    *slog.Logger
	next      *recordingHandler
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.validator = new(MockTokenValidator)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.next = &recordingHandler{}
}

func (s *AuthMiddlewareSuite) TearDownTest() {
	s.validator.AssertExpectations(s.T())
}

func (s *AuthMiddlewareSuite) serve(h http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/accounts/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareSuite) TestValidTokenPopulatesViewer() {
	viewer := &Viewer{
		AccountID:     id.AccountID(uuid.New()),
		RoleID:        id.RoleIDMHIC,
		InstitutionID: "COBALT",
	}
	s.validator.On("ValidateToken", "good").Return(viewer, nil)

	w := s.serve(Authenticate(s.validator, s.logger)(s.next), "Bearer good")

	s.Require().True(s.next.called)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(viewer.AccountID, requestcontext.AccountID(s.next.context))
	s.Equal(id.RoleIDMHIC, requestcontext.RoleID(s.next.context))
	s.Equal(id.InstitutionID("COBALT"), requestcontext.InstitutionID(s.next.context))
}

func (s *AuthMiddlewareSuite) TestAnonymousRequestPassesThrough() {
	w := s.serve(Authenticate(s.validator, s.logger)(s.next), "")

	s.Require().True(s.next.called)
	s.Equal(http.StatusOK, w.Code)
	s.True(requestcontext.AccountID(s.next.context).IsNil())
	s.Equal(id.RoleIDPatient, requestcontext.RoleID(s.next.context))
}

func (s *AuthMiddlewareSuite) TestMalformedHeaderIsRejected() {
	w := s.serve(Authenticate(s.validator, s.logger)(s.next), "Basic dXNlcjpwYXNz")

	s.False(s.next.called)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"error":"unauthorized","error_description":"Missing or invalid Authorization header"}`, w.Body.String())
}

func (s *AuthMiddlewareSuite) TestInvalidTokenIsRejected() {
	s.validator.On("ValidateToken", "bad").Return(nil, errors.New("invalid token"))

	w := s.serve(Authenticate(s.validator, s.logger)(s.next), "Bearer bad")

	s.False(s.next.called)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Contains(w.Body.String(), "Invalid or expired token")
}

func (s *AuthMiddlewareSuite) TestRequireViewer() {
	chain := Authenticate(s.validator, s.logger)(RequireViewer(s.logger)(s.next))

	w := s.serve(chain, "")
	s.False(s.next.called)
	s.Equal(http.StatusUnauthorized, w.Code)

	s.validator.On("ValidateToken", "good").Return(&Viewer{
		AccountID: id.AccountID(uuid.New()),
		RoleID:    id.RoleIDPatient,
	}, nil)
	w = s.serve(chain, "Bearer good")
	s.True(s.next.called)
	s.Equal(http.StatusOK, w.Code)
}
