// Package jwttoken issues and validates the bearer tokens that identify the viewer.
package jwttoken

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/platform/middleware/auth"
	"cobalt/pkg/requestcontext"
)

// ViewerClaims carries the viewer's identity.
type ViewerClaims struct {
	AccountID     string `json:"account_id"`
	RoleID        string `json:"role_id"`
	InstitutionID string `json:"institution_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	signingKey []byte
	issuer     string
	tokenTTL   time.Duration
}

func NewJWTService(signingKey, issuer string, tokenTTL time.Duration) *JWTService {
	return &JWTService{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		tokenTTL:   tokenTTL,
	}
}

// Issue signs a token for the given viewer. Used by local tooling and tests.
func (s *JWTService) Issue(ctx context.Context, accountID id.AccountID, roleID id.RoleID, institutionID id.InstitutionID) (string, error) {
	if accountID.IsNil() {
		return "", dErrors.Required("account ID")
	}
	if !roleID.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown role "+roleID.String())
	}
	now := requestcontext.Now(ctx)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ViewerClaims{
		AccountID:     accountID.String(),
		RoleID:        roleID.String(),
		InstitutionID: institutionID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
		},
	})
	return token.SignedString(s.signingKey)
}

// Parse validates signature, algorithm, expiry and issuer and returns the raw claims.
func (s *JWTService) Parse(tokenString string) (*ViewerClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &ViewerClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "token expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*ViewerClaims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	return claims, nil
}

// ValidateToken satisfies auth.TokenValidator.
func (s *JWTService) ValidateToken(tokenString string) (*auth.Viewer, error) {
	claims, err := s.Parse(tokenString)
	if err != nil {
		return nil, err
	}
	accountID, err := id.ParseAccountID(claims.AccountID)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid account_id claim")
	}
	roleID := id.RoleID(claims.RoleID)
	if !roleID.IsValid() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid role_id claim")
	}
	var institutionID id.InstitutionID
	if claims.InstitutionID != "" {
		institutionID, err = id.ParseInstitutionID(claims.InstitutionID)
		if err != nil {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid institution_id claim")
		}
	}
	return &auth.Viewer{
		AccountID:     accountID,
		RoleID:        roleID,
		InstitutionID: institutionID,
	}, nil
}

// SigningClaims authorize actions to run on the account's behalf once it returns from SSO,
// such as starting a screening session.
type SigningClaims struct {
	Actions  []string          `json:"actions"`
	Subjects map[string]string `json:"subjects,omitempty"`
	jwt.RegisteredClaims
}

// IssueSigningToken signs a short-lived token binding actions and their subjects to an
// account.
func (s *JWTService) IssueSigningToken(ctx context.Context, accountID id.AccountID, ttl time.Duration, subjects map[string]string, actions ...string) (string, error) {
	if accountID.IsNil() {
		return "", dErrors.Required("account ID")
	}
	if len(actions) == 0 {
		return "", dErrors.Required("signing token actions")
	}
	now := requestcontext.Now(ctx)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SigningClaims{
		Actions:  actions,
		Subjects: subjects,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
		},
	})
	return token.SignedString(s.signingKey)
}

// ParseSigningToken validates a token from IssueSigningToken.
func (s *JWTService) ParseSigningToken(tokenString string) (*SigningClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &SigningClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "signing token expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid signing token")
	}
	claims, ok := parsed.Claims.(*SigningClaims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid signing token claims")
	}
	return claims, nil
}
