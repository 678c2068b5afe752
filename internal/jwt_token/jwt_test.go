package jwttoken

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/requestcontext"
)

var (
	accountID = id.AccountID(uuid.New())
	service   = NewJWTService("test-signing-key", "cobalt-test", time.Hour)
)

func Test_IssueAndValidate(t *testing.T) {
	token, err := service.Issue(context.Background(), accountID, id.RoleIDMHIC, "cobalt")
	require.NoError(t, err)

	viewer, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, viewer.AccountID)
	assert.Equal(t, id.RoleIDMHIC, viewer.RoleID)
	assert.Equal(t, id.InstitutionID("COBALT"), viewer.InstitutionID)
}

func Test_IssueRejectsBadViewer(t *testing.T) {
	_, err := service.Issue(context.Background(), id.AccountID{}, id.RoleIDPatient, "")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	_, err = service.Issue(context.Background(), accountID, id.RoleID("ROOT"), "")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func Test_ValidateToken_Expired(t *testing.T) {
	ctx := requestcontext.WithTime(context.Background(), time.Now().Add(-2*time.Hour))
	token, err := service.Issue(ctx, accountID, id.RoleIDPatient, "")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	require.ErrorContains(t, err, "token expired")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func Test_ValidateToken_Garbage(t *testing.T) {
	_, err := service.ValidateToken("not-a-token")
	require.ErrorContains(t, err, "invalid token")
}

func Test_ValidateToken_WrongIssuer(t *testing.T) {
	other := NewJWTService("test-signing-key", "someone-else", time.Hour)
	token, err := other.Issue(context.Background(), accountID, id.RoleIDPatient, "")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func Test_ValidateToken_WrongKey(t *testing.T) {
	other := NewJWTService("another-key", "cobalt-test", time.Hour)
	token, err := other.Issue(context.Background(), accountID, id.RoleIDPatient, "")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func Test_ValidateToken_RejectsAlgorithmConfusion(t *testing.T) {
	claims := ViewerClaims{
		AccountID: accountID.String(),
		RoleID:    id.RoleIDPatient.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "cobalt-test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func Test_ValidateToken_RejectsUnknownRole(t *testing.T) {
	claims := ViewerClaims{
		AccountID: accountID.String(),
		RoleID:    "ROOT",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "cobalt-test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	require.ErrorContains(t, err, "invalid role_id claim")
}

func Test_SigningToken(t *testing.T) {
	subjects := map[string]string{"screeningFlowVersionId": uuid.NewString()}
	token, err := service.IssueSigningToken(context.Background(), accountID, 30*time.Minute, subjects, "UPGRADE_ACCOUNT", "CREATE_SCREENING_SESSION")
	require.NoError(t, err)

	claims, err := service.ParseSigningToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID.String(), claims.Subject)
	assert.Equal(t, []string{"UPGRADE_ACCOUNT", "CREATE_SCREENING_SESSION"}, claims.Actions)
	assert.Equal(t, subjects, claims.Subjects)

	_, err = service.ValidateToken(token)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized), "signing tokens do not identify a viewer")
}

func Test_SigningToken_Rejections(t *testing.T) {
	_, err := service.IssueSigningToken(context.Background(), accountID, time.Minute, nil)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	past := requestcontext.WithTime(context.Background(), time.Now().Add(-time.Hour))
	token, err := service.IssueSigningToken(past, accountID, time.Minute, nil, "UPGRADE_ACCOUNT")
	require.NoError(t, err)
	_, err = service.ParseSigningToken(token)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
