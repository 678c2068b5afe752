// Package responses projects screening flows, sessions and questions into API views.
package responses

import (
	"time"

	"cobalt/internal/format"
	"cobalt/internal/screening/models"
	dErrors "cobalt/pkg/domain-errors"
)

type ScreeningSessionResponse struct {
	ScreeningSessionID           string     `json:"screeningSessionId"`
	ScreeningFlowVersionID       string     `json:"screeningFlowVersionId"`
	CreatedByAccountID           string     `json:"createdByAccountId"`
	TargetAccountID              string     `json:"targetAccountId"`
	Completed                    bool       `json:"completed"`
	CompletedAt                  *time.Time `json:"completedAt,omitempty"`
	CompletedAtDescription       *string    `json:"completedAtDescription,omitempty"`
	Skipped                      bool       `json:"skipped"`
	SkippedAt                    *time.Time `json:"skippedAt,omitempty"`
	SkippedAtDescription         *string    `json:"skippedAtDescription,omitempty"`
	CrisisIndicated              bool       `json:"crisisIndicated"`
	CrisisIndicatedAt            *time.Time `json:"crisisIndicatedAt,omitempty"`
	CrisisIndicatedAtDescription *string    `json:"crisisIndicatedAtDescription,omitempty"`
	Created                      time.Time  `json:"created"`
	CreatedDescription           string     `json:"createdDescription"`
}

func NewScreeningSessionResponse(f *format.Formatter, session *models.ScreeningSession) (*ScreeningSessionResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if session == nil {
		return nil, dErrors.Required("screening session")
	}
	return &ScreeningSessionResponse{
		ScreeningSessionID:           session.ID.String(),
		ScreeningFlowVersionID:       session.ScreeningFlowVersionID.String(),
		CreatedByAccountID:           session.CreatedByAccountID.String(),
		TargetAccountID:              session.TargetAccountID.String(),
		Completed:                    session.Completed,
		CompletedAt:                  session.CompletedAt,
		CompletedAtDescription:       timestamp(f, session.CompletedAt),
		Skipped:                      session.Skipped,
		SkippedAt:                    session.SkippedAt,
		SkippedAtDescription:         timestamp(f, session.SkippedAt),
		CrisisIndicated:              session.CrisisIndicated,
		CrisisIndicatedAt:            session.CrisisIndicatedAt,
		CrisisIndicatedAtDescription: timestamp(f, session.CrisisIndicatedAt),
		Created:                      session.Created,
		CreatedDescription:           f.FormatTimestamp(session.Created, format.StyleDefault, format.StyleDefault),
	}, nil
}

func timestamp(f *format.Formatter, t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := f.FormatTimestamp(*t, format.StyleDefault, format.StyleDefault)
	return &s
}
