package responses

import (
	"time"

	accountresponses "cobalt/internal/account/responses"
	"cobalt/internal/format"
	"cobalt/internal/scheduling/models"
	dErrors "cobalt/pkg/domain-errors"
)

type FollowupResponse struct {
	FollowupID              string                            `json:"followupId"`
	AccountID               string                            `json:"accountId"`
	ProviderID              string                            `json:"providerId"`
	CreatedByAccountID      string                            `json:"createdByAccountId"`
	FollowupDate            string                            `json:"followupDate"`
	FollowupDateDescription string                            `json:"followupDateDescription"`
	Comment                 *string                           `json:"comment,omitempty"`
	Canceled                bool                              `json:"canceled"`
	CanceledAt              *time.Time                        `json:"canceledAt,omitempty"`
	CanceledAtDescription   *string                           `json:"canceledAtDescription,omitempty"`
	Created                 time.Time                         `json:"created"`
	CreatedDescription      string                            `json:"createdDescription"`
	LastUpdated             time.Time                         `json:"lastUpdated"`
	LastUpdatedDescription  string                            `json:"lastUpdatedDescription"`
	Account                 *accountresponses.AccountResponse `json:"account,omitempty"`
	Provider                *ProviderResponse                 `json:"provider,omitempty"`
}

// NewFollowupResponse renders a followup. account and provider are embedded when given.
func NewFollowupResponse(f *format.Formatter, followup *models.Followup, account *accountresponses.AccountResponse, provider *models.Provider) (*FollowupResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if followup == nil {
		return nil, dErrors.Required("followup")
	}

	r := &FollowupResponse{
		FollowupID:              followup.ID.String(),
		AccountID:               followup.AccountID.String(),
		ProviderID:              followup.ProviderID.String(),
		CreatedByAccountID:      followup.CreatedByAccountID.String(),
		FollowupDate:            followup.FollowupDate.Format(isoDate),
		FollowupDateDescription: f.FormatDate(followup.FollowupDate, format.StyleMedium),
		Comment:                 followup.Comment,
		Canceled:                followup.Canceled,
		CanceledAt:              followup.CanceledAt,
		Created:                 followup.Created,
		CreatedDescription:      f.FormatTimestamp(followup.Created, format.StyleDefault, format.StyleDefault),
		LastUpdated:             followup.LastUpdated,
		LastUpdatedDescription:  f.FormatTimestamp(followup.LastUpdated, format.StyleDefault, format.StyleDefault),
		Account:                 account,
	}
	if followup.CanceledAt != nil {
		d := f.FormatTimestamp(*followup.CanceledAt, format.StyleDefault, format.StyleDefault)
		r.CanceledAtDescription = &d
	}
	if provider != nil {
		p, err := NewProviderResponse(f, provider, nil)
		if err != nil {
			return nil, err
		}
		r.Provider = p
	}
	return r, nil
}
