package responses

import (
	accountmodels "cobalt/internal/account/models"
	accountresponses "cobalt/internal/account/responses"
	"cobalt/internal/format"
	"cobalt/internal/l10n"
	"cobalt/internal/platform/config"
	"cobalt/internal/screening/models"
	dErrors "cobalt/pkg/domain-errors"
)

var msgVersionNumber = &l10n.Message{
	ID:    "ScreeningVersionNumber",
	Other: "Version {{.VersionNumber}}",
}

type ScreeningFlowVersionResponse struct {
	ScreeningFlowVersionID   string                                    `json:"screeningFlowVersionId"`
	ScreeningFlowID          string                                    `json:"screeningFlowId"`
	InitialScreeningID       string                                    `json:"initialScreeningId"`
	ScreeningFlowSkipTypeID  string                                    `json:"screeningFlowSkipTypeId"`
	PhoneNumberRequired      bool                                      `json:"phoneNumberRequired"`
	Skippable                bool                                      `json:"skippable"`
	VersionNumber            int                                       `json:"versionNumber"`
	VersionNumberDescription string                                    `json:"versionNumberDescription"`
	RequiredAccountSources   []*accountresponses.AccountSourceResponse `json:"requiredAccountSources"`
}

// NewScreeningFlowVersionResponse renders a flow version. requiredSources are the
// institution's configuration of the version's required account sources, in order; their
// SSO URLs are picked for env and carry queryParams.
func NewScreeningFlowVersionResponse(f *format.Formatter, version *models.ScreeningFlowVersion, requiredSources []*accountmodels.AccountSource, env config.Environment, queryParams map[string]string) (*ScreeningFlowVersionResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if version == nil {
		return nil, dErrors.Required("screening flow version")
	}

	r := &ScreeningFlowVersionResponse{
		ScreeningFlowVersionID:  version.ID.String(),
		ScreeningFlowID:         version.ScreeningFlowID.String(),
		InitialScreeningID:      version.InitialScreeningID.String(),
		ScreeningFlowSkipTypeID: version.SkipTypeID,
		PhoneNumberRequired:     version.PhoneNumberRequired,
		Skippable:               version.Skippable,
		VersionNumber:           version.VersionNumber,
		VersionNumberDescription: f.T(msgVersionNumber, map[string]any{
			"VersionNumber": f.FormatInteger(int64(version.VersionNumber)),
		}),
		RequiredAccountSources: make([]*accountresponses.AccountSourceResponse, 0, len(requiredSources)),
	}
	for _, source := range requiredSources {
		s, err := accountresponses.NewAccountSourceResponse(source, env, queryParams)
		if err != nil {
			return nil, err
		}
		r.RequiredAccountSources = append(r.RequiredAccountSources, s)
	}
	return r, nil
}
