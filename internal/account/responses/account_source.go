package responses

import (
	"net/url"
	"strings"

	"cobalt/internal/account/models"
	"cobalt/internal/platform/config"
	dErrors "cobalt/pkg/domain-errors"
)

// AccountSourceResponse is a sign-in option shown on the login screen.
type AccountSourceResponse struct {
	AccountSourceID             string  `json:"accountSourceId"`
	Description                 string  `json:"description"`
	ShortDescription            *string `json:"shortDescription,omitempty"`
	AuthenticationDescription   string  `json:"authenticationDescription"`
	AccountSourceDisplayStyleID string  `json:"accountSourceDisplayStyleId"`
	SsoURL                      *string `json:"ssoUrl,omitempty"`
	SupplementMessage           *string `json:"supplementMessage,omitempty"`
	SupplementMessageStyle      *string `json:"supplementMessageStyle,omitempty"`
	Visible                     bool    `json:"visible"`
}

// NewAccountSourceResponse picks the SSO URL configured for env. Query parameters are
// appended in key order, and only when a URL exists.
func NewAccountSourceResponse(source *models.AccountSource, env config.Environment, queryParams map[string]string) (*AccountSourceResponse, error) {
	if source == nil {
		return nil, dErrors.Required("account source")
	}
	return &AccountSourceResponse{
		AccountSourceID:             source.ID.String(),
		Description:                 source.Description,
		ShortDescription:            source.ShortDescription,
		AuthenticationDescription:   source.AuthenticationDescription,
		AccountSourceDisplayStyleID: source.DisplayStyleID,
		SsoURL:                      ssoURL(source, env, queryParams),
		SupplementMessage:           source.SupplementMessage,
		SupplementMessageStyle:      source.SupplementMessageStyle,
		Visible:                     source.Visible,
	}, nil
}

func ssoURL(source *models.AccountSource, env config.Environment, queryParams map[string]string) *string {
	var base *string
	switch env {
	case config.EnvironmentProd:
		base = source.ProdSsoURL
	case config.EnvironmentDev:
		base = source.DevSsoURL
	case config.EnvironmentLocal:
		base = source.LocalSsoURL
	}
	if base == nil || *base == "" {
		return nil
	}
	if len(queryParams) == 0 {
		plain := *base
		return &plain
	}

	values := url.Values{}
	for k, v := range queryParams {
		values.Set(k, v)
	}
	separator := "?"
	if strings.Contains(*base, "?") {
		separator = "&"
	}
	if strings.HasSuffix(*base, "?") || strings.HasSuffix(*base, "&") {
		separator = ""
	}
	return ptr(*base + separator + values.Encode())
}
