package responses

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"cobalt/internal/institution/models"
	dErrors "cobalt/pkg/domain-errors"
)

// Policies are safe for concurrent use once built.
var (
	stripPolicy = bluemonday.StrictPolicy()
	htmlPolicy  = bluemonday.UGCPolicy()
)

type AlertResponse struct {
	AlertID       string             `json:"alertId"`
	AlertTypeID   models.AlertTypeID `json:"alertTypeId"`
	Title         string             `json:"title"`
	Message       string             `json:"message"`
	MessageAsHTML string             `json:"messageAsHtml"`
	Dismissible   bool               `json:"dismissible"`
}

// NewAlertResponse renders the stored HTML message twice: sanitized for clients that
// render markup, and stripped to text for those that do not.
func NewAlertResponse(alert *models.Alert) (*AlertResponse, error) {
	if alert == nil {
		return nil, dErrors.Required("alert")
	}
	return &AlertResponse{
		AlertID:       alert.ID.String(),
		AlertTypeID:   alert.AlertTypeID,
		Title:         alert.Title,
		Message:       plainText(alert.Message),
		MessageAsHTML: htmlPolicy.Sanitize(alert.Message),
		Dismissible:   alert.Dismissible,
	}, nil
}

func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(s)))
}
