package models

import (
	"time"

	id "cobalt/pkg/domain"
)

// AlertTypeID classifies a banner alert.
type AlertTypeID string

const (
	AlertTypeInformation AlertTypeID = "INFORMATION"
	AlertTypeWarning     AlertTypeID = "WARNING"
	AlertTypeError       AlertTypeID = "ERROR"
)

// Severity orders alert types; higher is shown first.
func (t AlertTypeID) Severity() int {
	switch t {
	case AlertTypeError:
		return 3
	case AlertTypeWarning:
		return 2
	case AlertTypeInformation:
		return 1
	}
	return 0
}

// Alert is a banner shown to an institution's users. Message may contain HTML.
type Alert struct {
	ID          id.AlertID  `json:"id"`
	AlertTypeID AlertTypeID `json:"alert_type_id"`
	Title       string      `json:"title"`
	Message     string      `json:"message"`
	Dismissible bool        `json:"dismissible"`
	Created     time.Time   `json:"created"`
	LastUpdated time.Time   `json:"last_updated"`
}

// LessAlert orders alerts by severity descending, then title, then message.
func LessAlert(a, b *Alert) bool {
	if sa, sb := a.AlertTypeID.Severity(), b.AlertTypeID.Severity(); sa != sb {
		return sa > sb
	}
	if a.Title != b.Title {
		return a.Title < b.Title
	}
	return a.Message < b.Message
}
