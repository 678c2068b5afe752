package responses

import (
	"time"

	"cobalt/internal/format"
	"cobalt/internal/scheduling/models"
	dErrors "cobalt/pkg/domain-errors"
)

type GroupSessionReservationResponse struct {
	GroupSessionReservationID string    `json:"groupSessionReservationId"`
	GroupSessionID            string    `json:"groupSessionId"`
	AccountID                 string    `json:"accountId"`
	Name                      *string   `json:"name,omitempty"`
	EmailAddress              *string   `json:"emailAddress,omitempty"`
	PhoneNumber               *string   `json:"phoneNumber,omitempty"`
	PhoneNumberDescription    *string   `json:"phoneNumberDescription,omitempty"`
	Canceled                  bool      `json:"canceled"`
	Created                   time.Time `json:"created"`
	CreatedDescription        string    `json:"createdDescription"`
	LastUpdated               time.Time `json:"lastUpdated"`
	LastUpdatedDescription    string    `json:"lastUpdatedDescription"`
}

func NewGroupSessionReservationResponse(f *format.Formatter, reservation *models.GroupSessionReservation) (*GroupSessionReservationResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if reservation == nil {
		return nil, dErrors.Required("group session reservation")
	}

	r := &GroupSessionReservationResponse{
		GroupSessionReservationID: reservation.ID.String(),
		GroupSessionID:            reservation.GroupSessionID.String(),
		AccountID:                 reservation.AccountID.String(),
		EmailAddress:              reservation.EmailAddress,
		PhoneNumber:               reservation.PhoneNumber,
		PhoneNumberDescription:    f.FormatOptionalPhoneNumber(reservation.PhoneNumber),
		Canceled:                  reservation.Canceled,
		Created:                   reservation.Created,
		CreatedDescription:        f.FormatTimestamp(reservation.Created, format.StyleDefault, format.StyleDefault),
		LastUpdated:               reservation.LastUpdated,
		LastUpdatedDescription:    f.FormatTimestamp(reservation.LastUpdated, format.StyleDefault, format.StyleDefault),
	}
	if name := format.DisplayName(deref(reservation.FirstName), "", deref(reservation.LastName)); name != "" {
		r.Name = &name
	}
	return r, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
