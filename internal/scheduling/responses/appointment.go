package responses

import (
	"time"

	accountresponses "cobalt/internal/account/responses"
	"cobalt/internal/format"
	"cobalt/internal/l10n"
	"cobalt/internal/scheduling/models"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/supplement"
)

// AppointmentSupplement selects which related entities an AppointmentResponse embeds.
type AppointmentSupplement string

const (
	AppointmentSupplementAll             AppointmentSupplement = "ALL"
	AppointmentSupplementProvider        AppointmentSupplement = "PROVIDER"
	AppointmentSupplementAccount         AppointmentSupplement = "ACCOUNT"
	AppointmentSupplementAppointmentType AppointmentSupplement = "APPOINTMENT_TYPE"
)

var AppointmentSupplements = []AppointmentSupplement{
	AppointmentSupplementAll,
	AppointmentSupplementProvider,
	AppointmentSupplementAccount,
	AppointmentSupplementAppointmentType,
}

const (
	isoDate      = "2006-01-02"
	isoLocalTime = "15:04"
)

var (
	msgSubtitleOneOnOne = &l10n.Message{
		ID:    "AppointmentSubtitleOneOnOne",
		Other: "1:1 Support",
	}
	msgSubtitleGroup = &l10n.Message{
		ID:    "AppointmentSubtitleGroup",
		Other: "In the Studio",
	}
	msgDescriptionAppointment = &l10n.Message{
		ID:    "AppointmentDescriptionAppointment",
		Other: "Appointment",
	}
	msgDescriptionReservation = &l10n.Message{
		ID:    "AppointmentDescriptionReservation",
		Other: "Reservation",
	}
	msgAppointmentTime = &l10n.Message{
		ID:    "AppointmentTimeDescription",
		Other: "{{.Weekday}} {{.Date}} @ {{.Time}}",
	}
)

type AppointmentResponse struct {
	AppointmentID                string                            `json:"appointmentId"`
	AccountID                    string                            `json:"accountId"`
	ProviderID                   *string                           `json:"providerId,omitempty"`
	AppointmentTypeID            string                            `json:"appointmentTypeId"`
	CreatedByAccountID           *string                           `json:"createdByAccountId,omitempty"`
	PatientOrderID               *string                           `json:"patientOrderId,omitempty"`
	GroupEventID                 *string                           `json:"groupEventId,omitempty"`
	AttendanceStatusID           string                            `json:"attendanceStatusId"`
	Title                        string                            `json:"title"`
	Subtitle                     string                            `json:"subtitle"`
	AppointmentDescription       string                            `json:"appointmentDescription"`
	StartTime                    time.Time                         `json:"startTime"`
	StartTimeDescription         string                            `json:"startTimeDescription"`
	LocalStartDate               string                            `json:"localStartDate"`
	LocalStartTime               string                            `json:"localStartTime"`
	EndTime                      time.Time                         `json:"endTime"`
	EndTimeDescription           string                            `json:"endTimeDescription"`
	LocalEndDate                 string                            `json:"localEndDate"`
	LocalEndTime                 string                            `json:"localEndTime"`
	DurationInMinutes            int                               `json:"durationInMinutes"`
	DurationInMinutesDescription string                            `json:"durationInMinutesDescription"`
	TimeDescription              string                            `json:"timeDescription"`
	TimeZone                     string                            `json:"timeZone"`
	VideoconferenceURL           *string                           `json:"videoconferenceUrl,omitempty"`
	PhoneNumber                  *string                           `json:"phoneNumber,omitempty"`
	PhoneNumberDescription       *string                           `json:"phoneNumberDescription,omitempty"`
	Canceled                     bool                              `json:"canceled"`
	CanceledAt                   *time.Time                        `json:"canceledAt,omitempty"`
	CanceledAtDescription        *string                           `json:"canceledAtDescription,omitempty"`
	Created                      time.Time                         `json:"created"`
	CreatedDescription           string                            `json:"createdDescription"`
	Provider                     *ProviderResponse                 `json:"provider,omitempty"`
	Account                      *accountresponses.AccountResponse `json:"account,omitempty"`
	AppointmentType              *AppointmentTypeResponse          `json:"appointmentType,omitempty"`
}

// AppointmentEmbeds carries the related entities a caller loaded for the requested
// supplements. The account arrives already rendered because rendering it is
// viewer-dependent.
type AppointmentEmbeds struct {
	Provider        *models.Provider
	Account         *accountresponses.AccountResponse
	AppointmentType *models.AppointmentType
}

// NewAppointmentResponse renders an appointment. Local dates and times are in the zone the
// appointment was booked in; descriptions of instants use the formatter's zone.
func NewAppointmentResponse(f *format.Formatter, appointment *models.Appointment, supplements supplement.Set[AppointmentSupplement], embeds AppointmentEmbeds) (*AppointmentResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if appointment == nil {
		return nil, dErrors.Required("appointment")
	}

	zone := appointment.TimeZone
	if zone == nil {
		zone = f.Location()
	}
	localStart := appointment.StartTime.In(zone)
	localEnd := appointment.EndTime.In(zone)

	r := &AppointmentResponse{
		AppointmentID:                appointment.ID.String(),
		AccountID:                    appointment.AccountID.String(),
		ProviderID:                   id.OptionalString(appointment.ProviderID),
		AppointmentTypeID:            appointment.AppointmentTypeID.String(),
		CreatedByAccountID:           id.OptionalString(appointment.CreatedByAccountID),
		PatientOrderID:               id.OptionalString(appointment.PatientOrderID),
		GroupEventID:                 appointment.GroupEventID,
		AttendanceStatusID:           appointment.AttendanceStatusID,
		Title:                        appointment.Title,
		Subtitle:                     f.T(msgSubtitleOneOnOne, nil),
		AppointmentDescription:       f.T(msgDescriptionAppointment, nil),
		StartTime:                    appointment.StartTime,
		StartTimeDescription:         f.FormatTimestamp(appointment.StartTime, format.StyleDefault, format.StyleDefault),
		LocalStartDate:               localStart.Format(isoDate),
		LocalStartTime:               localStart.Format(isoLocalTime),
		EndTime:                      appointment.EndTime,
		EndTimeDescription:           f.FormatTimestamp(appointment.EndTime, format.StyleDefault, format.StyleDefault),
		LocalEndDate:                 localEnd.Format(isoDate),
		LocalEndTime:                 localEnd.Format(isoLocalTime),
		DurationInMinutes:            appointment.DurationInMinutes,
		DurationInMinutesDescription: f.FormatMinutes(int64(appointment.DurationInMinutes)),
		TimeDescription: f.T(msgAppointmentTime, map[string]any{
			"Weekday": f.FormatWeekdayShort(localStart.Weekday()),
			"Date":    f.FormatMonthDay(localStart),
			"Time":    f.FormatTimeRange(localStart, localEnd),
		}),
		TimeZone:               zone.String(),
		VideoconferenceURL:     appointment.VideoconferenceURL,
		PhoneNumber:            appointment.PhoneNumber,
		PhoneNumberDescription: f.FormatOptionalPhoneNumber(appointment.PhoneNumber),
		Canceled:               appointment.Canceled,
		CanceledAt:             appointment.CanceledAt,
		Created:                appointment.Created,
		CreatedDescription:     f.FormatTimestamp(appointment.Created, format.StyleDefault, format.StyleDefault),
	}
	if appointment.GroupEventID != nil {
		r.Subtitle = f.T(msgSubtitleGroup, nil)
		r.AppointmentDescription = f.T(msgDescriptionReservation, nil)
	}
	if appointment.CanceledAt != nil {
		d := f.FormatTimestamp(*appointment.CanceledAt, format.StyleDefault, format.StyleDefault)
		r.CanceledAtDescription = &d
	}

	all := supplements.Has(AppointmentSupplementAll)
	if (all || supplements.Has(AppointmentSupplementProvider)) && embeds.Provider != nil {
		provider, err := NewProviderResponse(f, embeds.Provider, nil)
		if err != nil {
			return nil, err
		}
		r.Provider = provider
	}
	if all || supplements.Has(AppointmentSupplementAccount) {
		r.Account = embeds.Account
	}
	if (all || supplements.Has(AppointmentSupplementAppointmentType)) && embeds.AppointmentType != nil {
		appointmentType, err := NewAppointmentTypeResponse(f, embeds.AppointmentType)
		if err != nil {
			return nil, err
		}
		r.AppointmentType = appointmentType
	}
	return r, nil
}
