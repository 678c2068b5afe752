package responses

import (
	"fmt"
	"strings"
	"time"

	"cobalt/internal/format"
	"cobalt/internal/l10n"
	"cobalt/internal/scheduling/models"
	dErrors "cobalt/pkg/domain-errors"
)

const isoLocalDateTime = "2006-01-02T15:04"

var (
	msgAvailabilityStarting = &l10n.Message{
		ID:    "AvailabilityStartingOn",
		Other: "Starting on {{.StartDate}}",
	}
	msgAvailabilityEnding = &l10n.Message{
		ID:    "AvailabilityEndingOn",
		Other: "Ending on {{.EndDate}}",
	}
)

var weekdays = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday,
}

type LogicalAvailabilityResponse struct {
	LogicalAvailabilityID     string                           `json:"logicalAvailabilityId"`
	ProviderID                string                           `json:"providerId"`
	LogicalAvailabilityTypeID models.LogicalAvailabilityTypeID `json:"logicalAvailabilityTypeId"`
	RecurrenceTypeID          models.RecurrenceTypeID          `json:"recurrenceTypeId"`
	StartDateTime             string                           `json:"startDateTime"`
	StartDateTimeDescription  string                           `json:"startDateTimeDescription"`
	EndDate                   *string                          `json:"endDate,omitempty"`
	EndDateDescription        *string                          `json:"endDateDescription,omitempty"`
	EndTime                   string                           `json:"endTime"`
	EndTimeDescription        string                           `json:"endTimeDescription"`
	RecurSunday               bool                             `json:"recurSunday"`
	RecurMonday               bool                             `json:"recurMonday"`
	RecurTuesday              bool                             `json:"recurTuesday"`
	RecurWednesday            bool                             `json:"recurWednesday"`
	RecurThursday             bool                             `json:"recurThursday"`
	RecurFriday               bool                             `json:"recurFriday"`
	RecurSaturday             bool                             `json:"recurSaturday"`
	AppointmentTypes          []*AppointmentTypeResponse       `json:"appointmentTypes"`
	DescriptionComponents     []string                         `json:"descriptionComponents"`
}

// NewLogicalAvailabilityResponse renders availability along with the short description
// lines shown in provider calendars, e.g. "9:00 AM - 5:00 PM", "Mon, Wed" and
// "Starting on March 1, 2024".
func NewLogicalAvailabilityResponse(f *format.Formatter, availability *models.LogicalAvailability) (*LogicalAvailabilityResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if availability == nil {
		return nil, dErrors.Required("logical availability")
	}

	start := availability.StartDateTime
	end := availability.EndDateTime
	r := &LogicalAvailabilityResponse{
		LogicalAvailabilityID:     availability.ID.String(),
		ProviderID:                availability.ProviderID.String(),
		LogicalAvailabilityTypeID: availability.TypeID,
		RecurrenceTypeID:          availability.RecurrenceTypeID,
		StartDateTime:             start.Format(isoLocalDateTime),
		StartDateTimeDescription:  f.FormatDateTime(start, format.StyleLong, format.StyleShort),
		EndTime:                   end.Format(isoLocalTime),
		EndTimeDescription:        f.FormatTime(end, format.StyleShort),
		RecurSunday:               availability.RecurDays[time.Sunday],
		RecurMonday:               availability.RecurDays[time.Monday],
		RecurTuesday:              availability.RecurDays[time.Tuesday],
		RecurWednesday:            availability.RecurDays[time.Wednesday],
		RecurThursday:             availability.RecurDays[time.Thursday],
		RecurFriday:               availability.RecurDays[time.Friday],
		RecurSaturday:             availability.RecurDays[time.Saturday],
		AppointmentTypes:          make([]*AppointmentTypeResponse, 0, len(availability.AppointmentTypes)),
	}
	endDate := availability.EndDate()
	if endDate != nil {
		d, desc := endDate.Format(isoDate), f.FormatDate(*endDate, format.StyleLong)
		r.EndDate, r.EndDateDescription = &d, &desc
	}
	for _, at := range availability.AppointmentTypes {
		appointmentType, err := NewAppointmentTypeResponse(f, at)
		if err != nil {
			return nil, err
		}
		r.AppointmentTypes = append(r.AppointmentTypes, appointmentType)
	}

	hours := f.FormatTime(start, format.StyleShort) + " - " + f.FormatTime(end, format.StyleShort)
	startDate := f.FormatDate(start, format.StyleLong)
	switch availability.RecurrenceTypeID {
	case models.RecurrenceNone:
		r.DescriptionComponents = []string{hours, startDate}
	case models.RecurrenceDaily:
		days := make([]string, 0, len(weekdays))
		for _, d := range weekdays {
			if availability.RecurDays[d] {
				days = append(days, f.FormatWeekdayShort(d))
			}
		}
		r.DescriptionComponents = []string{
			hours,
			strings.Join(days, ", "),
			f.T(msgAvailabilityStarting, map[string]any{"StartDate": startDate}),
		}
		if endDate != nil {
			r.DescriptionComponents = append(r.DescriptionComponents,
				f.T(msgAvailabilityEnding, map[string]any{"EndDate": *r.EndDateDescription}))
		}
	default:
		return nil, dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("unsupported recurrence type %q", availability.RecurrenceTypeID))
	}
	return r, nil
}
