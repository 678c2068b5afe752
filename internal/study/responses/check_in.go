// Package responses projects study check-ins and uploads into API views.
package responses

import (
	"time"

	"cobalt/internal/format"
	"cobalt/internal/l10n"
	"cobalt/internal/study/models"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
)

// Colors cycles across check-ins by number.
var Colors = []string{
	"#34C759",
	"#00C7BE",
	"#30B0C7",
	"#32ADE6",
	"#007AFF",
	"#5856D6",
	"#AF52DE",
	"#BE65E9",
}

var (
	msgCheckInNumber   = &l10n.Message{ID: "CheckInNumber", Other: "Check {{.CheckInNumber}}"}
	msgCheckInEnds     = &l10n.Message{ID: "CheckInEnds", Other: "Ends {{.Date}}"}
	msgCheckInStarts   = &l10n.Message{ID: "CheckInStarts", Other: "Starts {{.Date}}"}
	msgCheckInProgress = &l10n.Message{ID: "CheckInProgress", Other: "{{.Completed}} of {{.Total}} Complete"}
)

type AccountCheckInResponse struct {
	AccountCheckInID         string                          `json:"accountCheckInId"`
	CheckInTypeID            string                          `json:"checkInTypeId"`
	CheckInStatusID          string                          `json:"checkInStatusId"`
	CheckInNumber            int                             `json:"checkInNumber"`
	CheckInNumberDescription string                          `json:"checkInNumberDescription"`
	CheckInDescription       string                          `json:"checkInDescription"`
	CheckInActive            bool                            `json:"checkInActive"`
	ColorCSSRepresentation   string                          `json:"colorCssRepresentation"`
	AccountCheckInActions    []*AccountCheckInActionResponse `json:"accountCheckInActions"`
}

// CheckInActive reports whether a check-in is open at now. Start and end are wall-clock
// values in the account's zone, so now is read on that clock. Both bounds are exclusive.
// Only COMPLETE closes a check-in early; an EXPIRED one inside its window is still active.
func CheckInActive(checkIn *models.AccountCheckIn, now time.Time, accountZone *time.Location) bool {
	if checkIn.CheckInStatusID == models.CheckInStatusComplete {
		return false
	}
	local := wallClock(now.In(accountZone))
	return local.After(checkIn.CheckInStartDateTime) && local.Before(checkIn.CheckInEndDateTime)
}

// NewAccountCheckInResponse renders a check-in and its actions. An active check-in is
// described by when it ends; a finished one by its progress; anything else by when it
// starts. A nil accountZone falls back to the formatter's location.
func NewAccountCheckInResponse(f *format.Formatter, checkIn *models.AccountCheckIn, actions []*models.AccountCheckInAction, now time.Time, accountZone *time.Location) (*AccountCheckInResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if checkIn == nil {
		return nil, dErrors.Required("account check-in")
	}
	if checkIn.CheckInNumber < 1 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "check-in numbers start at 1")
	}

	if accountZone == nil {
		accountZone = f.Location()
	}
	active := CheckInActive(checkIn, now, accountZone)
	withTime := !format.StartOfDay(checkIn.CheckInStartDateTime)

	var description string
	switch {
	case active:
		description = f.T(msgCheckInEnds, map[string]any{"Date": dateDescription(f, checkIn.CheckInEndDateTime, withTime)})
	case checkIn.CheckInStatusID == models.CheckInStatusComplete || checkIn.CheckInStatusID == models.CheckInStatusExpired:
		completed := 0
		for _, a := range actions {
			if a.CheckInActionStatusID == models.CheckInActionStatusComplete {
				completed++
			}
		}
		description = f.T(msgCheckInProgress, map[string]any{
			"Completed": f.FormatInteger(int64(completed)),
			"Total":     f.FormatInteger(int64(len(actions))),
		})
	default:
		description = f.T(msgCheckInStarts, map[string]any{"Date": dateDescription(f, checkIn.CheckInStartDateTime, withTime)})
	}

	r := &AccountCheckInResponse{
		AccountCheckInID:         checkIn.ID.String(),
		CheckInTypeID:            checkIn.CheckInTypeID,
		CheckInStatusID:          checkIn.CheckInStatusID,
		CheckInNumber:            checkIn.CheckInNumber,
		CheckInNumberDescription: f.T(msgCheckInNumber, map[string]any{"CheckInNumber": f.FormatInteger(int64(checkIn.CheckInNumber))}),
		CheckInDescription:       description,
		CheckInActive:            active,
		ColorCSSRepresentation:   Colors[(checkIn.CheckInNumber-1)%len(Colors)],
		AccountCheckInActions:    make([]*AccountCheckInActionResponse, 0, len(actions)),
	}
	for _, a := range actions {
		action, err := NewAccountCheckInActionResponse(f, a)
		if err != nil {
			return nil, err
		}
		r.AccountCheckInActions = append(r.AccountCheckInActions, action)
	}
	return r, nil
}

type AccountCheckInActionResponse struct {
	AccountCheckInActionID         string  `json:"accountCheckInActionId"`
	AccountCheckInID               string  `json:"accountCheckInId"`
	StudyCheckInActionID           string  `json:"studyCheckInActionId"`
	CheckInActionStatusID          string  `json:"checkInActionStatusId"`
	CheckInActionStatusDescription string  `json:"checkInActionStatusDescription"`
	CheckInTypeID                  string  `json:"checkInTypeId"`
	ScreeningSessionID             *string `json:"screeningSessionId,omitempty"`
	ScreeningFlowID                *string `json:"screeningFlowId,omitempty"`
	VideoPrompt                    *string `json:"videoPrompt,omitempty"`
	VideoScript                    *string `json:"videoScript,omitempty"`
	VideoIntro                     *string `json:"videoIntro,omitempty"`
	MinVideoTimeSeconds            *int    `json:"minVideoTimeSeconds,omitempty"`
	MinVideoTimeDescription        *string `json:"minVideoTimeDescription,omitempty"`
	MaxVideoTimeSeconds            *int    `json:"maxVideoTimeSeconds,omitempty"`
	MaxVideoTimeDescription        *string `json:"maxVideoTimeDescription,omitempty"`
	SendFollowupNotification       bool    `json:"sendFollowupNotification"`
	FollowupNotificationMinutes    *int    `json:"followupNotificationMinutes,omitempty"`
}

func NewAccountCheckInActionResponse(f *format.Formatter, action *models.AccountCheckInAction) (*AccountCheckInActionResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if action == nil {
		return nil, dErrors.Required("account check-in action")
	}
	return &AccountCheckInActionResponse{
		AccountCheckInActionID:         action.ID.String(),
		AccountCheckInID:               action.AccountCheckInID.String(),
		StudyCheckInActionID:           action.StudyCheckInActionID,
		CheckInActionStatusID:          action.CheckInActionStatusID,
		CheckInActionStatusDescription: action.CheckInActionStatusDescription,
		CheckInTypeID:                  action.CheckInTypeID,
		ScreeningSessionID:             id.OptionalString(action.ScreeningSessionID),
		ScreeningFlowID:                id.OptionalString(action.ScreeningFlowID),
		VideoPrompt:                    action.VideoPrompt,
		VideoScript:                    action.VideoScript,
		VideoIntro:                     action.VideoIntro,
		MinVideoTimeSeconds:            action.MinVideoTimeSeconds,
		MinVideoTimeDescription:        seconds(f, action.MinVideoTimeSeconds),
		MaxVideoTimeSeconds:            action.MaxVideoTimeSeconds,
		MaxVideoTimeDescription:        seconds(f, action.MaxVideoTimeSeconds),
		SendFollowupNotification:       action.SendFollowupNotification,
		FollowupNotificationMinutes:    action.FollowupNotificationMinutes,
	}, nil
}

func dateDescription(f *format.Formatter, t time.Time, withTime bool) string {
	if withTime {
		return f.FormatDateTime(t, format.StyleMedium, format.StyleMedium)
	}
	return f.FormatDate(t, format.StyleLong)
}

func seconds(f *format.Formatter, n *int) *string {
	if n == nil {
		return nil
	}
	d := f.FormatDuration(time.Duration(*n) * time.Second)
	return &d
}

// wallClock relabels t's local date and time as UTC, the convention wall-clock values are
// stored in.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
