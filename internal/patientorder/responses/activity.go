package responses

import (
	"time"

	accountresponses "cobalt/internal/account/responses"
	"cobalt/internal/format"
	"cobalt/internal/patientorder/models"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
)

type PatientOrderNoteResponse struct {
	PatientOrderNoteID     string                            `json:"patientOrderNoteId"`
	PatientOrderID         string                            `json:"patientOrderId"`
	Account                *accountresponses.AccountResponse `json:"account,omitempty"`
	Note                   string                            `json:"note"`
	Created                time.Time                         `json:"created"`
	CreatedDescription     string                            `json:"createdDescription"`
	LastUpdated            time.Time                         `json:"lastUpdated"`
	LastUpdatedDescription string                            `json:"lastUpdatedDescription"`
}

// NewPatientOrderNoteResponse renders a note. The author is optional since deactivated
// accounts are not rendered.
func NewPatientOrderNoteResponse(f *format.Formatter, note *models.PatientOrderNote, author *accountresponses.AccountResponse) (*PatientOrderNoteResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if note == nil {
		return nil, dErrors.Required("patient order note")
	}
	return &PatientOrderNoteResponse{
		PatientOrderNoteID:     note.ID.String(),
		PatientOrderID:         note.PatientOrderID.String(),
		Account:                author,
		Note:                   note.Note,
		Created:                note.Created,
		CreatedDescription:     f.FormatTimestamp(note.Created, format.StyleMedium, format.StyleShort),
		LastUpdated:            note.LastUpdated,
		LastUpdatedDescription: f.FormatTimestamp(note.LastUpdated, format.StyleMedium, format.StyleShort),
	}, nil
}

type PatientOrderOutreachResponse struct {
	PatientOrderOutreachID       string `json:"patientOrderOutreachId"`
	PatientOrderID               string `json:"patientOrderId"`
	AccountID                    string `json:"accountId"`
	PatientOrderOutreachResultID string `json:"patientOrderOutreachResultId"`
	Note                         string `json:"note"`
	OutreachDate                 string `json:"outreachDate"`
	OutreachDateDescription      string `json:"outreachDateDescription"`
	OutreachTime                 string `json:"outreachTime"`
	OutreachTimeDescription      string `json:"outreachTimeDescription"`
	OutreachDateTime             string `json:"outreachDateTime"`
	OutreachDateTimeDescription  string `json:"outreachDateTimeDescription"`
	CreatedDescription           string `json:"createdDescription"`
}

func NewPatientOrderOutreachResponse(f *format.Formatter, outreach *models.PatientOrderOutreach) (*PatientOrderOutreachResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if outreach == nil {
		return nil, dErrors.Required("patient order outreach")
	}
	at := outreach.OutreachDateTime
	return &PatientOrderOutreachResponse{
		PatientOrderOutreachID:       outreach.ID.String(),
		PatientOrderID:               outreach.PatientOrderID.String(),
		AccountID:                    outreach.AccountID.String(),
		PatientOrderOutreachResultID: outreach.PatientOrderOutreachResultID,
		Note:                         outreach.Note,
		OutreachDate:                 at.Format(isoDate),
		OutreachDateDescription:      f.FormatDate(at, format.StyleMedium),
		OutreachTime:                 at.Format("15:04"),
		OutreachTimeDescription:      f.FormatTime(at, format.StyleShort),
		OutreachDateTime:             at.Format(isoLocalDateTime),
		OutreachDateTimeDescription:  f.FormatDateTime(at, format.StyleMedium, format.StyleShort),
		CreatedDescription:           f.FormatTimestamp(outreach.Created, format.StyleMedium, format.StyleShort),
	}, nil
}

type PatientOrderScheduledMessageResponse struct {
	PatientOrderScheduledMessageID string   `json:"patientOrderScheduledMessageId"`
	PatientOrderID                 string   `json:"patientOrderId"`
	ScheduledMessageStatusID       string   `json:"scheduledMessageStatusId"`
	MessageTypeID                  string   `json:"messageTypeId"`
	MessageTypeDescription         string   `json:"messageTypeDescription"`
	ScheduledAtDescription         string   `json:"scheduledAtDescription"`
	ScheduledAtDateDescription     string   `json:"scheduledAtDateDescription"`
	ScheduledAtTimeDescription     string   `json:"scheduledAtTimeDescription"`
	ProcessedAtDescription         *string  `json:"processedAtDescription,omitempty"`
	CanceledAtDescription          *string  `json:"canceledAtDescription,omitempty"`
	ErroredAtDescription           *string  `json:"erroredAtDescription,omitempty"`
	SentAtDescription              *string  `json:"sentAtDescription,omitempty"`
	DeliveredAtDescription         *string  `json:"deliveredAtDescription,omitempty"`
	DeliveryFailedAtDescription    *string  `json:"deliveryFailedAtDescription,omitempty"`
	DeliveryFailedReason           *string  `json:"deliveryFailedReason,omitempty"`
	SmsToNumber                    *string  `json:"smsToNumber,omitempty"`
	SmsToNumberDescription         *string  `json:"smsToNumberDescription,omitempty"`
	EmailToAddresses               []string `json:"emailToAddresses"`
}

// NewPatientOrderScheduledMessageResponse renders a queued message. ScheduledAt is an instant
// and is described in the viewer's zone.
func NewPatientOrderScheduledMessageResponse(f *format.Formatter, message *models.PatientOrderScheduledMessage) (*PatientOrderScheduledMessageResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if message == nil {
		return nil, dErrors.Required("patient order scheduled message")
	}
	local := message.ScheduledAt.In(f.Location())
	emails := make([]string, 0, len(message.EmailToAddresses))
	emails = append(emails, message.EmailToAddresses...)
	return &PatientOrderScheduledMessageResponse{
		PatientOrderScheduledMessageID: message.ID.String(),
		PatientOrderID:                 message.PatientOrderID.String(),
		ScheduledMessageStatusID:       message.ScheduledMessageStatusID,
		MessageTypeID:                  message.MessageTypeID,
		MessageTypeDescription:         message.MessageTypeDescription,
		ScheduledAtDescription:         f.FormatTimestamp(message.ScheduledAt, format.StyleMedium, format.StyleShort),
		ScheduledAtDateDescription:     f.FormatDate(local, format.StyleMedium),
		ScheduledAtTimeDescription:     f.FormatTime(local, format.StyleShort),
		ProcessedAtDescription:         timestamp(f, message.ProcessedAt),
		CanceledAtDescription:          timestamp(f, message.CanceledAt),
		ErroredAtDescription:           timestamp(f, message.ErroredAt),
		SentAtDescription:              timestamp(f, message.SentAt),
		DeliveredAtDescription:         timestamp(f, message.DeliveredAt),
		DeliveryFailedAtDescription:    timestamp(f, message.DeliveryFailedAt),
		DeliveryFailedReason:           message.DeliveryFailedReason,
		SmsToNumber:                    message.SmsToNumber,
		SmsToNumberDescription:         f.FormatOptionalPhoneNumber(message.SmsToNumber),
		EmailToAddresses:               emails,
	}, nil
}

type PatientOrderTriageResponse struct {
	PatientOrderTriageID       string    `json:"patientOrderTriageId"`
	PatientOrderID             string    `json:"patientOrderId"`
	PatientOrderFocusTypeID    string    `json:"patientOrderFocusTypeId"`
	PatientOrderCareTypeID     string    `json:"patientOrderCareTypeId"`
	PatientOrderTriageSourceID string    `json:"patientOrderTriageSourceId"`
	AccountID                  *string   `json:"accountId,omitempty"`
	Reason                     *string   `json:"reason,omitempty"`
	Active                     bool      `json:"active"`
	Created                    time.Time `json:"created"`
	CreatedDescription         string    `json:"createdDescription"`
}

func NewPatientOrderTriageResponse(f *format.Formatter, triage *models.PatientOrderTriage) (*PatientOrderTriageResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if triage == nil {
		return nil, dErrors.Required("patient order triage")
	}
	return &PatientOrderTriageResponse{
		PatientOrderTriageID:       triage.ID.String(),
		PatientOrderID:             triage.PatientOrderID.String(),
		PatientOrderFocusTypeID:    triage.PatientOrderFocusTypeID,
		PatientOrderCareTypeID:     triage.PatientOrderCareTypeID,
		PatientOrderTriageSourceID: triage.PatientOrderTriageSourceID,
		AccountID:                  id.OptionalString(triage.AccountID),
		Reason:                     triage.Reason,
		Active:                     triage.Active,
		Created:                    triage.Created,
		CreatedDescription:         f.FormatTimestamp(triage.Created, format.StyleMedium, format.StyleShort),
	}, nil
}

type PatientOrderVoicemailTaskResponse struct {
	PatientOrderVoicemailTaskID   string  `json:"patientOrderVoicemailTaskId"`
	PatientOrderID                string  `json:"patientOrderId"`
	CreatedByAccountID            string  `json:"createdByAccountId"`
	CreatedByAccountDisplayName   *string `json:"createdByAccountDisplayName,omitempty"`
	CompletedByAccountID          *string `json:"completedByAccountId,omitempty"`
	CompletedByAccountDisplayName *string `json:"completedByAccountDisplayName,omitempty"`
	Message                       string  `json:"message"`
	Completed                     bool    `json:"completed"`
	CompletedAtDescription        *string `json:"completedAtDescription,omitempty"`
	Deleted                       bool    `json:"deleted"`
	CreatedDescription            string  `json:"createdDescription"`
	LastUpdatedDescription        string  `json:"lastUpdatedDescription"`
}

func NewPatientOrderVoicemailTaskResponse(f *format.Formatter, task *models.PatientOrderVoicemailTask) (*PatientOrderVoicemailTaskResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if task == nil {
		return nil, dErrors.Required("patient order voicemail task")
	}
	r := &PatientOrderVoicemailTaskResponse{
		PatientOrderVoicemailTaskID: task.ID.String(),
		PatientOrderID:              task.PatientOrderID.String(),
		CreatedByAccountID:          task.CreatedByAccountID.String(),
		CreatedByAccountDisplayName: nonBlank(format.DisplayName(deref(task.CreatedByAccountFirstName), "", deref(task.CreatedByAccountLastName))),
		Message:                     task.Message,
		Completed:                   task.Completed,
		CompletedAtDescription:      timestamp(f, task.CompletedAt),
		Deleted:                     task.Deleted,
		CreatedDescription:          f.FormatTimestamp(task.Created, format.StyleMedium, format.StyleShort),
		LastUpdatedDescription:      f.FormatTimestamp(task.LastUpdated, format.StyleMedium, format.StyleShort),
	}
	if task.CompletedByAccountID != nil {
		r.CompletedByAccountID = id.OptionalString(task.CompletedByAccountID)
		r.CompletedByAccountDisplayName = nonBlank(format.DisplayName(deref(task.CompletedByAccountFirstName), "", deref(task.CompletedByAccountLastName)))
	}
	return r, nil
}
