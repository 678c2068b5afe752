// Package responses projects integrated care patient orders into API views.
package responses

import (
	"time"

	accountmodels "cobalt/internal/account/models"
	accountresponses "cobalt/internal/account/responses"
	"cobalt/internal/format"
	"cobalt/internal/l10n"
	"cobalt/internal/patientorder/models"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/supplement"
)

// PatientOrderFormat selects which audience a PatientOrderResponse is shaped for.
type PatientOrderFormat string

const (
	PatientOrderFormatMhic    PatientOrderFormat = "MHIC"
	PatientOrderFormatPatient PatientOrderFormat = "PATIENT"
)

// FormatForRole picks the MHIC format for care team roles.
func FormatForRole(role id.RoleID) PatientOrderFormat {
	if role.IsStaff() {
		return PatientOrderFormatMhic
	}
	return PatientOrderFormatPatient
}

type PatientOrderSupplement string

const (
	PatientOrderSupplementMinimal    PatientOrderSupplement = "MINIMAL"
	PatientOrderSupplementEverything PatientOrderSupplement = "EVERYTHING"
)

var PatientOrderSupplements = []PatientOrderSupplement{
	PatientOrderSupplementMinimal,
	PatientOrderSupplementEverything,
}

const (
	isoDate          = "2006-01-02"
	isoLocalDateTime = "2006-01-02T15:04:05"
)

var (
	msgOrderAge = &l10n.Message{
		ID:    "PatientOrderOrderAge",
		One:   "{{.Count}} minute",
		Other: "{{.Count}} minutes",
	}
	msgEpisodeDuration = &l10n.Message{
		ID:    "PatientOrderEpisodeDuration",
		One:   "{{.Count}} day",
		Other: "{{.Count}} days",
	}
)

type PatientOrderResponse struct {
	PatientOrderID                           string                                  `json:"patientOrderId"`
	InstitutionID                            string                                  `json:"institutionId"`
	PatientOrderStatusID                     string                                  `json:"patientOrderStatusId"`
	PatientOrderDispositionID                string                                  `json:"patientOrderDispositionId"`
	PatientOrderTriageStatusID               string                                  `json:"patientOrderTriageStatusId"`
	PatientAccountID                         *string                                 `json:"patientAccountId,omitempty"`
	PatientMrn                               string                                  `json:"patientMrn"`
	PatientUniqueID                          string                                  `json:"patientUniqueId"`
	PatientUniqueIDType                      string                                  `json:"patientUniqueIdType"`
	PatientFirstName                         *string                                 `json:"patientFirstName,omitempty"`
	PatientLastName                          *string                                 `json:"patientLastName,omitempty"`
	PatientDisplayName                       *string                                 `json:"patientDisplayName,omitempty"`
	PatientDisplayNameWithLastFirst          *string                                 `json:"patientDisplayNameWithLastFirst,omitempty"`
	PatientBirthdate                         *string                                 `json:"patientBirthdate,omitempty"`
	PatientBirthdateDescription              *string                                 `json:"patientBirthdateDescription,omitempty"`
	PatientPhoneNumber                       *string                                 `json:"patientPhoneNumber,omitempty"`
	PatientPhoneNumberDescription            *string                                 `json:"patientPhoneNumberDescription,omitempty"`
	PatientEmailAddress                      *string                                 `json:"patientEmailAddress,omitempty"`
	PatientLanguageCode                      *string                                 `json:"patientLanguageCode,omitempty"`
	OrderingProviderDisplayName              *string                                 `json:"orderingProviderDisplayName,omitempty"`
	OrderingProviderDisplayNameWithLastFirst *string                                 `json:"orderingProviderDisplayNameWithLastFirst,omitempty"`
	BillingProviderDisplayName               *string                                 `json:"billingProviderDisplayName,omitempty"`
	BillingProviderDisplayNameWithLastFirst  *string                                 `json:"billingProviderDisplayNameWithLastFirst,omitempty"`
	ConnectedToSafetyPlanningAt              *time.Time                              `json:"connectedToSafetyPlanningAt,omitempty"`
	ConnectedToSafetyPlanningAtDescription   *string                                 `json:"connectedToSafetyPlanningAtDescription,omitempty"`
	TestPatientOrder                         bool                                    `json:"testPatientOrder"`
	Created                                  time.Time                               `json:"created"`
	CreatedDescription                       string                                  `json:"createdDescription"`
	PanelAccountID                           *string                                 `json:"panelAccountId,omitempty"`
	PanelAccountDisplayName                  *string                                 `json:"panelAccountDisplayName,omitempty"`
	OrderDate                                *string                                 `json:"orderDate,omitempty"`
	OrderDateDescription                     *string                                 `json:"orderDateDescription,omitempty"`
	OrderAgeInMinutes                        *int                                    `json:"orderAgeInMinutes,omitempty"`
	OrderAgeInMinutesDescription             *string                                 `json:"orderAgeInMinutesDescription,omitempty"`
	Routing                                  *string                                 `json:"routing,omitempty"`
	ReasonForReferral                        *string                                 `json:"reasonForReferral,omitempty"`
	AssociatedDiagnosis                      *string                                 `json:"associatedDiagnosis,omitempty"`
	EpisodeClosedAt                          *time.Time                              `json:"episodeClosedAt,omitempty"`
	EpisodeClosedAtDescription               *string                                 `json:"episodeClosedAtDescription,omitempty"`
	EpisodeDurationInDays                    *int                                    `json:"episodeDurationInDays,omitempty"`
	EpisodeDurationInDaysDescription         *string                                 `json:"episodeDurationInDaysDescription,omitempty"`
	PatientAccount                           *accountresponses.AccountResponse       `json:"patientAccount,omitempty"`
	PatientAddress                           *accountresponses.AddressResponse       `json:"patientAddress,omitempty"`
	PatientOrderNotes                        []*PatientOrderNoteResponse             `json:"patientOrderNotes"`
	PatientOrderOutreaches                   []*PatientOrderOutreachResponse         `json:"patientOrderOutreaches"`
	PatientOrderScheduledMessages            []*PatientOrderScheduledMessageResponse `json:"patientOrderScheduledMessages"`
	PatientOrderVoicemailTasks               []*PatientOrderVoicemailTaskResponse    `json:"patientOrderVoicemailTasks"`
	PatientOrderTriages                      []*PatientOrderTriageResponse           `json:"patientOrderTriages"`
}

// PatientOrderEmbeds carries what a caller loaded for the EVERYTHING supplement. Note
// authors arrive rendered, keyed by account.
type PatientOrderEmbeds struct {
	PatientAccount    *accountresponses.AccountResponse
	PatientAddress    *accountmodels.Address
	Notes             []*models.PatientOrderNote
	NoteAuthors       map[id.AccountID]*accountresponses.AccountResponse
	Outreaches        []*models.PatientOrderOutreach
	ScheduledMessages []*models.PatientOrderScheduledMessage
	VoicemailTasks    []*models.PatientOrderVoicemailTask
	Triages           []*models.PatientOrderTriage
}

// NewPatientOrderResponse renders an order for one audience. The MHIC format adds the
// clinical and operational fields; EVERYTHING adds the embeds as lists, empty when nothing
// was loaded.
func NewPatientOrderResponse(f *format.Formatter, order *models.PatientOrder, orderFormat PatientOrderFormat, supplements supplement.Set[PatientOrderSupplement], embeds PatientOrderEmbeds) (*PatientOrderResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if order == nil {
		return nil, dErrors.Required("patient order")
	}

	patientFirst, patientLast := deref(order.PatientFirstName), deref(order.PatientLastName)
	r := &PatientOrderResponse{
		PatientOrderID:                           order.ID.String(),
		InstitutionID:                            order.InstitutionID.String(),
		PatientOrderStatusID:                     order.PatientOrderStatusID,
		PatientOrderDispositionID:                order.PatientOrderDispositionID,
		PatientOrderTriageStatusID:               order.PatientOrderTriageStatusID,
		PatientAccountID:                         id.OptionalString(order.PatientAccountID),
		PatientMrn:                               order.PatientMrn,
		PatientUniqueID:                          order.PatientUniqueID,
		PatientUniqueIDType:                      order.PatientUniqueIDType,
		PatientFirstName:                         order.PatientFirstName,
		PatientLastName:                          order.PatientLastName,
		PatientDisplayName:                       nonBlank(format.DisplayName(patientFirst, "", patientLast)),
		PatientDisplayNameWithLastFirst:          nonBlank(format.DisplayNameLastFirst(patientFirst, "", patientLast)),
		PatientBirthdate:                         calendarDate(order.PatientBirthdate),
		PatientBirthdateDescription:              dateDescription(f, order.PatientBirthdate),
		PatientPhoneNumber:                       order.PatientPhoneNumber,
		PatientPhoneNumberDescription:            f.FormatOptionalPhoneNumber(order.PatientPhoneNumber),
		PatientEmailAddress:                      order.PatientEmailAddress,
		PatientLanguageCode:                      order.PatientLanguageCode,
		OrderingProviderDisplayName:              providerName(format.DisplayName, order.OrderingProviderFirstName, order.OrderingProviderMiddleName, order.OrderingProviderLastName),
		OrderingProviderDisplayNameWithLastFirst: providerName(format.DisplayNameLastFirst, order.OrderingProviderFirstName, order.OrderingProviderMiddleName, order.OrderingProviderLastName),
		BillingProviderDisplayName:               providerName(format.DisplayName, order.BillingProviderFirstName, order.BillingProviderMiddleName, order.BillingProviderLastName),
		BillingProviderDisplayNameWithLastFirst:  providerName(format.DisplayNameLastFirst, order.BillingProviderFirstName, order.BillingProviderMiddleName, order.BillingProviderLastName),
		ConnectedToSafetyPlanningAt:              order.ConnectedToSafetyPlanningAt,
		ConnectedToSafetyPlanningAtDescription:   timestamp(f, order.ConnectedToSafetyPlanningAt),
		TestPatientOrder:                         order.TestPatientOrder,
		Created:                                  order.Created,
		CreatedDescription:                       f.FormatTimestamp(order.Created, format.StyleMedium, format.StyleShort),
	}

	if orderFormat == PatientOrderFormatMhic {
		r.PanelAccountID = id.OptionalString(order.PanelAccountID)
		r.PanelAccountDisplayName = nonBlank(format.DisplayName(deref(order.PanelAccountFirstName), "", deref(order.PanelAccountLastName)))
		r.OrderDate = calendarDate(order.OrderDate)
		r.OrderDateDescription = dateDescription(f, order.OrderDate)
		r.Routing = order.Routing
		r.ReasonForReferral = order.ReasonForReferral
		r.AssociatedDiagnosis = order.AssociatedDiagnosis
		r.EpisodeClosedAt = order.EpisodeClosedAt
		r.EpisodeClosedAtDescription = timestamp(f, order.EpisodeClosedAt)
		if order.OrderAgeInMinutes != nil {
			minutes := *order.OrderAgeInMinutes
			d := f.Plural(msgOrderAge, minutes, map[string]any{"Count": f.FormatInteger(int64(minutes))})
			r.OrderAgeInMinutes = &minutes
			r.OrderAgeInMinutesDescription = &d
		}
		if order.EpisodeDurationInDays != nil {
			days := *order.EpisodeDurationInDays
			d := f.Plural(msgEpisodeDuration, days, map[string]any{"Count": f.FormatInteger(int64(days))})
			r.EpisodeDurationInDays = &days
			r.EpisodeDurationInDaysDescription = &d
		}
	}

	if !supplements.Has(PatientOrderSupplementEverything) {
		return r, nil
	}
	r.PatientAccount = embeds.PatientAccount
	if embeds.PatientAddress != nil {
		address, err := accountresponses.NewAddressResponse(embeds.PatientAddress)
		if err != nil {
			return nil, err
		}
		r.PatientAddress = address
	}

	var err error
	if r.PatientOrderNotes, err = buildAll(embeds.Notes, func(n *models.PatientOrderNote) (*PatientOrderNoteResponse, error) {
		return NewPatientOrderNoteResponse(f, n, embeds.NoteAuthors[n.AccountID])
	}); err != nil {
		return nil, err
	}
	if r.PatientOrderOutreaches, err = buildAll(embeds.Outreaches, func(o *models.PatientOrderOutreach) (*PatientOrderOutreachResponse, error) {
		return NewPatientOrderOutreachResponse(f, o)
	}); err != nil {
		return nil, err
	}
	if r.PatientOrderScheduledMessages, err = buildAll(embeds.ScheduledMessages, func(m *models.PatientOrderScheduledMessage) (*PatientOrderScheduledMessageResponse, error) {
		return NewPatientOrderScheduledMessageResponse(f, m)
	}); err != nil {
		return nil, err
	}
	if r.PatientOrderVoicemailTasks, err = buildAll(embeds.VoicemailTasks, func(t *models.PatientOrderVoicemailTask) (*PatientOrderVoicemailTaskResponse, error) {
		return NewPatientOrderVoicemailTaskResponse(f, t)
	}); err != nil {
		return nil, err
	}
	if r.PatientOrderTriages, err = buildAll(embeds.Triages, func(t *models.PatientOrderTriage) (*PatientOrderTriageResponse, error) {
		return NewPatientOrderTriageResponse(f, t)
	}); err != nil {
		return nil, err
	}
	return r, nil
}

func buildAll[M, R any](items []M, build func(M) (R, error)) ([]R, error) {
	out := make([]R, 0, len(items))
	for _, item := range items {
		r, err := build(item)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func providerName(render func(first, middle, last string) string, first, middle, last *string) *string {
	return nonBlank(render(deref(first), deref(middle), deref(last)))
}

func calendarDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(isoDate)
	return &s
}

func dateDescription(f *format.Formatter, t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := f.FormatDate(*t, format.StyleMedium)
	return &s
}

func timestamp(f *format.Formatter, t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := f.FormatTimestamp(*t, format.StyleMedium, format.StyleShort)
	return &s
}

func nonBlank(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
