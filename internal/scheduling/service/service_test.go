package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks ProviderStore,AppointmentStore,GroupSessionStore,AccountRenderer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	accountresponses "cobalt/internal/account/responses"
	"cobalt/internal/format"
	"cobalt/internal/platform/metrics"
	"cobalt/internal/scheduling/models"
	"cobalt/internal/scheduling/responses"
	"cobalt/internal/scheduling/service/mocks"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/requestcontext"
	"cobalt/pkg/supplement"
	"cobalt/pkg/testutil"
)

type ServiceSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	providers     *mocks.MockProviderStore
	appointments  *mocks.MockAppointmentStore
	groupSessions *mocks.MockGroupSessionStore
	accounts      *mocks.MockAccountRenderer
	metrics       *metrics.Metrics
	formatter     *format.Formatter
	service       *Service
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.providers = mocks.NewMockProviderStore(s.ctrl)
	s.appointments = mocks.NewMockAppointmentStore(s.ctrl)
	s.groupSessions = mocks.NewMockGroupSessionStore(s.ctrl)
	s.accounts = mocks.NewMockAccountRenderer(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.formatter = testutil.USFormatter(s.T())
	s.service = New(s.providers, s.appointments, s.groupSessions, s.accounts,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
	)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func viewerContext(viewer id.AccountID, role id.RoleID) context.Context {
	ctx := requestcontext.WithAccountID(context.Background(), viewer)
	ctx = requestcontext.WithRoleID(ctx, role)
	return requestcontext.WithRequestID(ctx, "req-1")
}

func (s *ServiceSuite) TestGetAppointment_PatientWithoutSupplements() {
	patient := id.AccountID(uuid.New())
	appointment := testutil.Appointment(patient, id.ProviderID(uuid.New()), id.AppointmentTypeID(uuid.New()))
	s.appointments.EXPECT().FindAppointment(gomock.Any(), appointment.ID).Return(appointment, nil)

	r, err := s.service.GetAppointment(viewerContext(patient, id.RoleIDPatient), s.formatter, appointment.ID, nil)
	s.Require().NoError(err)
	s.Equal(appointment.ID.String(), r.AppointmentID)
	s.Nil(r.Provider)
	s.Nil(r.Account)
	s.Equal(1.0, promtest.ToFloat64(s.metrics.ResponsesRendered.WithLabelValues("appointment")))
}

func (s *ServiceSuite) TestGetAppointment_AllSupplements() {
	patient := id.AccountID(uuid.New())
	provider := testutil.Provider()
	appointmentType := testutil.AppointmentType()
	appointment := testutil.Appointment(patient, provider.ID, appointmentType.ID)
	account := &accountresponses.AccountResponse{AccountID: patient.String()}
	ctx := viewerContext(id.AccountID(uuid.New()), id.RoleIDMHIC)

	s.appointments.EXPECT().FindAppointment(gomock.Any(), appointment.ID).Return(appointment, nil)
	s.providers.EXPECT().FindProvider(gomock.Any(), provider.ID).Return(provider, nil)
	s.accounts.EXPECT().RenderAccountByID(gomock.Any(), s.formatter, patient).Return(account, nil)
	s.appointments.EXPECT().FindAppointmentType(gomock.Any(), appointmentType.ID).Return(appointmentType, nil)

	r, err := s.service.GetAppointment(ctx, s.formatter, appointment.ID, supplement.Of(responses.AppointmentSupplementAll))
	s.Require().NoError(err)
	s.Require().NotNil(r.Provider)
	s.Equal(provider.Name, r.Provider.Name)
	s.Same(account, r.Account)
	s.Require().NotNil(r.AppointmentType)
	s.Equal("30 minutes", r.AppointmentType.DurationInMinutesDescription)
}

func (s *ServiceSuite) TestGetAppointment_MissingAppointmentTypeIsOmitted() {
	patient := id.AccountID(uuid.New())
	appointment := testutil.Appointment(patient, id.ProviderID(uuid.New()), id.AppointmentTypeID(uuid.New()))
	s.appointments.EXPECT().FindAppointment(gomock.Any(), appointment.ID).Return(appointment, nil)
	s.appointments.EXPECT().FindAppointmentType(gomock.Any(), appointment.AppointmentTypeID).Return(nil, sentinel.ErrNotFound)

	r, err := s.service.GetAppointment(viewerContext(patient, id.RoleIDPatient), s.formatter, appointment.ID,
		supplement.Of(responses.AppointmentSupplementAppointmentType))
	s.Require().NoError(err)
	s.Nil(r.AppointmentType)
}

func (s *ServiceSuite) TestGetAppointment_Errors() {
	patient := id.AccountID(uuid.New())
	appointment := testutil.Appointment(patient, id.ProviderID(uuid.New()), id.AppointmentTypeID(uuid.New()))

	s.Run("not found", func() {
		missing := id.AppointmentID(uuid.New())
		s.appointments.EXPECT().FindAppointment(gomock.Any(), missing).Return(nil, sentinel.ErrNotFound)
		_, err := s.service.GetAppointment(viewerContext(patient, id.RoleIDPatient), s.formatter, missing, nil)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("anonymous viewer", func() {
		s.appointments.EXPECT().FindAppointment(gomock.Any(), appointment.ID).Return(appointment, nil)
		_, err := s.service.GetAppointment(context.Background(), s.formatter, appointment.ID, nil)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("another patient", func() {
		s.appointments.EXPECT().FindAppointment(gomock.Any(), appointment.ID).Return(appointment, nil)
		_, err := s.service.GetAppointment(viewerContext(id.AccountID(uuid.New()), id.RoleIDPatient), s.formatter, appointment.ID, nil)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("account render failure propagates", func() {
		s.appointments.EXPECT().FindAppointment(gomock.Any(), appointment.ID).Return(appointment, nil)
		s.accounts.EXPECT().RenderAccountByID(gomock.Any(), s.formatter, patient).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "account not found"))
		_, err := s.service.GetAppointment(viewerContext(patient, id.RoleIDPatient), s.formatter, appointment.ID,
			supplement.Of(responses.AppointmentSupplementAccount))
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestListFollowups_LoadsEachProviderOnce() {
	patient := id.AccountID(uuid.New())
	provider := testutil.Provider()
	followups := []*models.Followup{
		{ID: id.FollowupID(uuid.New()), AccountID: patient, ProviderID: provider.ID, FollowupDate: testutil.FixedNow},
		{ID: id.FollowupID(uuid.New()), AccountID: patient, ProviderID: provider.ID, FollowupDate: testutil.FixedNow.AddDate(0, 0, 7)},
	}
	account := &accountresponses.AccountResponse{AccountID: patient.String()}

	s.appointments.EXPECT().ListFollowups(gomock.Any(), patient).Return(followups, nil)
	s.accounts.EXPECT().RenderAccountByID(gomock.Any(), s.formatter, patient).Return(account, nil)
	s.providers.EXPECT().FindProvider(gomock.Any(), provider.ID).Return(provider, nil).Times(1)

	out, err := s.service.ListFollowups(viewerContext(patient, id.RoleIDPatient), s.formatter, patient)
	s.Require().NoError(err)
	s.Require().Len(out, 2)
	s.Equal("Mar 12, 2024", out[1].FollowupDateDescription)
	s.Same(account, out[0].Account)
	s.NotNil(out[1].Provider)
}

func (s *ServiceSuite) TestListFollowups_EmptyDoesNotRenderAccount() {
	patient := id.AccountID(uuid.New())
	s.appointments.EXPECT().ListFollowups(gomock.Any(), patient).Return(nil, nil)

	out, err := s.service.ListFollowups(viewerContext(patient, id.RoleIDPatient), s.formatter, patient)
	s.Require().NoError(err)
	s.NotNil(out)
	s.Empty(out)
}

func (s *ServiceSuite) TestListLogicalAvailabilities() {
	providerID := id.ProviderID(uuid.New())

	s.Run("patients are forbidden", func() {
		_, err := s.service.ListLogicalAvailabilities(viewerContext(id.AccountID(uuid.New()), id.RoleIDPatient), s.formatter, providerID)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("staff see the calendar", func() {
		s.providers.EXPECT().ListLogicalAvailabilities(gomock.Any(), providerID).Return([]*models.LogicalAvailability{{
			ID:               id.LogicalAvailabilityID(uuid.New()),
			ProviderID:       providerID,
			TypeID:           models.LogicalAvailabilityBlock,
			RecurrenceTypeID: models.RecurrenceNone,
			StartDateTime:    time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC),
			EndDateTime:      time.Date(2024, time.March, 5, 13, 0, 0, 0, time.UTC),
		}}, nil)

		out, err := s.service.ListLogicalAvailabilities(viewerContext(id.AccountID(uuid.New()), id.RoleIDProvider), s.formatter, providerID)
		s.Require().NoError(err)
		s.Require().Len(out, 1)
		s.Equal([]string{"12:00 PM - 1:00 PM", "March 5, 2024"}, out[0].DescriptionComponents)
	})

	s.Run("unsupported recurrence counts a build error", func() {
		s.providers.EXPECT().ListLogicalAvailabilities(gomock.Any(), providerID).Return([]*models.LogicalAvailability{{
			RecurrenceTypeID: "HOURLY",
		}}, nil)

		_, err := s.service.ListLogicalAvailabilities(viewerContext(id.AccountID(uuid.New()), id.RoleIDMHIC), s.formatter, providerID)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		s.Equal(1.0, promtest.ToFloat64(s.metrics.ResponseBuildErrors.WithLabelValues("logical_availability")))
	})
}

func (s *ServiceSuite) TestListReservations() {
	sessionID := id.GroupSessionID(uuid.New())
	staff := viewerContext(id.AccountID(uuid.New()), id.RoleIDAdministrator)

	s.Run("anonymous viewer", func() {
		_, err := s.service.ListReservations(context.Background(), s.formatter, sessionID)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("store failure", func() {
		s.groupSessions.EXPECT().ListReservations(gomock.Any(), sessionID).Return(nil, errors.New("timeout"))
		_, err := s.service.ListReservations(staff, s.formatter, sessionID)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("renders reservations", func() {
		s.groupSessions.EXPECT().ListReservations(gomock.Any(), sessionID).Return([]*models.GroupSessionReservation{{
			ID:             id.GroupSessionReservationID(uuid.New()),
			GroupSessionID: sessionID,
			FirstName:      testutil.Ptr("Robin"),
			Created:        testutil.FixedNow,
			LastUpdated:    testutil.FixedNow,
		}}, nil)
		out, err := s.service.ListReservations(staff, s.formatter, sessionID)
		s.Require().NoError(err)
		s.Require().Len(out, 1)
		s.Equal("Robin", *out[0].Name)
	})
}

func (s *ServiceSuite) TestGetProvider() {
	provider := testutil.Provider()
	s.providers.EXPECT().FindProvider(gomock.Any(), provider.ID).Return(provider, nil)

	r, err := s.service.GetProvider(context.Background(), s.formatter, provider.ID, supplement.Of(responses.ProviderSupplementEverything))
	s.Require().NoError(err)
	s.True(r.PhoneNumberRequiredForAppointment)

	missing := id.ProviderID(uuid.New())
	s.providers.EXPECT().FindProvider(gomock.Any(), missing).Return(nil, sentinel.ErrNotFound)
	_, err = s.service.GetProvider(context.Background(), s.formatter, missing, nil)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
