// Package seeder fills the in-memory stores with a small demo institution so a local server
// started without Postgres has something to render.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	accountmodels "cobalt/internal/account/models"
	careresourcemodels "cobalt/internal/careresource/models"
	institutionmodels "cobalt/internal/institution/models"
	patientordermodels "cobalt/internal/patientorder/models"
	studymodels "cobalt/internal/study/models"
	id "cobalt/pkg/domain"
)

// Stable IDs so tokens minted by cmd/tokengen keep working across restarts.
var (
	DemoInstitutionID  = id.InstitutionID("COBALT")
	DemoPatientID      = id.AccountID(uuid.MustParse("0b6f2a8e-4a52-4f0e-9d1c-6a1f3e2b7c01"))
	DemoMHICID         = id.AccountID(uuid.MustParse("0b6f2a8e-4a52-4f0e-9d1c-6a1f3e2b7c02"))
	DemoStudyID        = id.StudyID(uuid.MustParse("5f2d1c1e-8a47-4c3b-9a52-0d9e3f6b7a10"))
	DemoCareResourceID = id.CareResourceID(uuid.MustParse("7c3e9b42-1d6a-4f58-8e0b-2a4d6c8e0f11"))
	DemoPatientOrderID = id.PatientOrderID(uuid.MustParse("9a1b3c5d-7e9f-4a2b-8c4d-6e8f0a2b4c12"))
)

type InstitutionStore interface {
	Save(ctx context.Context, institution *institutionmodels.Institution) error
	SaveAlert(ctx context.Context, institutionID id.InstitutionID, alert *institutionmodels.Alert) error
}

type AccountStore interface {
	Save(ctx context.Context, account *accountmodels.Account) error
	SaveAddress(ctx context.Context, address *accountmodels.Address) error
	SaveAccountSource(ctx context.Context, source *accountmodels.AccountSource) error
}

type StudyStore interface {
	SaveAccountStudy(ctx context.Context, accountStudy *studymodels.AccountStudy) error
	SaveCheckIn(ctx context.Context, checkIn *studymodels.AccountCheckIn) error
	SaveCheckInAction(ctx context.Context, action *studymodels.AccountCheckInAction) error
}

type CareResourceStore interface {
	SaveCareResource(ctx context.Context, resource *careresourcemodels.CareResource) error
	SaveLocation(ctx context.Context, location *careresourcemodels.CareResourceLocation) error
	TagResource(ctx context.Context, resourceID id.CareResourceID, tag *careresourcemodels.CareResourceTag) error
	TagLocation(ctx context.Context, locationID id.CareResourceLocationID, tag *careresourcemodels.CareResourceTag) error
}

type PatientOrderStore interface {
	SavePatientOrder(ctx context.Context, order *patientordermodels.PatientOrder) error
}

// Stores groups everything the seeder writes to.
type Stores struct {
	Institutions  InstitutionStore
	Accounts      AccountStore
	Studies       StudyStore
	CareResources CareResourceStore
	PatientOrders PatientOrderStore
}

// Seeder populates in-memory stores with demo data.
type Seeder struct {
	stores Stores
	logger *slog.Logger
	now    func() time.Time
}

func New(stores Stores, logger *slog.Logger) *Seeder {
	return &Seeder{stores: stores, logger: logger, now: time.Now}
}

// SeedAll writes the demo institution, its accounts, a study enrollment, a care resource
// and an open patient order.
func (s *Seeder) SeedAll(ctx context.Context) error {
	s.logger.InfoContext(ctx, "seeding demo data")

	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"institution", s.seedInstitution},
		{"accounts", s.seedAccounts},
		{"study", s.seedStudy},
		{"care resources", s.seedCareResources},
		{"patient orders", s.seedPatientOrders},
	}
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
	}

	s.logger.InfoContext(ctx, "demo data seeded",
		"institution_id", DemoInstitutionID,
		"patient_account_id", DemoPatientID,
		"mhic_account_id", DemoMHICID,
	)
	return nil
}

func (s *Seeder) seedInstitution(ctx context.Context) error {
	now := s.now()
	institution := &institutionmodels.Institution{
		ID:                                    DemoInstitutionID,
		Name:                                  "Cobalt Health",
		AnonymousAccountExpirationStrategyID:  "DEFAULT",
		SupportEmailAddress:                   "support@cobalt.example.com",
		RequireConsentForm:                    true,
		SupportEnabled:                        true,
		IntegratedCareEnabled:                 true,
		ContactUsEnabled:                      true,
		PatientBaseURL:                        "http://localhost:3000",
		StaffBaseURL:                          "http://localhost:3001",
		IntegratedCarePhoneNumber:             ptr("+12155550100"),
		IntegratedCareAvailabilityDescription: ptr("Monday-Friday, 8:30am-5pm"),
		IntegratedCareProgramName:             ptr("Integrated Care"),
		TechSupportPhoneNumber:                ptr("+12155550102"),
		Created:                               now,
		LastUpdated:                           now,
	}
	if err := s.stores.Institutions.Save(ctx, institution); err != nil {
		return err
	}
	return s.stores.Institutions.SaveAlert(ctx, DemoInstitutionID, &institutionmodels.Alert{
		ID:          id.AlertID(uuid.New()),
		AlertTypeID: institutionmodels.AlertTypeInformation,
		Title:       "Welcome to Cobalt",
		Message:     "<p>This is a <b>demo</b> environment.</p>",
		Dismissible: true,
		Created:     now,
		LastUpdated: now,
	})
}

func (s *Seeder) seedAccounts(ctx context.Context) error {
	now := s.now()
	birthdate := time.Date(1990, 7, 14, 0, 0, 0, 0, time.UTC)
	accounts := []*accountmodels.Account{
		{
			ID:                      DemoPatientID,
			RoleID:                  id.RoleIDPatient,
			InstitutionID:           DemoInstitutionID,
			AccountSourceID:         "EMAIL_PASSWORD",
			SourceSystemID:          "COBALT",
			FirstName:               ptr("Jordan"),
			LastName:                ptr("Rivera"),
			DisplayName:             ptr("Jordan Rivera"),
			EmailAddress:            ptr("jordan@cobalt.example.com"),
			PhoneNumber:             ptr("+12155551234"),
			TimeZone:                "America/New_York",
			Locale:                  language.AmericanEnglish,
			GenderIdentityID:        "NOT_ASKED",
			EthnicityID:             "NOT_ASKED",
			BirthSexID:              "NOT_ASKED",
			RaceID:                  "NOT_ASKED",
			Birthdate:               &birthdate,
			ConsentFormAccepted:     true,
			ConsentFormAcceptedDate: &now,
			Created:                 now,
			LastUpdated:             now,
		},
		{
			ID:               DemoMHICID,
			RoleID:           id.RoleIDMHIC,
			InstitutionID:    DemoInstitutionID,
			AccountSourceID:  "EMAIL_PASSWORD",
			SourceSystemID:   "COBALT",
			FirstName:        ptr("Morgan"),
			LastName:         ptr("Lee"),
			DisplayName:      ptr("Morgan Lee"),
			EmailAddress:     ptr("morgan@cobalt.example.com"),
			TimeZone:         "America/New_York",
			Locale:           language.AmericanEnglish,
			GenderIdentityID: "NOT_ASKED",
			EthnicityID:      "NOT_ASKED",
			BirthSexID:       "NOT_ASKED",
			RaceID:           "NOT_ASKED",
			Created:          now,
			LastUpdated:      now,
		},
	}
	for _, a := range accounts {
		if err := s.stores.Accounts.Save(ctx, a); err != nil {
			return err
		}
	}

	if err := s.stores.Accounts.SaveAddress(ctx, &accountmodels.Address{
		ID:             id.AddressID(uuid.New()),
		AccountID:      DemoPatientID,
		Active:         true,
		PostalName:     "Jordan Rivera",
		StreetAddress1: "3400 Civic Center Blvd",
		Locality:       "Philadelphia",
		Region:         ptr("PA"),
		PostalCode:     ptr("19104"),
		CountryCode:    "US",
	}); err != nil {
		return err
	}

	sources := []*accountmodels.AccountSource{
		{
			ID:                        "EMAIL_PASSWORD",
			InstitutionID:             DemoInstitutionID,
			Description:               "Sign in with email",
			AuthenticationDescription: "Email",
			DisplayStyleID:            "PRIMARY",
			Visible:                   true,
			DisplayOrder:              1,
		},
		{
			ID:                        "MYCHART",
			InstitutionID:             DemoInstitutionID,
			Description:               "Sign in with MyChart",
			AuthenticationDescription: "MyChart",
			DisplayStyleID:            "SECONDARY",
			LocalSsoURL:               ptr("http://localhost:8080/mychart/authenticate"),
			DevSsoURL:                 ptr("https://dev.cobalt.example.com/mychart/authenticate"),
			ProdSsoURL:                ptr("https://cobalt.example.com/mychart/authenticate"),
			Visible:                   true,
			DisplayOrder:              2,
		},
	}
	for _, src := range sources {
		if err := s.stores.Accounts.SaveAccountSource(ctx, src); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedStudy(ctx context.Context) error {
	if err := s.stores.Studies.SaveAccountStudy(ctx, &studymodels.AccountStudy{
		AccountID:    DemoPatientID,
		StudyID:      DemoStudyID,
		StudyStarted: true,
		TimeZone:     "America/New_York",
	}); err != nil {
		return err
	}

	// Check-ins run in four-day windows starting at local midnight two days ago.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return err
	}
	now := s.now().In(loc)
	start := time.Date(now.Year(), now.Month(), now.Day()-2, 0, 0, 0, 0, time.UTC)
	statuses := []string{studymodels.CheckInStatusInProgress, studymodels.CheckInStatusNew, studymodels.CheckInStatusNew}
	for i, status := range statuses {
		checkInStart := start.Add(time.Duration(i) * 96 * time.Hour)
		checkIn := &studymodels.AccountCheckIn{
			ID:                   id.AccountCheckInID(uuid.New()),
			AccountID:            DemoPatientID,
			StudyID:              DemoStudyID,
			CheckInTypeID:        "SCREENING",
			CheckInStatusID:      status,
			CheckInNumber:        i + 1,
			CheckInStartDateTime: checkInStart,
			CheckInEndDateTime:   checkInStart.Add(96 * time.Hour),
		}
		if err := s.stores.Studies.SaveCheckIn(ctx, checkIn); err != nil {
			return err
		}
		if err := s.stores.Studies.SaveCheckInAction(ctx, &studymodels.AccountCheckInAction{
			ID:                             id.AccountCheckInActionID(uuid.New()),
			AccountCheckInID:               checkIn.ID,
			StudyCheckInActionID:           uuid.NewString(),
			CheckInActionStatusID:          studymodels.CheckInActionStatusIncomplete,
			CheckInActionStatusDescription: "Incomplete",
			CheckInTypeID:                  "VIDEO",
			VideoPrompt:                    ptr("Tell us how your week went"),
			MinVideoTimeSeconds:            ptr(30),
			MaxVideoTimeSeconds:            ptr(120),
			Created:                        s.now(),
			LastUpdated:                    s.now(),
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedCareResources(ctx context.Context) error {
	resource := &careresourcemodels.CareResource{
		ID:                 DemoCareResourceID,
		InstitutionID:      DemoInstitutionID,
		Name:               "Riverside Counseling",
		Notes:              ptr("Sliding scale available"),
		InsuranceNotes:     ptr("Most commercial plans"),
		PhoneNumber:        ptr("+12155550140"),
		WebsiteURL:         ptr("https://riverside.example.com"),
		ResourceAvailable:  true,
		CreatedByAccountID: &DemoMHICID,
	}
	if err := s.stores.CareResources.SaveCareResource(ctx, resource); err != nil {
		return err
	}
	location := &careresourcemodels.CareResourceLocation{
		ID:             id.CareResourceLocationID(uuid.New()),
		CareResourceID: resource.ID,
		Name:           ptr("Center City"),
		Address: &accountmodels.Address{
			ID:             id.AddressID(uuid.New()),
			Active:         true,
			PostalName:     "Riverside Counseling",
			StreetAddress1: "1500 Market St",
			Locality:       "Philadelphia",
			Region:         ptr("PA"),
			PostalCode:     ptr("19102"),
			CountryCode:    "US",
		},
		PhoneNumber:             ptr("+12155550141"),
		InternalNotes:           ptr("Ask for Dana at intake"),
		WheelchairAccess:        true,
		AcceptingNewPatients:    true,
		AppointmentTypeInPerson: true,
		AppointmentTypeOnline:   true,
		DisplayOrder:            1,
	}
	if err := s.stores.CareResources.SaveLocation(ctx, location); err != nil {
		return err
	}

	resourceTags := []*careresourcemodels.CareResourceTag{
		{ID: "AETNA", GroupID: careresourcemodels.TagGroupPayors, Name: "Aetna"},
		{ID: "ANXIETY", GroupID: careresourcemodels.TagGroupSpecialties, Name: "Anxiety"},
	}
	for _, tag := range resourceTags {
		if err := s.stores.CareResources.TagResource(ctx, resource.ID, tag); err != nil {
			return err
		}
	}
	locationTags := []*careresourcemodels.CareResourceTag{
		{ID: "SPANISH", GroupID: careresourcemodels.TagGroupLanguages, Name: "Spanish"},
		{ID: "CBT", GroupID: careresourcemodels.TagGroupTherapyTypes, Name: "CBT"},
	}
	for _, tag := range locationTags {
		if err := s.stores.CareResources.TagLocation(ctx, location.ID, tag); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedPatientOrders(ctx context.Context) error {
	now := s.now()
	orderDate := time.Date(now.Year(), now.Month(), now.Day()-3, 0, 0, 0, 0, time.UTC)
	return s.stores.PatientOrders.SavePatientOrder(ctx, &patientordermodels.PatientOrder{
		ID:                         DemoPatientOrderID,
		InstitutionID:              DemoInstitutionID,
		PatientOrderStatusID:       "OPEN",
		PatientOrderDispositionID:  "OPEN",
		PatientOrderTriageStatusID: "MHP",
		PatientAccountID:           &DemoPatientID,
		PatientMrn:                 "MRN100200",
		PatientUniqueID:            "UID100200",
		PatientUniqueIDType:        "UID",
		PatientFirstName:           ptr("Jordan"),
		PatientLastName:            ptr("Rivera"),
		PatientPhoneNumber:         ptr("+12155551234"),
		PatientEmailAddress:        ptr("jordan@cobalt.example.com"),
		OrderingProviderFirstName:  ptr("Robin"),
		OrderingProviderLastName:   ptr("Smith"),
		PanelAccountID:             &DemoMHICID,
		PanelAccountFirstName:      ptr("Morgan"),
		PanelAccountLastName:       ptr("Lee"),
		OrderDate:                  &orderDate,
		ReasonForReferral:          ptr("Anxiety"),
		Created:                    now,
	})
}

func ptr[T any](v T) *T {
	return &v
}
