package testutil

import (
	"time"

	"github.com/google/uuid"

	studymodels "cobalt/internal/study/models"
	id "cobalt/pkg/domain"
)

// StudyID is the study the check-in fixtures belong to.
var StudyID = id.StudyID(uuid.MustParse("5f2d1c1e-8a47-4c3b-9a52-0d9e3f6b7a10"))

// AccountCheckIn builds a check-in numbered n that runs from start for four days.
// Times are wall-clock.
func AccountCheckIn(accountID id.AccountID, n int, start time.Time, status string) *studymodels.AccountCheckIn {
	return &studymodels.AccountCheckIn{
		ID:                   id.AccountCheckInID(uuid.New()),
		AccountID:            accountID,
		StudyID:              StudyID,
		CheckInTypeID:        "SCREENING",
		CheckInStatusID:      status,
		CheckInNumber:        n,
		CheckInStartDateTime: start,
		CheckInEndDateTime:   start.Add(96 * time.Hour),
	}
}

// AccountCheckInAction builds a video action with a 30 second to 2 minute recording window.
func AccountCheckInAction(checkInID id.AccountCheckInID, status string) *studymodels.AccountCheckInAction {
	return &studymodels.AccountCheckInAction{
		ID:                             id.AccountCheckInActionID(uuid.New()),
		AccountCheckInID:               checkInID,
		StudyCheckInActionID:           uuid.NewString(),
		CheckInActionStatusID:          status,
		CheckInActionStatusDescription: status,
		CheckInTypeID:                  "VIDEO",
		VideoPrompt:                    Ptr("Tell us about your week"),
		MinVideoTimeSeconds:            Ptr(30),
		MaxVideoTimeSeconds:            Ptr(120),
		FollowupNotificationMinutes:    Ptr(15),
		SendFollowupNotification:       true,
		Created:                        FixedNow.Add(-48 * time.Hour),
		LastUpdated:                    FixedNow,
	}
}
