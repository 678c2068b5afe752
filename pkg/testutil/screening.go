package testutil

import (
	"time"

	"github.com/google/uuid"

	screeningmodels "cobalt/internal/screening/models"
	id "cobalt/pkg/domain"
)

// ScreeningFlowVersion builds version 3 of a skippable flow.
func ScreeningFlowVersion(requiredSources ...id.AccountSourceID) *screeningmodels.ScreeningFlowVersion {
	return &screeningmodels.ScreeningFlowVersion{
		ID:                       id.ScreeningFlowVersionID(uuid.New()),
		ScreeningFlowID:          id.ScreeningFlowID(uuid.New()),
		InitialScreeningID:       id.ScreeningID(uuid.New()),
		SkipTypeID:               "EXIT",
		PhoneNumberRequired:      true,
		Skippable:                true,
		VersionNumber:            3,
		RequiredAccountSourceIDs: requiredSources,
	}
}

// ScreeningSession builds a session the target started for themselves an hour before
// FixedNow and completed at FixedNow.
func ScreeningSession(target id.AccountID) *screeningmodels.ScreeningSession {
	completedAt := FixedNow
	return &screeningmodels.ScreeningSession{
		ID:                     id.ScreeningSessionID(uuid.New()),
		ScreeningFlowVersionID: id.ScreeningFlowVersionID(uuid.New()),
		CreatedByAccountID:     target,
		TargetAccountID:        target,
		Completed:              true,
		CompletedAt:            &completedAt,
		Created:                FixedNow.Add(-time.Hour),
	}
}

// ScreeningQuestion builds a single-answer question with two scored options, listed out of
// display order.
func ScreeningQuestion(versionID id.ScreeningVersionID, text string) *screeningmodels.ScreeningQuestion {
	questionID := id.ScreeningQuestionID(uuid.New())
	return &screeningmodels.ScreeningQuestion{
		ID:                  questionID,
		ScreeningVersionID:  versionID,
		AnswerFormatID:      "MULTIPLE_CHOICE",
		AnswerContentHintID: "NONE",
		SubmissionStyleID:   "NEXT",
		QuestionText:        text,
		MinimumAnswerCount:  1,
		MaximumAnswerCount:  1,
		DisplayOrder:        1,
		Metadata:            map[string]any{"section": "mood"},
		AnswerOptions: []*screeningmodels.ScreeningAnswerOption{
			{ID: id.ScreeningAnswerOptionID(uuid.New()), ScreeningQuestionID: questionID, AnswerOptionText: Ptr("Often"), Score: Ptr(2), DisplayOrder: 2},
			{ID: id.ScreeningAnswerOptionID(uuid.New()), ScreeningQuestionID: questionID, AnswerOptionText: Ptr("Never"), Score: Ptr(0), DisplayOrder: 1},
		},
	}
}
