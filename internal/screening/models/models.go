// Package models holds screening flows, sessions and questions.
package models

import (
	"time"

	id "cobalt/pkg/domain"
)

type ScreeningSession struct {
	ID                     id.ScreeningSessionID
	ScreeningFlowVersionID id.ScreeningFlowVersionID
	CreatedByAccountID     id.AccountID
	TargetAccountID        id.AccountID
	Completed              bool
	CompletedAt            *time.Time
	Skipped                bool
	SkippedAt              *time.Time
	CrisisIndicated        bool
	CrisisIndicatedAt      *time.Time
	Created                time.Time
}

type ScreeningQuestion struct {
	ID                  id.ScreeningQuestionID
	ScreeningVersionID  id.ScreeningVersionID
	AnswerFormatID      string
	AnswerContentHintID string
	SubmissionStyleID   string
	QuestionText        string
	SupplementText      *string
	IntroText           *string
	FooterText          *string
	MinimumAnswerCount  int
	MaximumAnswerCount  int
	PreferAutosubmit    bool
	DisplayOrder        int
	Metadata            map[string]any
	AnswerOptions       []*ScreeningAnswerOption
}

type ScreeningAnswerOption struct {
	ID                             id.ScreeningAnswerOptionID
	ScreeningQuestionID            id.ScreeningQuestionID
	AnswerOptionText               *string
	FreeformSupplement             bool
	FreeformSupplementText         *string
	FreeformSupplementContentHint  *string
	FreeformSupplementTextAutoShow bool
	Score                          *int
	DisplayOrder                   int
	Metadata                       map[string]any
}

type ScreeningFlowVersion struct {
	ID                  id.ScreeningFlowVersionID
	ScreeningFlowID     id.ScreeningFlowID
	InitialScreeningID  id.ScreeningID
	SkipTypeID          string
	PhoneNumberRequired bool
	Skippable           bool
	VersionNumber       int
	// RequiredAccountSourceIDs lists the sign-in options a viewer must use before starting.
	RequiredAccountSourceIDs []id.AccountSourceID
}
