// Package models holds research studies, the check-ins enrolled accounts complete, and the
// files they upload.
package models

import (
	"time"

	id "cobalt/pkg/domain"
)

const (
	CheckInStatusNew        = "NEW"
	CheckInStatusInProgress = "IN_PROGRESS"
	CheckInStatusComplete   = "COMPLETE"
	CheckInStatusExpired    = "EXPIRED"

	CheckInActionStatusIncomplete = "INCOMPLETE"
	CheckInActionStatusComplete   = "COMPLETE"
)

// AccountStudy enrolls an account in a study.
type AccountStudy struct {
	AccountID    id.AccountID
	StudyID      id.StudyID
	StudyStarted bool
	// TimeZone is the enrolled account's IANA zone. Check-in windows are wall-clock in it.
	TimeZone string
}

// AccountCheckIn is one scheduled window of study work. Start and end are wall-clock times
// in the account's zone.
type AccountCheckIn struct {
	ID                   id.AccountCheckInID
	AccountID            id.AccountID
	StudyID              id.StudyID
	CheckInTypeID        string
	CheckInStatusID      string
	CheckInNumber        int
	CheckInStartDateTime time.Time
	CheckInEndDateTime   time.Time
}

type AccountCheckInAction struct {
	ID                             id.AccountCheckInActionID
	AccountCheckInID               id.AccountCheckInID
	StudyCheckInActionID           string
	CheckInActionStatusID          string
	CheckInActionStatusDescription string
	CheckInTypeID                  string
	ScreeningSessionID             *id.ScreeningSessionID
	ScreeningFlowID                *id.ScreeningFlowID
	VideoPrompt                    *string
	VideoScript                    *string
	VideoIntro                     *string
	MinVideoTimeSeconds            *int
	MaxVideoTimeSeconds            *int
	SendFollowupNotification       bool
	FollowupNotificationMinutes    *int
	Created                        time.Time
	LastUpdated                    time.Time
}

// StudyFileUpload records an upload an account was issued a presigned URL for.
type StudyFileUpload struct {
	ID                     id.FileUploadID
	StudyID                id.StudyID
	AccountID              id.AccountID
	AccountCheckInActionID *id.AccountCheckInActionID
	StorageKey             string
	Filename               string
	ContentType            string
	FilesizeInBytes        int64
	Created                time.Time
}
