package testutil

import (
	"time"

	"github.com/google/uuid"

	contentmodels "cobalt/internal/content/models"
	id "cobalt/pkg/domain"
)

// Tag builds a tag in the MOOD group.
func Tag(tagID id.TagID, name string) *contentmodels.Tag {
	return &contentmodels.Tag{
		ID:          tagID,
		Name:        name,
		URLName:     string(tagID),
		Description: name + " resources",
		TagGroupID:  "MOOD",
	}
}

// Content builds a video with every optional field set, tagged with tags.
func Content(tags ...*contentmodels.Tag) *contentmodels.Content {
	dateCreated := FixedNow.Add(-7 * 24 * time.Hour)
	return &contentmodels.Content{
		ID:                     id.ContentID(uuid.New()),
		ContentTypeID:          contentmodels.ContentTypeVideo,
		Title:                  "Managing stress",
		URL:                    Ptr("https://example.com/videos/stress"),
		DateCreated:            &dateCreated,
		ImageURL:               Ptr("https://example.com/img/stress.png"),
		Description:            Ptr("A short video on everyday stress"),
		Author:                 Ptr("Dr. Rivera"),
		ContentTypeDescription: Ptr("Video"),
		ContentTypeLabel:       Ptr("Watch"),
		CallToAction:           Ptr("Watch the video"),
		NewFlag:                Ptr(true),
		DurationInMinutes:      Ptr(12),
		Tags:                   tags,
		Created:                FixedNow.Add(-14 * 24 * time.Hour),
		LastUpdated:            FixedNow,
	}
}
