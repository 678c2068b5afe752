// Package models holds library content, tags and topic centers.
package models

import (
	"time"

	id "cobalt/pkg/domain"
)

type ContentTypeID string

const (
	ContentTypeVideo     ContentTypeID = "VIDEO"
	ContentTypeAudio     ContentTypeID = "AUDIO"
	ContentTypePodcast   ContentTypeID = "PODCAST"
	ContentTypeArticle   ContentTypeID = "ARTICLE"
	ContentTypeWorksheet ContentTypeID = "WORKSHEET"
	ContentTypeIntBlog   ContentTypeID = "INT_BLOG"
	ContentTypeExtBlog   ContentTypeID = "EXT_BLOG"
	ContentTypeApp       ContentTypeID = "APP"
)

// Content is one resource library item.
type Content struct {
	ID                     id.ContentID  `json:"content_id"`
	ContentTypeID          ContentTypeID `json:"content_type_id"`
	Title                  string        `json:"title"`
	URL                    *string       `json:"url,omitempty"`
	DateCreated            *time.Time    `json:"date_created,omitempty"`
	ImageURL               *string       `json:"image_url,omitempty"`
	Description            *string       `json:"description,omitempty"`
	Author                 *string       `json:"author,omitempty"`
	ContentTypeDescription *string       `json:"content_type_description,omitempty"`
	ContentTypeLabel       *string       `json:"content_type_label,omitempty"`
	CallToAction           *string       `json:"call_to_action,omitempty"`
	NewFlag                *bool         `json:"new_flag,omitempty"`
	DurationInMinutes      *int          `json:"duration_in_minutes,omitempty"`
	Tags                   []*Tag        `json:"tags,omitempty"`
	Created                time.Time     `json:"created"`
	LastUpdated            time.Time     `json:"last_updated"`
}

// Tag labels content for filtering.
type Tag struct {
	ID          id.TagID      `json:"tag_id"`
	Name        string        `json:"name"`
	URLName     string        `json:"url_name"`
	Description string        `json:"description"`
	TagGroupID  id.TagGroupID `json:"tag_group_id"`
}

// TagGroup is a colored family of tags.
type TagGroup struct {
	ID          id.TagGroupID `json:"tag_group_id"`
	ColorID     string        `json:"color_id"`
	Name        string        `json:"name"`
	URLName     string        `json:"url_name"`
	Description string        `json:"description"`
	Deprecated  bool          `json:"deprecated"`
}
