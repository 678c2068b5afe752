package models

import (
	id "cobalt/pkg/domain"
)

type TopicCenterDisplayStyleID string

const (
	TopicCenterDisplayStyleDefault  TopicCenterDisplayStyleID = "DEFAULT"
	TopicCenterDisplayStyleFeatured TopicCenterDisplayStyleID = "FEATURED"
)

type TopicCenterRowTagTypeID string

const (
	RowTagTypeContent      TopicCenterRowTagTypeID = "CONTENT"
	RowTagTypeGroupSession TopicCenterRowTagTypeID = "GROUP_SESSION"
)

// TopicCenter is a curated landing page of content rows.
type TopicCenter struct {
	ID                   id.TopicCenterID          `json:"topic_center_id"`
	InstitutionID        id.InstitutionID          `json:"institution_id"`
	DisplayStyleID       TopicCenterDisplayStyleID `json:"topic_center_display_style_id"`
	Name                 string                    `json:"name"`
	Description          *string                   `json:"description,omitempty"`
	URLName              string                    `json:"url_name"`
	FeaturedTitle        *string                   `json:"featured_title,omitempty"`
	FeaturedDescription  *string                   `json:"featured_description,omitempty"`
	FeaturedCallToAction *string                   `json:"featured_call_to_action,omitempty"`
	ImageURL             *string                   `json:"image_url,omitempty"`
}

// TopicCenterRow is one section of a topic center with its content loaded.
type TopicCenterRow struct {
	ID            id.TopicCenterRowID  `json:"topic_center_row_id"`
	TopicCenterID id.TopicCenterID     `json:"topic_center_id"`
	Title         string               `json:"title"`
	Description   *string              `json:"description,omitempty"`
	DisplayOrder  int                  `json:"display_order"`
	Contents      []*Content           `json:"contents,omitempty"`
	RowTags       []*TopicCenterRowTag `json:"row_tags,omitempty"`
}

// TopicCenterRowTag groups a row's content under one tag. Contents is nil when the tag
// type does not carry content.
type TopicCenterRowTag struct {
	TagID       id.TagID                `json:"tag_id"`
	TypeID      TopicCenterRowTagTypeID `json:"topic_center_row_tag_type_id"`
	Title       string                  `json:"title"`
	Description *string                 `json:"description,omitempty"`
	Cta         *string                 `json:"cta,omitempty"`
	CtaURL      *string                 `json:"cta_url,omitempty"`
	Contents    []*Content              `json:"contents,omitempty"`
}
