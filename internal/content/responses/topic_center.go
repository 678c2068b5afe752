package responses

import (
	"fmt"

	"cobalt/internal/content/models"
	"cobalt/internal/format"
	dErrors "cobalt/pkg/domain-errors"
)

type TopicCenterResponse struct {
	TopicCenterID             string                           `json:"topicCenterId"`
	TopicCenterDisplayStyleID models.TopicCenterDisplayStyleID `json:"topicCenterDisplayStyleId"`
	Name                      string                           `json:"name"`
	Description               *string                          `json:"description,omitempty"`
	URLName                   string                           `json:"urlName"`
	FeaturedTitle             *string                          `json:"featuredTitle,omitempty"`
	FeaturedDescription       *string                          `json:"featuredDescription,omitempty"`
	FeaturedCallToAction      *string                          `json:"featuredCallToAction,omitempty"`
	ImageURL                  *string                          `json:"imageUrl,omitempty"`
	TopicCenterRows           []*TopicCenterRowResponse        `json:"topicCenterRows"`
	TagsByTagID               map[string]*TagResponse          `json:"tagsByTagId"`
}

// NewTopicCenterResponse renders a topic center with its rows, in the order given, and
// the institution's tags keyed by ID so clients can label row content.
func NewTopicCenterResponse(f *format.Formatter, topicCenter *models.TopicCenter, rows []*models.TopicCenterRow, tags []*models.Tag) (*TopicCenterResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if topicCenter == nil {
		return nil, dErrors.Required("topic center")
	}

	r := &TopicCenterResponse{
		TopicCenterID:             topicCenter.ID.String(),
		TopicCenterDisplayStyleID: topicCenter.DisplayStyleID,
		Name:                      topicCenter.Name,
		Description:               topicCenter.Description,
		URLName:                   topicCenter.URLName,
		FeaturedTitle:             topicCenter.FeaturedTitle,
		FeaturedDescription:       topicCenter.FeaturedDescription,
		FeaturedCallToAction:      topicCenter.FeaturedCallToAction,
		ImageURL:                  topicCenter.ImageURL,
		TopicCenterRows:           make([]*TopicCenterRowResponse, 0, len(rows)),
		TagsByTagID:               make(map[string]*TagResponse, len(tags)),
	}
	for _, row := range rows {
		rr, err := NewTopicCenterRowResponse(f, row)
		if err != nil {
			return nil, fmt.Errorf("render topic center row: %w", err)
		}
		r.TopicCenterRows = append(r.TopicCenterRows, rr)
	}
	for _, tag := range tags {
		t, err := NewTagResponse(tag)
		if err != nil {
			return nil, err
		}
		r.TagsByTagID[t.TagID] = t
	}
	return r, nil
}

type TopicCenterRowResponse struct {
	TopicCenterRowID   string                       `json:"topicCenterRowId"`
	Title              string                       `json:"title"`
	Description        *string                      `json:"description,omitempty"`
	Contents           []*ContentResponse           `json:"contents"`
	TopicCenterRowTags []*TopicCenterRowTagResponse `json:"topicCenterRowTags"`
}

func NewTopicCenterRowResponse(f *format.Formatter, row *models.TopicCenterRow) (*TopicCenterRowResponse, error) {
	if row == nil {
		return nil, dErrors.Required("topic center row")
	}
	contents, err := NewContentResponses(f, row.Contents)
	if err != nil {
		return nil, err
	}
	r := &TopicCenterRowResponse{
		TopicCenterRowID:   row.ID.String(),
		Title:              row.Title,
		Description:        row.Description,
		Contents:           contents,
		TopicCenterRowTags: make([]*TopicCenterRowTagResponse, 0, len(row.RowTags)),
	}
	for _, tag := range row.RowTags {
		t, err := NewTopicCenterRowTagResponse(f, tag)
		if err != nil {
			return nil, err
		}
		r.TopicCenterRowTags = append(r.TopicCenterRowTags, t)
	}
	return r, nil
}

type TopicCenterRowTagResponse struct {
	TagID                   string                         `json:"tagId"`
	TopicCenterRowTagTypeID models.TopicCenterRowTagTypeID `json:"topicCenterRowTagTypeId"`
	Title                   string                         `json:"title"`
	Description             *string                        `json:"description,omitempty"`
	Cta                     *string                        `json:"cta,omitempty"`
	CtaURL                  *string                        `json:"ctaUrl,omitempty"`
	Contents                []*ContentResponse             `json:"contents,omitempty"`
}

// NewTopicCenterRowTagResponse leaves Contents nil when the row tag carries none.
func NewTopicCenterRowTagResponse(f *format.Formatter, tag *models.TopicCenterRowTag) (*TopicCenterRowTagResponse, error) {
	if tag == nil {
		return nil, dErrors.Required("topic center row tag")
	}
	r := &TopicCenterRowTagResponse{
		TagID:                   tag.TagID.String(),
		TopicCenterRowTagTypeID: tag.TypeID,
		Title:                   tag.Title,
		Description:             tag.Description,
		Cta:                     tag.Cta,
		CtaURL:                  tag.CtaURL,
	}
	if tag.Contents != nil {
		contents, err := NewContentResponses(f, tag.Contents)
		if err != nil {
			return nil, err
		}
		r.Contents = contents
	}
	return r, nil
}
