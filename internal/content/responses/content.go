// Package responses projects content, tags and topic centers into API views.
package responses

import (
	"time"

	"cobalt/internal/content/models"
	"cobalt/internal/format"
	"cobalt/internal/l10n"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/supplement"
)

// ContentSupplement widens a ContentResponse.
type ContentSupplement string

const SupplementTags ContentSupplement = "TAGS"

var ContentSupplements = []ContentSupplement{SupplementTags}

var msgContentDuration = &l10n.Message{
	ID:    "ContentDuration",
	Other: "{{.Minutes}} min",
}

type ContentResponse struct {
	ContentID              string               `json:"contentId"`
	ContentTypeID          models.ContentTypeID `json:"contentTypeId"`
	Title                  string               `json:"title"`
	URL                    *string              `json:"url,omitempty"`
	DateCreated            *time.Time           `json:"dateCreated,omitempty"`
	DateCreatedDescription *string              `json:"dateCreatedDescription,omitempty"`
	ImageURL               *string              `json:"imageUrl,omitempty"`
	Description            *string              `json:"description,omitempty"`
	Author                 *string              `json:"author,omitempty"`
	Created                time.Time            `json:"created"`
	CreatedDescription     string               `json:"createdDescription"`
	LastUpdated            time.Time            `json:"lastUpdated"`
	LastUpdatedDescription string               `json:"lastUpdatedDescription"`
	ContentTypeDescription *string              `json:"contentTypeDescription,omitempty"`
	ContentTypeLabel       *string              `json:"contentTypeLabel,omitempty"`
	CallToAction           *string              `json:"callToAction,omitempty"`
	NewFlag                *bool                `json:"newFlag,omitempty"`
	Duration               *string              `json:"duration,omitempty"`
	TagIDs                 []string             `json:"tagIds"`
	Tags                   []*TagResponse       `json:"tags,omitempty"`
}

// NewContentResponse renders content. Tags are embedded only with SupplementTags; tag IDs
// are always listed.
func NewContentResponse(f *format.Formatter, content *models.Content, supplements supplement.Set[ContentSupplement]) (*ContentResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if content == nil {
		return nil, dErrors.Required("content")
	}

	r := &ContentResponse{
		ContentID:              content.ID.String(),
		ContentTypeID:          content.ContentTypeID,
		Title:                  content.Title,
		URL:                    content.URL,
		DateCreated:            content.DateCreated,
		ImageURL:               content.ImageURL,
		Description:            content.Description,
		Author:                 content.Author,
		Created:                content.Created,
		CreatedDescription:     f.FormatTimestamp(content.Created, format.StyleDefault, format.StyleDefault),
		LastUpdated:            content.LastUpdated,
		LastUpdatedDescription: f.FormatTimestamp(content.LastUpdated, format.StyleDefault, format.StyleDefault),
		ContentTypeDescription: content.ContentTypeDescription,
		ContentTypeLabel:       content.ContentTypeLabel,
		CallToAction:           content.CallToAction,
		NewFlag:                content.NewFlag,
		TagIDs:                 make([]string, 0, len(content.Tags)),
	}
	if content.DateCreated != nil {
		d := f.FormatTimestamp(*content.DateCreated, format.StyleDefault, format.StyleDefault)
		r.DateCreatedDescription = &d
	}
	if content.DurationInMinutes != nil {
		d := f.T(msgContentDuration, map[string]any{"Minutes": f.FormatInteger(int64(*content.DurationInMinutes))})
		r.Duration = &d
	}
	for _, tag := range content.Tags {
		r.TagIDs = append(r.TagIDs, tag.ID.String())
	}

	if supplements.Has(SupplementTags) {
		r.Tags = make([]*TagResponse, 0, len(content.Tags))
		for _, tag := range content.Tags {
			t, err := NewTagResponse(tag)
			if err != nil {
				return nil, err
			}
			r.Tags = append(r.Tags, t)
		}
	}
	return r, nil
}

// NewContentResponses renders a list of content without supplements.
func NewContentResponses(f *format.Formatter, contents []*models.Content) ([]*ContentResponse, error) {
	out := make([]*ContentResponse, 0, len(contents))
	for _, c := range contents {
		r, err := NewContentResponse(f, c, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
