package responses

import (
	"cobalt/internal/content/models"
	dErrors "cobalt/pkg/domain-errors"
)

type TagResponse struct {
	TagID       string `json:"tagId"`
	Name        string `json:"name"`
	URLName     string `json:"urlName"`
	Description string `json:"description"`
	TagGroupID  string `json:"tagGroupId"`
}

func NewTagResponse(tag *models.Tag) (*TagResponse, error) {
	if tag == nil {
		return nil, dErrors.Required("tag")
	}
	return &TagResponse{
		TagID:       tag.ID.String(),
		Name:        tag.Name,
		URLName:     tag.URLName,
		Description: tag.Description,
		TagGroupID:  tag.TagGroupID.String(),
	}, nil
}

type TagGroupResponse struct {
	TagGroupID  string `json:"tagGroupId"`
	ColorID     string `json:"colorId"`
	Name        string `json:"name"`
	URLName     string `json:"urlName"`
	Description string `json:"description"`
	Deprecated  bool   `json:"deprecated"`
}

func NewTagGroupResponse(group *models.TagGroup) (*TagGroupResponse, error) {
	if group == nil {
		return nil, dErrors.Required("tag group")
	}
	return &TagGroupResponse{
		TagGroupID:  group.ID.String(),
		ColorID:     group.ColorID,
		Name:        group.Name,
		URLName:     group.URLName,
		Description: group.Description,
		Deprecated:  group.Deprecated,
	}, nil
}
