package models

import (
	"path"
	"strings"

	dErrors "cobalt/pkg/domain-errors"
	s "cobalt/pkg/string"
	"cobalt/pkg/validation"
)

// CreateFileUploadRequest asks for a presigned URL to upload one file. The check-in action
// is optional for uploads not tied to a check-in.
type CreateFileUploadRequest struct {
	AccountCheckInActionID string `json:"accountCheckInActionId" validate:"omitempty,uuid"`
	Filename               string `json:"filename" validate:"required,notblank"`
	ContentType            string `json:"contentType" validate:"required,mimetype"`
	FilesizeInBytes        int64  `json:"filesizeInBytes" validate:"gte=0"`
}

// Normalize trims fields and reduces the filename to its base name.
func (r *CreateFileUploadRequest) Normalize() {
	s.TrimStrings(&r.AccountCheckInActionID, &r.Filename, &r.ContentType)
	r.ContentType = strings.ToLower(r.ContentType)
	if r.Filename != "" {
		r.Filename = path.Base(strings.ReplaceAll(r.Filename, `\`, "/"))
	}
}

func (r *CreateFileUploadRequest) Validate() error {
	if err := validation.Validate(r); err != nil {
		return err
	}
	if r.Filename == "." || r.Filename == "/" {
		return dErrors.New(dErrors.CodeValidation, "filename is required")
	}
	return validation.CheckStringLength("filename", r.Filename, validation.MaxFilenameLength)
}
