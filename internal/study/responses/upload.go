package responses

import (
	"maps"
	"time"

	"cobalt/internal/format"
	"cobalt/internal/platform/storage"
	"cobalt/internal/study/models"
	dErrors "cobalt/pkg/domain-errors"
)

type PresignedUploadResponse struct {
	HTTPMethod                     string            `json:"httpMethod"`
	URL                            string            `json:"url"`
	AccessURL                      string            `json:"accessUrl"`
	ContentType                    string            `json:"contentType"`
	ExpirationTimestamp            time.Time         `json:"expirationTimestamp"`
	ExpirationTimestampDescription string            `json:"expirationTimestampDescription"`
	HTTPHeaders                    map[string]string `json:"httpHeaders"`
}

// NewPresignedUploadResponse renders the PUT a client performs against storage. Headers
// are copied so the response never aliases the signer's map.
func NewPresignedUploadResponse(f *format.Formatter, upload *storage.PresignedUpload) (*PresignedUploadResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if upload == nil {
		return nil, dErrors.Required("presigned upload")
	}
	headers := make(map[string]string, len(upload.HTTPHeaders))
	maps.Copy(headers, upload.HTTPHeaders)
	return &PresignedUploadResponse{
		HTTPMethod:                     upload.HTTPMethod,
		URL:                            upload.URL,
		AccessURL:                      upload.AccessURL,
		ContentType:                    upload.ContentType,
		ExpirationTimestamp:            upload.ExpirationTimestamp,
		ExpirationTimestampDescription: f.FormatTimestamp(upload.ExpirationTimestamp, format.StyleMedium, format.StyleShort),
		HTTPHeaders:                    headers,
	}, nil
}

type FileUploadResultResponse struct {
	FileUploadID        string                   `json:"fileUploadId"`
	Filename            string                   `json:"filename"`
	FilesizeDescription string                   `json:"filesizeDescription"`
	PresignedUpload     *PresignedUploadResponse `json:"presignedUpload"`
}

func NewFileUploadResultResponse(f *format.Formatter, upload *models.StudyFileUpload, presigned *storage.PresignedUpload) (*FileUploadResultResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if upload == nil {
		return nil, dErrors.Required("file upload")
	}
	p, err := NewPresignedUploadResponse(f, presigned)
	if err != nil {
		return nil, err
	}
	return &FileUploadResultResponse{
		FileUploadID:        upload.ID.String(),
		Filename:            upload.Filename,
		FilesizeDescription: f.FormatFilesize(upload.FilesizeInBytes, format.FilesizeBinary),
		PresignedUpload:     p,
	}, nil
}
