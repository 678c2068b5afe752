package validation

import (
	"fmt"

	dErrors "cobalt/pkg/domain-errors"
)

const (
	// MaxBodySize is the maximum allowed request body size (64 KB).
	MaxBodySize = 64 * 1024

	// MaxSupplements caps the supplements a single request may ask for.
	MaxSupplements = 8

	// MaxUploadMetadataEntries caps the x-amz-meta-* entries on a presigned upload.
	MaxUploadMetadataEntries = 10

	// MaxFilenameLength is the longest accepted upload filename.
	MaxFilenameLength = 255

	// MaxFingerprintLength is the longest accepted client device fingerprint.
	MaxFingerprintLength = 256
)

// CheckSliceCount validates that a slice does not exceed the maximum count.
func CheckSliceCount(fieldName string, count, max int) error {
	if count > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("too many %s: max %d allowed", fieldName, max))
	}
	return nil
}

// CheckStringLength validates that a string does not exceed the maximum length.
func CheckStringLength(fieldName, value string, max int) error {
	if len(value) > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s exceeds max length of %d", fieldName, max))
	}
	return nil
}
