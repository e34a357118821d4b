package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateExtension(t *testing.T) {
	assert.NoError(t, ValidateExtension("report.pdf", AllowedDocumentExtensions))
	assert.NoError(t, ValidateExtension("ARCHIVE.ZIP", AllowedDocumentExtensions))
	assert.NoError(t, ValidateExtension("intro.mp4", AllowedMediaExtensions))
	assert.NoError(t, ValidateExtension("avatar.JPG", AllowedImageExtensions))

	assert.ErrorIs(t, ValidateExtension("malware.exe", AllowedDocumentExtensions), ErrInvalidExtension)
	assert.ErrorIs(t, ValidateExtension("movie.mp4", AllowedDocumentExtensions), ErrInvalidExtension)
	assert.ErrorIs(t, ValidateExtension("noextension", AllowedImageExtensions), ErrInvalidExtension)
}
