package util

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// ValidateMimeType sniffs the stream's real MIME type against a list
// of allowed prefixes or full types, e.g. "image/" or
// "application/pdf".
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// UploadFilename builds a collision-resistant storage name: millisecond
// timestamp prefix plus the sanitized original name.
func UploadFilename(originalName string) string {
	sanitized := unsafeFilenameChars.ReplaceAllString(originalName, "_")
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), sanitized)
}
