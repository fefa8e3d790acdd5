package domain

import (
	"fmt"
	"strings"
)

// Confidios directory names are limited server-side; reject early so no
// remote call is made for a path that can never succeed.
const maxDirectoryNameLength = 24

// ValidateNewDirectoryPath checks a mkdir target before any remote call.
// The path must live under the configured base folder, must not traverse
// upward, and its final segment must be a short name without spaces.
func ValidateNewDirectoryPath(path, baseFolder string) error {
	if path == "" {
		return NewValidationError("path", path, "path is required")
	}
	if baseFolder == "" || !strings.HasPrefix(path, baseFolder) {
		return NewValidationError("path", path, fmt.Sprintf("path must start with the base folder %q", baseFolder))
	}

	segments := strings.Split(path, "/")
	for _, segment := range segments {
		if segment == ".." || segment == "." {
			return NewValidationError("path", path, "path must not contain relative segments")
		}
	}

	name := segments[len(segments)-1]
	if name == "" {
		return NewValidationError("path", path, "directory name is required")
	}
	if len(name) > maxDirectoryNameLength {
		return NewValidationError("path", path,
			fmt.Sprintf("directory name must be at most %d characters", maxDirectoryNameLength))
	}
	if strings.ContainsAny(name, " \t") {
		return NewValidationError("path", path, "directory name must not contain spaces")
	}

	return nil
}
