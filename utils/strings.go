package utils

import (
	"regexp"
	"strings"
)

var (
	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
)

// CleanFileName removes invalid characters from a filename
func CleanFileName(filename string) string {
	cleaned := invalidFileChars.ReplaceAllString(filename, "_")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = whitespaceRun.ReplaceAllString(cleaned, "_")
	return cleaned
}

// DisplayNameFromEmail derives a human-readable name from the local part
// of an email address ("maria.lopez@x.com" -> "Maria.lopez")
func DisplayNameFromEmail(email string) string {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}
	local = strings.TrimSpace(local)
	if local == "" {
		return SentinelActor
	}
	return strings.ToUpper(string(local[0])) + strings.ToLower(local[1:])
}

// FileExtension returns the lowercase extension of a filename including the dot
func FileExtension(filename string) string {
	if dot := strings.LastIndex(filename, "."); dot >= 0 {
		return strings.ToLower(filename[dot:])
	}
	return ""
}
