package utils

import (
	"fmt"
	"math/rand"
)

// GenerateDocumentKey builds a collision-resistant storage key for an
// uploaded file: timestamp, position in the batch, random suffix, and the
// original extension.
func GenerateDocumentKey(timestampMillis int64, index int, originalName string) string {
	return fmt.Sprintf("%d_%d_%s%s", timestampMillis, index, randomString(KeyCharset, KeySuffixLength), FileExtension(originalName))
}

// randomString generates a random string with given charset and length
func randomString(charset string, length int) string {
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
