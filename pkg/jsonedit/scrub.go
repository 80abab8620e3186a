package jsonedit

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const redactedPlaceholder = "[REDACTED]"

// Delete removes each path in `paths` from input `jsonBytes`.
func Delete(jsonBytes []byte, paths []string) ([]byte, error) {
	var err error
	for _, path := range paths {
		jsonBytes, err = sjson.DeleteBytes(jsonBytes, path)
		if err != nil {
			return jsonBytes, err
		}
	}
	return jsonBytes, nil
}

// Redact replaces the value at each path in `paths` with a placeholder,
// leaving the rest of the document intact. Paths that do not exist are
// skipped.
func Redact(jsonBytes []byte, paths []string) ([]byte, error) {
	for _, path := range paths {
		value := gjson.GetBytes(jsonBytes, path)
		if !value.Exists() {
			continue
		}
		redacted, err := sjson.SetBytes(jsonBytes, path, redactedPlaceholder)
		if err != nil {
			return jsonBytes, err
		}
		jsonBytes = redacted
	}
	return jsonBytes, nil
}
