package common

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
)

// fieldNameMap maps verbose field names to terse equivalents.
var fieldNameMap = map[string]string{
	"name":        "n",
	"link":        "u",
	"opens":       "o",
	"deadline":    "d",
	"level":       "lv",
	"eligibility": "el",
	"includes":    "in",
}

// FilterResultFields converts a record to a map, keeping only the
// comma-separated fields requested (all fields when fieldsStr is empty).
// In terse mode keys are shortened; callers may request either form.
func FilterResultFields(result interface{}, fieldsStr string, isTerse bool) map[string]interface{} {
	fullMap := structToMap(result)
	if isTerse {
		fullMap = terseKeys(fullMap)
	}

	if strings.TrimSpace(fieldsStr) == "" {
		return fullMap
	}

	includeFields := make(map[string]bool)
	for _, field := range strings.Split(fieldsStr, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if terseField, ok := fieldNameMap[field]; ok && isTerse {
			field = terseField
		}
		includeFields[field] = true
	}

	filtered := make(map[string]interface{})
	for key, value := range fullMap {
		if includeFields[key] {
			filtered[key] = value
		}
	}

	return filtered
}

func terseKeys(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for key, value := range m {
		if terse, ok := fieldNameMap[key]; ok {
			key = terse
		}
		out[key] = value
	}
	return out
}

// structToMap converts a struct to map[string]interface{} using JSON marshaling.
func structToMap(obj interface{}) map[string]interface{} {
	data, _ := json.Marshal(obj)
	var result map[string]interface{}
	_ = json.Unmarshal(data, &result)
	return result
}

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}
