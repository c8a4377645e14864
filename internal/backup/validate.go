package backup

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/julianstephens/gryd/internal/constants"
)

// maxReportedViolations bounds how many violations the error message names;
// the count of the rest is appended.
const maxReportedViolations = 3

// ValidationError aggregates every structural violation found in a document.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	n := len(e.Violations)
	shown := e.Violations
	if n > maxReportedViolations {
		shown = shown[:maxReportedViolations]
	}
	msg := fmt.Sprintf("invalid backup document: %s", strings.Join(shown, "; "))
	if n > len(shown) {
		msg += fmt.Sprintf(" (+%d more)", n-len(shown))
	}
	return msg
}

// Validate structurally checks a raw backup document. It returns a
// *ValidationError naming the violations, or nil when the document is
// acceptable. Nothing is written anywhere: callers only touch storage after
// this passes.
func Validate(data []byte) error {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return &ValidationError{Violations: []string{"document is not valid JSON"}}
	}

	var violations []string

	if _, ok := doc["version"].(string); !ok {
		violations = append(violations, "document must have a version string")
	}
	if _, ok := doc["exportedAt"].(string); !ok {
		violations = append(violations, "document must have an exportedAt timestamp")
	}

	habits, ok := doc["habits"].([]any)
	if !ok {
		violations = append(violations, "document must have a habits array")
	} else {
		for i, raw := range habits {
			violations = append(violations, validateHabit(i, raw)...)
		}
	}

	completions, ok := doc["completions"].(map[string]any)
	if !ok {
		violations = append(violations, "document must have a completions object")
	} else {
		violations = append(violations, validateCompletions(completions)...)
	}

	settings, ok := doc["settings"].(map[string]any)
	if !ok {
		violations = append(violations, "document must have a settings object")
	} else {
		violations = append(violations, validateSettings(settings)...)
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func validateHabit(index int, raw any) []string {
	habit, ok := raw.(map[string]any)
	if !ok {
		return []string{fmt.Sprintf("habit %d: must be an object", index)}
	}

	var violations []string
	for _, field := range []string{"id", "name", "color", "createdAt"} {
		if s, ok := habit[field].(string); !ok || s == "" {
			violations = append(violations, fmt.Sprintf("habit %d: must have a string %s", index, field))
		}
	}
	for _, field := range []string{"frequency", "order"} {
		if value, present := habit[field]; present {
			if _, ok := value.(float64); !ok {
				violations = append(violations, fmt.Sprintf("habit %d: %s must be a number", index, field))
			}
		}
	}
	return violations
}

func validateCompletions(completions map[string]any) []string {
	var violations []string
	for habitID, raw := range completions {
		dates, ok := raw.(map[string]any)
		if !ok {
			violations = append(violations, fmt.Sprintf("completions for habit %s must be an object", habitID))
			continue
		}
		for date, count := range dates {
			if _, ok := count.(float64); !ok {
				violations = append(violations, fmt.Sprintf("completion count for habit %s on %s must be a number", habitID, date))
			}
		}
	}
	return violations
}

func validateSettings(settings map[string]any) []string {
	recognized := make(map[string]bool, len(constants.SettingKeys))
	for _, key := range constants.SettingKeys {
		recognized[key] = true
	}

	var violations []string
	for key, value := range settings {
		if !recognized[key] {
			violations = append(violations, fmt.Sprintf("unknown setting: %s", key))
			continue
		}
		if _, ok := value.(bool); !ok {
			violations = append(violations, fmt.Sprintf("setting %s must be a boolean", key))
		}
	}
	return violations
}
