package assessment

import "strings"

// Risk-indicating phrases scanned for in free text. Every match is reported
// back to the caller; only the trigger subset raises the emergency flag.
var riskKeywords = []string{
	"suicide", "kill myself", "killing myself", "suicidal", "hurt myself",
	"no point", "hopeless", "die", "death", "kill me",
}

// Stronger phrases that indicate immediate concern.
var emergencyTriggers = []string{
	"suicide", "kill myself", "killing myself", "suicidal", "hurt myself", "kill me",
}

// ScanText runs a case-insensitive substring scan over the free-text input.
// It returns whether an emergency trigger is present and every risk keyword
// found, in list order. Empty text is not an error: (false, nil).
func ScanText(text string) (bool, []string) {
	if text == "" {
		return false, nil
	}
	lowered := strings.ToLower(text)

	var found []string
	for _, k := range riskKeywords {
		if strings.Contains(lowered, k) {
			found = append(found, k)
		}
	}
	for _, k := range emergencyTriggers {
		if strings.Contains(lowered, k) {
			return true, found
		}
	}
	return false, found
}
