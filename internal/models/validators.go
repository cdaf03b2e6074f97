package models

import (
	"fmt"
	"regexp"
	"strings"
)

// Every whitespace-separated word of an ingredient or recipe name must
// consist of letters, digits and a small set of punctuation.
var namePattern = regexp.MustCompile(`^[\p{L}\p{N}_%,"'«»&()-]+$`)

func ValidateName(value string) error {
	for _, word := range strings.Fields(value) {
		if !namePattern.MatchString(word) {
			return fmt.Errorf("invalid name value %q", word)
		}
	}
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("name must not be empty")
	}
	return nil
}

func ValidateTagColor(color string) error {
	if !strings.HasPrefix(color, "#") {
		return fmt.Errorf("hex color code must start with '#'")
	}
	for _, allowed := range TagColors {
		if strings.EqualFold(color, allowed) {
			return nil
		}
	}
	return fmt.Errorf("color %s is not in the allowed palette", color)
}
