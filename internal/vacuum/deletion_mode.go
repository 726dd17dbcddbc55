package vacuum

import (
	"fmt"
	"strings"
)

const (
	unsupportedDeletionModeTemplateConstant = "unsupported delete mode %q (expected %s or %s)"
)

// DeletionMode selects how git removes a branch.
type DeletionMode string

// Supported deletion modes.
const (
	// DeletionModeForce removes branches regardless of merge state.
	DeletionModeForce DeletionMode = "force"
	// DeletionModeSafe refuses to remove branches that are not fully merged.
	DeletionModeSafe DeletionMode = "safe"
)

// ParseDeletionMode converts textual input into a DeletionMode. Blank input selects DeletionModeForce.
func ParseDeletionMode(rawValue string) (DeletionMode, error) {
	switch DeletionMode(strings.ToLower(strings.TrimSpace(rawValue))) {
	case "", DeletionModeForce:
		return DeletionModeForce, nil
	case DeletionModeSafe:
		return DeletionModeSafe, nil
	default:
		return "", fmt.Errorf(unsupportedDeletionModeTemplateConstant, rawValue, DeletionModeForce, DeletionModeSafe)
	}
}

// UnmarshalText lets configuration decoding produce a DeletionMode.
func (mode *DeletionMode) UnmarshalText(text []byte) error {
	parsedMode, parseError := ParseDeletionMode(string(text))
	if parseError != nil {
		return parseError
	}
	*mode = parsedMode
	return nil
}

// IsForced reports whether branches are removed regardless of merge state.
func (mode DeletionMode) IsForced() bool {
	return mode != DeletionModeSafe
}
