package vacuum

import "strings"

const (
	// DefaultRemoteNameConstant names the remote whose branches count as published.
	DefaultRemoteNameConstant = "origin"

	remoteConfigurationFieldConstant     = "remote"
	deleteModeConfigurationFieldConstant = "delete_mode"
	configurationKeySeparatorConstant    = "."
)

// CommandConfiguration captures persistent settings for the vacuum command.
type CommandConfiguration struct {
	RemoteName string       `mapstructure:"remote"`
	DeleteMode DeletionMode `mapstructure:"delete_mode"`
}

// DefaultCommandConfiguration returns baseline configuration values for the vacuum command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		RemoteName: DefaultRemoteNameConstant,
		DeleteMode: DeletionModeForce,
	}
}

// Sanitize trims whitespace and applies defaults to unset configuration values.
// An unrecognized deletion mode falls back to safe deletion.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.RemoteName = strings.TrimSpace(configuration.RemoteName)
	if len(sanitized.RemoteName) == 0 {
		sanitized.RemoteName = DefaultRemoteNameConstant
	}

	if parsedMode, parseError := ParseDeletionMode(string(configuration.DeleteMode)); parseError == nil {
		sanitized.DeleteMode = parsedMode
	} else {
		sanitized.DeleteMode = DeletionModeSafe
	}

	return sanitized
}

// DefaultConfigurationValues returns viper defaults for the command keyed beneath configurationKey.
func DefaultConfigurationValues(configurationKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKey + configurationKeySeparatorConstant + remoteConfigurationFieldConstant:     defaults.RemoteName,
		configurationKey + configurationKeySeparatorConstant + deleteModeConfigurationFieldConstant: string(defaults.DeleteMode),
	}
}
