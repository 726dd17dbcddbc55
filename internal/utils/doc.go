// Package utils exposes reusable helpers consumed by the CLI and its commands.
//
// It houses ConfigurationLoader and LoggerFactory abstractions that integrate
// Viper, environment variables, zap logging, and rotating log files.
package utils
