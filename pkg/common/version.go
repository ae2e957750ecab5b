// Package common provides shared utilities and configuration for the
// planning service. It includes logging, configuration management, and
// version information.
package common

// Version is the current version of the planning service
const Version = "0.1.0"
