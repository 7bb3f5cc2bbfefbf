package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "search.result_limit")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidThemes returns the built-in theme names.
// Must match styles.ThemeNames (defined separately to avoid circular import).
func ValidThemes() []string {
	return []string{"default", "dracula", "nord", "monokai", "plain"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateSource()...)
	errors = append(errors, c.validateSearch()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateSource validates the SourceConfig
func (c *Config) validateSource() []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(c.Source.Location) == "" {
		errors = append(errors, ValidationError{
			Field:   "source.location",
			Value:   c.Source.Location,
			Message: "must not be empty",
		})
	}

	// The endpoint is host[:port]; a scheme belongs in use_ssl.
	if ep := c.Source.S3.Endpoint; ep != "" {
		if strings.Contains(ep, "://") || strings.Contains(ep, "/") {
			errors = append(errors, ValidationError{
				Field:   "source.s3.endpoint",
				Value:   ep,
				Message: "must be host[:port] without scheme or path",
			})
		} else if _, err := url.Parse("//" + ep); err != nil {
			errors = append(errors, ValidationError{
				Field:   "source.s3.endpoint",
				Value:   ep,
				Message: "is not a valid host",
			})
		}
	}

	return errors
}

// validateSearch validates the SearchConfig
func (c *Config) validateSearch() []ValidationError {
	var errors []ValidationError

	if c.Search.ResultLimit <= 0 {
		errors = append(errors, ValidationError{
			Field:   "search.result_limit",
			Value:   c.Search.ResultLimit,
			Message: "must be positive",
		})
	}

	// Rendering thousands of rows defeats the point of a cap
	const maxResultLimit = 1000
	if c.Search.ResultLimit > maxResultLimit {
		errors = append(errors, ValidationError{
			Field:   "search.result_limit",
			Value:   c.Search.ResultLimit,
			Message: fmt.Sprintf("exceeds maximum of %d", maxResultLimit),
		})
	}

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	// Validate log level
	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	// Max size must be positive
	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}

	// Reasonable upper bound for log file size
	const maxLogSizeMB = 1000 // 1GB
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	// Max backups must be non-negative
	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}
