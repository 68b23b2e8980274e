// export_test.go exports private functions for white-box testing.
package logger

// Error formatting internals.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)
