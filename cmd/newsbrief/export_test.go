package main

// Exported for tests in package main_test.
var (
	AutoProvider = autoProvider
	NewExtractor = newExtractor
	ReportError  = reportError
	LogLevel     = logLevel
)
