package logging

// logger is a global reference to a shared Logger (created/initialized with the
// compiler, but separated for general usage).  It is silent until the CLI
// initializes it.
var logger = newLogger(LogLevelSilent)

// Initialize initializes the global logger with the provided log level
func Initialize(loglevelname string) {
	var loglevel int
	switch loglevelname {
	case "silent":
		loglevel = LogLevelSilent
	case "error":
		loglevel = LogLevelError
	case "warn", "warning":
		loglevel = LogLevelWarning
	// everything else (including invalid log levels) should default to verbose
	default:
		loglevel = LogLevelVerbose
	}

	logger = newLogger(loglevel)
}

// ShouldProceed indicates whether or not the log module has encountered an errors.
// Units are processed concurrently so this acts as the error accumulator.
func ShouldProceed() bool {
	logger.m.Lock()
	defer logger.m.Unlock()

	return logger.errorCount == 0
}

// -----------------------------------------------------------------------------
// NOTE: All log functions will only display if the appropriate log level is
// set.  Most log functions will simply fail silently if below their appropriate
// log level.

// LogUnitError logs an error produced while building a compilation unit
func LogUnitError(filePath, message string) {
	logger.handleMsg(&UnitMessage{FilePath: filePath, Message: message, IsError: true})
}

// LogUnitWarning logs a warning produced while building a compilation unit
func LogUnitWarning(filePath, message string) {
	logger.handleMsg(&UnitMessage{FilePath: filePath, Message: message, IsError: false})
}

// LogConfigError logs an error related to project or compiler configuration
func LogConfigError(kind, message string) {
	logger.handleMsg(&ConfigError{Kind: kind, Message: message})
}

// LogBuildWarning logs a warning in the build process
func LogBuildWarning(kind, warning string) {
	logger.handleMsg(&BuildWarning{Kind: kind, Message: warning})
}

// -----------------------------------------------------------------------------
// Below are the "aesthetic" log functions that only run at the verbose log
// level.

// LogCompileHeader displays the compiler version and the module being built
func LogCompileHeader(modName string, checkOnly bool) {
	if logger.LogLevel == LogLevelVerbose {
		displayCompileHeader(modName, checkOnly)
	}
}

// LogBeginPhase starts the spinner for a named compilation phase
func LogBeginPhase(phase string) {
	if logger.LogLevel == LogLevelVerbose {
		displayBeginPhase(phase)
	}
}

// LogEndPhase stops the current phase spinner
func LogEndPhase() {
	if logger.LogLevel == LogLevelVerbose {
		displayEndPhase(ShouldProceed())
	}
}

// LogCompilationFinished displays all deferred warnings and the closing
// summary: units emitted and bytes written
func LogCompilationFinished(unitCount int, bytesWritten uint64) {
	warningCount := logger.flushWarnings()

	if logger.LogLevel > LogLevelSilent {
		logger.m.Lock()
		errorCount := logger.errorCount
		logger.m.Unlock()

		displayCompilationFinished(errorCount == 0, errorCount, warningCount, unitCount, bytesWritten)
	}
}
