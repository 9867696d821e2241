package logging

// LogMessage is any message that can be handed to the logger
type LogMessage interface {
	isError() bool
	display()
}

// UnitMessage is an error or warning attached to a single compilation unit
type UnitMessage struct {
	// FilePath is the path of the unit (its source file or manifest)
	FilePath string

	Message string
	IsError bool
}

func (um *UnitMessage) isError() bool {
	return um.IsError
}

// ConfigError is an error related to project or compiler configuration
type ConfigError struct {
	Kind, Message string
}

func (ce *ConfigError) isError() bool {
	return true
}

// BuildWarning is a non-fatal problem in the build process that isn't tied to
// user code
type BuildWarning struct {
	Kind, Message string
}

func (bw *BuildWarning) isError() bool {
	return false
}
