package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
	// SetVerbose switches between debug-level and info-level output.
	SetVerbose(enable bool)
	// SetQuiet restricts output to errors.
	SetQuiet(enable bool)
}
