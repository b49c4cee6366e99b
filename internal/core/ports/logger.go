package ports

// LoggerPort is the logging surface the core depends on. The TUI owns stdout,
// so the concrete implementation writes elsewhere.
type LoggerPort interface {
	Info(msg string)
	Error(msg string, err error)
	Warning(msg string)
	Close()
}
