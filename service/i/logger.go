package i

// Logger defines the leveled logging surface the services write to.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
