package fullsend

// RequestLogger is the interface the [Client] logs HTTP request activity
// through. It matches resty's logger contract, so the underlying transport
// logs through it as well. Implement it to integrate with your logging
// library and supply the implementation via [WithRequestLogger], or use
// [NewZapLogger].
//
// Message bodies may appear in debug output; credentials never do.
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger discards all log output. It is the default when no logger is
// supplied to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}
