package fullsend

import "go.uber.org/zap"

// ZapLogger adapts a [zap.SugaredLogger] to the [RequestLogger] interface.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps logger for use with [WithRequestLogger].
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: logger.Sugar()}
}

func (l *ZapLogger) Errorf(format string, v ...any) { l.sugar.Errorf(format, v...) }
func (l *ZapLogger) Warnf(format string, v ...any)  { l.sugar.Warnf(format, v...) }
func (l *ZapLogger) Debugf(format string, v ...any) { l.sugar.Debugf(format, v...) }
