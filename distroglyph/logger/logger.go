package logger

// Logger is the logging interface consumed by the distroglyph library. Applications provide an implementation
// through distroglyph.SetLogger; by default nothing is logged.
type Logger interface {
	Errorf(format string, args ...interface{})
	Error(args ...interface{})
	Warnf(format string, args ...interface{})
	Warn(args ...interface{})
	Infof(format string, args ...interface{})
	Info(args ...interface{})
	Debugf(format string, args ...interface{})
	Debug(args ...interface{})
}
