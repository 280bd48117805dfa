package interfaces

// LoggerInterface is the minimal sink archivist writes formatted lines to.
// *log.Logger and the *log.Logger returned by zap.NewStdLog both satisfy it.
type LoggerInterface interface {
	Println(v ...interface{})
}
