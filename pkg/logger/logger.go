package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	verboseMode bool
	log         = logrus.New()
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// SetVerbose enables or disables debug logging.
func SetVerbose(verbose bool) {
	verboseMode = verbose
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	return verboseMode
}

// Debugf logs a formatted debug message if verbose mode is enabled.
func Debugf(format string, v ...interface{}) {
	log.Debugf(format, v...)
}

// Infof logs a formatted informational message.
func Infof(format string, v ...interface{}) {
	log.Infof(format, v...)
}

// Errorf logs a formatted error message.
func Errorf(format string, v ...interface{}) {
	log.Errorf(format, v...)
}
