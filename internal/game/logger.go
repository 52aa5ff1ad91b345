package game

import (
	"log"
	"os"
)

var (
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
)

// SetupLogging routes host logs to stdout and stderr. Debug output is only
// produced when debug is set.
func SetupLogging(debug bool) {
	infoLogger = log.New(os.Stdout, "", log.LstdFlags)
	errorLogger = log.New(os.Stderr, "error: ", log.LstdFlags)
	log.SetOutput(errorLogger.Writer())

	debugLogger = nil
	if debug {
		debugLogger = log.New(os.Stdout, "debug: ", log.LstdFlags|log.Lmicroseconds)
	}
}

func logInfo(format string, v ...interface{}) {
	if infoLogger != nil {
		infoLogger.Printf(format, v...)
	}
}

func logError(format string, v ...interface{}) {
	if errorLogger != nil {
		errorLogger.Printf(format, v...)
	}
}

func logDebug(format string, v ...interface{}) {
	if debugLogger != nil {
		debugLogger.Printf(format, v...)
	}
}
