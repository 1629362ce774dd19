package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Loggers default to discarding so packages can log before Initialize runs.
var (
	InfoLog    = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog   = log.New(io.Discard, "", 0)
)

var logFileName = filepath.Join(os.TempDir(), "customgrid.log")

var globalLogFile *os.File

// Initialize opens the log file and sets up the Info, Warning and Error
// loggers. It also initializes debug logging. Call Close when done.
func Initialize() {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open log file %s: %s\n", logFileName, err)
		InitDebug()
		return
	}

	InfoLog = log.New(f, "INFO:", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(f, "WARNING:", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(f, "ERROR:", log.Ldate|log.Ltime|log.Lshortfile)

	globalLogFile = f
	InitDebug()
}

// Close closes the log files.
func Close() {
	CloseDebug()
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
	fmt.Fprintln(os.Stderr, "wrote logs to "+logFileName)
}

// FileName returns the path of the log file.
func FileName() string {
	return logFileName
}
