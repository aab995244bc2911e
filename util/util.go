package keagenutil

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Environment variable holding the logging level.
const LogLevelEnvName = "KEA_GEN_LOG_LEVEL"

// Converts the logging level name (DEBUG, INFO, WARN, ERROR) to the
// logrus level. Unknown or empty names fall back to INFO.
func ParseLogLevel(name string) log.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return log.DebugLevel
	case "WARN", "WARNING":
		return log.WarnLevel
	case "ERROR":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Configures the standard logger. The logs go to stderr because stdout
// carries the generated document.
func SetupLogging() {
	setupLogging(os.Stderr, os.Getenv(LogLevelEnvName))
}

func setupLogging(output io.Writer, level string) {
	log.SetLevel(ParseLogLevel(level))
	log.SetOutput(output)
	log.SetReportCaller(true)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			// Grab filename and line of current frame and add it to log entry
			_, filename := path.Split(f.File)
			return "", fmt.Sprintf("%20v:%-5d", filename, f.Line)
		},
	})
}
