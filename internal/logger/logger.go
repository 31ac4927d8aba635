package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"
)

const defaultDirName = ".high-low"

var (
	debugLog *os.File
	logPath  string
)

// Options controls where the debug log goes.
type Options struct {
	Dir       string // defaults to ~/.high-low
	MaxSizeMB int    // rotate when the file grows past this, defaults to 10
	SessionID string // prefixed to every line
}

// Init points the standard logger at <dir>/debug.log. The terminal belongs
// to the game, so nothing is logged to stdout or stderr.
func Init(opts Options) error {
	logDir := opts.Dir
	if logDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		logDir = filepath.Join(homeDir, defaultDirName)
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	maxSize := int64(opts.MaxSizeMB)
	if maxSize <= 0 {
		maxSize = 10
	}

	var err error
	logPath = filepath.Join(logDir, "debug.log")
	debugLog, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	if info, err := debugLog.Stat(); err == nil && info.Size() > maxSize*1024*1024 {
		_ = debugLog.Close()
		backupPath := filepath.Join(logDir, fmt.Sprintf("debug.log.%d", time.Now().Unix()))
		_ = os.Rename(logPath, backupPath)
		debugLog, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to create new log file: %w", err)
		}
	}

	log.SetOutput(debugLog)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	if opts.SessionID != "" {
		log.SetPrefix("[" + opts.SessionID + "] ")
	}

	LogInfo("Logger initialized, log file: %s", logPath)
	return nil
}

// Discard drops all log output. Used when the log file cannot be opened.
func Discard() {
	log.SetOutput(io.Discard)
	logPath = ""
}

// Close closes the debug log file
func Close() {
	if debugLog != nil {
		_ = debugLog.Close()
		debugLog = nil
	}
}

// LogInfo logs an info message
func LogInfo(format string, args ...any) {
	log.Printf("[INFO] "+format, args...)
}

// LogError logs an error message
func LogError(format string, args ...any) {
	log.Printf("[ERROR] "+format, args...)
}

// LogPanic logs a panic with stack trace
func LogPanic(r any) {
	log.Printf("[PANIC] %v\n%s", r, debug.Stack())
}

// GetLogPath returns the current log file path, or "" when logging is
// discarded
func GetLogPath() string {
	return logPath
}
