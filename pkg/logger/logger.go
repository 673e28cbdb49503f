package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Uploader is the object store the log file gets shipped to.
type Uploader interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

// Logger that we will use to save our logs.
// Every line goes to the console and to a temporary file that can be uploaded later.
type NewLogger struct {
	mu       sync.Mutex
	console  io.Writer
	logFile  *os.File
	filePath string
}

// Create the log instance with a temporary file.
func CreateLogger() (*NewLogger, error) {
	f, err := os.CreateTemp("", "log-*.log")
	if err != nil {
		return nil, err
	}

	return &NewLogger{
		console:  os.Stdout,
		logFile:  f,
		filePath: f.Name(),
	}, nil
}

// SetOutput replaces the console writer.
func (l *NewLogger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.console = w
}

// Log a simple info.
func (l *NewLogger) Infof(format string, args ...any) {
	l.write("[INFO]", format, args...)
}

// Log a error.
func (l *NewLogger) Errorf(format string, args ...any) {
	l.write("[ERROR]", format, args...)
}

// Write a empty line.
func (l *NewLogger) EmptyLine() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logFile.WriteString("\n")
}

// Write something to the logger.
func (l *NewLogger) write(infoType string, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("%-8s %s %s\n", infoType, timestamp, fmt.Sprintf(format, args...))

	if l.console != nil {
		io.WriteString(l.console, line)
	}
	l.logFile.WriteString(line)
}

// Clean the file contents.
func (l *NewLogger) CleanFile() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cleanFile()
}

func (l *NewLogger) cleanFile() {
	l.logFile.Truncate(0)
	l.logFile.Seek(0, 0)
}

// Upload the log file under objectKey and clean it afterwards.
func (l *NewLogger) UploadTo(ctx context.Context, uploader Uploader, objectKey string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	info, err := l.logFile.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat log file: %v", err)
	}

	// Nothing was logged since the last upload.
	if info.Size() == 0 {
		return nil
	}

	if _, err := l.logFile.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind file: %v", err)
	}

	if _, err := uploader.Put(ctx, objectKey, l.logFile, info.Size(), "text/plain"); err != nil {
		// Keep appending after the lines that failed to ship.
		l.logFile.Seek(0, io.SeekEnd)
		return fmt.Errorf("failed to upload %s: %v", objectKey, err)
	}

	// Clean the file after sending.
	l.cleanFile()

	return nil
}

// Close closes and removes the temporary file.
func (l *NewLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logFile.Close()
	return os.Remove(l.filePath)
}
