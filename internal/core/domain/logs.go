package domain

// LogFileInfo describes the on-disk log file.
type LogFileInfo struct {
	// Path is the log file location.
	Path string

	// SizeBytes is the file size.
	SizeBytes int64

	// Entries is the number of log lines.
	Entries int
}
