package calendar

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// FileSource implements Source using a local text file of blocked days
type FileSource struct {
	filePath string
	logger   *zap.Logger
	set      DisabledSet
	notes    map[Date]string
	loaded   bool
}

// NewFileSource creates a new FileSource instance
func NewFileSource(filePath string, logger *zap.Logger) *FileSource {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &FileSource{
		filePath: filePath,
		logger:   logger,
		notes:    make(map[Date]string),
	}
}

// Load loads blocked days from file
func (fs *FileSource) Load() error {
	file, err := os.Open(fs.filePath)
	if err != nil {
		return fmt.Errorf("failed to open exclusion file: %w", err)
	}
	defer file.Close()

	set := NewDisabledSet()
	notes := make(map[Date]string)

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Format: YYYY-MM-DD [note]
		// Example: 2025-06-10 team offsite
		dateStr, note, _ := strings.Cut(line, " ")

		date, err := ParseDate(dateStr)
		if err != nil {
			fs.logger.Warn("Failed to parse date",
				zap.String("file", fs.filePath),
				zap.Int("line", lineNo),
				zap.Error(err))
			continue
		}

		set.dates[date] = struct{}{}
		if note = strings.TrimSpace(note); note != "" {
			notes[date] = note
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading exclusion file: %w", err)
	}

	fs.set = set
	fs.notes = notes
	fs.loaded = true

	fs.logger.Info("Exclusion file loaded",
		zap.String("file", fs.filePath),
		zap.Int("dates", set.Len()))

	return nil
}

// Disabled returns the blocked days from the file, loading it on first use
func (fs *FileSource) Disabled(DateRange) (DisabledSet, error) {
	if !fs.loaded {
		if err := fs.Load(); err != nil {
			return DisabledSet{}, err
		}
	}
	return fs.set, nil
}

// Note returns the annotation recorded for a blocked day, if any
func (fs *FileSource) Note(d Date) string {
	return fs.notes[d]
}
