package cmd

import (
	"fmt"
	"os"
	"path/filepath"
)

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// recordingLogger captures formatted messages at every level.
type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) add(level, format string, args ...interface{}) {
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Tracef(format string, args ...interface{}) { r.add("TRACE", format, args...) }
func (r *recordingLogger) Debugf(format string, args ...interface{}) { r.add("DEBUG", format, args...) }
func (r *recordingLogger) Infof(format string, args ...interface{})  { r.add("INFO", format, args...) }
func (r *recordingLogger) Warnf(format string, args ...interface{})  { r.add("WARN", format, args...) }
func (r *recordingLogger) Errorf(format string, args ...interface{}) { r.add("ERROR", format, args...) }
