// Package logfile opens the per-invocation log file and formats its lines as
// "[<timestamp>] <line> <logger-name> - <LEVEL> - <message>".
package logfile

import (
	"bytes"
	"fmt"
	"goDataIngestion/pkg/utils"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	CFileNameLayout  = "01_02_2006_15_04_05"
	CTimestampLayout = "2006-01-02 15:04:05,000"
	CRootName        = "root"
	CNameField       = "logger"
)

type LogFile struct {
	*logrus.Logger
	Path string
	file *os.File
}

// New creates dir when needed and opens <dir>/<MM_DD_YYYY_HH_MM_SS>.log named after now.
func New(dir, name string, level logrus.Level, now time.Time) (*LogFile, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, now.Format(CFileNameLayout)+".log")
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	logger := logrus.New()
	logger.SetOutput(file)
	logger.SetFormatter(&Formatter{Name: name})
	logger.SetReportCaller(true)
	logger.SetLevel(level)

	return &LogFile{Logger: logger, Path: path, file: file}, nil
}

func (l *LogFile) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return errors.WithStack(err)
}

type Formatter struct {
	Name            string
	TimestampFormat string
}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = CTimestampLayout
	}
	name := f.Name
	if v, ok := entry.Data[CNameField]; ok {
		name = fmt.Sprint(v)
	}
	if name == "" {
		name = CRootName
	}
	line := 0
	if entry.HasCaller() {
		line = entry.Caller.Line
	}

	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}
	fmt.Fprintf(b, "[%s] %d %s - %s - %s",
		entry.Time.Format(layout), line, name,
		strings.ToUpper(entry.Level.String()), entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != CNameField {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
