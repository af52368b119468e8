package csvdb

import (
	"compress/gzip"
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type Writer struct {
	fw     *os.File
	zw     *gzip.Writer
	writer *csv.Writer
}

func newWriter(path, writeMode string) (*Writer, error) {
	ext := filepath.Ext(path)
	var zw *gzip.Writer
	var writer *csv.Writer

	flags := 0
	switch writeMode {
	case CWriteModeWrite:
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	default:
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}

	fw, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if ext == ".gz" || ext == ".gzip" {
		zw = gzip.NewWriter(fw)
		writer = csv.NewWriter(zw)
	} else {
		writer = csv.NewWriter(fw)
	}

	c := new(Writer)
	c.writer = writer
	c.fw = fw
	c.zw = zw

	return c, nil
}

func (c *Writer) write(record []string) error {
	return errors.WithStack(c.writer.Write(record))
}

func (c *Writer) flush() error {
	c.writer.Flush()
	return errors.WithStack(c.writer.Error())
}

// close reports the first error seen while closing the gzip stream and the file.
func (c *Writer) close() error {
	var err error
	if c.zw != nil {
		err = c.zw.Close()
		c.zw = nil
	}

	if c.fw != nil {
		if cerr := c.fw.Close(); err == nil {
			err = cerr
		}
		c.fw = nil
	}
	return errors.WithStack(err)
}
