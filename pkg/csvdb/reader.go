package csvdb

import (
	"compress/gzip"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type Reader struct {
	fr       *os.File
	zr       *gzip.Reader
	reader   *csv.Reader
	values   []string
	err      error
	filename string
}

func newReader(filename string) (*Reader, error) {
	c := new(Reader)
	c.filename = filename
	if err := c.open(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Reader) open() error {
	ext := filepath.Ext(c.filename)
	var zr *gzip.Reader
	var r *csv.Reader

	fr, err := os.Open(c.filename)
	if err != nil {
		return errors.WithStack(err)
	}

	if ext == ".gz" || ext == ".gzip" {
		zr, err = gzip.NewReader(fr)
		if err != nil {
			fr.Close()
			return errors.WithStack(err)
		}
		r = csv.NewReader(zr)
	} else {
		r = csv.NewReader(fr)
	}

	c.fr = fr
	c.zr = zr
	c.reader = r
	return nil
}

func (c *Reader) next() bool {
	values, err := c.reader.Read()
	if err == io.EOF {
		c.err = err
		return false
	}
	if err != nil {
		c.err = errors.Wrapf(err, "%s", c.filename)
		return false
	}
	c.values = values
	c.err = nil
	return true
}

// Err returns the error which stopped next(), or nil at EOF.
func (c *Reader) Err() error {
	if c.err == io.EOF {
		return nil
	}
	return c.err
}

func (c *Reader) close() {
	if c.zr != nil {
		c.zr.Close()
		c.zr = nil
	}
	if c.fr != nil {
		c.fr.Close()
		c.fr = nil
	}
}
