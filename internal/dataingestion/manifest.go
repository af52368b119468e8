package dataingestion

import (
	"strconv"
	"time"

	"github.com/go-ini/ini"
	"github.com/pkg/errors"
)

// Manifest describes the last successful run. It is the only place the raw
// artifact path is recorded.
type Manifest struct {
	RunID         string
	Started       time.Time
	Finished      time.Time
	SourcePath    string
	SourceRows    int
	SourceColumns int
	TestSize      float64
	RandomState   int64
	TrainRows     int
	TestRows      int
	RawPath       string
	TrainPath     string
	TestPath      string
}

func (m *Manifest) Save(path string) error {
	cfg := ini.Empty()

	run := cfg.Section("run")
	run.Key("id").SetValue(m.RunID)
	run.Key("started").SetValue(m.Started.Format(time.RFC3339))
	run.Key("finished").SetValue(m.Finished.Format(time.RFC3339))

	source := cfg.Section("source")
	source.Key("path").SetValue(m.SourcePath)
	source.Key("rows").SetValue(strconv.Itoa(m.SourceRows))
	source.Key("columns").SetValue(strconv.Itoa(m.SourceColumns))

	split := cfg.Section("split")
	split.Key("testSize").SetValue(strconv.FormatFloat(m.TestSize, 'g', -1, 64))
	split.Key("randomState").SetValue(strconv.FormatInt(m.RandomState, 10))
	split.Key("trainRows").SetValue(strconv.Itoa(m.TrainRows))
	split.Key("testRows").SetValue(strconv.Itoa(m.TestRows))

	artifacts := cfg.Section("artifacts")
	artifacts.Key("raw").SetValue(m.RawPath)
	artifacts.Key("train").SetValue(m.TrainPath)
	artifacts.Key("test").SetValue(m.TestPath)

	if err := cfg.SaveTo(path); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func LoadManifest(path string) (*Manifest, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	m := new(Manifest)

	run := cfg.Section("run")
	m.RunID = run.Key("id").MustString("")
	if m.RunID == "" {
		return nil, errors.New("Not available manifest file: " + path)
	}
	if m.Started, err = run.Key("started").TimeFormat(time.RFC3339); err != nil {
		return nil, errors.WithStack(err)
	}
	if m.Finished, err = run.Key("finished").TimeFormat(time.RFC3339); err != nil {
		return nil, errors.WithStack(err)
	}

	source := cfg.Section("source")
	m.SourcePath = source.Key("path").String()
	m.SourceRows = source.Key("rows").MustInt(0)
	m.SourceColumns = source.Key("columns").MustInt(0)

	split := cfg.Section("split")
	m.TestSize = split.Key("testSize").MustFloat64(0)
	m.RandomState = split.Key("randomState").MustInt64(0)
	m.TrainRows = split.Key("trainRows").MustInt(0)
	m.TestRows = split.Key("testRows").MustInt(0)

	artifacts := cfg.Section("artifacts")
	m.RawPath = artifacts.Key("raw").String()
	m.TrainPath = artifacts.Key("train").String()
	m.TestPath = artifacts.Key("test").String()
	return m, nil
}
