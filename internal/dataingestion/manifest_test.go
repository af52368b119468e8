package dataingestion

import (
	"goDataIngestion/pkg/utils"
	"path/filepath"
	"testing"
	"time"
)

func TestManifestSaveLoad(t *testing.T) {
	rootDir, err := utils.InitTestDir("TestManifestSaveLoad")
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	path := filepath.Join(rootDir, "ingestion.ini")
	started := time.Date(2024, 11, 16, 22, 29, 37, 0, time.UTC)
	m := &Manifest{
		RunID:         "7b0c6c1e-5d0b-4f43-9a57-1d1c6f0c2f10",
		Started:       started,
		Finished:      started.Add(3 * time.Second),
		SourcePath:    "notebook/data/stud.csv",
		SourceRows:    1000,
		SourceColumns: 8,
		TestSize:      0.2,
		RandomState:   42,
		TrainRows:     800,
		TestRows:      200,
		RawPath:       "artifacts/data.csv",
		TrainPath:     "artifacts/train.csv",
		TestPath:      "artifacts/test.csv",
	}
	if err := m.Save(path); err != nil {
		t.Errorf("%v", err)
		return
	}
	got, err := LoadManifest(path)
	if err != nil {
		t.Errorf("%v", err)
		return
	}

	checks := []struct {
		title string
		got   interface{}
		exp   interface{}
	}{
		{"id", got.RunID, m.RunID},
		{"started", got.Started.Unix(), m.Started.Unix()},
		{"finished", got.Finished.Unix(), m.Finished.Unix()},
		{"source", got.SourcePath, m.SourcePath},
		{"rows", got.SourceRows, 1000},
		{"columns", got.SourceColumns, 8},
		{"testSize", got.TestSize, 0.2},
		{"seed", got.RandomState, int64(42)},
		{"train rows", got.TrainRows, 800},
		{"test rows", got.TestRows, 200},
		{"raw", got.RawPath, m.RawPath},
		{"train", got.TrainPath, m.TrainPath},
		{"test", got.TestPath, m.TestPath},
	}
	for _, c := range checks {
		if err := utils.GetGotExpErr(c.title, c.got, c.exp); err != nil {
			t.Errorf("%v", err)
			return
		}
	}
}

func TestLoadManifestInvalid(t *testing.T) {
	rootDir, err := utils.InitTestDir("TestLoadManifestInvalid")
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	if _, err := LoadManifest(filepath.Join(rootDir, "missing.ini")); err == nil {
		t.Errorf("expected error for a missing manifest")
		return
	}
	path, err := utils.WriteTestFile(rootDir, "empty.ini", "[source]\npath = x.csv\n")
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	if _, err := LoadManifest(path); err == nil {
		t.Errorf("expected error for a manifest without run id")
		return
	}
}
