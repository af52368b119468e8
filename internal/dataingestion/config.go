package dataingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds where the step reads from, where it writes to and how it splits.
type Config struct {
	SourcePath    string  `yaml:"sourcePath"`
	RawDataPath   string  `yaml:"rawDataPath"`
	TrainDataPath string  `yaml:"trainDataPath"`
	TestDataPath  string  `yaml:"testDataPath"`
	ManifestPath  string  `yaml:"manifestPath"`
	LogDir        string  `yaml:"logDir"`
	TestSize      float64 `yaml:"testSize"`
	RandomState   int64   `yaml:"randomState"`
}

func DefaultConfig() Config {
	return Config{
		SourcePath:    CDefaultSourcePath,
		RawDataPath:   filepath.Join(CDefaultArtifactsDir, cRawFileName),
		TrainDataPath: filepath.Join(CDefaultArtifactsDir, cTrainFileName),
		TestDataPath:  filepath.Join(CDefaultArtifactsDir, cTestFileName),
		ManifestPath:  filepath.Join(CDefaultArtifactsDir, cManifestFileName),
		LogDir:        CDefaultLogDir,
		TestSize:      CDefaultTestSize,
		RandomState:   CDefaultRandomState,
	}
}

var envPlaceholderRe = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// replaceEnvVars substitutes {{ VAR }} placeholders with environment values.
func replaceEnvVars(content string) string {
	return envPlaceholderRe.ReplaceAllStringFunc(content, func(placeholder string) string {
		varName := envPlaceholderRe.FindStringSubmatch(placeholder)[1]
		return os.Getenv(varName)
	})
}

/*
LoadConfig reads a YAML file on top of DefaultConfig(). Keys left out keep
their default values.

---
sourcePath: notebook/data/stud.csv
rawDataPath: artifacts/data.csv
trainDataPath: artifacts/train.csv
testDataPath: artifacts/test.csv
manifestPath: artifacts/ingestion.ini
logDir: logs
testSize: 0.2
randomState: 42
*/
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return c, errors.WithStack(err)
	}
	yamlContent := replaceEnvVars(string(yamlFile))

	if err := yaml.Unmarshal([]byte(yamlContent), &c); err != nil {
		return c, errors.Wrapf(err, "parsing %s", path)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c Config) Validate() error {
	paths := []struct {
		name  string
		value string
	}{
		{"sourcePath", c.SourcePath},
		{"rawDataPath", c.RawDataPath},
		{"trainDataPath", c.TrainDataPath},
		{"testDataPath", c.TestDataPath},
		{"manifestPath", c.ManifestPath},
		{"logDir", c.LogDir},
	}
	for _, p := range paths {
		if p.value == "" {
			return errors.New(fmt.Sprintf("%s must not be empty", p.name))
		}
	}
	if c.TestSize <= 0 || c.TestSize >= 1 {
		return errors.New(fmt.Sprintf("testSize must be in (0,1), got %v", c.TestSize))
	}
	return nil
}
