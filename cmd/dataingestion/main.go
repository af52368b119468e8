package main

import (
	"errors"
	"flag"
	"goDataIngestion/internal/dataingestion"
	"goDataIngestion/pkg/logfile"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

// Define command line arguments
var (
	configPath string
	sourcePath string
	mode       string
	debug      bool
	silent     bool
)

func init() {
	flag.StringVar(&configPath, "c", "", "Path to the configuration file")
	flag.StringVar(&sourcePath, "s", "", "Source CSV file, overrides sourcePath in the configuration")
	flag.StringVar(&mode, "m", "ingest", "Run mode: ingest|manifest")
	flag.BoolVar(&debug, "debug", false, "Enable debug mode")
	flag.BoolVar(&silent, "silent", false, "Enable silent mode")

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 1024)
			n := runtime.Stack(buf, false)
			logrus.WithFields(logrus.Fields{
				"panic": r,
				"stack": string(buf[:n]),
			}).Error("A panic occurred")
			os.Exit(1)
		}
	}()

	flag.CommandLine.Parse(os.Args[1:])

	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else if silent {
		logrus.SetLevel(logrus.ErrorLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if err := run(); err != nil {
		logrus.WithError(err).Fatal("Application encountered an error")
	}

	logrus.Info("Application finished successfully")
}

func loadConfig() (dataingestion.Config, error) {
	cfg := dataingestion.DefaultConfig()
	if configPath != "" {
		logrus.WithField("path", configPath).Info("Loading configuration")
		var err error
		cfg, err = dataingestion.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
	}
	if sourcePath != "" {
		cfg.SourcePath = sourcePath
	}
	return cfg, cfg.Validate()
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	switch mode {
	case "ingest":
		_, _, err = ingest(cfg)
	case "manifest":
		err = showManifest(cfg)
	default:
		err = errors.New("-m: mode must be one of ingest|manifest")
	}
	return err
}

func ingest(cfg dataingestion.Config) (string, string, error) {
	level := logrus.InfoLevel
	if debug {
		level = logrus.DebugLevel
	}
	lf, err := logfile.New(cfg.LogDir, dataingestion.CLoggerName, level, time.Now())
	if err != nil {
		return "", "", err
	}
	defer lf.Close()
	logrus.WithField("logFile", lf.Path).Info("Starting data ingestion")

	d := dataingestion.NewDataIngestion(cfg, lf.Logger)
	trainPath, testPath, err := d.Run()
	if err != nil {
		return "", "", err
	}
	logrus.WithFields(logrus.Fields{
		"run":   d.RunID(),
		"train": trainPath,
		"test":  testPath,
	}).Info("Data ingestion completed")
	return trainPath, testPath, nil
}

func showManifest(cfg dataingestion.Config) error {
	m, err := dataingestion.LoadManifest(cfg.ManifestPath)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"run":         m.RunID,
		"finished":    m.Finished.Format(time.RFC3339),
		"source":      m.SourcePath,
		"rows":        m.SourceRows,
		"testSize":    m.TestSize,
		"randomState": m.RandomState,
		"raw":         m.RawPath,
		"train":       m.TrainPath,
		"test":        m.TestPath,
	}).Info("Last ingestion run")
	return nil
}
