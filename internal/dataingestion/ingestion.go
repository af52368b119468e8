package dataingestion

import (
	"goDataIngestion/pkg/csvdb"
	"goDataIngestion/pkg/utils"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DataIngestion reads the source table, stores a raw copy and writes the
// train/test partitions.
type DataIngestion struct {
	config   Config
	logger   logrus.FieldLogger
	stage    Stage
	runID    string
	manifest *Manifest
}

// NewDataIngestion copies cfg. A nil logger discards all output.
func NewDataIngestion(cfg Config, logger logrus.FieldLogger) *DataIngestion {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &DataIngestion{
		config: cfg,
		logger: logger,
		stage:  StageIdle,
	}
}

func (d *DataIngestion) Config() Config {
	return d.config
}

func (d *DataIngestion) Stage() Stage {
	return d.stage
}

func (d *DataIngestion) RunID() string {
	return d.runID
}

// Manifest returns the manifest of the last successful run, or nil.
func (d *DataIngestion) Manifest() *Manifest {
	return d.manifest
}

func (d *DataIngestion) setStage(s Stage) {
	d.logger.Debugf("Stage %s -> %s", d.stage, s)
	d.stage = s
}

func (d *DataIngestion) fail(op string, err error) *IngestionError {
	ierr := newIngestionError(d.stage, op, err)
	d.logger.Error(ierr.Error())
	d.stage = StageFailed
	return ierr
}

// Run returns the train and test artifact paths. Any failure is returned as
// *IngestionError; artifacts written before the failure are left in place.
func (d *DataIngestion) Run() (trainPath, testPath string, err error) {
	cfg := d.config
	d.runID = uuid.New().String()
	d.manifest = nil
	d.stage = StageIdle
	started := time.Now()
	d.logger.Infof("Entered the data ingestion step (run %s)", d.runID)

	if err := cfg.Validate(); err != nil {
		return "", "", d.fail("validate config", err)
	}

	d.setStage(StageReading)
	tb, err := csvdb.ReadTable(cfg.SourcePath)
	if err != nil {
		return "", "", d.fail("read source", err)
	}
	d.logger.Infof("Read the dataset %s as table: %d rows, %d columns",
		cfg.SourcePath, tb.Len(), len(tb.Columns()))

	// directories and the raw copy are part of the reading stage
	for _, path := range []string{cfg.RawDataPath, cfg.TrainDataPath, cfg.TestDataPath, cfg.ManifestPath} {
		if err := utils.EnsureParentDir(path); err != nil {
			return "", "", d.fail("create artifact directory", err)
		}
	}

	if err := tb.WriteTo(cfg.RawDataPath, csvdb.CWriteModeWrite, cWriteBuffSize); err != nil {
		return "", "", d.fail("write raw", err)
	}
	d.logger.Infof("Saved raw data to %s", cfg.RawDataPath)

	d.setStage(StageSplitting)
	d.logger.Info("Train test split initiated")
	trainIdx, testIdx, err := TrainTestSplit(tb.Len(), cfg.TestSize, cfg.RandomState)
	if err != nil {
		return "", "", d.fail("split", err)
	}
	trainSet, err := tb.Subset(trainIdx)
	if err != nil {
		return "", "", d.fail("split", err)
	}
	testSet, err := tb.Subset(testIdx)
	if err != nil {
		return "", "", d.fail("split", err)
	}

	d.setStage(StageWriting)
	if err := trainSet.WriteTo(cfg.TrainDataPath, csvdb.CWriteModeWrite, cWriteBuffSize); err != nil {
		return "", "", d.fail("write train", err)
	}
	if err := testSet.WriteTo(cfg.TestDataPath, csvdb.CWriteModeWrite, cWriteBuffSize); err != nil {
		return "", "", d.fail("write test", err)
	}
	d.logger.Infof("Saved %d train rows to %s and %d test rows to %s",
		trainSet.Len(), cfg.TrainDataPath, testSet.Len(), cfg.TestDataPath)

	m := &Manifest{
		RunID:         d.runID,
		Started:       started,
		Finished:      time.Now(),
		SourcePath:    cfg.SourcePath,
		SourceRows:    tb.Len(),
		SourceColumns: len(tb.Columns()),
		TestSize:      cfg.TestSize,
		RandomState:   cfg.RandomState,
		TrainRows:     trainSet.Len(),
		TestRows:      testSet.Len(),
		RawPath:       cfg.RawDataPath,
		TrainPath:     cfg.TrainDataPath,
		TestPath:      cfg.TestDataPath,
	}
	if err := m.Save(cfg.ManifestPath); err != nil {
		return "", "", d.fail("write manifest", err)
	}
	d.manifest = m

	d.setStage(StageCompleted)
	d.logger.Info("Ingestion of the data is completed")
	return cfg.TrainDataPath, cfg.TestDataPath, nil
}
