package dataingestion

const (
	CDefaultSourcePath   = "notebook/data/stud.csv"
	CDefaultArtifactsDir = "artifacts"
	CDefaultLogDir       = "logs"
	CDefaultTestSize     = 0.2
	CDefaultRandomState  = int64(42)
	CLoggerName          = "dataingestion"

	cRawFileName      = "data.csv"
	cTrainFileName    = "train.csv"
	cTestFileName     = "test.csv"
	cManifestFileName = "ingestion.ini"
	cWriteBuffSize    = 10000
)
