package csvdb

const (
	cDefaultBuffSize = 10000
	cUTF8BOM         = "\ufeff"
	CWriteModeAppend = "a"
	CWriteModeWrite  = "w"
)
