package exitcode

const (
	Success      = 0
	UsageError   = 1
	ConfigError  = 2
	LookupError  = 3
	DBConnError  = 4
	StorageError = 5
	ExportError  = 6
)
