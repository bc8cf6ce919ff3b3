package domain

// InputLoader reads a normalized audit input document from a file.
type InputLoader interface {
	Load(path string) (AuditInput, error)
}

// ConfigLoader reads run configuration from a directory.
// A missing config file yields DefaultConfig.
type ConfigLoader interface {
	Load(dir string) (AuditConfig, error)
}

// AuditHistory persists audit records under a directory.
type AuditHistory interface {
	Save(dir string, record AuditRecord) error
	Load(dir string) ([]AuditRecord, error)
}
