package constants

// JobStatus is the canonical status for rows in import_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusParsed        JobStatus = "PARSED"         // text parsed, one or more items extracted
	JobStatusEmpty         JobStatus = "EMPTY"          // parse succeeded but no items matched
	JobStatusExtractFailed JobStatus = "EXTRACT_FAILED" // PDF-to-text step failed
)
