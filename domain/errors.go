package domain

// RetrievalError represents a failure of the external search engine call.
// It is surfaced to the caller; retry policy belongs to the host.
type RetrievalError struct {
	Op  string
	Err string
}

func (e *RetrievalError) Error() string {
	return e.Op + ": " + e.Err
}

// RepositoryError represents an error from the repository layer.
type RepositoryError struct {
	Op  string
	Err string
}

func (e *RepositoryError) Error() string {
	return e.Op + ": " + e.Err
}

// DriverError represents an error from the driver layer.
type DriverError struct {
	Op  string
	Err string
}

func (e *DriverError) Error() string {
	return e.Op + ": " + e.Err
}
