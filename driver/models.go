package driver

// SearchHit is the driver-level shape of one retrieved document.
type SearchHit struct {
	URL      string
	Title    string
	Text     string
	Category string
	Date     string
	Score    float64
}

// DriverError represents an error from the driver layer.
type DriverError struct {
	Op  string
	Err string
}

func (e *DriverError) Error() string {
	return e.Op + ": " + e.Err
}
