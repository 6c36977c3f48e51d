package cat

// SourceError reports that an input could not be opened or read.
// It affects only the named source.
type SourceError struct {
	Name string
	Err  error
}

func (e *SourceError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// SinkError reports that formatted output could not be written.
// Output integrity is lost, so callers should stop.
type SinkError struct {
	Err error
}

func (e *SinkError) Error() string {
	return "write error: " + e.Err.Error()
}

func (e *SinkError) Unwrap() error {
	return e.Err
}
