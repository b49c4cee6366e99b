package ports

// ExportSink receives the curated-list export payload: plain text, one
// canonical URL per line. Write returns a human-readable destination (a file
// path for the file sink) for the UI to display.
type ExportSink interface {
	Write(payload string) (string, error)
}
