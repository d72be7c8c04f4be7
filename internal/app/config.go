package app

// Config holds runtime configuration for the application.
type Config struct {
	// Fetching
	UserAgent      string
	MaxRetries     int
	TimeoutSeconds int

	// Google Sheets sink; active when credentials and spreadsheet id are set.
	SheetsCredentials string
	SpreadsheetID     string
	SheetName         string

	// Local CSV sink, used when Sheets is not configured.
	CSVPath string

	// Behavior
	Verbose bool
}
