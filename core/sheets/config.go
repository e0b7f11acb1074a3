package sheets

// Config holds configuration for the campaign spreadsheet.
type Config struct {
	// SpreadsheetID is the id of the campaign management spreadsheet.
	SpreadsheetID string `mapstructure:"spreadsheet_id" default:""`
	// HeaderRows is the number of header rows preceding the data region.
	HeaderRows int `mapstructure:"header_rows" default:"1"`
}
