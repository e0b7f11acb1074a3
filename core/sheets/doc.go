// Package sheets wraps the spreadsheet collaborator. The core only needs
// three operations: read the data region of a sheet, write a single cell
// (status, error message, discovered resource name), and append a row to a
// list sheet. The Google Sheets implementation addresses cells in A1
// notation with row indices offset by the configured header size.
package sheets
