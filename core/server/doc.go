// Package server holds the configuration for the HTTP trigger server.
//
// The server exposes the upload flows over HTTP so a spreadsheet button or a
// scheduler can trigger them remotely. Endpoints are protected by a shared
// API key validated by the auth middleware.
package server
