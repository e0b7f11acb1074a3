// Package auth builds the OAuth2 token source shared by the Ads API and
// Google Sheets clients. Credential acquisition is a solved problem handled
// entirely by golang.org/x/oauth2; this package only wires configuration
// into a refreshable token source.
package auth
