// Package server holds the HTTP server configuration.
//
// While the serve command handles the server startup, this package defines
// the configuration structure for server settings.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key guarding every route
// and the request body limit applied to uploaded profile documents.
package server
