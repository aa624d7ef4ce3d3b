// Package http serves the admin API: login, settings, test email, status
// and version.
//
// Trace ids, access logging, compression, bearer authentication and body
// integrity checks are applied here before a request reaches the services.
package http
