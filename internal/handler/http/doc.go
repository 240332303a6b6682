// Package http implements the HTTP transport of the file-crypt server.
//
// It serves the browser page and its assets, the JSON crypt endpoints
// (/generate_key, /encrypt, /decrypt), file downloads and the version
// endpoint. Request tracing, access logging, upload limits, security
// headers and response compression are handled by middleware in this
// package before requests reach the service layer.
package http
