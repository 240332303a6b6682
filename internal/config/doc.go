// Package config provides configuration loading, merging, and validation
// for the file-crypt server and client.
//
// Configuration is assembled from these sources; for every field the first
// source with a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the terminal client.
package config
