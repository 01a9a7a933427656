// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. A handful of environment
// variables with bespoke parsing rules (strict booleans, trimmed lists) are
// resolved through [GetBool], [GetString], and [GetList] instead of struct
// tags; see env.go.
package config
