// Package utils provides general-purpose helper utilities used across
// different parts of the application: the JSON HTTP client of the data API,
// buffered HTML response writing and identifier generation.
package utils
