// Package config loads the settings of the user-admin front-end: where to
// listen, which data API to call, where flash messages live and how verbose
// logging is.
//
// Sources are applied in order, each overriding non-zero fields of the
// previous one:
//  1. Environment variables (SERVER_*, ADAPTER_*, FLASH_*, LOG_*, CONFIG)
//  2. Command-line flags
//  3. JSON config file named by CONFIG or -c/-config
//
// Defaults are filled afterwards and the result is validated. The entry
// point is [GetStructuredConfig].
package config
