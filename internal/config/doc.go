// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. It provides
// type-safe access to the server, Gemini and kiosk settings while keeping
// configuration details separate from business logic.
//
// A missing Gemini credential is a configuration error: Load fails fast so
// the server never starts with an adapter that cannot authenticate.
package config
