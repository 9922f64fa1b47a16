// Package api handles incoming HTTP requests for the kiosk: the kiosk page,
// the quote reveal, and per-session card generation. It acts as an adapter
// between browsers and the kiosk and service packages, translating HTTP
// concerns to application operations and mapping errors to safe responses.
package api
