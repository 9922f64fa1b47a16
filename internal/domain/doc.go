// Package domain contains the core entities of the kiosk: design options,
// card sides, generated images and the per-side generation state the
// presentation layer renders. It is independent of any specific
// infrastructure or delivery mechanism.
package domain
