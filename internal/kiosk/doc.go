// Package kiosk implements the event kiosk flow: a QR code that sends
// students to the name step, the personalised quote reveal with its
// celebration cues, and the per-visitor sessions that own a card
// generation coordinator.
package kiosk
