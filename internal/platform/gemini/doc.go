// Package gemini provides an implementation of the generation.ImageGenerator
// interface that uses Google's Gemini API to render kiosk card images.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's core to Google's external generative service
// without exposing the details of that service to the rest of the code.
//
// Each call sends one text prompt with a square aspect ratio and the 1K
// resolution tier, then converts the first candidate's parts into ordered
// generation fragments and returns the first inline image. A well-formed
// response without image data is an empty result, not an error. The adapter
// never retries and logs only sizes and counts, never prompt text or image
// bytes.
package gemini
