// Package generation defines the boundary between the kiosk and external
// generative-image services. It holds the ImageGenerator interface, the
// request shape sent for each card side, the tagged response fragments a
// service returns, and the error taxonomy callers match on. Concrete
// adapters (Gemini) live under internal/platform.
package generation
