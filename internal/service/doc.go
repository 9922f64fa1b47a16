// Package service contains the application-specific use cases that sit
// between the HTTP layer and the generative image adapter.
//
// The central component is Coordinator, which drives the two independent
// card sides (Front and Back) for one kiosk session:
//
//   - Start issues one generation call per side concurrently and returns
//     immediately with both sides Loading.
//   - Each side settles on its own into Succeeded, Empty or Failed; a slow
//     or failing side never blocks the other.
//   - Regenerate restarts a single side without touching the other.
//   - Starting again while calls are in flight cancels them, and an epoch
//     check discards any result that arrives afterwards.
//
// The service layer depends on domain types and the generation.ImageGenerator
// port, never on a concrete generative backend.
package service
