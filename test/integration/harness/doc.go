// Package harness provides utilities for integration testing the deskfolio CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - DESKFOLIO_HOME: Isolated per test (temp directory)
//   - DESKFOLIO_DEBUG: Disabled to reduce noise
//   - GITHUB_TOKEN: Cleared so no test talks to GitHub with credentials
package harness
