// internal/version/version.go
package version

// Version is stamped by the release workflow.
const Version = "0.3.0"
