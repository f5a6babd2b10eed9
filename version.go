// Package testrailsync holds build information of the CLI. Everything else lives in `internal/`.
package testrailsync

// Version is the version of the CLI. It is set during the build using `-ldflags`.
var Version = "development"
