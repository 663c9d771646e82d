// Package enum defines the closed value sets used across the service.
package enum

//go:generate go run github.com/go-pkgz/enum@latest -type reportStatus -lower
type reportStatus int

const (
	reportStatusPassed  reportStatus = iota // enum:alias=pass,success
	reportStatusFailed                      // enum:alias=fail,failure
	reportStatusSkipped                     // enum:alias=skip
	reportStatusPending
	reportStatusRunning
	reportStatusBroken // enum:alias=error
)

//go:generate go run github.com/go-pkgz/enum@latest -type theme -lower
type theme int

const (
	themeSystem theme = iota // enum:alias=
	themeLight
	themeDark
)
