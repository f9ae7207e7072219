// Package conf contains the constants that are used across packages for
// versioning and default matcher limits.
package conf

import (
	"fmt"
	"time"
)

const (
	// VERSIONMAJORN is the major version.
	VERSIONMAJORN = 0
	// VERSIONMINORN is the minor version.
	VERSIONMINORN = 1
	// VERSIONPATCHN is the patch version.
	VERSIONPATCHN = 0
	// MAXDEPTH is the default recursion limit of the matcher. Depth grows by one
	// per quantified atom.
	MAXDEPTH = 10_000
	// CANCELCHECKINTERVAL is how many atom tests pass between context polls.
	CANCELCHECKINTERVAL = 1024
	// DEFAULTTIMEFORMAT is the strftime layout of trace line timestamps.
	DEFAULTTIMEFORMAT = "%H:%M:%S"
)

// Version is the name and version of the rematch application.
func Version() string {
	return fmt.Sprintf("rematch %v.%v.%v", VERSIONMAJORN, VERSIONMINORN, VERSIONPATCHN)
}

// FullVersion returns the version and copyright.
func FullVersion() string {
	return fmt.Sprintf("%v %v", Version(), Copyright())
}

// Copyright is the copyright to be written out in the CLI.
func Copyright() string {
	return fmt.Sprintf("Copyright (C) %v", time.Now().Year())
}
