// cmd/cspdash/main.go
package main

import (
	cspdash "github.com/MMIthomas/SAE303/internal/commands"
)

// Set at build time with -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	setVersionInfo = cspdash.SetVersionInfo
	executeCmd     = cspdash.Execute
)

// main starts the cspdash CLI by delegating to the cobra root command
// defined in the commands package.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
