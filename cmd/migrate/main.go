// Command migrate applies or rolls back the embedded database migrations.
//
// Usage:
//
//	migrate up [--to VERSION]
//	migrate down
//	migrate status
//
// The DSN comes from --dsn or DATABASE_DSN.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
