// Package migrations ships the Postgres schema for accounts, institutions and
// the audit log. The server and the integration containers apply it through
// database.Migrate.
package migrations

import "embed"

// FS holds paired *.up.sql and *.down.sql files. Only the up files are applied.
//
//go:embed *.sql
var FS embed.FS
