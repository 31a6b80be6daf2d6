// Package migrations embebe el esquema Postgres.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
