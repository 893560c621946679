// Package migrations embeds SQL migration files for goose.
//
// Each supported dialect has its own directory because auto-increment
// DDL differs between postgres and sqlite. Files follow the goose
// naming convention: NNNNN_description.sql, applied in order.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
