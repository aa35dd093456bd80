// Package db provides the embedded dataset schema.
package db

import _ "embed"

// Schema contains the DDL statements for every exported table.
//
//go:embed migrations/001_schema.sql
var Schema string
