package sql

import "embed"

// Migrations holds the schema DDL, applied in filename order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/insert_visit.sql
var InsertVisit string

//go:embed queries/select_visits.sql
var SelectVisits string
