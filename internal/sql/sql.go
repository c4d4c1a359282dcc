package sql

import (
	"embed"
)

// Migrations holds the schema DDL, applied in filename order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/register_run.sql
var RegisterRun string

//go:embed queries/lookup_run.sql
var LookupRun string

//go:embed queries/reset_run.sql
var ResetRun string

//go:embed queries/update_run_status.sql
var UpdateRunStatus string

//go:embed queries/finalize_run.sql
var FinalizeRun string

//go:embed queries/delete_sync_batch.sql
var DeleteSyncBatch string

//go:embed queries/analyze_sync_times.sql
var AnalyzeSyncTimes string
