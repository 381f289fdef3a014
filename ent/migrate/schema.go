// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysesColumns holds the columns for the "analyses" table.
	AnalysesColumns = []*schema.Column{
		{Name: "analysis_id", Type: field.TypeString, Unique: true},
		{Name: "scenario", Type: field.TypeEnum, Enums: []string{"adult_blackmail", "teenager_sos", "general"}, Default: "general"},
		{Name: "verdict", Type: field.TypeEnum, Enums: []string{"real", "ai_generated", "manipulated", "inconclusive"}},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "verdict_reason", Type: field.TypeString, Nullable: true},
		{Name: "image_sha256", Type: field.TypeString},
		{Name: "phash", Type: field.TypeString, Nullable: true},
		{Name: "blob_key", Type: field.TypeString, Nullable: true},
		{Name: "preserve_exif", Type: field.TypeBool, Default: false},
		{Name: "processing_time_ms", Type: field.TypeInt, Default: 0},
		{Name: "result_blob", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt64},
	}
	// AnalysesTable holds the schema information for the "analyses" table.
	AnalysesTable = &schema.Table{
		Name:       "analyses",
		Columns:    AnalysesColumns,
		PrimaryKey: []*schema.Column{AnalysesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analyses_users_analyses",
				Columns:    []*schema.Column{AnalysesColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysis_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[12], AnalysesColumns[11]},
			},
			{
				Name:    "analysis_image_sha256",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[5]},
			},
			{
				Name:    "analysis_scenario",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[1]},
			},
		},
	}
	// AnalysisJobsColumns holds the columns for the "analysis_jobs" table.
	AnalysisJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "succeeded", "failed", "dead"}, Default: "pending"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"high", "default", "low"}, Default: "default"},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "chat_id", Type: field.TypeInt64},
		{Name: "source_message_id", Type: field.TypeInt64},
		{Name: "progress_message_id", Type: field.TypeInt64},
		{Name: "blob_key", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString, Default: "jpg"},
		{Name: "scenario", Type: field.TypeString},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"free", "pro"}, Default: "free"},
		{Name: "preserve_exif", Type: field.TypeBool, Default: false},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "next_attempt_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "analysis_id", Type: field.TypeString, Nullable: true},
	}
	// AnalysisJobsTable holds the schema information for the "analysis_jobs" table.
	AnalysisJobsTable = &schema.Table{
		Name:       "analysis_jobs",
		Columns:    AnalysisJobsColumns,
		PrimaryKey: []*schema.Column{AnalysisJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisjob_status",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[1]},
			},
			{
				Name:    "analysisjob_status_priority_next_attempt_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[1], AnalysisJobsColumns[2], AnalysisJobsColumns[13]},
			},
			{
				Name:    "analysisjob_status_finished_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[1], AnalysisJobsColumns[16]},
			},
			{
				Name:    "analysisjob_user_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[3]},
			},
		},
	}
	// DailyUsagesColumns holds the columns for the "daily_usages" table.
	DailyUsagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "day", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "count", Type: field.TypeInt, Default: 0},
		{Name: "user_id", Type: field.TypeInt64},
	}
	// DailyUsagesTable holds the schema information for the "daily_usages" table.
	DailyUsagesTable = &schema.Table{
		Name:       "daily_usages",
		Columns:    DailyUsagesColumns,
		PrimaryKey: []*schema.Column{DailyUsagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "daily_usages_users_daily_usages",
				Columns:    []*schema.Column{DailyUsagesColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dailyusage_user_id_day",
				Unique:  true,
				Columns: []*schema.Column{DailyUsagesColumns[3], DailyUsagesColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeInt64, Increment: true},
		{Name: "username", Type: field.TypeString, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Nullable: true},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"free", "pro"}, Default: "free"},
		{Name: "daily_checks_remaining", Type: field.TypeInt, Default: 3},
		{Name: "quota_reset_date", Type: field.TypeTime},
		{Name: "total_checks", Type: field.TypeInt, Default: 0},
		{Name: "subscription_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_tier",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysesTable,
		AnalysisJobsTable,
		DailyUsagesTable,
		UsersTable,
	}
)

func init() {
	AnalysesTable.ForeignKeys[0].RefTable = UsersTable
	DailyUsagesTable.ForeignKeys[0].RefTable = UsersTable
}
