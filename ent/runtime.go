// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sevrusik/turthsnapbot/ent/analysis"
	"github.com/sevrusik/turthsnapbot/ent/analysisjob"
	"github.com/sevrusik/turthsnapbot/ent/dailyusage"
	"github.com/sevrusik/turthsnapbot/ent/schema"
	"github.com/sevrusik/turthsnapbot/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisFields := schema.Analysis{}.Fields()
	_ = analysisFields
	// analysisDescPreserveExif is the schema descriptor for preserve_exif field.
	analysisDescPreserveExif := analysisFields[9].Descriptor()
	// analysis.DefaultPreserveExif holds the default value on creation for the preserve_exif field.
	analysis.DefaultPreserveExif = analysisDescPreserveExif.Default.(bool)
	// analysisDescProcessingTimeMs is the schema descriptor for processing_time_ms field.
	analysisDescProcessingTimeMs := analysisFields[10].Descriptor()
	// analysis.DefaultProcessingTimeMs holds the default value on creation for the processing_time_ms field.
	analysis.DefaultProcessingTimeMs = analysisDescProcessingTimeMs.Default.(int)
	// analysisDescCreatedAt is the schema descriptor for created_at field.
	analysisDescCreatedAt := analysisFields[12].Descriptor()
	// analysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysis.DefaultCreatedAt = analysisDescCreatedAt.Default.(func() time.Time)
	analysisjobFields := schema.AnalysisJob{}.Fields()
	_ = analysisjobFields
	// analysisjobDescFileExt is the schema descriptor for file_ext field.
	analysisjobDescFileExt := analysisjobFields[8].Descriptor()
	// analysisjob.DefaultFileExt holds the default value on creation for the file_ext field.
	analysisjob.DefaultFileExt = analysisjobDescFileExt.Default.(string)
	// analysisjobDescPreserveExif is the schema descriptor for preserve_exif field.
	analysisjobDescPreserveExif := analysisjobFields[11].Descriptor()
	// analysisjob.DefaultPreserveExif holds the default value on creation for the preserve_exif field.
	analysisjob.DefaultPreserveExif = analysisjobDescPreserveExif.Default.(bool)
	// analysisjobDescAttempts is the schema descriptor for attempts field.
	analysisjobDescAttempts := analysisjobFields[12].Descriptor()
	// analysisjob.DefaultAttempts holds the default value on creation for the attempts field.
	analysisjob.DefaultAttempts = analysisjobDescAttempts.Default.(int)
	// analysisjobDescNextAttemptAt is the schema descriptor for next_attempt_at field.
	analysisjobDescNextAttemptAt := analysisjobFields[13].Descriptor()
	// analysisjob.DefaultNextAttemptAt holds the default value on creation for the next_attempt_at field.
	analysisjob.DefaultNextAttemptAt = analysisjobDescNextAttemptAt.Default.(func() time.Time)
	// analysisjobDescCreatedAt is the schema descriptor for created_at field.
	analysisjobDescCreatedAt := analysisjobFields[14].Descriptor()
	// analysisjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysisjob.DefaultCreatedAt = analysisjobDescCreatedAt.Default.(func() time.Time)
	dailyusageFields := schema.DailyUsage{}.Fields()
	_ = dailyusageFields
	// dailyusageDescCount is the schema descriptor for count field.
	dailyusageDescCount := dailyusageFields[2].Descriptor()
	// dailyusage.DefaultCount holds the default value on creation for the count field.
	dailyusage.DefaultCount = dailyusageDescCount.Default.(int)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescDailyChecksRemaining is the schema descriptor for daily_checks_remaining field.
	userDescDailyChecksRemaining := userFields[4].Descriptor()
	// user.DefaultDailyChecksRemaining holds the default value on creation for the daily_checks_remaining field.
	user.DefaultDailyChecksRemaining = userDescDailyChecksRemaining.Default.(int)
	// userDescQuotaResetDate is the schema descriptor for quota_reset_date field.
	userDescQuotaResetDate := userFields[5].Descriptor()
	// user.DefaultQuotaResetDate holds the default value on creation for the quota_reset_date field.
	user.DefaultQuotaResetDate = userDescQuotaResetDate.Default.(func() time.Time)
	// userDescTotalChecks is the schema descriptor for total_checks field.
	userDescTotalChecks := userFields[6].Descriptor()
	// user.DefaultTotalChecks holds the default value on creation for the total_checks field.
	user.DefaultTotalChecks = userDescTotalChecks.Default.(int)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[8].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescLastSeenAt is the schema descriptor for last_seen_at field.
	userDescLastSeenAt := userFields[9].Descriptor()
	// user.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	user.DefaultLastSeenAt = userDescLastSeenAt.Default.(func() time.Time)
}
