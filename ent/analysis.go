// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sevrusik/turthsnapbot/ent/analysis"
	"github.com/sevrusik/turthsnapbot/ent/user"
)

// Analysis is the model entity for the Analysis schema.
type Analysis struct {
	config `json:"-"`
	// ID of the ent.
	// User-visible id, ANL-YYYYMMDD-<hex8>
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// Scenario holds the value of the "scenario" field.
	Scenario analysis.Scenario `json:"scenario,omitempty"`
	// Verdict holds the value of the "verdict" field.
	Verdict analysis.Verdict `json:"verdict,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// VerdictReason holds the value of the "verdict_reason" field.
	VerdictReason string `json:"verdict_reason,omitempty"`
	// Canonical cryptographic identifier used in forensic messages
	ImageSha256 string `json:"image_sha256,omitempty"`
	// Perceptual hash computed at upload time
	Phash string `json:"phash,omitempty"`
	// May dangle after the bucket's 24h TTL
	BlobKey string `json:"blob_key,omitempty"`
	// PreserveExif holds the value of the "preserve_exif" field.
	PreserveExif bool `json:"preserve_exif,omitempty"`
	// ProcessingTimeMs holds the value of the "processing_time_ms" field.
	ProcessingTimeMs int `json:"processing_time_ms,omitempty"`
	// Opaque detector response, kept verbatim for PDF rendering
	ResultBlob map[string]interface{} `json:"result_blob,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisQuery when eager-loading is set.
	Edges        AnalysisEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisEdges holds the relations/edges for other nodes in the graph.
type AnalysisEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Analysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysis.FieldResultBlob:
			values[i] = new([]byte)
		case analysis.FieldPreserveExif:
			values[i] = new(sql.NullBool)
		case analysis.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case analysis.FieldUserID, analysis.FieldProcessingTimeMs:
			values[i] = new(sql.NullInt64)
		case analysis.FieldID, analysis.FieldScenario, analysis.FieldVerdict, analysis.FieldVerdictReason, analysis.FieldImageSha256, analysis.FieldPhash, analysis.FieldBlobKey:
			values[i] = new(sql.NullString)
		case analysis.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Analysis fields.
func (_m *Analysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysis.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case analysis.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.Int64
			}
		case analysis.FieldScenario:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scenario", values[i])
			} else if value.Valid {
				_m.Scenario = analysis.Scenario(value.String)
			}
		case analysis.FieldVerdict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verdict", values[i])
			} else if value.Valid {
				_m.Verdict = analysis.Verdict(value.String)
			}
		case analysis.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case analysis.FieldVerdictReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verdict_reason", values[i])
			} else if value.Valid {
				_m.VerdictReason = value.String
			}
		case analysis.FieldImageSha256:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_sha256", values[i])
			} else if value.Valid {
				_m.ImageSha256 = value.String
			}
		case analysis.FieldPhash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phash", values[i])
			} else if value.Valid {
				_m.Phash = value.String
			}
		case analysis.FieldBlobKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blob_key", values[i])
			} else if value.Valid {
				_m.BlobKey = value.String
			}
		case analysis.FieldPreserveExif:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field preserve_exif", values[i])
			} else if value.Valid {
				_m.PreserveExif = value.Bool
			}
		case analysis.FieldProcessingTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_time_ms", values[i])
			} else if value.Valid {
				_m.ProcessingTimeMs = int(value.Int64)
			}
		case analysis.FieldResultBlob:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result_blob", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResultBlob); err != nil {
					return fmt.Errorf("unmarshal field result_blob: %w", err)
				}
			}
		case analysis.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Analysis.
// This includes values selected through modifiers, order, etc.
func (_m *Analysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Analysis entity.
func (_m *Analysis) QueryUser() *UserQuery {
	return NewAnalysisClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this Analysis.
// Note that you need to call Analysis.Unwrap() before calling this method if this Analysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Analysis) Update() *AnalysisUpdateOne {
	return NewAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Analysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Analysis) Unwrap() *Analysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Analysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Analysis) String() string {
	var builder strings.Builder
	builder.WriteString("Analysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("scenario=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scenario))
	builder.WriteString(", ")
	builder.WriteString("verdict=")
	builder.WriteString(fmt.Sprintf("%v", _m.Verdict))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("verdict_reason=")
	builder.WriteString(_m.VerdictReason)
	builder.WriteString(", ")
	builder.WriteString("image_sha256=")
	builder.WriteString(_m.ImageSha256)
	builder.WriteString(", ")
	builder.WriteString("phash=")
	builder.WriteString(_m.Phash)
	builder.WriteString(", ")
	builder.WriteString("blob_key=")
	builder.WriteString(_m.BlobKey)
	builder.WriteString(", ")
	builder.WriteString("preserve_exif=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreserveExif))
	builder.WriteString(", ")
	builder.WriteString("processing_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingTimeMs))
	builder.WriteString(", ")
	builder.WriteString("result_blob=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultBlob))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Analyses is a parsable slice of Analysis.
type Analyses []*Analysis
