// Package privacy keeps personal data out of logs. Log lines never
// carry raw user IDs, usernames, filenames, or coordinates; users are
// referenced by a stable anonymized handle instead.
package privacy

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strconv"
)

// AnonymizeUserID returns the stable anonymized handle for a user:
// the first 8 hex chars of sha256 over the decimal user ID. Enough to
// correlate log lines, useless for recovering the account.
func AnonymizeUserID(userID int64) string {
	sum := sha256.Sum256([]byte(strconv.FormatInt(userID, 10)))
	return hex.EncodeToString(sum[:])[:8]
}

// UserAttr is the one sanctioned way to put a user into a log record.
func UserAttr(userID int64) slog.Attr {
	return slog.String("user", AnonymizeUserID(userID))
}
