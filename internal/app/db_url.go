package app

import (
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// SQLiteDSN builds a modernc.org/sqlite connection string for path. Foreign keys are
// always on, busy_timeout is in milliseconds and write transactions start IMMEDIATE.
func SQLiteDSN(path string, busyTimeout time.Duration) string {
	query := url.Values{}
	query.Add("_pragma", "foreign_keys(1)")
	query.Add("_pragma", "busy_timeout("+strconv.FormatInt(busyTimeout.Milliseconds(), 10)+")")
	query.Add("_pragma", "journal_mode(WAL)")
	query.Set("_txlock", "immediate")

	return "file:" + filepath.ToSlash(strings.TrimSpace(path)) + "?" + query.Encode()
}

// dbNameFromPath reports the file stem used as the traced db.name.
func dbNameFromPath(path string) string {
	base := filepath.Base(strings.TrimSpace(path))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
