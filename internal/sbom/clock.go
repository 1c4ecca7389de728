package sbom

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SourceDateEpochEnv is the reproducible-builds variable that pins the creation time
const SourceDateEpochEnv = "SOURCE_DATE_EPOCH"

// CreationTime returns the document creation time: sourceDateEpoch (Unix
// seconds) when set, now otherwise. The result is truncated to seconds in UTC.
func CreationTime(now time.Time, sourceDateEpoch string) (time.Time, error) {
	sourceDateEpoch = strings.TrimSpace(sourceDateEpoch)
	if sourceDateEpoch == "" {
		return now.UTC().Truncate(time.Second), nil
	}

	secs, err := strconv.ParseInt(sourceDateEpoch, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", SourceDateEpochEnv, sourceDateEpoch, err)
	}
	return time.Unix(secs, 0).UTC(), nil
}
