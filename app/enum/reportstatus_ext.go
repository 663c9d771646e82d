package enum

import "strings"

// NormalizeReportStatus returns the canonical name of a known status or alias, case-insensitive.
// Statuses outside the known set are kept, lower-cased and trimmed, so runner specific values
// like "timedout" or "todo" survive.
func NormalizeReportStatus(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	if st, err := ParseReportStatus(v); err == nil {
		return st.String()
	}
	return v
}

