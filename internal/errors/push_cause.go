package errors

import "strings"

// pushCausePatterns maps substrings of git push output to a cause. Ordering
// matters: the first match wins.
var pushCausePatterns = []struct {
	substr string
	cause  PushCause
}{
	{"stale info", PushCauseStale},
	{"force-with-lease", PushCauseStale},
	{"Authentication failed", PushCauseAuth},
	{"could not read Username", PushCauseAuth},
	{"could not read Password", PushCauseAuth},
	{"Invalid username or token", PushCauseAuth},
	{"Permission denied (publickey", PushCauseAuth},
	{"HTTP 401", PushCauseAuth},
	{"Permission to", PushCausePermission},
	{"Repository not found", PushCausePermission},
	{"HTTP 403", PushCausePermission},
	{"protected branch", PushCausePermission},
	{"Could not resolve host", PushCauseConnectivity},
	{"unable to access", PushCauseConnectivity},
	{"Connection refused", PushCauseConnectivity},
	{"Connection timed out", PushCauseConnectivity},
	{"Network is unreachable", PushCauseConnectivity},
	{"ssh: connect to host", PushCauseConnectivity},
}

// ClassifyPushOutput inspects combined git push output and returns the most
// likely failure cause
func ClassifyPushOutput(output string) PushCause {
	for _, p := range pushCausePatterns {
		if strings.Contains(output, p.substr) {
			return p.cause
		}
	}
	return PushCauseUnknown
}
