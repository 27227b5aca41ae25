package session

// Decision is the outcome of gating a protected view against the session.
type Decision int

const (
	// ShowLoading: the session is still being established; render a
	// loading indicator and do not navigate.
	ShowLoading Decision = iota
	// RedirectLogin: no authenticated user; send the caller to the entry
	// screen.
	RedirectLogin
	// RenderContent: the protected view may be shown.
	RenderContent
)

// Decide is the protected-route gate: a pure function of the session
// snapshot, holding no state of its own. Callers re-evaluate it whenever
// the session changes.
func Decide(s Session) Decision {
	if s.State == Uninitialized || s.IsLoading() {
		return ShowLoading
	}
	if s.IsAuthenticated() {
		return RenderContent
	}
	return RedirectLogin
}
