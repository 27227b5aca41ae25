package api

import (
	"net/http"

	"github.com/fec-analyzer/cli/internal/credentials"
	"github.com/fec-analyzer/cli/internal/logging"
)

// authTransport is the cross-cutting interceptor pair. Wrapping the
// http.RoundTripper guarantees both hooks run exactly once per request,
// whatever endpoint is called:
//
//   - outbound: attach the stored token as a bearer Authorization header;
//   - inbound: on 401, delete the stored token and hand the response back
//     unchanged.
type authTransport struct {
	base  http.RoundTripper
	store credentials.Store
	log   logging.Logger
}

func newAuthTransport(base http.RoundTripper, store credentials.Store, log logging.Logger) *authTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authTransport{base: base, store: store, log: log}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	// A storage read failure must not abort the request; the backend will
	// reject it with 401 if the endpoint needed auth.
	token, err := t.store.Get(ctx)
	if err != nil {
		t.log.Error("could not read credential, sending request without auth", "error", err)
	} else if token != "" {
		// Clone before mutating: the transport does not own the request.
		req = req.Clone(ctx)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Token invalid or expired. Clean up locally, then let the caller
		// see the original 401 untouched.
		if delErr := t.store.Delete(ctx); delErr != nil {
			t.log.Error("could not delete rejected credential", "error", delErr)
		} else {
			t.log.Debug("credential deleted after 401", "url", req.URL.Path)
		}
	}

	return resp, nil
}
