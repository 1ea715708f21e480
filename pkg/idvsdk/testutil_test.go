package idvsdk

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// fakeService is an in-process stand-in for the remote identity-verification
// service. It serves the token-issuing endpoint itself and delegates every
// other path to the test's API handler, counting hits to both.
type fakeService struct {
	srv *httptest.Server

	// TokenStatus forces a non-2xx answer from the token endpoint when set.
	TokenStatus int
	TokenBody   string

	// ExpiresIn is the advertised token lifetime in seconds.
	ExpiresIn int

	mu            sync.Mutex
	tokenCalls    int
	apiCalls      int
	lastTokenForm url.Values
}

// newFakeService starts the fake. apiHandler may be nil, in which case every
// API path answers 200 with an empty JSON object.
func newFakeService(t *testing.T, apiHandler http.HandlerFunc) *fakeService {
	t.Helper()

	fs := &fakeService{ExpiresIn: 3600}

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", fs.handleToken)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fs.mu.Lock()
		fs.apiCalls++
		fs.mu.Unlock()

		if apiHandler != nil {
			apiHandler(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, "{}")
	})

	fs.srv = httptest.NewServer(mux)
	t.Cleanup(fs.srv.Close)

	return fs
}

// handleToken answers the client_credentials exchange. Tokens are numbered
// ("tok-1", "tok-2", ...) so tests can observe re-acquisition.
func (fs *fakeService) handleToken(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()

	fs.mu.Lock()
	fs.tokenCalls++
	n := fs.tokenCalls
	fs.lastTokenForm = r.PostForm
	status := fs.TokenStatus
	body := fs.TokenBody
	expiresIn := fs.ExpiresIn
	fs.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"access_token":"tok-%d","token_type":"Bearer","expires_in":%d}`, n, expiresIn)
}

func (fs *fakeService) TokenCalls() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.tokenCalls
}

func (fs *fakeService) APICalls() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.apiCalls
}

func (fs *fakeService) LastTokenForm() url.Values {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.lastTokenForm
}

// client builds a Client pointed at the fake.
func (fs *fakeService) client(opts ...Option) *Client {
	all := append([]Option{
		WithBaseURL(fs.srv.URL),
		WithTokenURL(fs.srv.URL + "/oauth2/token"),
	}, opts...)

	return NewClient(NetworkDevnet, all...)
}

// connection builds a ready Connection with fixed test credentials.
func (fs *fakeService) connection(opts ...Option) *Connection {
	return fs.client(opts...).NewConnection("test-client", "test-secret")
}
