package gateway_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OlDeuS1/Dormitory-Management-System/internal/gateway"
)

type capturedRequest struct {
	method string
	path   string
	query  string
	body   string
	host   string
	header http.Header
}

// fakeUpstream records what it receives and replies with a recognizable
// status, header and body.
func fakeUpstream(t *testing.T, captured *capturedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*captured = capturedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			body:   string(body),
			host:   r.Host,
			header: r.Header.Clone(),
		}
		w.Header().Set("X-Upstream", "rooms")
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte(`{"from":"upstream"}`))
	}))
}

func newTestRouter(t *testing.T, upstreams ...gateway.Upstream) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	g := gateway.New(slog.New(slog.DiscardHandler), 2*time.Second, upstreams...)
	router := gin.New()
	router.NoRoute(g.Handler())
	return router
}

func mustUpstream(t *testing.T, prefix, baseURL string) gateway.Upstream {
	t.Helper()
	up, err := gateway.ParseUpstream(prefix, baseURL)
	require.NoError(t, err)
	return up
}

// closeNotifyRecorder implements http.CloseNotifier, which gin's response
// writer requires of the underlying writer when httputil.ReverseProxy
// watches for client disconnects.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newCloseNotifyRecorder() *closeNotifyRecorder {
	return &closeNotifyRecorder{httptest.NewRecorder(), make(chan bool, 1)}
}

func (c *closeNotifyRecorder) CloseNotify() <-chan bool { return c.closed }

func TestForwardsVerbatim(t *testing.T) {
	var captured capturedRequest
	upstream := fakeUpstream(t, &captured)
	defer upstream.Close()

	router := newTestRouter(t, mustUpstream(t, "/rooms", upstream.URL))

	req := httptest.NewRequest(http.MethodPut, "/rooms/5?available=true", strings.NewReader(`{"capacity":3}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Custom", "kept")
	w := newCloseNotifyRecorder()
	router.ServeHTTP(w, req)

	// request side preserved
	assert.Equal(t, http.MethodPut, captured.method)
	assert.Equal(t, "/rooms/5", captured.path)
	assert.Equal(t, "available=true", captured.query)
	assert.Equal(t, `{"capacity":3}`, captured.body)
	assert.Equal(t, "kept", captured.header.Get("X-Custom"))

	// response relayed unchanged
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "rooms", w.Header().Get("X-Upstream"))
	assert.Equal(t, `{"from":"upstream"}`, w.Body.String())
}

func TestForwardsBarePrefix(t *testing.T) {
	var captured capturedRequest
	upstream := fakeUpstream(t, &captured)
	defer upstream.Close()

	router := newTestRouter(t, mustUpstream(t, "/rooms", upstream.URL))

	req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	w := newCloseNotifyRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "/rooms", captured.path)
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestDispatchesByPrefix(t *testing.T) {
	var students, rooms capturedRequest
	studentUpstream := fakeUpstream(t, &students)
	defer studentUpstream.Close()
	roomUpstream := fakeUpstream(t, &rooms)
	defer roomUpstream.Close()

	router := newTestRouter(t,
		mustUpstream(t, "/students", studentUpstream.URL),
		mustUpstream(t, "/rooms", roomUpstream.URL),
	)

	req := httptest.NewRequest(http.MethodGet, "/rooms/5", nil)
	router.ServeHTTP(newCloseNotifyRecorder(), req)

	assert.Equal(t, "/rooms/5", rooms.path)
	assert.Empty(t, students.path, "student upstream must not see room traffic")
}

func TestRewritesHostToUpstream(t *testing.T) {
	var captured capturedRequest
	upstream := fakeUpstream(t, &captured)
	defer upstream.Close()

	router := newTestRouter(t, mustUpstream(t, "/students", upstream.URL))

	req := httptest.NewRequest(http.MethodGet, "/students/1", nil)
	req.Host = "gateway.example.com"
	router.ServeHTTP(newCloseNotifyRecorder(), req)

	assert.Equal(t, strings.TrimPrefix(upstream.URL, "http://"), captured.host)
}

func TestUnknownRoute(t *testing.T) {
	var captured capturedRequest
	upstream := fakeUpstream(t, &captured)
	defer upstream.Close()

	router := newTestRouter(t, mustUpstream(t, "/rooms", upstream.URL))

	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	w := newCloseNotifyRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Route not found"}`, w.Body.String())
	assert.Empty(t, captured.path, "no upstream may see unmatched traffic")
}

func TestPrefixMustMatchSegment(t *testing.T) {
	var captured capturedRequest
	upstream := fakeUpstream(t, &captured)
	defer upstream.Close()

	router := newTestRouter(t, mustUpstream(t, "/rooms", upstream.URL))

	req := httptest.NewRequest(http.MethodGet, "/roomsextra", nil)
	w := newCloseNotifyRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, captured.path)
}

func TestUpstreamDownYields502(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // nothing listening anymore

	router := newTestRouter(t, mustUpstream(t, "/bookings", upstream.URL))

	req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
	w := newCloseNotifyRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"Bad gateway"}`, w.Body.String())
}

func TestRelaysUpstreamErrorsVerbatim(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Room not found"}`))
	}))
	defer upstream.Close()

	router := newTestRouter(t, mustUpstream(t, "/rooms", upstream.URL))

	req := httptest.NewRequest(http.MethodGet, "/rooms/99", nil)
	w := newCloseNotifyRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Room not found"}`, w.Body.String())
}
