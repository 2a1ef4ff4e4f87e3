package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiogoPalharini/mtfa/internal/config"
	"github.com/DiogoPalharini/mtfa/internal/logger"
	"github.com/DiogoPalharini/mtfa/models"
)

func newTestGateway(t *testing.T, serverURL string) *HTTPGateway {
	t.Helper()
	cfg := config.AppRemote{
		BaseURL:           serverURL,
		SubmitTimeout:     5 * time.Second,
		LoginTimeout:      5 * time.Second,
		ProbeTimeout:      2 * time.Second,
		LoginProbeTimeout: 2 * time.Second,
	}
	return NewHTTPGateway(cfg, logger.Nop())
}

func testForm() models.LoadForm {
	return models.LoadForm{
		RegDate:     "2026-08-31",
		RegTime:     "14:05:00",
		Truck:       "KA-102",
		Farm:        "North Farm",
		Field:       "F3",
		Variety:     "Wheat",
		Driver:      "J. Smith",
		Destination: "Silo 2",
		Agreement:   "fixed",
	}
}

// ── classifyResponse ──

func TestClassifyResponse(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"redirect is success", 302, "", nil},
		{"200 with add-truck marker", 200, "<html><h1>Add truck load</h1></html>", nil},
		{"200 with form marker", 200, "<html><form method=post>...</form></html>", nil},
		{"200 without markers", 200, "<html>something else entirely</html>", ErrUnexpectedResponse},
		{"401 means session expired", 401, "", ErrSessionExpired},
		{"403 means session expired", 403, "", ErrSessionExpired},
		{"500 is a server error", 500, "oops", ErrServerError},
		{"other status is unexpected", 418, "", ErrUnexpectedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyResponse(tt.status, []byte(tt.body))
			if tt.want == nil {
				assert.NoError(t, got)
			} else {
				assert.ErrorIs(t, got, tt.want)
			}
		})
	}
}

// ── SubmitLoad ──

func TestSubmitLoad_RedirectIsSuccess(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pages/crops/processaddtruck.php", r.URL.Path)
		gotCookie = r.Header.Get("Cookie")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "KA-102", r.FormValue("truck"))
		assert.Equal(t, "2026-08-31", r.FormValue("reg_date"))

		w.Header().Set("Location", "/pages/crops/addtruck.php")
		w.WriteHeader(http.StatusFound)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	g.SetSessionID("sess-42")

	err := g.SubmitLoad(context.Background(), testForm())
	require.NoError(t, err)
	assert.Equal(t, "PHPSESSID=sess-42", gotCookie)
}

func TestSubmitLoad_SessionExpired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	err := g.SubmitLoad(context.Background(), testForm())
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestSubmitLoad_NoResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	g := newTestGateway(t, srv.URL)
	err := g.SubmitLoad(context.Background(), testForm())
	assert.ErrorIs(t, err, ErrNetworkError)
}

// ── ModernLogin ──

func TestModernLogin_JSONWrappedInHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login.php", r.URL.Path)
		// PHP warnings routinely leak before the payload.
		_, _ = w.Write([]byte(`<br /><b>Warning</b>: session in /var/www on line 3<br />{"success":true,"user":{"id":7,"name":"John","email":"john@farm.example","level":"driver"}}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	user, err := g.ModernLogin(context.Background(), "john@farm.example", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "John", user.Name)
}

func TestModernLogin_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"invalid credentials"}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.ModernLogin(context.Background(), "john@farm.example", "wrong")
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestExtractJSONObject(t *testing.T) {
	payload, err := extractJSONObject([]byte(`junk {"a":{"b":1}} trailing`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"b":1}}`, string(payload))

	_, err = extractJSONObject([]byte("no json here"))
	assert.Error(t, err)

	_, err = extractJSONObject([]byte(`{"never":"closed"`))
	assert.Error(t, err)
}

// ── LegacyLogin ──

func TestLegacyLogin_CookieFromServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pages/login/login.php", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "john@farm.example", r.FormValue("email"))

		http.SetCookie(w, &http.Cookie{Name: "PHPSESSID", Value: "srv-cookie-1"})
		w.Header().Set("Location", "/pages/home.php")
		w.WriteHeader(http.StatusFound)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	sessionID, err := g.LegacyLogin(context.Background(), "john@farm.example", "secret")
	require.NoError(t, err)
	assert.Equal(t, "srv-cookie-1", sessionID)
}

func TestLegacyLogin_GeneratedFallbackCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	sessionID, err := g.LegacyLogin(context.Background(), "john@farm.example", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)
}

func TestLegacyLogin_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.LegacyLogin(context.Background(), "john@farm.example", "wrong")
	assert.ErrorIs(t, err, ErrAuthFailed)
}

// ── Ping ──

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusOK)
	}))

	g := newTestGateway(t, srv.URL)
	assert.True(t, g.Ping(context.Background()))

	srv.Close()
	assert.False(t, g.Ping(context.Background()))
}

func TestSessionID_Roundtrip(t *testing.T) {
	g := newTestGateway(t, "http://localhost:1")
	assert.Empty(t, g.SessionID())

	g.SetSessionID("sess-1")
	assert.Equal(t, "sess-1", g.SessionID())

	g.SetSessionID("")
	assert.Empty(t, g.SessionID())
}

func TestSubmitLoad_ContextTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusFound)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := g.SubmitLoad(ctx, testForm())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNetworkError) || errors.Is(err, context.DeadlineExceeded))
}
