package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/DiogoPalharini/mtfa/internal/config"
	"github.com/DiogoPalharini/mtfa/internal/logger"
	"github.com/DiogoPalharini/mtfa/internal/utils"
	"github.com/DiogoPalharini/mtfa/models"
)

const (
	submitPath      = "/pages/crops/processaddtruck.php"
	modernLoginPath = "/api/login.php"
	legacyLoginPath = "/pages/login/login.php"

	sessionCookieName = "PHPSESSID"
)

// successMarkers are substrings whose presence in a 200 body indicates the
// legacy server re-rendered the add-truck page, i.e. it accepted the record.
var successMarkers = []string{"Add truck load", "form", "Save"}

// HTTPGateway talks to the legacy farm-management server over HTTP. It is
// safe for concurrent use; the session id is guarded by a mutex.
type HTTPGateway struct {
	client *resty.Client
	cfg    config.AppRemote
	ids    *utils.IDGenerator
	logger *logger.Logger

	mu        sync.RWMutex
	sessionID string
}

func NewHTTPGateway(cfg config.AppRemote, log *logger.Logger) *HTTPGateway {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetRedirectPolicy(resty.NoRedirectPolicy())

	return &HTTPGateway{
		client: client,
		cfg:    cfg,
		ids:    utils.NewIDGenerator(),
		logger: log,
	}
}

func (g *HTTPGateway) SetSessionID(sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessionID = sessionID
}

func (g *HTTPGateway) SessionID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sessionID
}

// SubmitLoad posts one truck-load form as multipart data. The field names
// match the legacy add-truck page exactly.
func (g *HTTPGateway) SubmitLoad(ctx context.Context, form models.LoadForm) error {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.SubmitTimeout)
	defer cancel()

	req := g.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"reg_date":         form.RegDate,
			"reg_time":         form.RegTime,
			"truck":            form.Truck,
			"othertruck":       form.OtherTruck,
			"farm":             form.Farm,
			"otherfarm":        form.OtherFarm,
			"field":            form.Field,
			"otherfield":       form.OtherField,
			"variety":          form.Variety,
			"othervariety":     form.OtherVariety,
			"driver":           form.Driver,
			"otherdriver":      form.OtherDriver,
			"destination":      form.Destination,
			"otherdestination": form.OtherDestination,
			"dnote":            form.Note,
			"agreement":        form.Agreement,
			"otheragreement":   form.OtherAgreement,
		})

	if sessionID := g.SessionID(); sessionID != "" {
		req.SetHeader("Cookie", sessionCookieName+"="+sessionID)
	}

	resp, err := req.Post(submitPath)
	// With redirects disabled resty reports a 3xx as an error while still
	// returning the response, so the status check comes first.
	if resp == nil || resp.RawResponse == nil {
		g.logger.Err(err).
			Str("func", "HTTPGateway.SubmitLoad").
			Msg("no response from server")
		return fmt.Errorf("%w: %v", ErrNetworkError, err)
	}

	if classifyErr := classifyResponse(resp.StatusCode(), resp.Body()); classifyErr != nil {
		g.logger.Err(classifyErr).
			Str("func", "HTTPGateway.SubmitLoad").
			Int("status", resp.StatusCode()).
			Msg("server rejected load submission")
		return classifyErr
	}

	g.logger.Debug().
		Str("func", "HTTPGateway.SubmitLoad").
		Int("status", resp.StatusCode()).
		Msg("load submitted to server")

	return nil
}

// classifyResponse maps a submit response to the gateway's error taxonomy.
// A redirect is how the legacy server acknowledges a successful insert; a
// plain 200 is only a success when the body carries one of the markers of
// the re-rendered form page.
func classifyResponse(status int, body []byte) error {
	if status >= 300 && status < 400 {
		return nil
	}

	switch {
	case status == 200:
		text := string(body)
		for _, marker := range successMarkers {
			if strings.Contains(text, marker) {
				return nil
			}
		}
		return fmt.Errorf("%w: status 200 without success marker", ErrUnexpectedResponse)
	case status == 401 || status == 403:
		return ErrSessionExpired
	case status >= 500:
		return fmt.Errorf("%w: status %d", ErrServerError, status)
	default:
		return fmt.Errorf("%w: status %d", ErrUnexpectedResponse, status)
	}
}

type modernLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type modernLoginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

// ModernLogin authenticates against the JSON API endpoint. The endpoint is
// a PHP script that occasionally leaks warnings into the output, so the
// first JSON object is carved out of the body before decoding.
func (g *HTTPGateway) ModernLogin(ctx context.Context, email, password string) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.LoginTimeout)
	defer cancel()

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(modernLoginRequest{Email: email, Password: password}).
		Post(modernLoginPath)
	if resp == nil || resp.RawResponse == nil {
		g.logger.Err(err).
			Str("func", "HTTPGateway.ModernLogin").
			Msg("no response from login endpoint")
		return models.User{}, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}

	if resp.StatusCode() != 200 {
		g.logger.Warn().
			Str("func", "HTTPGateway.ModernLogin").
			Int("status", resp.StatusCode()).
			Msg("login endpoint returned non-200 status")
		return models.User{}, fmt.Errorf("%w: status %d", ErrAuthFailed, resp.StatusCode())
	}

	payload, err := extractJSONObject(resp.Body())
	if err != nil {
		g.logger.Err(err).
			Str("func", "HTTPGateway.ModernLogin").
			Msg("login response carries no JSON object")
		return models.User{}, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}

	var loginResp modernLoginResponse
	if err = json.Unmarshal(payload, &loginResp); err != nil {
		return models.User{}, fmt.Errorf("%w: decode login response: %v", ErrUnexpectedResponse, err)
	}

	if !loginResp.Success {
		return models.User{}, fmt.Errorf("%w: %s", ErrAuthFailed, loginResp.Message)
	}

	return loginResp.User, nil
}

// extractJSONObject returns the first balanced {...} object found in body.
func extractJSONObject(body []byte) ([]byte, error) {
	start := strings.IndexByte(string(body), '{')
	if start < 0 {
		return nil, fmt.Errorf("no JSON object in response body")
	}

	depth := 0
	for i := start; i < len(body); i++ {
		switch body[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return body[start : i+1], nil
			}
		}
	}

	return nil, fmt.Errorf("unterminated JSON object in response body")
}

// LegacyLogin authenticates against the form-based login page. The session
// id comes from the PHPSESSID cookie when the server sets one; old server
// builds do not, in which case a locally generated id stands in so that
// submits still carry a stable cookie.
func (g *HTTPGateway) LegacyLogin(ctx context.Context, email, password string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.LoginTimeout)
	defer cancel()

	resp, err := g.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"email":    email,
			"password": password,
		}).
		Post(legacyLoginPath)
	if resp == nil || resp.RawResponse == nil {
		g.logger.Err(err).
			Str("func", "HTTPGateway.LegacyLogin").
			Msg("no response from legacy login page")
		return "", fmt.Errorf("%w: %v", ErrNetworkError, err)
	}

	status := resp.StatusCode()
	if status != 200 && !(status >= 300 && status < 400) {
		g.logger.Warn().
			Str("func", "HTTPGateway.LegacyLogin").
			Int("status", status).
			Msg("legacy login rejected")
		return "", fmt.Errorf("%w: status %d", ErrAuthFailed, status)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookieName && cookie.Value != "" {
			return cookie.Value, nil
		}
	}

	sessionID := g.ids.Generate()
	g.logger.Debug().
		Str("func", "HTTPGateway.LegacyLogin").
		Msg("server set no session cookie, using generated session id")

	return sessionID, nil
}

// Ping probes the server root with a cheap HEAD request.
func (g *HTTPGateway) Ping(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.ProbeTimeout)
	defer cancel()

	resp, err := g.client.R().
		SetContext(ctx).
		Head("/")
	if resp == nil || resp.RawResponse == nil {
		g.logger.Debug().
			Str("func", "HTTPGateway.Ping").
			Err(err).
			Msg("server unreachable")
		return false
	}

	status := resp.StatusCode()
	return status >= 200 && status < 400
}
