package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-phone-auth/internal/app"
	"github.com/MKhiriev/go-phone-auth/internal/config"
	"github.com/MKhiriev/go-phone-auth/internal/logger"
	"github.com/MKhiriev/go-phone-auth/internal/metrics"
	"github.com/MKhiriev/go-phone-auth/internal/service"
	"github.com/MKhiriev/go-phone-auth/internal/store"
	"github.com/MKhiriev/go-phone-auth/models"
)

// newSQLiteServer wires the real store, services and router over an
// in-memory SQLite database.
func newSQLiteServer(t *testing.T) (*httptest.Server, *store.DB) {
	t.Helper()

	db, err := store.NewDB(t.Context(), config.DB{Driver: store.DriverSQLite, Name: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	services, err := service.NewServices(store.NewStorages(db, logger.Nop()), config.App{
		TokenSignKey:     "e2e-sign-key",
		TokenIssuer:      config.DefaultTokenIssuer,
		TokenDuration:    config.DefaultTokenDuration,
		PasswordHashCost: bcrypt.MinCost,
		Version:          "e2e",
	}, metrics.New(), logger.Nop())
	require.NoError(t, err)

	h := NewHandler(services, config.Server{AllowedOrigin: testOrigin}, nil, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return srv, db
}

func post(t *testing.T, srv *httptest.Server, path, body string) (*http.Response, []byte) {
	t.Helper()

	resp, err := srv.Client().Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, respBody
}

func messageOf(t *testing.T, body []byte) string {
	t.Helper()
	var m models.MessageResponse
	require.NoError(t, json.Unmarshal(body, &m))
	return m.Message
}

func TestEndToEnd_RegisterAndLogin(t *testing.T) {
	srv, db := newSQLiteServer(t)
	const creds = `{"phone":"13800000000","password":"abc123"}`

	resp, body := post(t, srv, "/api/register", creds)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, app.MsgRegistered, messageOf(t, body))
	assert.NotContains(t, string(body), "abc123")

	resp, body = post(t, srv, "/api/register", creds)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, app.MsgPhoneAlreadyExists, messageOf(t, body))

	var rows int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users WHERE phone = ?`, "13800000000").Scan(&rows))
	assert.Equal(t, 1, rows)

	var stored string
	require.NoError(t, db.QueryRow(`SELECT password FROM users WHERE phone = ?`, "13800000000").Scan(&stored))
	assert.NotEqual(t, "abc123", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("abc123")))

	resp, body = post(t, srv, "/api/login", creds)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login models.LoginResponse
	require.NoError(t, json.Unmarshal(body, &login))
	assert.Equal(t, app.MsgLoggedIn, login.Message)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "13800000000", login.User.Phone)
	assert.Positive(t, login.User.ID)
	assert.Equal(t, "Bearer "+login.Token, resp.Header.Get("Authorization"))

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL+"/api/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	meResp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer meResp.Body.Close()
	var me models.UserSummary
	require.NoError(t, json.NewDecoder(meResp.Body).Decode(&me))
	assert.Equal(t, login.User, me)
}

func TestEndToEnd_FailedLoginsAreIndistinguishable(t *testing.T) {
	srv, _ := newSQLiteServer(t)

	resp, _ := post(t, srv, "/api/register", `{"phone":"13800000000","password":"abc123"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	wrongResp, wrongBody := post(t, srv, "/api/login", `{"phone":"13800000000","password":"wrong"}`)
	unknownResp, unknownBody := post(t, srv, "/api/login", `{"phone":"19999999999","password":"abc123"}`)

	assert.Equal(t, http.StatusBadRequest, wrongResp.StatusCode)
	assert.Equal(t, http.StatusBadRequest, unknownResp.StatusCode)
	assert.Equal(t, app.MsgInvalidCredentials, messageOf(t, wrongBody))
	assert.Equal(t, string(wrongBody), string(unknownBody))

	missingResp, missingBody := post(t, srv, "/api/login", `{"password":"abc123"}`)
	assert.Equal(t, http.StatusBadRequest, missingResp.StatusCode)
	assert.Equal(t, string(wrongBody), string(missingBody))
}

func TestEndToEnd_OversizedBodyIsRejected(t *testing.T) {
	srv, db := newSQLiteServer(t)

	huge := `{"phone":"13800000000","password":"` + strings.Repeat("a", 2*maxCredentialsBodyBytes) + `"}`
	for _, path := range []string{"/api/register", "/api/login"} {
		resp, body := post(t, srv, path, huge)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.Equal(t, app.MsgInvalidDataProvided, messageOf(t, body), path)
	}

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count))
	assert.Zero(t, count)
}

func TestEndToEnd_StorageFailureIs500(t *testing.T) {
	srv, db := newSQLiteServer(t)
	require.NoError(t, db.Close())

	resp, body := post(t, srv, "/api/register", `{"phone":"13800000000","password":"abc123"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, app.MsgInternalServerError, messageOf(t, body))

	resp, body = post(t, srv, "/api/login", `{"phone":"13800000000","password":"abc123"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, app.MsgInternalServerError, messageOf(t, body))
}
