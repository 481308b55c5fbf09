// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-phone-auth/internal/config"
	"github.com/MKhiriev/go-phone-auth/internal/logger"
	"github.com/MKhiriev/go-phone-auth/models"
)

var testCreds = models.Credentials{Phone: "13800000000", Password: "abc123"}

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:3000", want: "http://localhost:3000"},
		{raw: " https://auth.example.com/ ", want: "https://auth.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/register", r.URL.Path)

			var got models.Credentials
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, testCreds, got)

			writeJSON(t, w, http.StatusCreated, models.MessageResponse{Message: "注册成功"})
		}))
		defer srv.Close()

		msg, err := newTestAdapter(t, srv.URL).Register(t.Context(), testCreds)

		require.NoError(t, err)
		assert.Equal(t, "注册成功", msg)
	})

	t.Run("duplicate", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusBadRequest, models.MessageResponse{Message: "用户名已存在"})
		}))
		defer srv.Close()

		_, err := newTestAdapter(t, srv.URL).Register(t.Context(), testCreds)

		assert.ErrorIs(t, err, ErrBadRequest)
		assert.Equal(t, "用户名已存在", UserMessage(err))
	})
}

func TestLogin(t *testing.T) {
	t.Run("success stores token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/login", r.URL.Path)
			w.Header().Set("Authorization", "Bearer header.token")
			writeJSON(t, w, http.StatusOK, models.LoginResponse{
				Message: "登录成功",
				Token:   "body.token",
				User:    models.UserSummary{ID: 3, Phone: testCreds.Phone},
			})
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL)
		resp, err := a.Login(t.Context(), testCreds)

		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.User.ID)
		assert.Equal(t, "body.token", a.Token())
	})

	t.Run("token from header only", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Authorization", "Bearer header.token")
			writeJSON(t, w, http.StatusOK, models.LoginResponse{Message: "登录成功"})
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL)
		_, err := a.Login(t.Context(), testCreds)

		require.NoError(t, err)
		assert.Equal(t, "header.token", a.Token())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusBadRequest, models.MessageResponse{Message: "手机号或密码错误"})
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL)
		_, err := a.Login(t.Context(), testCreds)

		assert.ErrorIs(t, err, ErrBadRequest)
		assert.Equal(t, "手机号或密码错误", UserMessage(err))
		assert.Empty(t, a.Token())
	})
}

func TestMe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "令牌无效或已过期"})
			return
		}
		writeJSON(t, w, http.StatusOK, models.UserSummary{ID: 1, Phone: testCreds.Phone})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.Me(t.Context())
	assert.ErrorIs(t, err, ErrNoToken)

	a.SetToken("bad")
	_, err = a.Me(t.Context())
	assert.ErrorIs(t, err, ErrUnauthorized)

	a.SetToken(" good ")
	me, err := a.Me(t.Context())
	require.NoError(t, err)
	assert.Equal(t, models.UserSummary{ID: 1, Phone: testCreds.Phone}, me)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("1.4.0"))
	}))
	defer srv.Close()

	v, err := newTestAdapter(t, srv.URL).Version(t.Context())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", v)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status  int
		body    string
		want    error
		wantMsg string
	}{
		{http.StatusBadRequest, `{"message":"请求数据无效"}`, ErrBadRequest, "请求数据无效"},
		{http.StatusUnauthorized, `{"message":"令牌已过期"}`, ErrUnauthorized, "令牌已过期"},
		{http.StatusNotFound, ``, ErrNotFound, ""},
		{http.StatusInternalServerError, `{"message":"服务器错误"}`, ErrServerError, "服务器错误"},
		{http.StatusBadGateway, `upstream down`, ErrServerError, "upstream down"},
		{http.StatusTeapot, ``, ErrUnexpected, ""},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Version(t.Context())

			assert.ErrorIs(t, err, tt.want)
			var respErr *ResponseError
			require.ErrorAs(t, err, &respErr)
			assert.Equal(t, tt.status, respErr.StatusCode)
			assert.Equal(t, tt.wantMsg, respErr.Message)
		})
	}
}
