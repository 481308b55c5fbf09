package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	for _, version := range []string{"1.2.3", "N/A"} {
		t.Run(version, func(t *testing.T) {
			h := newTestHandler(t)
			h.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(version)

			rec := httptest.NewRecorder()
			h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Equal(t, version, rec.Body.String())
		})
	}
}
