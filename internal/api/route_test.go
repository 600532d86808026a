package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"risingcreators/internal/api/dto"
	"risingcreators/internal/pkg/logger"
	"risingcreators/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func newTestRouter(jobSecret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.InitLogger()
	return SetupRouter(&HandlersGroup{}, jobSecret)
}

func businessCode(t *testing.T, r *gin.Engine, method, path string) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Code
}

func TestPing(t *testing.T) {
	r := newTestRouter("")
	require.Equal(t, response.Ok, businessCode(t, r, http.MethodGet, "/api/ping"))
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	r := newTestRouter("s3cret")

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/creators"},
		{http.MethodGet, "/api/creators/trending"},
		{http.MethodGet, "/api/discovery/rules"},
		{http.MethodPost, "/api/discovery/rules/1/run"},
		{http.MethodPost, "/api/jobs/refresh-snapshots"},
		{http.MethodPost, "/api/jobs/auto-discovery"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			require.Equal(t, response.Unauthorized, businessCode(t, r, tc.method, tc.path))
		})
	}
}
