package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"risingcreators/internal/api/dto"
	"risingcreators/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestAuthRejectsMalformedHeader(t *testing.T) {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		response.Success(c, nil)
	})

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no bearer prefix", "some-token"},
		{"not a jwt", "Bearer not-a-jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			var resp dto.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, response.Unauthorized, resp.Code)
		})
	}
}

func TestCheckRoles(t *testing.T) {
	newRouter := func(roles []string) *gin.Engine {
		r := gin.New()
		r.GET("/admin",
			func(c *gin.Context) { c.Set("roles", roles) },
			CheckRoles("ADMIN"),
			func(c *gin.Context) { response.Success(c, nil) },
		)
		return r
	}

	cases := []struct {
		name     string
		roles    []string
		wantCode int
	}{
		{"has role", []string{"ADMIN"}, response.Ok},
		{"one of several", []string{"VIEWER", "ADMIN"}, response.Ok},
		{"wrong role", []string{"VIEWER"}, response.Forbidden},
		{"no roles", nil, response.Forbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newRouter(tc.roles).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

			var resp dto.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, tc.wantCode, resp.Code)
		})
	}
}
