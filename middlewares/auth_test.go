package middlewares

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func gatedRequest(t *testing.T, header string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/admin", AdminAuth("techspace", "veryhard69"), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func basic(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestAdminAuth(t *testing.T) {
	t.Run("exact credentials pass", func(t *testing.T) {
		w := gatedRequest(t, basic("techspace", "veryhard69"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Bearer sometoken"},
		{"bare scheme", "Basic"},
		{"invalid base64", "Basic !!!not-base64!!!"},
		{"no colon in payload", "Basic " + base64.StdEncoding.EncodeToString([]byte("techspace"))},
		{"wrong username", basic("admin", "veryhard69")},
		{"wrong password", basic("techspace", "wrong")},
		{"case-shifted username", basic("Techspace", "veryhard69")},
		{"both empty", basic("", "")},
	}

	for _, tc := range cases {
		t.Run(tc.name+" gets a challenge", func(t *testing.T) {
			w := gatedRequest(t, tc.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, `Basic realm="TechSpace Admin"`, w.Header().Get("WWW-Authenticate"))
			assert.NotContains(t, w.Body.String(), "username")
			assert.NotContains(t, w.Body.String(), "password")
		})
	}
}
