package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUUID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "6f1c2a4e-30a5-4b6e-9d55-0c3f2b1a7e90", want: true},
		{in: "6F1C2A4E-30A5-4B6E-9D55-0C3F2B1A7E90", want: true},
		{in: "", want: false},
		{in: "abc", want: false},
		{in: "6f1c2a4e30a54b6e9d550c3f2b1a7e90", want: false},
		{in: "{6f1c2a4e-30a5-4b6e-9d55-0c3f2b1a7e90}", want: false},
		{in: "urn:uuid:6f1c2a4e-30a5-4b6e-9d55-0c3f2b1a7e90", want: false},
		{in: "6f1c2a4e-30a5-4b6e-9d55-0c3f2b1a7eZZ", want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsUUID(tt.in), "input %q", tt.in)
	}
}

func TestUUIDParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	reached := false
	r.GET("/workspaces/:id/things/:thing", UUIDParams("id", "thing"), func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	valid := uuid.NewString()

	t.Run("valid ids pass", func(t *testing.T) {
		reached = false
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/workspaces/"+valid+"/things/"+valid, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, reached)
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		reached = false
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/workspaces/"+valid+"/things/xyz", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, reached)

		var body struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "INVALID_REQUEST", body.Error.Code)
		assert.Equal(t, "thing must be a UUID", body.Error.Message)
	})
}
