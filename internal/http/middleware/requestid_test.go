package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/roguepikachu/smileline/pkg/ctxutil"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name      string
		requestID string
		clientID  string
	}{
		{"generates both", "", ""},
		{"keeps provided request id", "req-123", ""},
		{"keeps both", "req-123", "client-9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotReq, gotClient string
			r := gin.New()
			r.Use(RequestIDMiddleware())
			r.GET("/x", func(c *gin.Context) {
				gotReq = ctxutil.RequestID(c.Request.Context())
				gotClient = ctxutil.ClientID(c.Request.Context())
				c.Status(http.StatusNoContent)
			})
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.requestID != "" {
				req.Header.Set(headerRequestID, tt.requestID)
			}
			if tt.clientID != "" {
				req.Header.Set(headerClientID, tt.clientID)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if tt.requestID != "" && gotReq != tt.requestID {
				t.Fatalf("want request id %q, got %q", tt.requestID, gotReq)
			}
			if tt.requestID == "" {
				if _, err := uuid.Parse(gotReq); err != nil {
					t.Fatalf("generated request id is not a uuid: %q", gotReq)
				}
			}
			if tt.clientID != "" && gotClient != tt.clientID {
				t.Fatalf("want client id %q, got %q", tt.clientID, gotClient)
			}
			if gotClient == "" {
				t.Fatalf("client id must always be set")
			}
			if w.Header().Get(headerRequestID) != gotReq || w.Header().Get(headerClientID) != gotClient {
				t.Fatalf("response headers do not echo context ids")
			}
		})
	}
}
