package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/devlink/backend/internal/model"
)

type spyParser struct {
	calls int
	user  *model.AuthUser
	err   error
}

func (s *spyParser) Parse(string) (*model.AuthUser, error) {
	s.calls++
	return s.user, s.err
}

func newGateRouter(parser TokenParser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(parser), func(c *gin.Context) {
		user := GetAuthUser(c)
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	return r
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	parser := &spyParser{}
	r := newGateRouter(parser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	want := `{"errors":[{"msg":"No token, authorization denied."}]}`
	if w.Body.String() != want {
		t.Fatalf("body = %s, want %s", w.Body.String(), want)
	}
	if parser.calls != 0 {
		t.Fatalf("parser invoked %d times for a missing header, want 0", parser.calls)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	parser := &spyParser{err: errors.New("token expired")}
	r := newGateRouter(parser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("x-auth-token", "bad-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	want := `{"errors":[{"msg":"Token is not valid"}]}`
	if w.Body.String() != want {
		t.Fatalf("body = %s, want %s", w.Body.String(), want)
	}
	if parser.calls != 1 {
		t.Fatalf("parser invoked %d times, want 1", parser.calls)
	}
}

func TestAuthMiddlewareAttachesIdentity(t *testing.T) {
	parser := &spyParser{user: &model.AuthUser{ID: "u1"}}
	r := newGateRouter(parser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("x-auth-token", "good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != `{"id":"u1"}` {
		t.Fatalf("body = %s, downstream handler did not see the identity", w.Body.String())
	}
}
