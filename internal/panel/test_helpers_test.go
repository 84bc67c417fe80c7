// ABOUTME: Shared test doubles for panel tests: stub session, notice recorder
// ABOUTME: Plus envelope helpers for httptest fake API servers

package panel

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bankexample/bankdesk/internal/api"
	"github.com/bankexample/bankdesk/internal/model"
)

// stubSession satisfies Session with fixed values.
type stubSession struct {
	credential string
	operator   *model.User
}

func (s *stubSession) Credential() string    { return s.credential }
func (s *stubSession) Operator() *model.User { return s.operator }

func adminSession() *stubSession {
	return &stubSession{
		credential: "admin-token",
		operator:   &model.User{ID: 1, Name: "Admin", Email: "admin@bankexample.com", IsAdmin: true, IsActive: true},
	}
}

func userSession(id int64) *stubSession {
	return &stubSession{
		credential: "user-token",
		operator:   &model.User{ID: id, Name: "Operator", Email: "op@bankexample.com", IsAdmin: false, IsActive: true},
	}
}

// noticeRecorder records posted notices for assertions.
type noticeRecorder struct {
	successes []string
	errors    []string
}

func (r *noticeRecorder) Success(format string, args ...any) {
	r.successes = append(r.successes, fmt.Sprintf(format, args...))
}

func (r *noticeRecorder) Error(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

// writeSuccess writes a success envelope with the given data object.
func writeSuccess(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "success",
		"message": "ok",
		"data":    data,
	})
}

// writeError writes an error envelope with the given HTTP status.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "error",
		"message": message,
		"data":    map[string]any{},
	})
}

// newTestClient wraps an httptest server in a gateway client.
func newTestClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(srv.URL, slog.New(slog.DiscardHandler))
}
