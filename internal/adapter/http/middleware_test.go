package adapthttp

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"

	"weightboard/internal/adapter/memory"
	"weightboard/internal/app"
)

func TestLoggingMiddleware(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("OK"))
	})

	handler := loggingMiddleware(nextHandler)

	var buf bytes.Buffer
	originalOutput := log.StandardLogger().Out
	originalLevel := log.GetLevel()
	log.SetOutput(&buf)
	log.SetLevel(log.DebugLevel)
	defer func() {
		log.SetOutput(originalOutput)
		log.SetLevel(originalLevel)
	}()

	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status %d, got %d", http.StatusTeapot, w.Code)
	}

	logOutput := buf.String()
	if !strings.Contains(logOutput, "GET") || !strings.Contains(logOutput, "/test-path") || !strings.Contains(logOutput, "418") {
		t.Errorf("Log output missing expected fields. Got: %s", logOutput)
	}
}

func TestBusyGate(t *testing.T) {
	g := newBusyGate()

	if !g.acquire("session-a") {
		t.Fatal("first acquire should succeed")
	}
	if g.acquire("session-a") {
		t.Fatal("second acquire for the same session should fail while held")
	}
	if !g.acquire("session-b") {
		t.Fatal("a different session must not be blocked")
	}
	g.release("session-a")
	if !g.acquire("session-a") {
		t.Fatal("acquire after release should succeed")
	}
}

func TestBusyGateConcurrent(t *testing.T) {
	g := newBusyGate()

	const attempts = 50
	var wg sync.WaitGroup
	acquired := make(chan struct{}, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.acquire("shared") {
				acquired <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(acquired)

	var n int
	for range acquired {
		n++
	}
	if n != 1 {
		t.Fatalf("expected exactly one acquire to win, got %d", n)
	}
}

func TestSerializedRejectsConcurrentMutation(t *testing.T) {
	s := &Server{busy: newBusyGate()}

	release := make(chan struct{})
	entered := make(chan struct{})
	slow := s.serialized(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		w.WriteHeader(http.StatusOK)
	})

	newReq := func() *http.Request {
		req := httptest.NewRequest("POST", "/api/entries", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "tok"})
		return req
	}

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		slow(httptest.NewRecorder(), newReq())
	}()
	<-entered

	w := httptest.NewRecorder()
	slow(w, newReq())
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 while first mutation in flight, got %d", w.Code)
	}

	close(release)
	<-firstDone

	w = httptest.NewRecorder()
	s.serialized(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})(w, newReq())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 after gate released, got %d", w.Code)
	}
}

func TestSessionMiddlewareDropsGestureStateOnExpiry(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	sessions := memory.NewSessionRepo(db)
	s := &Server{
		auth:     app.NewAuthService(db, sessions),
		busy:     newBusyGate(),
		gestures: newGestureTracker(),
	}

	user, err := db.Create(ctx, "gone@b.test", "hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	const token = "expired-token"
	if err := sessions.Create(ctx, user.ID, token, time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("create session: %v", err)
	}

	// A recognizer tracked while the session was still live.
	s.gestures.get(token)

	handler := s.sessionMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run for an expired session")
	}))
	req := httptest.NewRequest("GET", "/api/chart", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired session, got %d", w.Code)
	}
	s.gestures.mu.Lock()
	_, held := s.gestures.recognizers[token]
	s.gestures.mu.Unlock()
	if held {
		t.Fatal("recognizer for the expired session should have been dropped")
	}
}

func TestSerializedRequiresSession(t *testing.T) {
	s := &Server{busy: newBusyGate()}
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/entries", nil)
	s.serialized(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run without a session cookie")
	})(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
