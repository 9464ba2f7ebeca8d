//go:build unit || e2e

// Package backendtest runs a fake reservation backend for client and e2e tests.
package backendtest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type Response struct {
	Status int
	Body   string
}

// Request is what the fake backend saw on the wire.
type Request struct {
	Method      string
	Action      string
	RawQuery    string
	ContentType string
	Accept      string
	Body        []byte
}

type Server struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]Response
	requests  []Request
}

func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{responses: map[string]Response{}}
	mux := http.NewServeMux()
	mux.HandleFunc("/exec", s.serve)
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

// URL is the endpoint to configure the client with.
func (s *Server) URL() string {
	return s.Server.URL + "/exec"
}

func (s *Server) Handle(action string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[action] = Response{Status: status, Body: body}
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) RequestsFor(action string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Action == action {
			out = append(out, r)
		}
	}
	return out
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	action := r.URL.Query().Get("action")
	if r.Method == http.MethodPost {
		var payload struct {
			Action string `json:"action"`
		}
		_ = json.Unmarshal(body, &payload)
		action = payload.Action
	}

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:      r.Method,
		Action:      action,
		RawQuery:    r.URL.RawQuery,
		ContentType: r.Header.Get("Content-Type"),
		Accept:      r.Header.Get("Accept"),
		Body:        body,
	})
	res, ok := s.responses[action]
	s.mu.Unlock()

	if !ok {
		res = Response{Status: http.StatusNotFound, Body: "unknown action"}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Status)
	_, _ = io.WriteString(w, res.Body)
}
