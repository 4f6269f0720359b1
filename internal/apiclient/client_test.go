package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

type item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestGetDecodesArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/items" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("missing Accept header")
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":1,"name":"a"},{"id":2,"name":"b"}]`)
	}))
	defer srv.Close()

	c := New(srv.URL + "/api/")
	var out []item
	if err := c.Get(context.Background(), "/items", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(out) != 2 || out[1].Name != "b" {
		t.Fatalf("unexpected %+v", out)
	}
}

func TestGetRejectsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"content":[{"id":1}]}`)
	}))
	defer srv.Close()

	var out []item
	err := New(srv.URL).Get(context.Background(), "/items", &out)
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError got %v", err)
	}
	if se.Got != "object" {
		t.Fatalf("expected object got %s", se.Got)
	}
}

func TestGetNullIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `null`)
	}))
	defer srv.Close()

	var out []item
	if err := New(srv.URL).Get(context.Background(), "/items", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty got %+v", out)
	}
}

func TestPostSendsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type %q", ct)
		}
		var in item
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode: %v", err)
		}
		in.ID = 9
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	var out item
	if err := New(srv.URL).Post(context.Background(), "/items", item{Name: "x"}, &out); err != nil {
		t.Fatalf("post: %v", err)
	}
	if out.ID != 9 || out.Name != "x" {
		t.Fatalf("unexpected %+v", out)
	}
}

func TestStatusErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		message  string
		notFound bool
	}{
		{"not found empty body", http.StatusNotFound, "", "", true},
		{"conflict json message", http.StatusConflict, `{"message":"Ya existe un médico con la colegiatura: 123"}`, "Ya existe un médico con la colegiatura: 123", false},
		{"bad request error field", http.StatusBadRequest, `{"error":"invalid_body"}`, "invalid_body", false},
		{"server error text", http.StatusInternalServerError, "boom\n", "boom", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			err := New(srv.URL).Delete(context.Background(), "/items/1")
			var se *StatusError
			if !errors.As(err, &se) {
				t.Fatalf("expected StatusError got %v", err)
			}
			if se.Status != tt.status {
				t.Fatalf("status %d", se.Status)
			}
			if se.Message != tt.message {
				t.Fatalf("message %q want %q", se.Message, tt.message)
			}
			if errors.Is(err, ErrNotFound) != tt.notFound {
				t.Fatalf("ErrNotFound match = %v", !tt.notFound)
			}
		})
	}
}

func TestNoRetryOnFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if err := New(srv.URL).Get(context.Background(), "/items", nil); err == nil {
		t.Fatalf("expected error")
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single request got %d", calls.Load())
	}
}

func TestTransportErrorOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := New(srv.URL).Get(ctx, "/slow", nil)
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded got %v", err)
	}
}

func TestGetBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if accept := r.Header.Get("Accept"); !strings.Contains(accept, "application/pdf") || !strings.Contains(accept, "*/*") {
			w.WriteHeader(http.StatusNotAcceptable)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		io.WriteString(w, "%PDF-1.3")
	}))
	defer srv.Close()

	data, ct, err := New(srv.URL).GetBytes(context.Background(), "/doc")
	if err != nil {
		t.Fatalf("get bytes: %v", err)
	}
	if ct != "application/pdf" || !strings.HasPrefix(string(data), "%PDF") {
		t.Fatalf("unexpected %q %q", ct, data)
	}
}

func TestWithTimeoutLeavesCallerClientAlone(t *testing.T) {
	shared := &http.Client{Timeout: time.Minute}
	c := New("http://example.test", WithHTTPClient(shared), WithTimeout(3*time.Second))
	if shared.Timeout != time.Minute {
		t.Fatalf("caller client modified: %v", shared.Timeout)
	}
	if c.http == shared || c.http.Timeout != 3*time.Second {
		t.Fatalf("expected a copy with the new timeout, got %v", c.http.Timeout)
	}

	before := http.DefaultClient.Timeout
	New("http://example.test", WithHTTPClient(http.DefaultClient), WithTimeout(time.Second))
	if http.DefaultClient.Timeout != before {
		t.Fatalf("http.DefaultClient modified")
	}
}
