package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskpad/domain"
)

func TestListTasks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/tasks" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"1","title":"B","priority":"Low"},{"id":"2","title":"A","priority":"High"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	tasks, err := c.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 2 || tasks[0].ID != "1" || tasks[1].Priority != domain.PriorityHigh {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
}

func TestListTasksNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.ListTasks(context.Background()); err == nil {
		t.Fatalf("expected error for non-success status")
	}
}

func TestCreateTaskSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"title must not be empty"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateTask(context.Background(), domain.TaskDraft{Title: ""})
	if err == nil {
		t.Fatalf("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Message != "title must not be empty" {
		t.Fatalf("expected server message to be surfaced, got %q", apiErr.Message)
	}
}

func TestCreateTaskFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateTask(context.Background(), domain.TaskDraft{Title: "x"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway || apiErr.Error() == "" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestDeleteTaskStatusOnly(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.URL.Path == "/api/tasks/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.DeleteTask(context.Background(), "t1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gotPath != "/api/tasks/t1" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if err := c.DeleteTask(context.Background(), "missing"); err == nil {
		t.Fatalf("expected error for 404")
	}
}
