package utils

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var testTemplates = template.Must(template.New("page").Parse(`<p>{{.}}</p>`))

func TestWriteHTML_Success(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteHTML(w, testTemplates, "page", "hello", http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("expected html Content-Type, got '%s'", ct)
	}
	if w.Body.String() != "<p>hello</p>" {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestWriteHTML_EscapesData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteHTML(w, testTemplates, "page", "<script>", http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if strings.Contains(w.Body.String(), "<script>") {
		t.Errorf("expected escaped body, got %q", w.Body.String())
	}
}

func TestWriteHTML_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteHTML(w, testTemplates, "page", "bad", http.StatusUnprocessableEntity)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
	}
}

func TestWriteHTML_UnknownTemplate(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteHTML(w, testTemplates, "missing", nil, http.StatusOK)

	if err == nil {
		t.Fatal("expected error for unknown template, got nil")
	}
	if n != 0 {
		t.Errorf("expected 0 bytes written, got %d", n)
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteHTML_PreservesHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	http.SetCookie(w, &http.Cookie{Name: "flash", Value: ""})

	if _, err := WriteHTML(w, testTemplates, "page", "x", http.StatusOK); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Header().Get("Set-Cookie") == "" {
		t.Error("expected Set-Cookie header to survive rendering")
	}
}
