package ai

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gyeongsan/ansimtalk-backend/internal/models"
)

func TestHTTPClassifierSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/classify" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"category": "ROAD",
			"subcategory": "POTHOLE",
			"urgency": "긴급",
			"department": "도로철도과",
			"department_code": "ROAD",
			"confidence": 0.95,
			"reasoning": "도로 파손 확인",
			"risk_score": 85,
			"priority": 1
		}`))
	}))
	defer srv.Close()

	res, err := HTTPClassifier{BaseURL: srv.URL}.Classify(context.Background(), "img", "포트홀")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if res.Category != models.CategoryRoad || res.Priority != 1 || res.RiskScore != 85 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestHTTPClassifierMalformedBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	res, err := HTTPClassifier{BaseURL: srv.URL}.Classify(context.Background(), "img", "")
	if err != nil {
		t.Fatalf("malformed body must not error: %v", err)
	}
	if res.Category != models.CategoryUnknown || res.Confidence != 0 {
		t.Fatalf("expected UNKNOWN fallback, got %+v", res)
	}
	if res.RiskScore != 50 || res.Priority != 3 {
		t.Fatalf("fallback must carry risk 50 / priority 3, got %+v", res)
	}
}

func TestHTTPClassifierServerErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := (HTTPClassifier{BaseURL: srv.URL}).Classify(context.Background(), "img", ""); err == nil {
		t.Fatalf("expected error on 5xx")
	}
}

func TestMockClassifierHandlesHighBitHashes(t *testing.T) {
	m := MockClassifier{ModelVersion: "mock-v1"}

	// "img-0"|"desc" hashes above 1<<63; a signed index would go negative
	res, err := m.Classify(context.Background(), "img-0", "desc")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if res.Category == "" || res.RiskScore == 0 {
		t.Fatalf("mock must populate classification fields: %+v", res)
	}

	for i := 0; i < 64; i++ {
		res, err := m.Classify(context.Background(), fmt.Sprintf("img-%d", i), "도로에 장애물이 있습니다")
		if err != nil {
			t.Fatalf("classify img-%d: %v", i, err)
		}
		if res.Priority < 1 || res.Priority > 4 {
			t.Fatalf("img-%d: priority out of range: %+v", i, res)
		}
	}
}

func TestMockClassifierDeterministic(t *testing.T) {
	m := MockClassifier{ModelVersion: "mock-v1"}
	first, err := m.Classify(context.Background(), "img-a", "가로등이 꺼져 있습니다")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	second, _ := m.Classify(context.Background(), "img-a", "가로등이 꺼져 있습니다")
	if first != second {
		t.Fatalf("mock must be deterministic: %+v vs %+v", first, second)
	}
	if first.Category == "" || first.Subcategory == "" {
		t.Fatalf("mock must populate classification fields: %+v", first)
	}
}
