package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gyeongsan/ansimtalk-backend/internal/models"
	"github.com/gyeongsan/ansimtalk-backend/internal/observability"
)

type HTTPClassifier struct {
	BaseURL string
	Client  *http.Client
	Metrics *observability.Metrics
}

type requestBody struct {
	Image       string `json:"image"`
	Description string `json:"description"`
}

type responseBody struct {
	Category       string  `json:"category"`
	Subcategory    string  `json:"subcategory"`
	Urgency        string  `json:"urgency"`
	Department     string  `json:"department"`
	DepartmentCode string  `json:"department_code"`
	Confidence     float64 `json:"confidence"`
	Reasoning      string  `json:"reasoning"`
	RiskScore      int     `json:"risk_score"`
	Priority       int     `json:"priority"`
}

func (h HTTPClassifier) Classify(ctx context.Context, image string, description string) (models.ClassificationResult, error) {
	if h.Client == nil {
		h.Client = &http.Client{Timeout: 15 * time.Second}
	}

	b, _ := json.Marshal(requestBody{Image: image, Description: description})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+"/classify", bytes.NewBuffer(b))
	if err != nil {
		return models.ClassificationResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		return models.ClassificationResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.ClassificationResult{}, errors.New("classification service error")
	}

	// A model reply we cannot parse is downgraded to the UNKNOWN fallback
	// instead of failing the submission.
	var r responseBody
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		if h.Metrics != nil {
			h.Metrics.ClassifierFallbacks.Inc()
		}
		return Fallback(), nil
	}

	return models.ClassificationResult{
		Category:       models.ComplaintCategory(r.Category),
		Subcategory:    r.Subcategory,
		Urgency:        models.Urgency(r.Urgency),
		Department:     r.Department,
		DepartmentCode: r.DepartmentCode,
		Confidence:     r.Confidence,
		Reasoning:      r.Reasoning,
		RiskScore:      r.RiskScore,
		Priority:       r.Priority,
	}, nil
}
