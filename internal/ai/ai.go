package ai

import (
	"context"

	"github.com/gyeongsan/ansimtalk-backend/internal/models"
)

// Classifier analyzes a complaint photo and description and returns a
// structured classification. Implementations must not return an error for a
// malformed model response; they substitute Fallback() instead. Transport
// failures are returned as errors and surfaced to the submitter.
type Classifier interface {
	Classify(ctx context.Context, image string, description string) (models.ClassificationResult, error)
}

// Fallback is the classification substituted when the model responds but
// the payload cannot be used.
func Fallback() models.ClassificationResult {
	return models.ClassificationResult{
		Category:       models.CategoryUnknown,
		Subcategory:    "UNKNOWN",
		Urgency:        models.UrgencyMedium,
		Department:     "민원여권과",
		DepartmentCode: "GENERAL",
		Confidence:     0,
		Reasoning:      "분류 중 오류가 발생했습니다.",
		RiskScore:      50,
		Priority:       3,
	}
}
