package ai

import (
	"context"
	"fmt"

	"github.com/gyeongsan/ansimtalk-backend/internal/models"
	"github.com/gyeongsan/ansimtalk-backend/internal/utils"
)

// MockClassifier produces deterministic classifications from an input hash.
// Used when no classification service URL is configured.
type MockClassifier struct {
	ModelVersion string
}

var mockPicks = []struct {
	category    models.ComplaintCategory
	subcategory string
	urgency     models.Urgency
	riskScore   int
	priority    int
}{
	{models.CategoryRoad, "POTHOLE", models.UrgencyHigh, 78, 2},
	{models.CategoryRoad, "ROAD_CRACK", models.UrgencyMedium, 55, 3},
	{models.CategoryTrafficFacility, "STREETLIGHT_OFF", models.UrgencyMedium, 48, 2},
	{models.CategoryEnvWaste, "ILLEGAL_DUMPING", models.UrgencyMedium, 60, 3},
	{models.CategorySafetyObstacle, "FALLEN_OBJECT", models.UrgencyHigh, 72, 2},
	{models.CategoryDrainage, "CLOGGED_DRAIN", models.UrgencyLow, 35, 4},
}

func (m MockClassifier) Classify(ctx context.Context, image string, description string) (models.ClassificationResult, error) {
	// index in uint64 space: int(h) goes negative for hashes with the top
	// bit set, and a negative modulo would panic
	h := utils.HashStringToUint64(image + "|" + description)
	pick := mockPicks[h%uint64(len(mockPicks))]

	confidence := 0.82
	if h%5 == 0 {
		confidence = 0.64
	}

	return models.ClassificationResult{
		Category:    pick.category,
		Subcategory: pick.subcategory,
		Urgency:     pick.urgency,
		Confidence:  confidence,
		Reasoning:   fmt.Sprintf("%s 유형으로 자동 분류되었습니다 (%s)", pick.subcategory, m.ModelVersion),
		RiskScore:   pick.riskScore,
		Priority:    pick.priority,
	}, nil
}
