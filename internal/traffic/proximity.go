package traffic

import (
	"time"

	"github.com/gyeongsan/ansimtalk-backend/internal/models"
)

const (
	// ProximityWindow is how far back complaint records count toward
	// congestion pressure.
	ProximityWindow = 30 * time.Minute

	// ReportSaturation is the complaint count at which the pressure
	// component saturates to 1.0.
	ReportSaturation = 8
)

// RecentRoadReports counts road and traffic-facility complaints created
// within the trailing window ending at now. The count is citywide: no
// geographic filtering against the segment path is applied.
func RecentRoadReports(reports []models.ComplaintReport, now time.Time) int {
	cutoff := now.Add(-ProximityWindow)
	n := 0
	for _, r := range reports {
		if r.Category != models.CategoryRoad && r.Category != models.CategoryTrafficFacility {
			continue
		}
		if r.CreatedAt.After(cutoff) {
			n++
		}
	}
	return n
}
