package service

import "github.com/gyeongsan/ansimtalk-backend/internal/models"

type department struct {
	Name string
	Code string
}

var departments = map[models.ComplaintCategory]department{
	models.CategoryRoad:            {Name: "도로철도과", Code: "ROAD"},
	models.CategoryTrafficFacility: {Name: "교통행정과", Code: "TRAFFIC"},
	models.CategoryEnvWaste:        {Name: "자원순환과", Code: "ENV"},
	models.CategorySafetyObstacle:  {Name: "안전총괄과", Code: "SAFETY"},
	models.CategoryDrainage:        {Name: "안전총괄과", Code: "SAFETY"},
	models.CategoryUnknown:         {Name: "민원여권과", Code: "GENERAL"},
}

// DepartmentFor maps a complaint category to its responsible department.
func DepartmentFor(category models.ComplaintCategory) (string, string) {
	if d, ok := departments[category]; ok {
		return d.Name, d.Code
	}
	d := departments[models.CategoryUnknown]
	return d.Name, d.Code
}
