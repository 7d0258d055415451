package geocode

import (
	"errors"
	"testing"
)

func TestShouldReverse(t *testing.T) {
	if ShouldReverse("경산시 중방동 844", 35.8242, 128.7384) {
		t.Fatalf("existing address must not be re-resolved")
	}
	if !ShouldReverse("", 35.8242, 128.7384) {
		t.Fatalf("missing address with coordinates should be resolved")
	}
	if ShouldReverse("", 0, 0) {
		t.Fatalf("zero coordinates should be skipped")
	}
}

func TestParseReverseItem(t *testing.T) {
	var item nominatimReverseItem
	item.DisplayName = "844, 중방동, 경산시, 경상북도, 대한민국"
	item.Address.Road = "경산로"
	item.Address.Suburb = "중방동"

	place, err := parseReverseItem(item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if place.AdminArea != "중방동" || place.RoadName != "경산로" {
		t.Fatalf("unexpected place: %+v", place)
	}

	if _, err := parseReverseItem(nominatimReverseItem{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("empty item must be ErrNotFound, got %v", err)
	}
}
