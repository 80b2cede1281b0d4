package domain

import "fmt"

// Attribute names a measurable property of a Destination that a criterion can bind to.
type Attribute string

const (
	AttrRating        Attribute = "rating"
	AttrReviews       Attribute = "reviews"
	AttrPrice         Attribute = "price"
	AttrFacilities    Attribute = "facilities"
	AttrAccessibility Attribute = "accessibility"
	AttrToilet        Attribute = "toilet"
	AttrParking       Attribute = "parking"
	AttrRestArea      Attribute = "rest_area"
	AttrRestaurant    Attribute = "restaurant"

	AttrReviewCleanliness Attribute = "review_c1"
	AttrReviewFacilities  Attribute = "review_c2"
	AttrReviewAccess      Attribute = "review_c3"
	AttrReviewSafety      Attribute = "review_c4"
	AttrReviewScenery     Attribute = "review_c5"
	AttrReviewService     Attribute = "review_c6"
	AttrReviewValue       Attribute = "review_c7"
)

// Attributes lists every supported attribute in a stable order.
var Attributes = []Attribute{
	AttrRating, AttrReviews, AttrPrice, AttrFacilities, AttrAccessibility,
	AttrToilet, AttrParking, AttrRestArea, AttrRestaurant,
	AttrReviewCleanliness, AttrReviewFacilities, AttrReviewAccess, AttrReviewSafety,
	AttrReviewScenery, AttrReviewService, AttrReviewValue,
}

// ParseAttribute converts a string into an Attribute.
func ParseAttribute(s string) (Attribute, error) {
	a := Attribute(s)
	if _, ok := a.valueOf(&Destination{}); !ok {
		return "", WrapInvalidRequest("unknown attribute %q", s)
	}
	return a, nil
}

// Value extracts the attribute from d.
// ok is false for an unknown attribute.
func (d *Destination) Value(a Attribute) (float64, bool) {
	return a.valueOf(d)
}

func (a Attribute) valueOf(d *Destination) (float64, bool) {
	switch a {
	case AttrRating:
		return d.AverageRating, true
	case AttrReviews:
		return float64(d.TotalReviews), true
	case AttrPrice:
		return d.Price, true
	case AttrFacilities:
		return float64(d.FacilityCount()), true
	case AttrAccessibility:
		return d.Accessibility, true
	case AttrToilet:
		return float64(d.Toilet), true
	case AttrParking:
		return float64(d.Parking), true
	case AttrRestArea:
		return float64(d.RestArea), true
	case AttrRestaurant:
		return float64(d.Restaurant), true
	case AttrReviewCleanliness:
		return d.ReviewScores.Cleanliness, true
	case AttrReviewFacilities:
		return d.ReviewScores.Facilities, true
	case AttrReviewAccess:
		return d.ReviewScores.Access, true
	case AttrReviewSafety:
		return d.ReviewScores.Safety, true
	case AttrReviewScenery:
		return d.ReviewScores.Scenery, true
	case AttrReviewService:
		return d.ReviewScores.Service, true
	case AttrReviewValue:
		return d.ReviewScores.Value, true
	default:
		return 0, false
	}
}

func (a Attribute) String() string {
	return string(a)
}

// MustValue is Value for attributes already validated by ParseAttribute.
func (d *Destination) MustValue(a Attribute) float64 {
	v, ok := d.Value(a)
	if !ok {
		panic(fmt.Sprintf("domain: unknown attribute %q", a))
	}
	return v
}
