package poi

import (
	"slices"

	"github.com/akhil-nair/trip-planner/internal/model"
)

// classifyRules is the ordered tag-to-category table. Evaluation is
// top-to-bottom, first match wins, so an element can never land in two
// categories.
var classifyRules = []rule{
	{key: "tourism", values: []string{"attraction", "museum"}, category: model.CategoryAttraction},
	{key: "tourism", values: []string{"hotel"}, category: model.CategoryHotel},
	{key: "amenity", values: []string{"restaurant"}, category: model.CategoryRestaurant},
	{key: "shop", values: []string{"supermarket", "mall"}, category: model.CategoryMarket},
}

type rule struct {
	key      string
	values   []string
	category model.Category
}

// Classify maps raw feature tags to a semantic category. The second return
// is false when no rule matches.
func Classify(tags map[string]string) (model.Category, bool) {
	for _, r := range classifyRules {
		if v, ok := tags[r.key]; ok && slices.Contains(r.values, v) {
			return r.category, true
		}
	}
	return "", false
}
