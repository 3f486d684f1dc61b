package stats

import "github.com/lawnchairsociety/amberesque/internal/rules"

// Attributes holds the derived value and dice pool of every attribute.
type Attributes struct {
	Values map[rules.Attribute]int
	Pools  map[rules.Attribute]Pool
}

// AttributeValue returns Function rating + Aspect rating. No clamping happens here.
func AttributeValue(funcRating, aspectRating int) int {
	return funcRating + aspectRating
}

// DeriveAttributes computes all sixteen attributes from the eight ratings.
func DeriveAttributes(aspects rules.AspectRatings, functions rules.FunctionRatings) Attributes {
	attrs := Attributes{
		Values: make(map[rules.Attribute]int, len(rules.Attributes)),
		Pools:  make(map[rules.Attribute]Pool, len(rules.Attributes)),
	}

	for _, info := range rules.Attributes {
		value := AttributeValue(functions.Get(info.Function), aspects.Get(info.Aspect))
		attrs.Values[info.ID] = value
		attrs.Pools[info.ID] = Resolve(value)
	}

	return attrs
}
