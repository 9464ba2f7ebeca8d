package booking

import "encoding/json"

type RatePlan struct {
	name string
}

func NewRatePlan(name string) RatePlan {
	return RatePlan{name: name}
}

func (p RatePlan) Name() string {
	return p.name
}

// planNameExtractor yields a candidate for a plan's display name.
type planNameExtractor func(Object) (Value, bool)

func fieldExtractor(key string) planNameExtractor {
	return func(o Object) (Value, bool) {
		return o.Get(key)
	}
}

func firstValueExtractor(o Object) (Value, bool) {
	return o.First()
}

// The backend names the plan identifier inconsistently across entries.
// Candidates are tried in this order and the first truthy one wins.
var planNameExtractors = []planNameExtractor{
	fieldExtractor("Name"),
	fieldExtractor("name"),
	fieldExtractor("PlanID"),
	firstValueExtractor,
}

// RatePlanFromEntry never fails: an entry that is not an object, or that
// has no truthy candidate, yields a plan with an empty name.
func RatePlanFromEntry(entry json.RawMessage) RatePlan {
	obj, err := DecodeObject(entry)
	if err != nil {
		return RatePlan{}
	}
	for _, extract := range planNameExtractors {
		if v, ok := extract(obj); ok && v.Truthy() {
			return RatePlan{name: v.String()}
		}
	}
	return RatePlan{}
}

// RatePlansFromResponse treats anything other than a JSON array as no plans.
func RatePlansFromResponse(body json.RawMessage) []RatePlan {
	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return []RatePlan{}
	}
	plans := make([]RatePlan, 0, len(entries))
	for _, entry := range entries {
		plans = append(plans, RatePlanFromEntry(entry))
	}
	return plans
}
