//go:build unit || e2e

package builder

import (
	"encoding/json"

	"booking-widget/internal/domain/booking"
)

// OfferBuilder builds one backend availability entry. A nil field is left
// out of the JSON entirely.
type OfferBuilder struct {
	Name       any
	Nights     any
	Plan       any
	Total      any
	RoomTypeID any
	Extra      map[string]any
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		Name:       "Deluxe",
		Nights:     2,
		Plan:       "EP",
		Total:      5000,
		RoomTypeID: "DLX",
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) WithName(name any) *OfferBuilder {
	b.Name = name
	return b
}

func (b *OfferBuilder) WithPlan(plan any) *OfferBuilder {
	b.Plan = plan
	return b
}

func (b *OfferBuilder) WithTotal(total any) *OfferBuilder {
	b.Total = total
	return b
}

func (b *OfferBuilder) WithRoomTypeID(id any) *OfferBuilder {
	b.RoomTypeID = id
	return b
}

func (b *OfferBuilder) WithExtra(key string, value any) *OfferBuilder {
	if b.Extra == nil {
		b.Extra = map[string]any{}
	}
	b.Extra[key] = value
	return b
}

// Build methods
func (b *OfferBuilder) BuildMap() map[string]any {
	m := map[string]any{}
	set := func(k string, v any) {
		if v != nil {
			m[k] = v
		}
	}
	set("Name", b.Name)
	set("nights", b.Nights)
	set("plan", b.Plan)
	set("total", b.Total)
	set("RoomTypeID", b.RoomTypeID)
	for k, v := range b.Extra {
		m[k] = v
	}
	return m
}

func (b *OfferBuilder) BuildRaw() json.RawMessage {
	raw, _ := json.Marshal(b.BuildMap())
	return raw
}

func (b *OfferBuilder) BuildDomain() booking.RoomOffer {
	var offer booking.RoomOffer
	_ = json.Unmarshal(b.BuildRaw(), &offer)
	return offer
}

// AvailabilityBody wraps entries the way the backend answers an availability search.
func AvailabilityBody(offers ...*OfferBuilder) string {
	results := make([]map[string]any, 0, len(offers))
	for _, o := range offers {
		results = append(results, o.BuildMap())
	}
	body, _ := json.Marshal(map[string]any{"results": results})
	return string(body)
}
