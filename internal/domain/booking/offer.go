package booking

import (
	"encoding/json"
	"errors"
)

// RoomOffer is one bookable room/plan/date combination from an availability
// search. It keeps the object it was decoded from so that re-encoding
// returns exactly what the backend sent.
type RoomOffer struct {
	name       Value
	nights     Value
	plan       Value
	total      Value
	roomTypeID Value
	raw        json.RawMessage
}

type roomOfferFields struct {
	Name       Value `json:"Name"`
	Nights     Value `json:"nights"`
	Plan       Value `json:"plan"`
	Total      Value `json:"total"`
	RoomTypeID Value `json:"RoomTypeID"`
}

func (o RoomOffer) Name() Value       { return o.name }
func (o RoomOffer) Nights() Value     { return o.nights }
func (o RoomOffer) Plan() Value       { return o.plan }
func (o RoomOffer) Total() Value      { return o.total }
func (o RoomOffer) RoomTypeID() Value { return o.roomTypeID }

func (o RoomOffer) Raw() json.RawMessage {
	return o.raw
}

func (o RoomOffer) MarshalJSON() ([]byte, error) {
	if len(o.raw) == 0 {
		return json.Marshal(roomOfferFields{
			Name:       o.name,
			Nights:     o.nights,
			Plan:       o.plan,
			Total:      o.total,
			RoomTypeID: o.roomTypeID,
		})
	}
	return o.raw, nil
}

func (o *RoomOffer) UnmarshalJSON(data []byte) error {
	var f roomOfferFields
	if err := json.Unmarshal(data, &f); err != nil {
		// Non-object results still render; they just carry no known fields.
		var ute *json.UnmarshalTypeError
		if !errors.As(err, &ute) {
			return err
		}
		f = roomOfferFields{}
	}
	raw := make(json.RawMessage, len(data))
	copy(raw, data)
	*o = RoomOffer{
		name:       f.Name,
		nights:     f.Nights,
		plan:       f.Plan,
		total:      f.Total,
		roomTypeID: f.RoomTypeID,
		raw:        raw,
	}
	return nil
}

type availabilityEnvelope struct {
	Results json.RawMessage `json:"results"`
}

// OffersFromResponse returns the entries of data.results in order. A body
// that is not an object, or a results field that is absent, null or not an
// array, means no availability rather than an error.
func OffersFromResponse(body json.RawMessage) ([]RoomOffer, error) {
	var env availabilityEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return []RoomOffer{}, nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(env.Results, &entries); err != nil || len(entries) == 0 {
		return []RoomOffer{}, nil
	}
	offers := make([]RoomOffer, 0, len(entries))
	for _, entry := range entries {
		var offer RoomOffer
		if err := json.Unmarshal(entry, &offer); err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, nil
}
