package booking

const ActionBook = "book"

// BookingRequest is the POST body understood by the reservation backend.
// Offer values are echoed back verbatim; absent ones are omitted.
type BookingRequest struct {
	Action     string `json:"action"`
	GuestName  string `json:"guestName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	RoomTypeID Value  `json:"roomTypeID,omitzero"`
	PlanName   Value  `json:"planName,omitzero"`
	Total      Value  `json:"total,omitzero"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Adults     string `json:"adults"`
	Children   string `json:"children"`
}

func NewBookingRequest(guest GuestDetails, offer RoomOffer, query StayQuery) BookingRequest {
	g := guest.Normalize()
	return BookingRequest{
		Action:     ActionBook,
		GuestName:  g.Name,
		Email:      g.Email,
		Phone:      g.Phone,
		RoomTypeID: offer.RoomTypeID(),
		PlanName:   offer.Plan(),
		Total:      offer.Total(),
		CheckIn:    query.CheckIn,
		CheckOut:   query.CheckOut,
		Adults:     query.Adults,
		Children:   query.Children,
	}
}
