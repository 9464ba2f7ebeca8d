package booking

const unknownFailureMessage = "Unknown error"

// BookingResult is the backend's verdict on a booking. A well-formed
// response may still report that the booking did not go through.
type BookingResult struct {
	OK        Value `json:"ok"`
	BookingID Value `json:"bookingID"`
	Message   Value `json:"message"`
}

func (r BookingResult) Succeeded() bool {
	return r.OK.Truthy()
}

func (r BookingResult) FailureMessage() string {
	if msg := r.Message.String(); msg != "" {
		return msg
	}
	return unknownFailureMessage
}
