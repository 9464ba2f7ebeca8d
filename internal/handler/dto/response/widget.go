package response

import (
	"booking-widget/internal/domain/workflow"
	"booking-widget/internal/usecase"

	"github.com/jinzhu/copier"
)

type RatePlanOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type RatePlanResponse struct {
	Name string `json:"name"`
}

type RatePlansResponse struct {
	Options []RatePlanOptionResponse `json:"options"`
	Plans   []RatePlanResponse       `json:"plans"`
}

type OfferResponse struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Nights  string `json:"nights"`
	Plan    string `json:"plan"`
	Total   string `json:"total"`
	Price   string `json:"price"`
	Summary string `json:"summary"`
}

type SelectionResponse struct {
	Index    int    `json:"index"`
	Label    string `json:"label"`
	Total    string `json:"total"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Adults   string `json:"adults"`
	Children string `json:"children"`
}

type OutcomeResponse struct {
	Kind      string   `json:"kind"`
	Title     string   `json:"title"`
	BookingID string   `json:"bookingId,omitempty"`
	Message   string   `json:"message,omitempty"`
	Lines     []string `json:"lines"`
}

type WidgetViewResponse struct {
	SessionID      string             `json:"sessionId"`
	State          string             `json:"state"`
	Notice         string             `json:"notice,omitempty"`
	ResultsVisible bool               `json:"resultsVisible"`
	Results        []OfferResponse    `json:"results"`
	Selected       *SelectionResponse `json:"selected"`
	Outcome        *OutcomeResponse   `json:"outcome"`
}

func FromRatePlanOptions(o *usecase.RatePlanOptions) *RatePlansResponse {
	res := &RatePlansResponse{
		Options: make([]RatePlanOptionResponse, 0, len(o.Options)),
		Plans:   make([]RatePlanResponse, 0, len(o.Plans)),
	}
	_ = copier.Copy(&res.Options, &o.Options)
	for _, p := range o.Plans {
		res.Plans = append(res.Plans, RatePlanResponse{Name: p.Name()})
	}
	return res
}

func FromWidgetView(v workflow.View) *WidgetViewResponse {
	res := &WidgetViewResponse{
		SessionID:      v.SessionID.String(),
		State:          v.State.String(),
		Notice:         v.Notice,
		ResultsVisible: v.Results != nil,
		Results:        make([]OfferResponse, 0, len(v.Results)),
	}
	_ = copier.Copy(&res.Results, &v.Results)
	if res.Results == nil {
		res.Results = []OfferResponse{}
	}

	if v.Selected != nil {
		res.Selected = &SelectionResponse{}
		_ = copier.Copy(res.Selected, v.Selected)
	}
	if v.Outcome != nil {
		res.Outcome = &OutcomeResponse{
			Kind:      string(v.Outcome.Kind),
			Title:     v.Outcome.Title,
			BookingID: v.Outcome.BookingID,
			Message:   v.Outcome.Message,
			Lines:     v.Outcome.Lines,
		}
		if res.Outcome.Lines == nil {
			res.Outcome.Lines = []string{}
		}
	}
	return res
}
