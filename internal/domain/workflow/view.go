package workflow

import (
	"fmt"

	"github.com/google/uuid"
)

// View is a render-ready copy of a session. It never aliases session state.
type View struct {
	SessionID uuid.UUID
	State     State
	Notice    string
	Results   []OfferView
	Selected  *SelectionView
	Outcome   *OutcomeView
}

type OfferView struct {
	Index   int
	Name    string
	Nights  string
	Plan    string
	Total   string
	Price   string
	Summary string
}

type SelectionView struct {
	Index    int
	Label    string
	Total    string
	CheckIn  string
	CheckOut string
	Adults   string
	Children string
}

type OutcomeView struct {
	Kind      OutcomeKind
	Title     string
	BookingID string
	Message   string
	Lines     []string
}

func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		SessionID: s.id,
		State:     s.state,
		Notice:    s.notice(),
	}

	if s.resultsVisible {
		v.Results = make([]OfferView, 0, len(s.offers))
		for i, o := range s.offers {
			plan := o.Plan().String()
			display := plan
			if display == "" {
				display = noPlanMark
			}
			v.Results = append(v.Results, OfferView{
				Index:   i,
				Name:    o.Name().String(),
				Nights:  o.Nights().String(),
				Plan:    plan,
				Total:   o.Total().String(),
				Price:   fmt.Sprintf("%s %s", s.currency, o.Total().String()),
				Summary: fmt.Sprintf("Nights: %s • Plan: %s", o.Nights().String(), display),
			})
		}
	}

	if s.selected != nil {
		o := s.selected.Offer
		v.Selected = &SelectionView{
			Index:    s.selected.Index,
			Label:    fmt.Sprintf("%s (%s)", o.Name().String(), o.Plan().String()),
			Total:    o.Total().String(),
			CheckIn:  s.selected.Query.CheckIn,
			CheckOut: s.selected.Query.CheckOut,
			Adults:   s.selected.Query.Adults,
			Children: s.selected.Query.Children,
		}
	}

	if s.outcome != nil && s.outcomeVisible {
		v.Outcome = &OutcomeView{
			Kind:      s.outcome.Kind,
			Title:     s.outcome.Title,
			BookingID: s.outcome.BookingID,
			Message:   s.outcome.Message,
			Lines:     append([]string(nil), s.outcome.Lines...),
		}
	}

	return v
}

func (s *Session) notice() string {
	switch {
	case s.state == StateSearching:
		return NoticeSearching
	case s.state == StateSearchFailed:
		return NoticeSearchFailed
	case s.resultsVisible && len(s.offers) == 0:
		return NoticeNoRooms
	default:
		return ""
	}
}
