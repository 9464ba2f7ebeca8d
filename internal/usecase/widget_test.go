//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"booking-widget/internal/domain/booking"
	"booking-widget/internal/domain/workflow"
	"booking-widget/internal/infra/reservationapi"
	"booking-widget/internal/infra/sessionstore"
	"booking-widget/internal/pkg/errs"
	"booking-widget/internal/usecase"
	"booking-widget/tests/common/builder"
	usecasemock "booking-widget/tests/mock/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WidgetUseCaseTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockCtrl     *gomock.Controller
	mockAPI      *usecasemock.MockReservationAPI
	mockSessions *usecasemock.MockSessionRepository
	session      *workflow.Session
	useCase      usecase.WidgetUseCase
}

func (s *WidgetUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAPI = usecasemock.NewMockReservationAPI(s.mockCtrl)
	s.mockSessions = usecasemock.NewMockSessionRepository(s.mockCtrl)
	s.session = workflow.NewSession(uuid.New())

	s.mockSessions.EXPECT().Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*workflow.Session, error) {
			if id == s.session.ID() {
				return s.session, nil
			}
			return nil, sessionstore.ErrSessionNotFound
		}).AnyTimes()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.useCase = usecase.NewWidgetUseCase(s.mockAPI, s.mockSessions, logger)
}

func (s *WidgetUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWidgetUseCaseSuite(t *testing.T) {
	suite.Run(t, new(WidgetUseCaseTestSuite))
}

func (s *WidgetUseCaseTestSuite) searchDefault() workflow.View {
	query := builder.NewStayBuilder().BuildDomain()
	s.mockAPI.EXPECT().SearchAvailability(gomock.Any(), query).Return([]booking.RoomOffer{
		builder.NewOfferBuilder().BuildDomain(),
		builder.NewOfferBuilder().WithName("Suite").WithTotal(9000).BuildDomain(),
	}, nil)
	view, err := s.useCase.Search(s.ctx, s.session.ID(), query)
	s.Require().NoError(err)
	return view
}

func (s *WidgetUseCaseTestSuite) selectFirst() {
	s.searchDefault()
	_, err := s.useCase.Select(s.ctx, s.session.ID(), 0)
	s.Require().NoError(err)
}

func (s *WidgetUseCaseTestSuite) TestLoadRatePlans() {
	s.Run("Normal case: options start with All", func() {
		s.mockAPI.EXPECT().FetchRatePlans(gomock.Any()).Return([]booking.RatePlan{
			booking.NewRatePlan("EP"),
			booking.NewRatePlan("CP"),
		}, nil)

		opts, err := s.useCase.LoadRatePlans(s.ctx)
		s.Require().NoError(err)

		want := []usecase.RatePlanOption{
			{Value: "", Label: "All"},
			{Value: "EP", Label: "EP"},
			{Value: "CP", Label: "CP"},
		}
		if diff := cmp.Diff(want, opts.Options); diff != "" {
			s.T().Errorf("options mismatch (-want +got):\n%s", diff)
		}
		s.Len(opts.Plans, 2)
	})

	s.Run("Normal case: empty list adds No plans", func() {
		s.mockAPI.EXPECT().FetchRatePlans(gomock.Any()).Return([]booking.RatePlan{}, nil)

		opts, err := s.useCase.LoadRatePlans(s.ctx)
		s.Require().NoError(err)
		s.Equal([]usecase.RatePlanOption{{Value: "", Label: "All"}, {Value: "", Label: "No plans"}}, opts.Options)
		s.NotNil(opts.Plans)
		s.Empty(opts.Plans)
	})

	s.Run("Error case: backend failure is returned", func() {
		apiErr := &reservationapi.APIError{Method: http.MethodGet, Status: 500, Body: "boom"}
		s.mockAPI.EXPECT().FetchRatePlans(gomock.Any()).Return(nil, apiErr)

		_, err := s.useCase.LoadRatePlans(s.ctx)
		s.Require().Error(err)
		got, ok := reservationapi.AsAPIError(err)
		s.Require().True(ok)
		s.Equal(500, got.Status)
	})
}

func (s *WidgetUseCaseTestSuite) TestSearch() {
	s.Run("Normal case: results are shown", func() {
		view := s.searchDefault()
		s.Equal(workflow.StateResultsShown, view.State)
		s.Require().Len(view.Results, 2)
		s.Equal("Deluxe", view.Results[0].Name)
		s.Equal("₹ 9000", view.Results[1].Price)
	})

	s.Run("Error case: missing dates never reach the backend", func() {
		_, err := s.useCase.Search(s.ctx, s.session.ID(), builder.NewStayBuilder().WithDates("2024-05-01", "").BuildDomain())
		s.ErrorIs(err, usecase.ErrDatesRequired)
	})

	s.Run("Error case: backend failure becomes a view", func() {
		s.mockAPI.EXPECT().SearchAvailability(gomock.Any(), gomock.Any()).
			Return(nil, &reservationapi.APIError{Method: http.MethodGet, Status: 500, Body: "boom"})

		view, err := s.useCase.Search(s.ctx, s.session.ID(), builder.NewStayBuilder().BuildDomain())
		s.Require().NoError(err)
		s.Equal(workflow.StateSearchFailed, view.State)
		s.Equal(workflow.NoticeSearchFailed, view.Notice)
		s.Nil(view.Results)
	})

	s.Run("Error case: unknown session", func() {
		_, err := s.useCase.Search(s.ctx, uuid.New(), builder.NewStayBuilder().BuildDomain())
		s.True(errs.Is(err, usecase.ErrSessionNotFound))
	})
}

func (s *WidgetUseCaseTestSuite) TestSearchDiscardsStaleResult() {
	older := builder.NewStayBuilder().BuildDomain()
	newer := builder.NewStayBuilder().WithPlan("CP").BuildDomain()

	gomock.InOrder(
		s.mockAPI.EXPECT().SearchAvailability(gomock.Any(), older).
			DoAndReturn(func(ctx context.Context, _ booking.StayQuery) ([]booking.RoomOffer, error) {
				// a newer search starts and finishes while this one is in flight
				_, err := s.useCase.Search(ctx, s.session.ID(), newer)
				s.Require().NoError(err)
				return []booking.RoomOffer{builder.NewOfferBuilder().WithName("Older").BuildDomain()}, nil
			}),
		s.mockAPI.EXPECT().SearchAvailability(gomock.Any(), newer).
			Return([]booking.RoomOffer{builder.NewOfferBuilder().WithName("Newer").BuildDomain()}, nil),
	)

	view, err := s.useCase.Search(s.ctx, s.session.ID(), older)
	s.Require().NoError(err)
	s.Require().Len(view.Results, 1)
	s.Equal("Newer", view.Results[0].Name)
}

func (s *WidgetUseCaseTestSuite) TestSelect() {
	s.Run("Normal case: booking panel opens", func() {
		s.searchDefault()
		view, err := s.useCase.Select(s.ctx, s.session.ID(), 1)
		s.Require().NoError(err)
		s.Equal(workflow.StateRoomSelected, view.State)
		s.Require().NotNil(view.Selected)
		s.Equal("Suite (EP)", view.Selected.Label)
	})

	s.Run("Error case: index out of range", func() {
		s.searchDefault()
		_, err := s.useCase.Select(s.ctx, s.session.ID(), 5)
		s.ErrorIs(err, usecase.ErrOfferNotFound)
	})

	s.Run("Normal case: cancel returns to results", func() {
		s.selectFirst()
		view, err := s.useCase.CancelSelection(s.ctx, s.session.ID())
		s.Require().NoError(err)
		s.Equal(workflow.StateResultsShown, view.State)
		s.Nil(view.Selected)
	})
}

func (s *WidgetUseCaseTestSuite) TestConfirm() {
	guest := builder.NewGuestBuilder().BuildDomain()

	s.Run("Error case: no room selected", func() {
		s.searchDefault()
		_, err := s.useCase.Confirm(s.ctx, s.session.ID(), guest)
		s.ErrorIs(err, usecase.ErrNoRoomSelected)
	})

	s.Run("Error case: blank guest never reaches the backend", func() {
		s.selectFirst()
		_, err := s.useCase.Confirm(s.ctx, s.session.ID(), builder.NewGuestBuilder().With(func(b *builder.GuestBuilder) { b.Name = " " }).BuildDomain())
		s.ErrorIs(err, usecase.ErrGuestDetailsRequired)
	})

	s.Run("Normal case: confirmed booking clears selection", func() {
		s.selectFirst()
		s.mockAPI.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req booking.BookingRequest) (*booking.BookingResult, error) {
				s.Equal("Asha Rao", req.GuestName)
				s.Equal("2024-05-01", req.CheckIn)
				return &booking.BookingResult{OK: booking.NewValue([]byte(`true`)), BookingID: booking.StringValue("B123")}, nil
			})

		view, err := s.useCase.Confirm(s.ctx, s.session.ID(), guest)
		s.Require().NoError(err)
		s.Equal(workflow.StateOutcome, view.State)
		s.Require().NotNil(view.Outcome)
		s.Equal(workflow.OutcomeConfirmed, view.Outcome.Kind)
		s.Equal("B123", view.Outcome.BookingID)
		s.Nil(view.Selected)

		view, err = s.useCase.DismissOutcome(s.ctx, s.session.ID())
		s.Require().NoError(err)
		s.Equal(workflow.StateResultsShown, view.State)
	})

	s.Run("Normal case: rejected booking keeps selection", func() {
		s.selectFirst()
		s.mockAPI.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).
			Return(&booking.BookingResult{OK: booking.NewValue([]byte(`false`)), Message: booking.StringValue("Room no longer available")}, nil)

		view, err := s.useCase.Confirm(s.ctx, s.session.ID(), guest)
		s.Require().NoError(err)
		s.Equal(workflow.OutcomeFailed, view.Outcome.Kind)
		s.Equal("Room no longer available", view.Outcome.Message)
		s.NotNil(view.Selected)
	})

	s.Run("Error case: backend error keeps selection and results", func() {
		s.selectFirst()
		s.mockAPI.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).
			Return(nil, &reservationapi.APIError{Method: http.MethodPost, Status: 500, Body: "boom"})

		view, err := s.useCase.Confirm(s.ctx, s.session.ID(), guest)
		s.Require().NoError(err)
		s.Equal(workflow.OutcomeError, view.Outcome.Kind)
		s.Equal("POST error: 500 boom", view.Outcome.Message)
		s.Require().NotNil(view.Selected)
		s.Equal(0, view.Selected.Index)
		s.Len(view.Results, 2)
	})

	s.Run("Error case: dismiss without outcome", func() {
		s.searchDefault()
		_, err := s.useCase.DismissOutcome(s.ctx, s.session.ID())
		s.ErrorIs(err, usecase.ErrInvalidTransition)
	})
}

func (s *WidgetUseCaseTestSuite) SetupSubTest() {
	// every subtest starts from a fresh idle session
	s.session = workflow.NewSession(uuid.New())
}

func TestWidgetView(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := usecasemock.NewMockSessionRepository(ctrl)
	id := uuid.New()
	sessions.EXPECT().Get(gomock.Any(), id).Return(nil, errors.New("gone"))

	uc := usecase.NewWidgetUseCase(usecasemock.NewMockReservationAPI(ctrl), sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := uc.View(context.Background(), id)
	require.Error(t, err)
	assert.True(t, errs.Is(err, usecase.ErrSessionNotFound))
}
