//go:build unit

package workflow_test

import (
	"errors"
	"sync"
	"testing"

	"booking-widget/internal/domain/booking"
	"booking-widget/internal/domain/workflow"
	"booking-widget/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offers(bs ...*builder.OfferBuilder) []booking.RoomOffer {
	out := make([]booking.RoomOffer, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.BuildDomain())
	}
	return out
}

func defaultOffers() []booking.RoomOffer {
	return offers(
		builder.NewOfferBuilder(),
		builder.NewOfferBuilder().WithName("Suite").WithPlan(nil).WithTotal("9000").WithRoomTypeID("STE"),
	)
}

// searched returns a session showing defaultOffers.
func searched(t *testing.T) *workflow.Session {
	t.Helper()
	s := workflow.NewSession(uuid.New())
	query := builder.NewStayBuilder().BuildDomain()
	ticket, err := s.BeginSearch(query)
	require.NoError(t, err)
	require.NoError(t, s.CompleteSearch(ticket, query, defaultOffers()))
	return s
}

func selected(t *testing.T) *workflow.Session {
	t.Helper()
	s := searched(t)
	require.NoError(t, s.Select(0))
	return s
}

func TestSearch(t *testing.T) {
	t.Run("初期状態", func(t *testing.T) {
		s := workflow.NewSession(uuid.New())
		v := s.Snapshot()
		assert.Equal(t, workflow.StateIdle, v.State)
		assert.Nil(t, v.Results)
		assert.Nil(t, v.Selected)
		assert.Nil(t, v.Outcome)
		assert.Empty(t, v.Notice)
	})

	t.Run("日付未入力はローカルで拒否", func(t *testing.T) {
		s := workflow.NewSession(uuid.New())
		_, err := s.BeginSearch(builder.NewStayBuilder().WithDates("", "").BuildDomain())
		assert.ErrorIs(t, err, workflow.ErrDatesRequired)
		assert.Equal(t, workflow.StateIdle, s.State())
	})

	t.Run("検索中の表示", func(t *testing.T) {
		s := workflow.NewSession(uuid.New())
		_, err := s.BeginSearch(builder.NewStayBuilder().BuildDomain())
		require.NoError(t, err)

		v := s.Snapshot()
		assert.Equal(t, workflow.StateSearching, v.State)
		assert.Equal(t, workflow.NoticeSearching, v.Notice)
		assert.Nil(t, v.Results)
	})

	t.Run("結果の表示文字列", func(t *testing.T) {
		v := searched(t).Snapshot()
		assert.Equal(t, workflow.StateResultsShown, v.State)

		want := []workflow.OfferView{
			{Index: 0, Name: "Deluxe", Nights: "2", Plan: "EP", Total: "5000", Price: "₹ 5000", Summary: "Nights: 2 • Plan: EP"},
			{Index: 1, Name: "Suite", Nights: "2", Plan: "", Total: "9000", Price: "₹ 9000", Summary: "Nights: 2 • Plan: —"},
		}
		if diff := cmp.Diff(want, v.Results); diff != "" {
			t.Errorf("results mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("通貨記号を変更", func(t *testing.T) {
		s := workflow.NewSession(uuid.New(), workflow.WithCurrencySymbol("$"))
		query := builder.NewStayBuilder().BuildDomain()
		ticket, _ := s.BeginSearch(query)
		require.NoError(t, s.CompleteSearch(ticket, query, defaultOffers()))
		assert.Equal(t, "$ 5000", s.Snapshot().Results[0].Price)
	})

	t.Run("空の結果は空室なしの案内", func(t *testing.T) {
		s := workflow.NewSession(uuid.New())
		query := builder.NewStayBuilder().BuildDomain()
		ticket, _ := s.BeginSearch(query)
		require.NoError(t, s.CompleteSearch(ticket, query, []booking.RoomOffer{}))

		v := s.Snapshot()
		assert.Equal(t, workflow.StateResultsShown, v.State)
		assert.NotNil(t, v.Results)
		assert.Empty(t, v.Results)
		assert.Equal(t, workflow.NoticeNoRooms, v.Notice)
	})

	t.Run("検索失敗は以前の結果を隠す", func(t *testing.T) {
		s := searched(t)
		ticket, err := s.BeginSearch(builder.NewStayBuilder().BuildDomain())
		require.NoError(t, err)
		require.NoError(t, s.FailSearch(ticket))

		v := s.Snapshot()
		assert.Equal(t, workflow.StateSearchFailed, v.State)
		assert.Equal(t, workflow.NoticeSearchFailed, v.Notice)
		assert.Nil(t, v.Results)

		// no visible results to pick from
		assert.ErrorIs(t, s.Select(0), workflow.ErrInvalidTransition)
	})

	t.Run("古い検索結果は新しい結果を上書きしない", func(t *testing.T) {
		s := workflow.NewSession(uuid.New())
		query := builder.NewStayBuilder().BuildDomain()

		first, err := s.BeginSearch(query)
		require.NoError(t, err)
		second, err := s.BeginSearch(builder.NewStayBuilder().WithPlan("CP").BuildDomain())
		require.NoError(t, err)

		require.NoError(t, s.CompleteSearch(second, query, offers(builder.NewOfferBuilder().WithName("Newer"))))
		assert.ErrorIs(t, s.CompleteSearch(first, query, offers(builder.NewOfferBuilder().WithName("Older"))), workflow.ErrStaleTicket)
		assert.ErrorIs(t, s.FailSearch(first), workflow.ErrStaleTicket)

		v := s.Snapshot()
		require.Len(t, v.Results, 1)
		assert.Equal(t, "Newer", v.Results[0].Name)
		assert.Equal(t, workflow.StateResultsShown, v.State)
	})

	t.Run("選択中の再検索は選択を保持", func(t *testing.T) {
		s := selected(t)
		query := builder.NewStayBuilder().WithDates("2024-06-01", "2024-06-02").BuildDomain()
		ticket, err := s.BeginSearch(query)
		require.NoError(t, err)
		require.NoError(t, s.CompleteSearch(ticket, query, offers(builder.NewOfferBuilder().WithName("Other"))))

		v := s.Snapshot()
		assert.Equal(t, workflow.StateRoomSelected, v.State)
		require.NotNil(t, v.Selected)
		assert.Equal(t, "Deluxe (EP)", v.Selected.Label)
		assert.Equal(t, "2024-05-01", v.Selected.CheckIn)
	})

	t.Run("送信中は検索できない", func(t *testing.T) {
		s := selected(t)
		_, _, err := s.BeginConfirm(builder.NewGuestBuilder().BuildDomain())
		require.NoError(t, err)

		_, err = s.BeginSearch(builder.NewStayBuilder().BuildDomain())
		assert.ErrorIs(t, err, workflow.ErrInvalidTransition)
	})
}

func TestSelect(t *testing.T) {
	t.Run("選択とラベル", func(t *testing.T) {
		s := selected(t)
		v := s.Snapshot()
		assert.Equal(t, workflow.StateRoomSelected, v.State)

		want := &workflow.SelectionView{
			Index:    0,
			Label:    "Deluxe (EP)",
			Total:    "5000",
			CheckIn:  "2024-05-01",
			CheckOut: "2024-05-03",
			Adults:   "2",
			Children: "0",
		}
		if diff := cmp.Diff(want, v.Selected); diff != "" {
			t.Errorf("selection mismatch (-want +got):\n%s", diff)
		}
		// results stay listed next to the booking panel
		assert.Len(t, v.Results, 2)
	})

	t.Run("選択し直し", func(t *testing.T) {
		s := selected(t)
		require.NoError(t, s.Select(1))
		sel, ok := s.Selected()
		require.True(t, ok)
		assert.Equal(t, 1, sel.Index)
		assert.Equal(t, "Suite ()", s.Snapshot().Selected.Label)
	})

	t.Run("範囲外", func(t *testing.T) {
		s := searched(t)
		assert.ErrorIs(t, s.Select(2), workflow.ErrOfferNotFound)
		assert.ErrorIs(t, s.Select(-1), workflow.ErrOfferNotFound)
		assert.Equal(t, workflow.StateResultsShown, s.State())
	})

	t.Run("検索前は選択できない", func(t *testing.T) {
		s := workflow.NewSession(uuid.New())
		assert.ErrorIs(t, s.Select(0), workflow.ErrInvalidTransition)
	})

	t.Run("キャンセルで結果に戻る", func(t *testing.T) {
		s := selected(t)
		require.NoError(t, s.CancelSelection())
		v := s.Snapshot()
		assert.Equal(t, workflow.StateResultsShown, v.State)
		assert.Nil(t, v.Selected)

		assert.ErrorIs(t, s.CancelSelection(), workflow.ErrInvalidTransition)
	})
}

func TestConfirm(t *testing.T) {
	guest := builder.NewGuestBuilder().BuildDomain()

	t.Run("未選択はローカルで拒否", func(t *testing.T) {
		s := searched(t)
		_, _, err := s.BeginConfirm(guest)
		assert.ErrorIs(t, err, workflow.ErrNoRoomSelected)
		assert.Equal(t, workflow.StateResultsShown, s.State())
	})

	t.Run("ゲスト情報不足はローカルで拒否", func(t *testing.T) {
		s := selected(t)
		_, _, err := s.BeginConfirm(builder.NewGuestBuilder().With(func(b *builder.GuestBuilder) { b.Email = "  " }).BuildDomain())
		assert.ErrorIs(t, err, workflow.ErrGuestDetailsRequired)
		assert.Equal(t, workflow.StateRoomSelected, s.State())
	})

	t.Run("選択時の検索条件で予約リクエストを作る", func(t *testing.T) {
		s := selected(t)
		_, req, err := s.BeginConfirm(guest)
		require.NoError(t, err)
		assert.Equal(t, booking.ActionBook, req.Action)
		assert.Equal(t, "2024-05-01", req.CheckIn)
		assert.Equal(t, "2024-05-03", req.CheckOut)
		assert.Equal(t, `"DLX"`, string(req.RoomTypeID.Raw()))
		assert.Equal(t, workflow.StateSubmitting, s.State())
	})

	t.Run("二重送信は拒否", func(t *testing.T) {
		s := selected(t)
		_, _, err := s.BeginConfirm(guest)
		require.NoError(t, err)
		_, _, err = s.BeginConfirm(guest)
		assert.ErrorIs(t, err, workflow.ErrInvalidTransition)
	})

	t.Run("予約成功で選択を解除", func(t *testing.T) {
		s := selected(t)
		ticket, _, err := s.BeginConfirm(guest)
		require.NoError(t, err)

		require.NoError(t, s.CompleteConfirm(ticket, guest, booking.BookingResult{
			OK:        booking.NewValue([]byte(`true`)),
			BookingID: booking.StringValue("B123"),
		}))

		v := s.Snapshot()
		assert.Equal(t, workflow.StateOutcome, v.State)
		assert.Nil(t, v.Selected)
		want := &workflow.OutcomeView{
			Kind:      workflow.OutcomeConfirmed,
			Title:     "Booking Confirmed",
			BookingID: "B123",
			Lines: []string{
				"Booking ID: B123",
				"Room: Deluxe",
				"Guest: Asha Rao",
				"Total: ₹ 5000",
			},
		}
		if diff := cmp.Diff(want, v.Outcome); diff != "" {
			t.Errorf("outcome mismatch (-want +got):\n%s", diff)
		}

		require.NoError(t, s.DismissOutcome())
		v = s.Snapshot()
		assert.Equal(t, workflow.StateResultsShown, v.State)
		assert.Nil(t, v.Outcome)
		assert.Len(t, v.Results, 2)
	})

	t.Run("予約失敗は選択を保持", func(t *testing.T) {
		s := selected(t)
		ticket, _, err := s.BeginConfirm(guest)
		require.NoError(t, err)

		require.NoError(t, s.CompleteConfirm(ticket, guest, booking.BookingResult{
			OK:      booking.NewValue([]byte(`false`)),
			Message: booking.StringValue("Room no longer available"),
		}))

		v := s.Snapshot()
		require.NotNil(t, v.Outcome)
		assert.Equal(t, workflow.OutcomeFailed, v.Outcome.Kind)
		assert.Equal(t, "Booking Failed", v.Outcome.Title)
		assert.Equal(t, "Room no longer available", v.Outcome.Message)
		require.NotNil(t, v.Selected)
		assert.Equal(t, 0, v.Selected.Index)

		require.NoError(t, s.DismissOutcome())
		assert.Equal(t, workflow.StateRoomSelected, s.State())
		// retry without searching again
		_, _, err = s.BeginConfirm(guest)
		assert.NoError(t, err)
	})

	t.Run("通信エラーは選択と結果を変えない", func(t *testing.T) {
		s := selected(t)
		before := s.Snapshot()
		ticket, _, err := s.BeginConfirm(guest)
		require.NoError(t, err)

		require.NoError(t, s.FailConfirm(ticket, errors.New("POST error: 500 boom")))

		v := s.Snapshot()
		require.NotNil(t, v.Outcome)
		assert.Equal(t, workflow.OutcomeError, v.Outcome.Kind)
		assert.Equal(t, "Booking Error", v.Outcome.Title)
		assert.Equal(t, "POST error: 500 boom", v.Outcome.Message)
		assert.Equal(t, before.Selected, v.Selected)
		assert.Equal(t, before.Results, v.Results)
	})

	t.Run("原因不明のエラーは既定の文言", func(t *testing.T) {
		s := selected(t)
		ticket, _, _ := s.BeginConfirm(guest)
		require.NoError(t, s.FailConfirm(ticket, nil))
		assert.Equal(t, "See console for details.", s.Snapshot().Outcome.Message)
	})

	t.Run("古いチケットは無視", func(t *testing.T) {
		s := selected(t)
		ticket, _, _ := s.BeginConfirm(guest)
		assert.ErrorIs(t, s.CompleteConfirm(ticket+1, guest, booking.BookingResult{}), workflow.ErrStaleTicket)
		assert.Equal(t, workflow.StateSubmitting, s.State())
	})

	t.Run("モーダルがなければ閉じられない", func(t *testing.T) {
		s := searched(t)
		assert.ErrorIs(t, s.DismissOutcome(), workflow.ErrInvalidTransition)
	})
}

func TestSnapshotIsCopy(t *testing.T) {
	s := selected(t)
	ticket, _, _ := s.BeginConfirm(builder.NewGuestBuilder().BuildDomain())
	require.NoError(t, s.CompleteConfirm(ticket, builder.NewGuestBuilder().BuildDomain(), booking.BookingResult{
		OK:        booking.NewValue([]byte(`1`)),
		BookingID: booking.StringValue("B1"),
	}))

	v := s.Snapshot()
	v.Outcome.Lines[0] = "tampered"
	v.Results[0].Name = "tampered"

	again := s.Snapshot()
	assert.Equal(t, "Booking ID: B1", again.Outcome.Lines[0])
	assert.Equal(t, "Deluxe", again.Results[0].Name)
}

func TestConcurrentSearches(t *testing.T) {
	s := workflow.NewSession(uuid.New())
	query := builder.NewStayBuilder().BuildDomain()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticket, err := s.BeginSearch(query)
			if err != nil {
				return
			}
			_ = s.CompleteSearch(ticket, query, defaultOffers())
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	// exactly the last issued ticket lands, so the session always settles
	assert.Equal(t, workflow.StateResultsShown, s.State())
}
