package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wurt83ow/bookmovie-bot/internal/models"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		tickets int
		seat    string
		want    int
	}{
		{tickets: 3, seat: "Gold", want: 450},
		{tickets: 2, seat: "platinum", want: 400},
		{tickets: 1, seat: "ROYAL", want: 300},
		{tickets: 4, seat: "gOLD", want: 600},
		{tickets: 2, seat: "Platinum", want: 400},
		{tickets: 5, seat: "royal", want: 1500},
	}
	for _, tt := range tests {
		got, err := Price(tt.tickets, tt.seat)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%d x %s", tt.tickets, tt.seat)
	}
}

func TestPriceUnknownSeat(t *testing.T) {
	_, err := Price(2, "balcony")
	assert.ErrorIs(t, err, ErrUnknownSeatType)
}

func TestSummary(t *testing.T) {
	n := 2
	msg, err := Summary(models.Reservation{
		MovieName:   str("Kabuliwala"),
		TheaterName: str("PVR"),
		Date:        str("2026-10-15"),
		Time:        str("14:30"),
		SeatType:    str("Gold"),
		TicketNum:   &n,
	})
	require.NoError(t, err)

	assert.Equal(t, "Thank You, Your booking is confirmed.\n"+
		"Summary of tickets:\n"+
		"Movie: Kabuliwala \n"+
		"Theater: PVR \n"+
		"Date: 2026-10-15 \n"+
		"Time: 14:30 \n"+
		"Total ticket: 2 \n"+
		"Total Amount: 300 \n"+
		"\nThank you for booking with chatbot. ", msg)
}

func TestSummaryIncomplete(t *testing.T) {
	complete := func() models.Reservation {
		n := 1
		return models.Reservation{
			MovieName:   str("Aparajito"),
			TheaterName: str("INOX"),
			Date:        str("2026-10-16"),
			Time:        str("19:00"),
			SeatType:    str("Gold"),
			TicketNum:   &n,
		}
	}

	_, err := Summary(complete())
	require.NoError(t, err)

	tests := []struct {
		name  string
		strip func(r *models.Reservation)
		want  error
	}{
		{name: "movie", strip: func(r *models.Reservation) { r.MovieName = nil }, want: ErrIncomplete},
		{name: "theater", strip: func(r *models.Reservation) { r.TheaterName = nil }, want: ErrIncomplete},
		{name: "date", strip: func(r *models.Reservation) { r.Date = nil }, want: ErrIncomplete},
		{name: "empty time", strip: func(r *models.Reservation) { r.Time = str("") }, want: ErrIncomplete},
		{name: "tickets", strip: func(r *models.Reservation) { r.TicketNum = nil }, want: ErrIncomplete},
		{name: "seat", strip: func(r *models.Reservation) { r.SeatType = nil }, want: ErrUnknownSeatType},
		{name: "unknown seat", strip: func(r *models.Reservation) { r.SeatType = str("economy") }, want: ErrUnknownSeatType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := complete()
			tt.strip(&r)
			_, err := Summary(r)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
