package booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wurt83ow/bookmovie-bot/internal/models"
)

var (
	ErrUnknownSeatType = errors.New("unknown seat type")
	// ErrIncomplete - в бронировании не хватает данных для итогового сообщения.
	ErrIncomplete = errors.New("reservation is incomplete")
)

// SeatClass - класс места в зале.
type SeatClass string

const (
	SeatGold     SeatClass = "gold"
	SeatPlatinum SeatClass = "platinum"
	SeatRoyal    SeatClass = "royal"
)

var unitPrice = map[SeatClass]int{
	SeatGold:     150,
	SeatPlatinum: 200,
	SeatRoyal:    300,
}

// ParseSeatClass распознаёт класс места без учёта регистра.
func ParseSeatClass(s string) (SeatClass, error) {
	c := SeatClass(strings.ToLower(s))
	if _, ok := unitPrice[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSeatType, s)
	}
	return c, nil
}

// Price возвращает полную стоимость билетов.
func Price(tickets int, seatType string) (int, error) {
	c, err := ParseSeatClass(seatType)
	if err != nil {
		return 0, err
	}
	return tickets * unitPrice[c], nil
}

// Summary формирует итоговое сообщение о подтверждённом бронировании.
func Summary(r models.Reservation) (string, error) {
	for slot, v := range map[string]*string{
		models.SlotMovieName: r.MovieName,
		models.SlotTheatre:   r.TheaterName,
		models.SlotDate:      r.Date,
		models.SlotTime:      r.Time,
	} {
		if v == nil || *v == "" {
			return "", fmt.Errorf("%w: %s is not set", ErrIncomplete, slot)
		}
	}
	if r.TicketNum == nil {
		return "", fmt.Errorf("%w: %s is not set", ErrIncomplete, models.SlotTicketNum)
	}
	if r.SeatType == nil {
		return "", fmt.Errorf("%w: seat type is not set", ErrUnknownSeatType)
	}
	total, err := Price(*r.TicketNum, *r.SeatType)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Thank You, Your booking is confirmed.\n")
	b.WriteString("Summary of tickets:\n")
	fmt.Fprintf(&b, "Movie: %s \n", *r.MovieName)
	fmt.Fprintf(&b, "Theater: %s \n", *r.TheaterName)
	fmt.Fprintf(&b, "Date: %s \n", *r.Date)
	fmt.Fprintf(&b, "Time: %s \n", *r.Time)
	fmt.Fprintf(&b, "Total ticket: %d \n", *r.TicketNum)
	fmt.Fprintf(&b, "Total Amount: %d \n", total)
	b.WriteString("\nThank you for booking with chatbot. ")
	return b.String(), nil
}

