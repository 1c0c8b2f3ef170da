package store

import (
	"context"
	"errors"

	"github.com/wurt83ow/bookmovie-bot/internal/models"
)

//go:generate mockgen -destination=mock/store.go -package=mock github.com/wurt83ow/bookmovie-bot/internal/store Recorder

// ErrConflict указывает на то, что такое бронирование уже записано.
var ErrConflict = errors.New("data conflict")

// Recorder сохраняет подтверждённые бронирования.
type Recorder interface {
	// SaveReservation записывает бронирование пользователя и возвращает его номер.
	SaveReservation(ctx context.Context, userID string, r models.Reservation) (string, error)
}
