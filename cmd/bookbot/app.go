package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/wurt83ow/bookmovie-bot/internal/booking"
	"github.com/wurt83ow/bookmovie-bot/internal/logger"
	"github.com/wurt83ow/bookmovie-bot/internal/models"
	"github.com/wurt83ow/bookmovie-bot/internal/store"
)

// app инкапсулирует в себя все зависимости и логику приложения
type app struct {
	controller *booking.Controller
	// recorder может быть nil, тогда бронирования нигде не сохраняются
	recorder store.Recorder
}

// newApp принимает на вход внешние зависимости приложения и возвращает новый объект app
func newApp(c *booking.Controller, r store.Recorder) *app {
	return &app{controller: c, recorder: r}
}

func (a *app) webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	logger.Log.Debug("decoding request")
	var req models.Request
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		logger.Log.Debug("cannot decode request JSON body", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	logger.Log.Debug("event", zap.String("bot", req.Bot.Name))

	resp, err := a.controller.Dispatch(req)
	if err != nil {
		logger.Log.Debug("cannot dispatch intent", zap.String("intent", req.CurrentIntent.Name), zap.Error(err))
		status := http.StatusInternalServerError
		if errors.Is(err, booking.ErrUnsupportedIntent) {
			status = http.StatusUnprocessableEntity
		}
		w.WriteHeader(status)
		return
	}

	// подтверждённое бронирование записываем в хранилище
	if a.recorder != nil && resp.DialogAction.FulfillmentState == models.Fulfilled {
		reservation := booking.NewReservation(req.CurrentIntent.Slots)
		id, err := a.recorder.SaveReservation(ctx, req.UserID, reservation)
		switch {
		case errors.Is(err, store.ErrConflict):
			resp = booking.Reject(resp, "You Have Already Booked This Show. Your Earlier Booking Is Still Valid.")
		case err != nil:
			logger.Log.Debug("cannot save reservation", zap.String("user", req.UserID), zap.Error(err))
			resp = booking.Reject(resp, "Sorry, We Could Not Complete Your Booking Right Now. Please Try Again Later.")
		default:
			logger.Log.Debug("reservation saved", zap.String("id", id))
			resp.DialogAction.Message.Content += "\nBooking reference: " + id
		}
	}

	w.Header().Set("Content-Type", "application/json")

	// сериализуем ответ сервера
	enc := json.NewEncoder(w)
	if err := enc.Encode(resp); err != nil {
		logger.Log.Debug("error encoding response", zap.Error(err))
		return
	}
	logger.Log.Debug("sending HTTP 200 response")
}
