package booking

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/wurt83ow/bookmovie-bot/internal/models"
)

const IntentBookMovie = "BookMovie"

var ErrUnsupportedIntent = errors.New("intent not supported")

type intentHandler func(c *Controller, req models.Request) (models.Response, error)

var intents = map[string]intentHandler{
	IntentBookMovie: (*Controller).bookMovie,
}

// Controller ведёт диалог бронирования: проверяет слоты и решает,
// переспросить пользователя, отдать управление платформе или закрыть диалог.
// Состояния между вызовами не хранит.
type Controller struct {
	validator *Validator
	log       *zap.Logger
}

// NewController возвращает контроллер. Если log равен nil, журнал не ведётся.
func NewController(v *Validator, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{validator: v, log: log}
}

// Dispatch направляет запрос обработчику его намерения.
func (c *Controller) Dispatch(req models.Request) (models.Response, error) {
	name := req.CurrentIntent.Name
	c.log.Debug("dispatch", zap.String("userId", req.UserID), zap.String("intentName", name))

	h, ok := intents[name]
	if !ok {
		return models.Response{}, fmt.Errorf("%w: %s", ErrUnsupportedIntent, name)
	}
	return h(c, req)
}

// NewReservation собирает снимок бронирования из текущих слотов.
// Нераспознанное количество билетов сохраняется как null.
func NewReservation(slots models.Slots) models.Reservation {
	r := models.Reservation{
		ReservationType: models.ReservationTypeMovie,
		UserName:        slots[models.SlotUserName],
		MovieName:       slots[models.SlotMovieName],
		TheaterName:     slots[models.SlotTheatre],
		Date:            slots[models.SlotDate],
		Time:            slots[models.SlotTime],
		SeatType:        slots[models.SlotSeatType],
	}
	if raw, ok := slots.Get(models.SlotTicketNum); ok {
		if n, err := parseCount(raw); err == nil {
			r.TicketNum = &n
		}
	}
	return r
}

func (c *Controller) bookMovie(req models.Request) (models.Response, error) {
	intent := req.CurrentIntent
	slots := intent.Slots.Clone()
	attrs := req.SessionAttributes.Clone()

	reservation := NewReservation(slots)
	encoded, err := json.Marshal(reservation)
	if err != nil {
		return models.Response{}, err
	}
	attrs[models.AttrCurrentReservation] = string(encoded)

	if req.InvocationSource == models.DialogCodeHook {
		res := c.validator.Validate(slots)
		if !res.IsValid {
			c.log.Debug("slot rejected", zap.String("slot", res.ViolatedSlot))
			slots[res.ViolatedSlot] = nil
			return ElicitSlot(attrs, intent.Name, slots, res.ViolatedSlot, res.Message), nil
		}
		// подтверждённое и неподтверждённое намерение одинаково отдаём платформе:
		// она сама дозапросит слоты и спросит подтверждение
		return Delegate(attrs, slots), nil
	}

	c.log.Debug("BookMovie", zap.String("reservation", string(encoded)))

	summary, err := Summary(reservation)
	if err != nil {
		c.log.Debug("cannot summarize reservation", zap.Error(err))
		return Close(attrs, models.Failed, models.PlainText(
			"Sorry, I Could Not Complete Your Booking. Some Booking Details Are Missing Or Invalid, Please Try Again.")), nil
	}

	delete(attrs, models.AttrCurrentReservation)
	attrs[models.AttrLastConfirmedReservation] = string(encoded)

	return Close(attrs, models.Fulfilled, models.PlainText(summary)), nil
}

// Reject заменяет успешное закрытие неуспешным, когда бронирование не удалось записать.
// Текущее бронирование возвращается в сессию, подтверждённым оно не считается.
func Reject(resp models.Response, content string) models.Response {
	attrs := resp.SessionAttributes.Clone()
	if last, ok := attrs[models.AttrLastConfirmedReservation]; ok {
		attrs[models.AttrCurrentReservation] = last
		delete(attrs, models.AttrLastConfirmedReservation)
	}
	return Close(attrs, models.Failed, models.PlainText(content))
}
