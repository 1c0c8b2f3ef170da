package models

import (
	"encoding/json"
)

// InvocationSource говорит, зачем платформа вызвала хук.
type InvocationSource string

const (
	DialogCodeHook      InvocationSource = "DialogCodeHook"
	FulfillmentCodeHook InvocationSource = "FulfillmentCodeHook"
)

// ConfirmationStatus описывает ответ пользователя на подтверждение намерения.
type ConfirmationStatus string

const (
	ConfirmationNone      ConfirmationStatus = "None"
	ConfirmationConfirmed ConfirmationStatus = "Confirmed"
	ConfirmationDenied    ConfirmationStatus = "Denied"
)

// DialogActionType определяет вид директивы в ответе.
type DialogActionType string

const (
	ActionElicitSlot    DialogActionType = "ElicitSlot"
	ActionConfirmIntent DialogActionType = "ConfirmIntent"
	ActionClose         DialogActionType = "Close"
	ActionDelegate      DialogActionType = "Delegate"
)

type FulfillmentState string

const (
	Fulfilled FulfillmentState = "Fulfilled"
	Failed    FulfillmentState = "Failed"
)

const ContentTypePlainText = "PlainText"

// имена слотов намерения BookMovie
const (
	SlotUserName  = "UserName"
	SlotMovieName = "MovieName"
	SlotTheatre   = "Theatre"
	SlotDate      = "Date"
	SlotTime      = "Time"
	SlotSeatType  = "SeatType"
	SlotTicketNum = "TicketNum"
)

// ключи атрибутов сессии
const (
	AttrCurrentReservation       = "currentReservation"
	AttrLastConfirmedReservation = "lastConfirmedReservation"
)

// Request описывает событие code hook.
// См. https://docs.aws.amazon.com/lex/latest/dg/lambda-input-response-format.html
type Request struct {
	MessageVersion    string           `json:"messageVersion"`
	InvocationSource  InvocationSource `json:"invocationSource"`
	UserID            string           `json:"userId"`
	InputTranscript   string           `json:"inputTranscript"`
	OutputDialogMode  string           `json:"outputDialogMode"`
	SessionAttributes Attributes       `json:"sessionAttributes"`
	RequestAttributes Attributes       `json:"requestAttributes"`
	Bot               Bot              `json:"bot"`
	CurrentIntent     Intent           `json:"currentIntent"`
}

// Bot идентифицирует бота, от имени которого пришёл запрос.
type Bot struct {
	Name    string `json:"name"`
	Alias   string `json:"alias"`
	Version string `json:"version"`
}

type Intent struct {
	Name               string             `json:"name"`
	Slots              Slots              `json:"slots"`
	ConfirmationStatus ConfirmationStatus `json:"confirmationStatus"`
}

// Slots хранит значения слотов; nil означает, что слот ещё не заполнен.
type Slots map[string]*string

// Get возвращает значение слота и признак его наличия.
func (s Slots) Get(name string) (string, bool) {
	v, ok := s[name]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// Clone возвращает независимую копию карты слотов.
func (s Slots) Clone() Slots {
	out := make(Slots, len(s))
	for k, v := range s {
		if v == nil {
			out[k] = nil
			continue
		}
		val := *v
		out[k] = &val
	}
	return out
}

// Attributes - непрозрачные атрибуты сессии, которые платформа возвращает нам на каждом шаге.
type Attributes map[string]string

// UnmarshalJSON превращает null и любые не строковые карты в пустые атрибуты.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		*a = Attributes{}
		return nil
	}
	*a = m
	return nil
}

// Clone возвращает копию атрибутов, никогда не nil.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a)+2)
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Message - текст, который платформа покажет пользователю.
type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// PlainText собирает текстовое сообщение.
func PlainText(content string) *Message {
	return &Message{ContentType: ContentTypePlainText, Content: content}
}

// Response описывает ответ хука.
type Response struct {
	SessionAttributes Attributes   `json:"sessionAttributes"`
	DialogAction      DialogAction `json:"dialogAction"`
}

// DialogAction - директива платформе. Набор заполненных полей зависит от Type.
type DialogAction struct {
	Type             DialogActionType `json:"type"`
	FulfillmentState FulfillmentState `json:"fulfillmentState,omitempty"`
	IntentName       string           `json:"intentName,omitempty"`
	Slots            Slots            `json:"slots,omitempty"`
	SlotToElicit     string           `json:"slotToElicit,omitempty"`
	Message          *Message         `json:"message,omitempty"`
}

// MarshalJSON всегда передаёт slots для всех действий, кроме Close:
// платформа ждёт карту слотов, даже пустую.
func (a DialogAction) MarshalJSON() ([]byte, error) {
	type action DialogAction
	if a.Type == ActionClose {
		return json.Marshal(action(a))
	}
	slots := a.Slots
	if slots == nil {
		slots = Slots{}
	}
	return json.Marshal(struct {
		action
		Slots Slots `json:"slots"`
	}{action: action(a), Slots: slots})
}

// Reservation - снимок бронирования, который хранится в атрибутах сессии.
type Reservation struct {
	ReservationType string  `json:"ReservationType"`
	UserName        *string `json:"UserName"`
	MovieName       *string `json:"MovieName"`
	TheaterName     *string `json:"TheaterName"`
	Date            *string `json:"Date"`
	Time            *string `json:"Time"`
	SeatType        *string `json:"SeatType"`
	TicketNum       *int    `json:"TicketNum"`
}

const ReservationTypeMovie = "Movie"
