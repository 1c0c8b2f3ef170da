package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/wurt83ow/bookmovie-bot/internal/models"
)

const (
	// за сколько дней вперёд можно бронировать
	bookingWindowDays = 15
	// часы работы кинотеатров, включительно
	openingHour = 9
	closingHour = 22

	minTickets = 1
	maxTickets = 20
)

var (
	validMovies   = []string{"sonar kella", "aparajito", "kabuliwala"}
	validTheaters = []string{"pvr", "inox", "cinepolis"}
	validSeats    = []string{"gold", "platinum", "royal"}
)

// ValidationResult описывает итог проверки слотов.
// ViolatedSlot заполнен только при IsValid == false, Message может быть nil:
// тогда платформа использует собственный вопрос для слота.
type ValidationResult struct {
	IsValid      bool
	ViolatedSlot string
	Message      *models.Message
}

func valid() ValidationResult {
	return ValidationResult{IsValid: true}
}

func violation(slot string, message *models.Message) ValidationResult {
	return ValidationResult{ViolatedSlot: slot, Message: message}
}

func oneOf(value string, allowed []string) bool {
	value = strings.ToLower(value)
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}

func IsValidMovie(name string) bool   { return oneOf(name, validMovies) }
func IsValidTheater(name string) bool { return oneOf(name, validTheaters) }
func IsValidSeat(seat string) bool    { return oneOf(seat, validSeats) }

// IsValidDate сообщает, удаётся ли распознать текст как дату.
func IsValidDate(text string) bool {
	_, err := dateparse.ParseAny(text)
	return err == nil
}

// parseCount разбирает количество билетов так же терпимо к пробелам, как это делает платформа.
func parseCount(text string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(text))
}

// Validator проверяет слоты BookMovie относительно текущей даты.
type Validator struct {
	clock  Clock
	strict bool
}

// NewValidator возвращает валидатор. В строгом режиме дополнительно
// проверяются фильм, кинотеатр и тип места.
func NewValidator(clock Clock, strict bool) *Validator {
	return &Validator{clock: clock, strict: strict}
}

// Validate проверяет заполненные слоты в фиксированном порядке и
// возвращает первое найденное нарушение. Незаполненные слоты пропускаются.
func (v *Validator) Validate(slots models.Slots) ValidationResult {
	if date, ok := slots.Get(models.SlotDate); ok && date != "" {
		if res := v.validateDate(date); !res.IsValid {
			return res
		}
	}

	if tm, ok := slots.Get(models.SlotTime); ok {
		if res := validateTime(tm); !res.IsValid {
			return res
		}
	}

	if num, ok := slots.Get(models.SlotTicketNum); ok {
		if res := validateTicketNum(num); !res.IsValid {
			return res
		}
	}

	if v.strict {
		return validateCatalog(slots)
	}

	return valid()
}

func (v *Validator) validateDate(text string) ValidationResult {
	loc := v.clock.Now().Location()
	parsed, err := dateparse.ParseIn(text, loc)
	if err != nil {
		return violation(models.SlotDate, models.PlainText(
			"Sorry, I Am Unable to Understand. In Which Date You Want To Book The Movie Tickets?"))
	}

	now := v.clock.Now()
	// "Oct 16" разбирается без года: берём текущий
	if parsed.Year() == 0 {
		parsed = time.Date(now.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, loc)
	}

	today := civil(now)
	last := today.AddDate(0, 0, bookingWindowDays)
	date := civil(parsed)

	if !date.After(today) {
		return violation(models.SlotDate, models.PlainText(
			"Sorry, I Can Only Schedule Bookings At Least One Day In Advance.  Can You Try A Different Date?"))
	}
	if !date.Before(last) {
		return violation(models.SlotDate, models.PlainText(fmt.Sprintf(
			"You Can Book Only Upto 15 Days In Advance. Can You Try A Date Between %s and %s?",
			today.Format(time.DateOnly), last.Format(time.DateOnly))))
	}
	return valid()
}

func validateTime(text string) ValidationResult {
	// ожидаем HH:MM; при неверном формате спрашиваем вопросом из модели бота
	if len(text) != 5 {
		return violation(models.SlotTime, nil)
	}
	hh, mm, found := strings.Cut(text, ":")
	if !found {
		return violation(models.SlotTime, nil)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return violation(models.SlotTime, nil)
	}
	if _, err := strconv.Atoi(mm); err != nil {
		return violation(models.SlotTime, nil)
	}

	if hour < openingHour || hour > closingHour {
		return violation(models.SlotTime, models.PlainText(
			"Movie Theatres Are Opened Only From 9 AM to 10 PM. Can You Specify A Time Within That Time Range?"))
	}
	return valid()
}

func validateTicketNum(text string) ValidationResult {
	n, err := parseCount(text)
	if err != nil {
		return violation(models.SlotTicketNum, nil)
	}
	if n < minTickets {
		return violation(models.SlotTicketNum, models.PlainText(
			"You Have To Book Atleast One Ticket. How Many Tickets Would You Like To Book?"))
	}
	if n > maxTickets {
		return violation(models.SlotTicketNum, models.PlainText(
			"You Can Book Maximum 20 Tickets At Once. How Many Tickets Would You Like To Book?"))
	}
	return valid()
}

func validateCatalog(slots models.Slots) ValidationResult {
	if movie, ok := slots.Get(models.SlotMovieName); ok && !IsValidMovie(movie) {
		return violation(models.SlotMovieName, models.PlainText(fmt.Sprintf(
			"Sorry, %s Is Not Showing Right Now. Would You Like To Watch Sonar Kella, Aparajito Or Kabuliwala?", movie)))
	}
	if theater, ok := slots.Get(models.SlotTheatre); ok && !IsValidTheater(theater) {
		return violation(models.SlotTheatre, models.PlainText(
			"We Only Book At PVR, INOX And Cinepolis. Which Theatre Would You Prefer?"))
	}
	if seat, ok := slots.Get(models.SlotSeatType); ok && !IsValidSeat(seat) {
		return violation(models.SlotSeatType, models.PlainText(
			"Available Seat Types Are Gold, Platinum And Royal. Which One Would You Like?"))
	}
	return valid()
}
