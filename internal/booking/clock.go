package booking

import "time"

// Clock отдаёт текущее время; "сегодня" считается в его часовом поясе.
type Clock interface {
	Now() time.Time
}

// ZoneClock - системные часы в заданном часовом поясе.
type ZoneClock struct {
	Location *time.Location
}

func (c ZoneClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock всегда возвращает одно и то же время. Используется в тестах.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// civil отбрасывает время суток, оставляя календарную дату.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
