package hours

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeOfDay — время в пределах суток без даты и часового пояса.
// Интерпретируется в локальном часовом поясе заведения.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("неверный формат времени %q, ожидается HH:MM", s)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Format12 возвращает время в 12-часовом формате для публичных страниц,
// например "7:00 AM".
func (t TimeOfDay) Format12() string {
	return time.Date(0, 1, 1, t.Hour, t.Minute, 0, 0, time.UTC).Format("3:04 PM")
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// DayRule — правило работы на один календарный день: либо заведение
// закрыто весь день, либо открыто с Open до Close (Open < Close,
// работа через полночь не поддерживается).
type DayRule struct {
	Closed bool      `json:"closed"`
	Open   TimeOfDay `json:"open"`
	Close  TimeOfDay `json:"close"`
}

// WeeklyHours — недельное расписание по дням недели. Отсутствующий день
// трактуется как "закрыто весь день", а не как ошибка.
type WeeklyHours map[time.Weekday]DayRule

// Override — исключение для конкретной даты: праздничное закрытие или
// особые часы вместо недельного правила. Open и Close сериализуются
// всегда, при Closed их значения ("00:00") не несут смысла.
type Override struct {
	Closed bool      `json:"closed"`
	Open   TimeOfDay `json:"open"`
	Close  TimeOfDay `json:"close"`
	Note   string    `json:"note,omitempty"`
}

// Overrides — исключения по датам, ключ в формате YYYY-MM-DD.
// При дублировании ключей в исходном JSON действует последний.
type Overrides map[string]Override

const DateLayout = "2006-01-02"

// WeekOrder — канонический порядок дней недели, начиная с понедельника.
var WeekOrder = [7]time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

var weekdayKeys = map[time.Weekday]string{
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
	time.Sunday:    "sunday",
}

var weekdayByKey = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

func (w WeeklyHours) MarshalJSON() ([]byte, error) {
	out := make(map[string]DayRule, len(w))
	for day, rule := range w {
		out[weekdayKeys[day]] = rule
	}
	return json.Marshal(out)
}

func (w *WeeklyHours) UnmarshalJSON(data []byte) error {
	raw := make(map[string]DayRule)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	result := make(WeeklyHours, len(raw))
	for key, rule := range raw {
		day, ok := weekdayByKey[key]
		if !ok {
			return fmt.Errorf("неизвестный день недели %q", key)
		}
		result[day] = rule
	}
	*w = result
	return nil
}
