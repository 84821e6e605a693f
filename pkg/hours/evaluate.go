package hours

import (
	"fmt"
	"iter"
	"time"
)

const (
	LabelOpen   = "Open Now"
	LabelClosed = "Closed"

	closedDisplay = "Closed"
)

// ConfigError — ошибка конфигурации расписания. Возникает только при
// сохранении настроек администратором, путь вычисления статуса её
// никогда не возвращает.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Evaluation — результат вычисления статуса на момент времени.
type Evaluation struct {
	IsOpen  bool    `json:"is_open"`
	Label   string  `json:"label"`
	Rule    DayRule `json:"rule"`
	Note    string  `json:"note,omitempty"`
	Special bool    `json:"special"`
}

// ResolveRuleForDate возвращает действующее правило на дату: исключение,
// если оно задано, иначе недельное правило по дню недели. Отсутствие
// данных даёт "закрыто" вместо ошибки, чтобы публичная страница всегда
// могла отрисоваться.
func ResolveRuleForDate(weekly WeeklyHours, overrides Overrides, date time.Time) (DayRule, string) {
	if ov, ok := overrides[date.Format(DateLayout)]; ok {
		if ov.Closed {
			return DayRule{Closed: true}, ov.Note
		}
		return DayRule{Open: ov.Open, Close: ov.Close}, ov.Note
	}

	rule, ok := weekly[date.Weekday()]
	if !ok {
		return DayRule{Closed: true}, ""
	}
	return rule, ""
}

// Evaluate определяет, открыто ли заведение в момент now. now должен быть
// уже переведён в локальный часовой пояс заведения, иначе результат не
// имеет смысла. Граница интервала полуоткрытая: минута открытия считается
// открытой, минута закрытия — закрытой.
func Evaluate(weekly WeeklyHours, overrides Overrides, now time.Time) Evaluation {
	rule, note := ResolveRuleForDate(weekly, overrides, now)
	_, special := overrides[now.Format(DateLayout)]

	result := Evaluation{
		Label:   LabelClosed,
		Rule:    rule,
		Note:    note,
		Special: special,
	}

	if rule.Closed {
		return result
	}

	minute := now.Hour()*60 + now.Minute()
	if rule.Open.Minutes() <= minute && minute < rule.Close.Minutes() {
		result.IsOpen = true
		result.Label = LabelOpen
	}

	return result
}

// FormatWeek возвращает ленивую последовательность из семи записей в
// каноническом порядке (понедельник первым) независимо от порядка
// итерации входной мапы. Последовательность можно обходить повторно.
func FormatWeek(weekly WeeklyHours) iter.Seq2[time.Weekday, string] {
	return func(yield func(time.Weekday, string) bool) {
		for _, day := range WeekOrder {
			if !yield(day, FormatDayRule(weekly[day])) {
				return
			}
		}
	}
}

// FormatDayRule отображает правило дня в строку вида "7:00 AM - 7:00 PM"
// или "Closed". Нулевое значение DayRule (день не задан) даёт "Closed".
func FormatDayRule(rule DayRule) string {
	if rule.Closed || (rule.Open == TimeOfDay{} && rule.Close == TimeOfDay{}) {
		return closedDisplay
	}
	return fmt.Sprintf("%s - %s", rule.Open.Format12(), rule.Close.Format12())
}

// Validate проверяет инварианты конфигурации: корректность времён,
// открытие строго раньше закрытия (в том числе open == close считается
// ошибкой), разбираемость дат исключений. Вызывается при сохранении
// настроек, до записи в хранилище.
func Validate(weekly WeeklyHours, overrides Overrides) error {
	for _, day := range WeekOrder {
		rule, ok := weekly[day]
		if !ok || rule.Closed {
			continue
		}
		if err := validateWindow(weekdayKeys[day], rule.Open, rule.Close); err != nil {
			return err
		}
	}

	for dateKey, ov := range overrides {
		if _, err := time.Parse(DateLayout, dateKey); err != nil {
			return &ConfigError{Field: dateKey, Message: "неверный формат даты, ожидается YYYY-MM-DD"}
		}
		if ov.Closed {
			continue
		}
		if err := validateWindow(dateKey, ov.Open, ov.Close); err != nil {
			return err
		}
	}

	return nil
}

func validateWindow(field string, openAt, closeAt TimeOfDay) error {
	if !openAt.Valid() || !closeAt.Valid() {
		return &ConfigError{Field: field, Message: "время вне допустимого диапазона"}
	}
	if !openAt.Before(closeAt) {
		return &ConfigError{Field: field, Message: "время открытия должно быть раньше времени закрытия"}
	}
	return nil
}
