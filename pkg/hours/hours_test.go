package hours

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	parsed, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return parsed
}

func openRule(t *testing.T, openAt, closeAt string) DayRule {
	t.Helper()
	return DayRule{Open: mustTime(t, openAt), Close: mustTime(t, closeAt)}
}

func sampleWeek(t *testing.T) WeeklyHours {
	t.Helper()
	w := WeeklyHours{}
	for _, day := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday} {
		w[day] = openRule(t, "07:00", "19:00")
	}
	w[time.Saturday] = openRule(t, "08:00", "20:00")
	w[time.Sunday] = openRule(t, "08:00", "18:00")
	return w
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func TestEvaluateBoundaries(t *testing.T) {
	w := WeeklyHours{time.Monday: openRule(t, "09:00", "17:00")}
	monday := time.Date(2024, time.December, 23, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, monday.Weekday())

	cases := []struct {
		name   string
		hour   int
		minute int
		open   bool
	}{
		{"opening minute counts as open", 9, 0, true},
		{"closing minute counts as closed", 17, 0, false},
		{"one minute before close is open", 16, 59, true},
		{"before opening is closed", 8, 59, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Evaluate(w, nil, at(2024, time.December, 23, tc.hour, tc.minute))
			assert.Equal(t, tc.open, result.IsOpen)
			if tc.open {
				assert.Equal(t, LabelOpen, result.Label)
			} else {
				assert.Equal(t, LabelClosed, result.Label)
			}
		})
	}
}

func TestEvaluateClosedOverrideWins(t *testing.T) {
	w := sampleWeek(t)
	overrides := Overrides{
		"2024-12-25": {Closed: true, Note: "Christmas Day — Closed"},
	}

	// 25 декабря 2024 — среда, по недельному правилу было бы открыто
	result := Evaluate(w, overrides, at(2024, time.December, 25, 10, 0))
	assert.False(t, result.IsOpen)
	assert.Equal(t, LabelClosed, result.Label)
	assert.Equal(t, "Christmas Day — Closed", result.Note)
	assert.True(t, result.Special)

	// накануне действует обычное недельное правило
	result = Evaluate(w, overrides, at(2024, time.December, 24, 10, 0))
	assert.True(t, result.IsOpen)
	assert.Empty(t, result.Note)
	assert.False(t, result.Special)
}

func TestEvaluateHoursOverride(t *testing.T) {
	w := sampleWeek(t)
	overrides := Overrides{
		"2024-07-04": {Open: mustTime(t, "08:00"), Close: mustTime(t, "16:00"), Note: "Independence Day"},
	}

	result := Evaluate(w, overrides, at(2024, time.July, 4, 7, 30))
	assert.False(t, result.IsOpen, "до особого открытия закрыто, хотя по недельному правилу было бы открыто")

	result = Evaluate(w, overrides, at(2024, time.July, 4, 12, 0))
	assert.True(t, result.IsOpen)
	assert.Equal(t, "Independence Day", result.Note)
	assert.True(t, result.Special)
}

func TestResolveRuleForDate(t *testing.T) {
	w := sampleWeek(t)
	date := at(2024, time.December, 24, 0, 0)

	rule, note := ResolveRuleForDate(w, nil, date)
	assert.Equal(t, w[time.Tuesday], rule)
	assert.Empty(t, note)

	// идемпотентность: повторный вызов с теми же входами даёт тот же результат
	again, _ := ResolveRuleForDate(w, nil, date)
	assert.Equal(t, rule, again)
}

func TestResolveRuleMissingWeekdayDefaultsToClosed(t *testing.T) {
	w := WeeklyHours{time.Monday: openRule(t, "09:00", "17:00")}
	sunday := at(2024, time.December, 22, 0, 0)
	require.Equal(t, time.Sunday, sunday.Weekday())

	rule, note := ResolveRuleForDate(w, nil, sunday)
	assert.True(t, rule.Closed)
	assert.Empty(t, note)

	result := Evaluate(w, nil, at(2024, time.December, 22, 12, 0))
	assert.False(t, result.IsOpen)
}

func TestEvaluateEmptyConfiguration(t *testing.T) {
	result := Evaluate(nil, nil, at(2024, time.June, 1, 12, 0))
	assert.False(t, result.IsOpen)
	assert.Equal(t, LabelClosed, result.Label)
	assert.True(t, result.Rule.Closed)
}

func TestFormatWeekOrderAndLength(t *testing.T) {
	w := sampleWeek(t)

	var days []time.Weekday
	var displays []string
	for day, display := range FormatWeek(w) {
		days = append(days, day)
		displays = append(displays, display)
	}

	require.Len(t, days, 7)
	assert.Equal(t, WeekOrder[:], days)
	assert.Equal(t, "7:00 AM - 7:00 PM", displays[0])
	assert.Equal(t, "8:00 AM - 8:00 PM", displays[5])
	assert.Equal(t, "8:00 AM - 6:00 PM", displays[6])
}

func TestFormatWeekMissingAndClosedDays(t *testing.T) {
	w := WeeklyHours{
		time.Monday:  openRule(t, "07:00", "19:00"),
		time.Tuesday: {Closed: true},
	}

	count := 0
	for day, display := range FormatWeek(w) {
		count++
		switch day {
		case time.Monday:
			assert.Equal(t, "7:00 AM - 7:00 PM", display)
		default:
			assert.Equal(t, "Closed", display)
		}
	}
	assert.Equal(t, 7, count)
}

func TestFormatWeekRestartable(t *testing.T) {
	w := sampleWeek(t)
	seq := FormatWeek(w)

	first := 0
	for range seq {
		first++
		if first == 3 {
			break
		}
	}

	second := 0
	for range seq {
		second++
	}
	assert.Equal(t, 7, second)
}

func TestValidate(t *testing.T) {
	t.Run("valid week passes", func(t *testing.T) {
		assert.NoError(t, Validate(sampleWeek(t), nil))
	})

	t.Run("close before open rejected", func(t *testing.T) {
		w := WeeklyHours{time.Monday: openRule(t, "19:00", "07:00")}
		err := Validate(w, nil)
		require.Error(t, err)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "monday", cfgErr.Field)
	})

	t.Run("open equals close rejected", func(t *testing.T) {
		w := WeeklyHours{time.Monday: openRule(t, "09:00", "09:00")}
		err := Validate(w, nil)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("closed day skips window check", func(t *testing.T) {
		w := WeeklyHours{time.Monday: {Closed: true}}
		assert.NoError(t, Validate(w, nil))
	})

	t.Run("bad override date rejected", func(t *testing.T) {
		o := Overrides{"25-12-2024": {Closed: true}}
		err := Validate(nil, o)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "25-12-2024", cfgErr.Field)
	})

	t.Run("override window checked", func(t *testing.T) {
		o := Overrides{"2024-07-04": {Open: mustTime(t, "16:00"), Close: mustTime(t, "08:00")}}
		err := Validate(nil, o)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "2024-07-04", cfgErr.Field)
	})
}

func TestWeeklyHoursJSONRoundTrip(t *testing.T) {
	w := sampleWeek(t)
	w[time.Wednesday] = DayRule{Closed: true}

	data, err := json.Marshal(w)
	require.NoError(t, err)

	var decoded WeeklyHours
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, w, decoded)
}

func TestWeeklyHoursJSONShape(t *testing.T) {
	raw := `{
		"monday": {"open": "07:00", "close": "19:00", "closed": false},
		"sunday": {"closed": true}
	}`

	var w WeeklyHours
	require.NoError(t, json.Unmarshal([]byte(raw), &w))
	assert.Equal(t, mustTime(t, "07:00"), w[time.Monday].Open)
	assert.Equal(t, mustTime(t, "19:00"), w[time.Monday].Close)
	assert.True(t, w[time.Sunday].Closed)

	var bad WeeklyHours
	assert.Error(t, json.Unmarshal([]byte(`{"someday": {"closed": true}}`), &bad))
}

func TestOverrideJSONShape(t *testing.T) {
	data, err := json.Marshal(Overrides{
		"2026-12-25": {Closed: true, Note: "Christmas"},
	})
	require.NoError(t, err)

	// Закрытый день сериализуется с явными open/close, клиенты не обязаны
	// проверять наличие ключей
	assert.Contains(t, string(data), `"open":"00:00"`)
	assert.Contains(t, string(data), `"close":"00:00"`)
	assert.Contains(t, string(data), `"note":"Christmas"`)

	var decoded Overrides
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded["2026-12-25"].Closed)
	assert.Equal(t, "Christmas", decoded["2026-12-25"].Note)
}

func TestTimeOfDayRoundTrip(t *testing.T) {
	parsed := mustTime(t, "16:59")
	assert.Equal(t, "16:59", parsed.String())

	reparsed, err := ParseTimeOfDay(parsed.String())
	require.NoError(t, err)
	assert.Equal(t, parsed, reparsed)

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
	_, err = ParseTimeOfDay("9:00:00")
	assert.Error(t, err)
}

func TestFormat12(t *testing.T) {
	assert.Equal(t, "7:00 AM", mustTime(t, "07:00").Format12())
	assert.Equal(t, "12:30 PM", mustTime(t, "12:30").Format12())
	assert.Equal(t, "12:05 AM", mustTime(t, "00:05").Format12())
}
