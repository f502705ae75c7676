package domain

import (
	"fmt"
	"strings"
)

// Summary is the formatted report of a completed workout.
type Summary struct {
	TrainingType string
	Duration     float64 // h
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// Locale selects the label set used to render a Summary.
type Locale string

// Supported label sets.
const (
	LocaleEN Locale = "en" // default
	LocaleRU Locale = "ru"
)

var messageFormats = map[Locale]string{
	LocaleEN: "Workout type: %s; Duration: %.3f h.; Distance: %.3f km; Avg. speed: %.3f km/h; Calories burned: %.3f.",
	LocaleRU: "Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
}

// ParseLocale resolves a locale name such as "en" or "RU".
func ParseLocale(value string) (Locale, error) {
	locale := Locale(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := messageFormats[locale]; !ok {
		return "", fmt.Errorf("unsupported locale %q", value)
	}
	return locale, nil
}

// Message renders the summary with English labels.
func (s Summary) Message() string {
	return s.MessageIn(LocaleEN)
}

// MessageIn renders the summary with the labels of the given locale, falling
// back to English for unknown locales.
func (s Summary) MessageIn(locale Locale) string {
	format, ok := messageFormats[locale]
	if !ok {
		format = messageFormats[LocaleEN]
	}
	return fmt.Sprintf(format, s.TrainingType, s.Duration, s.Distance, s.Speed, s.Calories)
}
