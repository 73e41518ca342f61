// Package render turns day selections and weekly aggregates into the HTML
// email bodies the mailer delivers.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

// Item is one exercise row of the daily email, with its signed action link.
type Item struct {
	Name string
	Sets int
	Reps string
	Link string
}

// DailyData feeds the daily template. RestNote set and Items empty renders
// the rest-day variant without any action buttons.
type DailyData struct {
	Name  string
	Title string
	Date  string
	Items []Item

	CompleteAllLink string
	SkipTodayLink   string
	CustomizeLink   string
	ActivityLink    string
	DeleteDayLink   string
	DeleteMonthLink string
	DeleteAllLink   string

	RestNote string
}

type UserRow struct {
	UserID string
	Sent   int
	Done   int
	Rate   int
}

type ExerciseRow struct {
	ExerciseID string
	Count      int
}

// SummaryData feeds the weekly summary template.
type SummaryData struct {
	Start     string
	End       string
	Users     []UserRow
	Exercises []ExerciseRow
}

type Renderer struct {
	daily   *template.Template
	summary *template.Template
}

func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"hasSets": func(i Item) bool { return i.Sets > 0 },
	}

	daily, err := template.New("daily.html").Funcs(funcs).ParseFS(templateFS, "templates/daily.html")
	if err != nil {
		return nil, fmt.Errorf("parse daily template: %w", err)
	}
	summary, err := template.New("summary.html").ParseFS(templateFS, "templates/summary.html")
	if err != nil {
		return nil, fmt.Errorf("parse summary template: %w", err)
	}

	return &Renderer{daily: daily, summary: summary}, nil
}

func (r *Renderer) Daily(data DailyData) (string, error) {
	var b strings.Builder
	if err := r.daily.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render daily email: %w", err)
	}
	return b.String(), nil
}

func (r *Renderer) Summary(data SummaryData) (string, error) {
	var b strings.Builder
	if err := r.summary.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render summary email: %w", err)
	}
	return b.String(), nil
}
