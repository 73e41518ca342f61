// Package summary aggregates the activity store over a trailing window and
// mails the result to every recipient.
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/gymsplit/notification-scheduler/internal/domain"
	"github.com/gymsplit/notification-scheduler/internal/render"
)

type Service struct {
	activity domain.ActivityRepository
	renderer *render.Renderer
	mailer   domain.Mailer
}

func NewService(activity domain.ActivityRepository, renderer *render.Renderer, mailer domain.Mailer) *Service {
	return &Service{
		activity: activity,
		renderer: renderer,
		mailer:   mailer,
	}
}

// Run summarizes the window of `days` calendar days ending at `end`
// (inclusive) and mails it to every recipient. Recipients with no activity
// in the window are left out of the per-user table.
func (s *Service) Run(ctx context.Context, recipients []domain.Recipient, end time.Time, days int) error {
	if days < 1 {
		days = 7
	}

	dates := make([]string, 0, days)
	for i := days - 1; i >= 0; i-- {
		dates = append(dates, end.AddDate(0, 0, -i).Format(domain.DateLayout))
	}

	data, err := s.aggregate(ctx, recipients, dates)
	if err != nil {
		return err
	}

	html, err := s.renderer.Summary(data)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("[Gym Split] Weekly Summary %s to %s", data.Start, data.End)
	for _, r := range recipients {
		if err := s.mailer.Send(ctx, r.Email, subject, html); err != nil {
			slog.ErrorContext(ctx, "failed to send summary",
				slog.String("user", r.UserID()),
				slog.String("error", err.Error()),
			)
			continue
		}
		slog.InfoContext(ctx, "summary sent", slog.String("user", r.UserID()))
	}
	return nil
}

func (s *Service) aggregate(ctx context.Context, recipients []domain.Recipient, dates []string) (render.SummaryData, error) {
	data := render.SummaryData{
		Start: dates[0],
		End:   dates[len(dates)-1],
	}

	exerciseCounts := make(map[string]int)

	for _, r := range recipients {
		userID := r.UserID()
		row := render.UserRow{UserID: userID}

		for _, date := range dates {
			activity, err := s.activity.DayActivity(ctx, userID, date)
			if err != nil {
				return render.SummaryData{}, fmt.Errorf("load activity for %s on %s: %w", userID, date, err)
			}
			if !activity.Sent {
				continue
			}
			row.Sent++
			if activity.Done() {
				row.Done++
			}
			for ex, done := range activity.Completions {
				if done {
					exerciseCounts[ex]++
				}
			}
		}

		if row.Sent > 0 {
			row.Rate = int(math.Round(float64(row.Done) / float64(row.Sent) * 100))
			data.Users = append(data.Users, row)
		}
	}

	for ex, count := range exerciseCounts {
		data.Exercises = append(data.Exercises, render.ExerciseRow{ExerciseID: ex, Count: count})
	}
	// Most-completed first, ties by name for a stable table.
	sort.Slice(data.Exercises, func(i, j int) bool {
		if data.Exercises[i].Count != data.Exercises[j].Count {
			return data.Exercises[i].Count > data.Exercises[j].Count
		}
		return data.Exercises[i].ExerciseID < data.Exercises[j].ExerciseID
	})

	return data, nil
}
