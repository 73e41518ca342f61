package delivery

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gymsplit/notification-scheduler/internal/domain"
	"github.com/gymsplit/notification-scheduler/internal/render"
	"github.com/gymsplit/notification-scheduler/internal/signing"
)

// Sentinel exercise IDs carried in the ex parameter of submit links.
const (
	ExerciseAll  = "ALL"
	ExerciseSkip = "SKIP"
)

func (s *Service) workoutData(recipient domain.Recipient, day *domain.WorkoutDay, dateKey string) (render.DailyData, error) {
	userID := recipient.UserID()
	ts := strconv.FormatInt(time.Now().Unix(), 10)

	data := render.DailyData{
		Name:  recipient.DisplayName(),
		Title: day.Title,
		Date:  dateKey,
		Items: make([]render.Item, 0, len(day.Exercises)),
	}

	for _, ex := range day.Exercises {
		link, err := s.signedSubmitLink(map[string]string{
			"u": userID, "d": dateKey, "ex": ex.ID, "ts": ts,
		})
		if err != nil {
			return render.DailyData{}, err
		}
		data.Items = append(data.Items, render.Item{
			Name: ex.Name,
			Sets: ex.Sets,
			Reps: ex.Reps,
			Link: link,
		})
	}

	var err error
	data.CompleteAllLink, err = s.signedSubmitLink(map[string]string{
		"u": userID, "d": dateKey, "ex": ExerciseAll, "ts": ts,
	})
	if err != nil {
		return render.DailyData{}, err
	}
	data.SkipTodayLink, err = s.signedSubmitLink(map[string]string{
		"u": userID, "d": dateKey, "ex": ExerciseSkip, "ts": ts,
	})
	if err != nil {
		return render.DailyData{}, err
	}

	if err := s.addPublicLinks(&data, userID, dateKey, ts); err != nil {
		return render.DailyData{}, err
	}
	return data, nil
}

func (s *Service) restData(recipient domain.Recipient, day *domain.RestDay, dateKey string) (render.DailyData, error) {
	ts := strconv.FormatInt(time.Now().Unix(), 10)

	data := render.DailyData{
		Name:     recipient.DisplayName(),
		Title:    day.Title,
		Date:     dateKey,
		RestNote: day.Message,
	}

	// Rest emails keep only the customize entry point: no action buttons,
	// no delete footer.
	if s.links.PublicBaseURL != "" {
		link, err := signing.SignedURL(s.links.PublicBaseURL+"/customize",
			map[string]string{"u": recipient.UserID(), "ts": ts}, s.links.SigningSecret)
		if err != nil {
			return render.DailyData{}, err
		}
		data.CustomizeLink = link
	}
	return data, nil
}

func (s *Service) signedSubmitLink(params map[string]string) (string, error) {
	link, err := signing.SignedURL(s.links.SubmitBaseURL, params, s.links.SigningSecret)
	if err != nil {
		return "", fmt.Errorf("sign submit link: %w", err)
	}
	return link, nil
}

func (s *Service) addPublicLinks(data *render.DailyData, userID, dateKey, ts string) error {
	public := s.links.PublicBaseURL
	if public == "" {
		return nil
	}

	customize, err := signing.SignedURL(public+"/customize",
		map[string]string{"u": userID, "ts": ts}, s.links.SigningSecret)
	if err != nil {
		return err
	}
	data.CustomizeLink = customize

	data.ActivityLink = public + "/activity?u=" + url.QueryEscape(userID)

	deleteBase := public + "/delete"
	data.DeleteDayLink, err = signing.SignedURL(deleteBase,
		map[string]string{"u": userID, "scope": "day", "d": dateKey, "ts": ts}, s.links.SigningSecret)
	if err != nil {
		return err
	}

	parts := strings.SplitN(dateKey, "-", 3)
	data.DeleteMonthLink, err = signing.SignedURL(deleteBase,
		map[string]string{"u": userID, "scope": "month", "y": parts[0], "m": parts[1], "ts": ts}, s.links.SigningSecret)
	if err != nil {
		return err
	}

	data.DeleteAllLink, err = signing.SignedURL(deleteBase,
		map[string]string{"u": userID, "scope": "all", "ts": ts}, s.links.SigningSecret)
	if err != nil {
		return err
	}
	return nil
}
