package domain

import "context"

//go:generate mockgen -source=mailer.go -destination=mailer_mock.go -package=domain

// Mailer delivers a rendered HTML message to one address.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}
