package mailer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gymsplit/notification-scheduler/internal/domain"
)

type fileMailer struct {
	dir string
}

// NewFileMailer writes each message as an HTML file under dir instead of
// sending it. Used by the render command to preview emails.
func NewFileMailer(dir string) domain.Mailer {
	return &fileMailer{dir: dir}
}

func (m *fileMailer) Send(ctx context.Context, to, subject, html string) error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s.html", sanitize(to), sanitize(subject))
	path := filepath.Join(m.dir, name)

	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write preview %s: %w", path, err)
	}
	return nil
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '.' || r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
