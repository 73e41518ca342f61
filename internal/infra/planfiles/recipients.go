package planfiles

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gymsplit/notification-scheduler/internal/domain"
)

var ErrNoRecipients = errors.New("recipients file has no usable entries")

// LoadRecipients reads <dataDir>/config/recipients.json. Entries without an
// email address are dropped.
func LoadRecipients(dataDir string) ([]domain.Recipient, error) {
	path := filepath.Join(dataDir, "config", "recipients.json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipients: %w", err)
	}

	var all []domain.Recipient
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("parse recipients: %w", err)
	}

	recipients := make([]domain.Recipient, 0, len(all))
	for _, r := range all {
		if r.Email == "" || r.UserID() == "" {
			continue
		}
		recipients = append(recipients, r)
	}
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	return recipients, nil
}
