package config

import "os"

const (
	signingSecretEnv = "SIGNING_SECRET"
	submitBaseURLEnv = "SUBMIT_BASE_URL"
	publicBaseURLEnv = "PUBLIC_BASE_URL"
)

// LinksConfig carries everything needed to mint and serve signed action
// links. SubmitBaseURL is the endpoint embedded in outgoing emails;
// PublicBaseURL is the externally reachable root of the submission service
// and defaults to SubmitBaseURL's origin when unset.
type LinksConfig struct {
	SigningSecret string
	SubmitBaseURL string
	PublicBaseURL string
}

func LoadLinksConfig() *LinksConfig {
	submit := os.Getenv(submitBaseURLEnv)

	public := os.Getenv(publicBaseURLEnv)
	if public == "" {
		public = submit
	}

	return &LinksConfig{
		SigningSecret: os.Getenv(signingSecretEnv),
		SubmitBaseURL: submit,
		PublicBaseURL: public,
	}
}
