package config

// ValidateForSend checks everything the daily send pipeline needs: signing
// material for the action links plus a working SMTP endpoint.
func ValidateForSend(cfg *Config) error {
	if err := ValidateForServe(cfg); err != nil {
		return err
	}
	if cfg.Links.SubmitBaseURL == "" {
		return ErrSubmitBaseURLEmpty
	}
	return cfg.SMTP.Validate()
}

// ValidateForServe checks the minimum the submission service needs to verify
// incoming links.
func ValidateForServe(cfg *Config) error {
	if err := cfg.Redis.Validate(); err != nil {
		return err
	}
	if cfg.Links == nil || cfg.Links.SigningSecret == "" {
		return ErrSigningSecretEmpty
	}
	return nil
}
