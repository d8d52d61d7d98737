package flagcfg

// Config drives the flag engine. It is process-wide state, loaded at
// start and mutable through a merge-style update.
type Config struct {
	MistralScoreThreshold      float64 `json:"mistral_score_threshold" mapstructure:"mistral_score_threshold"`
	ForbiddenWordsTriggerRed   bool    `json:"forbidden_words_trigger_red" mapstructure:"forbidden_words_trigger_red"`
	ProperNamesTriggerRed      bool    `json:"proper_names_trigger_red" mapstructure:"proper_names_trigger_red"`
	TextModificationTriggerRed bool    `json:"text_modification_trigger_red" mapstructure:"text_modification_trigger_red"`
}

// Default returns the documented defaults, used when no config was ever
// persisted.
func Default() Config {
	return Config{
		MistralScoreThreshold:      0.5,
		ForbiddenWordsTriggerRed:   true,
		ProperNamesTriggerRed:      true,
		TextModificationTriggerRed: true,
	}
}

// Update carries a partial config change. Nil fields keep their current
// value (merge semantics, not replace).
type Update struct {
	MistralScoreThreshold      *float64 `json:"mistral_score_threshold" mapstructure:"mistral_score_threshold"`
	ForbiddenWordsTriggerRed   *bool    `json:"forbidden_words_trigger_red" mapstructure:"forbidden_words_trigger_red"`
	ProperNamesTriggerRed      *bool    `json:"proper_names_trigger_red" mapstructure:"proper_names_trigger_red"`
	TextModificationTriggerRed *bool    `json:"text_modification_trigger_red" mapstructure:"text_modification_trigger_red"`
}

// Apply merges the update into a copy of cfg.
func (u Update) Apply(cfg Config) Config {
	if u.MistralScoreThreshold != nil {
		cfg.MistralScoreThreshold = *u.MistralScoreThreshold
	}
	if u.ForbiddenWordsTriggerRed != nil {
		cfg.ForbiddenWordsTriggerRed = *u.ForbiddenWordsTriggerRed
	}
	if u.ProperNamesTriggerRed != nil {
		cfg.ProperNamesTriggerRed = *u.ProperNamesTriggerRed
	}
	if u.TextModificationTriggerRed != nil {
		cfg.TextModificationTriggerRed = *u.TextModificationTriggerRed
	}
	return cfg
}

// Store abstracts the durable home of the flag configuration.
type Store interface {
	// Load returns the persisted config, seeding defaults when absent.
	Load() (Config, error)
	// Persist durably replaces the stored config.
	Persist(cfg Config) error
}
