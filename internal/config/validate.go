package config

import (
	"fmt"
	"strings"
)

var rankingPolicies = []string{"weighted", "shortest", "first-literal"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Dictionary.validate(); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}
	if err := c.Lookup.validate(); err != nil {
		return fmt.Errorf("lookup: %w", err)
	}
	if err := c.Ranking.validate(); err != nil {
		return fmt.Errorf("ranking: %w", err)
	}
	if c.Dictionary.Store == StorePostgres && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required when dictionary.store is %q", StorePostgres)
	}
	if c.Progress.LogEvery < 0 {
		return fmt.Errorf("progress.log_every must be >= 0 (got %d)", c.Progress.LogEvery)
	}
	return nil
}

func (d *DictionaryConfig) validate() error {
	if strings.TrimSpace(d.Path) == "" {
		return fmt.Errorf("path must not be empty")
	}
	if d.CheckpointEvery < 0 {
		return fmt.Errorf("checkpoint_every must be >= 0 (got %d)", d.CheckpointEvery)
	}
	return oneOf("store", d.Store, StoreFile, StorePostgres)
}

func (l *LookupConfig) validate() error {
	if err := oneOf("backend", l.Backend, BackendWordNet, BackendFreeDict); err != nil {
		return err
	}
	if err := oneOf("on_failure", l.OnFailure, OnFailureMark, OnFailureSkip, OnFailureAbort); err != nil {
		return err
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	if l.Retries < 0 {
		return fmt.Errorf("retries must be >= 0 (got %d)", l.Retries)
	}
	if l.Limit < 0 {
		return fmt.Errorf("limit must be >= 0 (got %d)", l.Limit)
	}
	return nil
}

func (r *RankingConfig) validate() error {
	if err := oneOf("policy", r.Policy, rankingPolicies...); err != nil {
		return err
	}

	if r.Weights.isZero() {
		r.Weights = WeightsConfig{Category: 1, Synonyms: 1, Brevity: 1, SelfReference: 1}
	}

	w := r.Weights
	for name, v := range map[string]float64{
		"category":       w.Category,
		"synonyms":       w.Synonyms,
		"brevity":        w.Brevity,
		"self_reference": w.SelfReference,
	} {
		if v < 0 {
			return fmt.Errorf("weights.%s must be >= 0 (got %v)", name, v)
		}
	}
	return nil
}

func oneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s (got %q)", field, strings.Join(allowed, ", "), value)
}
