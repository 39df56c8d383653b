package config

import "time"

// Store backends.
const (
	StoreFile     = "file"
	StorePostgres = "postgres"
)

// Lookup backends.
const (
	BackendWordNet  = "wordnet"
	BackendFreeDict = "freedict"
)

// Lookup failure policies.
const (
	OnFailureMark  = "mark"
	OnFailureSkip  = "skip"
	OnFailureAbort = "abort"
)

// Config is the root application configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Lookup     LookupConfig     `yaml:"lookup"`
	Ranking    RankingConfig    `yaml:"ranking"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	Progress   ProgressConfig   `yaml:"progress"`
}

// DictionaryConfig holds the word list location and persistence settings.
type DictionaryConfig struct {
	Path            string `yaml:"path"             env:"DICT_PATH"             env-default:"dictionary.txt"`
	SeedPath        string `yaml:"seed_path"        env:"DICT_SEED_PATH"        env-default:"words.txt"`
	CheckpointEvery int    `yaml:"checkpoint_every" env:"DICT_CHECKPOINT_EVERY" env-default:"100"`
	Store           string `yaml:"store"            env:"DICT_STORE"            env-default:"file"`
}

// LookupConfig holds lexical source settings.
type LookupConfig struct {
	Backend     string        `yaml:"backend"      env:"LOOKUP_BACKEND"       env-default:"wordnet"`
	WNBinary    string        `yaml:"wn_binary"    env:"LOOKUP_WN_BINARY"     env-default:"wn"`
	FreeDictURL string        `yaml:"freedict_url" env:"LOOKUP_FREEDICT_URL"`
	Timeout     time.Duration `yaml:"timeout"      env:"LOOKUP_TIMEOUT"       env-default:"10s"`
	Retries     int           `yaml:"retries"      env:"LOOKUP_RETRIES"       env-default:"0"`
	OnFailure   string        `yaml:"on_failure"   env:"LOOKUP_ON_FAILURE"    env-default:"mark"`
	Limit       int           `yaml:"limit"        env:"LOOKUP_LIMIT"         env-default:"0"`
}

// RankingConfig selects the ranking policy and its feature weights.
type RankingConfig struct {
	Policy  string        `yaml:"policy"  env:"RANKING_POLICY" env-default:"weighted"`
	Weights WeightsConfig `yaml:"weights"`
}

// WeightsConfig holds the multiplier of each ranking feature.
// When all four are zero every weight defaults to 1.
type WeightsConfig struct {
	Category      float64 `yaml:"category"       env:"RANKING_WEIGHT_CATEGORY"`
	Synonyms      float64 `yaml:"synonyms"       env:"RANKING_WEIGHT_SYNONYMS"`
	Brevity       float64 `yaml:"brevity"        env:"RANKING_WEIGHT_BREVITY"`
	SelfReference float64 `yaml:"self_reference" env:"RANKING_WEIGHT_SELF_REFERENCE"`
}

func (w WeightsConfig) isZero() bool {
	return w == WeightsConfig{}
}

// DatabaseConfig holds PostgreSQL connection settings.
// The DSN is only required when the postgres store is selected.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// ProgressConfig controls run progress reporting.
// Quiet hides the terminal progress bar; log lines are still written.
type ProgressConfig struct {
	Quiet    bool `yaml:"quiet"     env:"PROGRESS_QUIET"`
	LogEvery int  `yaml:"log_every" env:"PROGRESS_LOG_EVERY" env-default:"50"`
}
