package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	Store    StoreConfig    `koanf:"store"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Auth     AuthConfig     `koanf:"auth"`
	Log      LogConfig      `koanf:"log"`
	Scoring  ScoringConfig  `koanf:"scoring"`
	Seed     SeedConfig     `koanf:"seed"`
}

type ServerConfig struct {
	Port           int           `koanf:"port" validate:"min=1,max=65535"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"gt=0"`
	RateLimit      int           `koanf:"rate_limit"` // requests per minute per IP, 0 disables
	CORSOrigins    []string      `koanf:"cors_origins"`
}

type DatabaseConfig struct {
	URL      string `koanf:"url"`
	PoolSize int    `koanf:"pool_size" validate:"min=1"`
}

type RedisConfig struct {
	URL string `koanf:"url"`
}

type StoreConfig struct {
	// Backend selects the interaction store: postgres or redis.
	Backend string `koanf:"backend" validate:"oneof=postgres redis"`
}

type CatalogConfig struct {
	BaseURL           string        `koanf:"base_url" validate:"required,url"`
	APIKey            string        `koanf:"api_key"`
	Timeout           time.Duration `koanf:"timeout" validate:"gt=0"`
	RequestsPerSecond float64       `koanf:"requests_per_second" validate:"gt=0"`
	Burst             int           `koanf:"burst" validate:"min=1"`

	// Circuit breaker
	BreakerMinRequests  uint32        `koanf:"breaker_min_requests"`
	BreakerFailureRatio float64       `koanf:"breaker_failure_ratio" validate:"gte=0,lte=1"`
	BreakerOpenTimeout  time.Duration `koanf:"breaker_open_timeout"`
}

type AuthConfig struct {
	JWTSecret string `koanf:"jwt_secret" validate:"required"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// ScoringConfig holds the tunables of the recommendation pipeline.
type ScoringConfig struct {
	CategoryWeight float64 `koanf:"category_weight" validate:"gte=0"`
	ActorWeight    float64 `koanf:"actor_weight" validate:"gte=0"`
	DirectorWeight float64 `koanf:"director_weight" validate:"gte=0"`
	RatingWeight   float64 `koanf:"rating_weight" validate:"gte=0"`

	RatingPruneThreshold float64 `koanf:"rating_prune_threshold" validate:"gt=0"`
	RatingScale          float64 `koanf:"rating_scale" validate:"gt=0"`
	NeutralRatingScore   float64 `koanf:"neutral_rating_score" validate:"gte=0,lte=1"`

	TopCategories    int    `koanf:"top_categories" validate:"min=1"`
	TopActors        int    `koanf:"top_actors" validate:"min=0"`
	TopDirectors     int    `koanf:"top_directors" validate:"min=0"`
	CastPerRecord    int    `koanf:"cast_per_record" validate:"min=1"`
	CastExamined     int    `koanf:"cast_examined" validate:"min=1"`
	FilmographyLimit int    `koanf:"filmography_limit" validate:"min=1"`
	ResultLimit      int    `koanf:"result_limit" validate:"min=1"`
	MinVoteCount     int    `koanf:"min_vote_count" validate:"min=0"`
	DirectorJob      string `koanf:"director_job" validate:"required"`
	FetchConcurrency int    `koanf:"fetch_concurrency" validate:"min=1"`
}

type SeedConfig struct {
	Enabled bool   `koanf:"enabled"`
	UserID  string `koanf:"user_id"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags plus the cross-field rules tags can't express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	switch c.Store.Backend {
	case "postgres":
		if c.Database.URL == "" {
			return errors.New("database.url is required for the postgres store")
		}
	case "redis":
		if c.Redis.URL == "" {
			return errors.New("redis.url is required for the redis store")
		}
	}

	s := c.Scoring
	if s.CategoryWeight+s.ActorWeight+s.DirectorWeight+s.RatingWeight == 0 {
		return errors.New("scoring weights must not all be zero")
	}
	return nil
}
