package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/actuallystonmai/recommendation-engine/internal/catalog"
	"github.com/actuallystonmai/recommendation-engine/internal/config"
	"github.com/actuallystonmai/recommendation-engine/internal/domain"
	"github.com/actuallystonmai/recommendation-engine/internal/logging"
	"github.com/actuallystonmai/recommendation-engine/internal/model"
	"github.com/actuallystonmai/recommendation-engine/seeds"
)

// Catalog is the part of the metadata client the service reads from. Every
// method reports ok == false when the catalog had nothing to say.
type Catalog interface {
	Popular(ctx context.Context) ([]domain.Item, bool)
	Search(ctx context.Context, query string) ([]domain.Item, bool)
	Discover(ctx context.Context, q catalog.DiscoverQuery) ([]domain.Item, bool)
	Filmography(ctx context.Context, contributorID int64) (*domain.Filmography, bool)
}

// CreditSource resolves item credits, usually through cache.Credits.
type CreditSource interface {
	Get(ctx context.Context, itemID int64) (*domain.Credits, bool)
}

// InteractionStore holds the users' watched lists and watchlists.
type InteractionStore interface {
	ListItems(ctx context.Context, userID string, kind domain.ListKind) ([]domain.Item, error)
	AddItem(ctx context.Context, userID string, kind domain.ListKind, item domain.Item) (bool, error)
	RemoveItem(ctx context.Context, userID string, kind domain.ListKind, itemID int64) (bool, error)
}

// Options tune the pipeline. Params covers the scoring math, the rest covers
// candidate generation and fetching.
type Options struct {
	Params           model.Params
	FilmographyLimit int
	MinVoteCount     int
	FetchConcurrency int
	// Seeds is served when the catalog's popular listing is unavailable.
	Seeds []domain.Item
}

// DefaultOptions mirrors config.DefaultScoring.
func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultScoring())
}

func OptionsFromConfig(cfg config.ScoringConfig) Options {
	return Options{
		Params: model.Params{
			Weights: model.Weights{
				Category: cfg.CategoryWeight,
				Actor:    cfg.ActorWeight,
				Director: cfg.DirectorWeight,
				Rating:   cfg.RatingWeight,
			},
			RatingPruneThreshold: cfg.RatingPruneThreshold,
			RatingScale:          cfg.RatingScale,
			NeutralRatingScore:   cfg.NeutralRatingScore,
			TopCategories:        cfg.TopCategories,
			TopActors:            cfg.TopActors,
			TopDirectors:         cfg.TopDirectors,
			CastPerRecord:        cfg.CastPerRecord,
			CastExamined:         cfg.CastExamined,
			ResultLimit:          cfg.ResultLimit,
			DirectorJob:          cfg.DirectorJob,
		},
		FilmographyLimit: cfg.FilmographyLimit,
		MinVoteCount:     cfg.MinVoteCount,
		FetchConcurrency: cfg.FetchConcurrency,
		Seeds:            seeds.DemoMovies(),
	}
}

type Service struct {
	catalog Catalog
	credits CreditSource
	store   InteractionStore
	opts    Options
	log     zerolog.Logger
}

func NewService(catalog Catalog, credits CreditSource, store InteractionStore, opts Options) *Service {
	if opts.FetchConcurrency <= 0 {
		opts.FetchConcurrency = 1
	}
	if opts.Seeds == nil {
		opts.Seeds = seeds.DemoMovies()
	}
	return &Service{
		catalog: catalog,
		credits: credits,
		store:   store,
		opts:    opts,
		log:     logging.Component("service"),
	}
}
