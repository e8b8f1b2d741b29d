package model

// Weights of the composite score components.
type Weights struct {
	Category float64
	Actor    float64
	Director float64
	Rating   float64
}

// Params are the tunables of preference extraction and scoring.
type Params struct {
	Weights Weights

	// A rated candidate further than this from the user's average rating is
	// dropped before scoring.
	RatingPruneThreshold float64
	// Rating distance at which the rating score reaches zero.
	RatingScale float64
	// Rating score of candidates without a rating.
	NeutralRatingScore float64

	TopCategories int
	TopActors     int
	TopDirectors  int
	// Leading cast entries of each watched item that count toward actor tallies.
	CastPerRecord int
	// Leading cast entries of a candidate compared with the favored actors.
	CastExamined int
	ResultLimit  int
	DirectorJob  string
}

func DefaultParams() Params {
	return Params{
		Weights:              Weights{Category: 0.4, Actor: 0.3, Director: 0.2, Rating: 0.1},
		RatingPruneThreshold: 2.5,
		RatingScale:          3,
		NeutralRatingScore:   0.5,
		TopCategories:        3,
		TopActors:            5,
		TopDirectors:         3,
		CastPerRecord:        5,
		CastExamined:         10,
		ResultLimit:          20,
		DirectorJob:          "Director",
	}
}
