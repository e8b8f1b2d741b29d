package seeds

import "github.com/actuallystonmai/recommendation-engine/internal/domain"

func poster(path string) *string { return &path }

// demoMovies is the fixed list served when the catalog is unreachable.
var demoMovies = []domain.Item{
	{
		ID:          550,
		Title:       "Fight Club",
		PosterPath:  poster("/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"),
		Overview:    "A ticking-time-bomb insomniac and a slippery soap salesman channel primal male aggression into a shocking new form of therapy.",
		ReleaseDate: "1999-10-15",
		VoteAverage: 8.4,
		GenreIDs:    []int{18},
	},
	{
		ID:          13,
		Title:       "Forrest Gump",
		PosterPath:  poster("/arw2vcBveWOVZr6pxd9XTd1TdQa.jpg"),
		Overview:    "A man with a low IQ has accomplished great things in his life and been present during significant historic events.",
		ReleaseDate: "1994-07-06",
		VoteAverage: 8.5,
		GenreIDs:    []int{35, 18, 10749},
	},
	{
		ID:          278,
		Title:       "The Shawshank Redemption",
		PosterPath:  poster("/q6y0Go1tsGEsmtFryDOJo3dEmqu.jpg"),
		Overview:    "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
		ReleaseDate: "1994-09-23",
		VoteAverage: 8.7,
		GenreIDs:    []int{18, 80},
	},
	{
		ID:          238,
		Title:       "The Godfather",
		PosterPath:  poster("/3bhkrj58Vtu7enYsRolD1fZdja1.jpg"),
		Overview:    "The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.",
		ReleaseDate: "1972-03-14",
		VoteAverage: 8.7,
		GenreIDs:    []int{18, 80},
	},
	{
		ID:          424,
		Title:       "Schindler's List",
		PosterPath:  poster("/sF1U4EUQS8YHUYjNl3pMGNIQyr0.jpg"),
		Overview:    "In German-occupied Poland during World War II, industrialist Oskar Schindler gradually becomes concerned for his Jewish workforce.",
		ReleaseDate: "1993-12-15",
		VoteAverage: 8.6,
		GenreIDs:    []int{18, 36, 10752},
	},
	{
		ID:          680,
		Title:       "Pulp Fiction",
		PosterPath:  poster("/d5iIlFn5s0ImszYzBPb8JPIfbXD.jpg"),
		Overview:    "The lives of two mob hitmen, a boxer, a gangster and his wife intertwine in four tales of violence and redemption.",
		ReleaseDate: "1994-09-10",
		VoteAverage: 8.5,
		GenreIDs:    []int{80, 18},
	},
	{
		ID:          155,
		Title:       "The Dark Knight",
		PosterPath:  poster("/qJ2tW6WMUDux911r6m7haRef0WH.jpg"),
		Overview:    "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological tests.",
		ReleaseDate: "2008-07-16",
		VoteAverage: 8.5,
		GenreIDs:    []int{18, 28, 80, 53},
	},
	{
		ID:          122,
		Title:       "The Lord of the Rings: The Return of the King",
		PosterPath:  poster("/rCzpDGLbOoPwLjy3OAm5NUPOTrC.jpg"),
		Overview:    "Gandalf and Aragorn lead the World of Men against Sauron's army to draw his gaze from Frodo and Sam as they approach Mount Doom.",
		ReleaseDate: "2003-12-17",
		VoteAverage: 8.5,
		GenreIDs:    []int{12, 14, 28},
	},
	{
		ID:          27205,
		Title:       "Inception",
		PosterPath:  poster("/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg"),
		Overview:    "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea.",
		ReleaseDate: "2010-07-16",
		VoteAverage: 8.4,
		GenreIDs:    []int{28, 878, 12},
	},
	{
		ID:          497,
		Title:       "The Green Mile",
		PosterPath:  poster("/velWPhVMQeQKcxggNEU8YmIo52R.jpg"),
		Overview:    "The lives of guards on Death Row are affected by one of their charges: a black man accused of child murder and rape.",
		ReleaseDate: "1999-12-10",
		VoteAverage: 8.5,
		GenreIDs:    []int{14, 18, 80},
	},
	{
		ID:          637,
		Title:       "Life Is Beautiful",
		PosterPath:  poster("/74hLDKjD5aGYOotO6esUVaeISa2.jpg"),
		Overview:    "When an open-minded Jewish librarian and his son become victims of the Holocaust, he uses a perfect mixture of will and humor.",
		ReleaseDate: "1997-12-20",
		VoteAverage: 8.4,
		GenreIDs:    []int{35, 18},
	},
	{
		ID:          539,
		Title:       "Psycho",
		PosterPath:  poster("/yz4QVqPx3h1hD1DfqqQkCq3rmxW.jpg"),
		Overview:    "A Phoenix secretary embezzles $40,000 from her employer's client and flees to a remote motel run by a young man under the domination of his mother.",
		ReleaseDate: "1960-06-16",
		VoteAverage: 8.4,
		GenreIDs:    []int{18, 27, 53},
	},
}

// DemoMovies returns a copy of the bundled seed list.
func DemoMovies() []domain.Item {
	out := make([]domain.Item, len(demoMovies))
	copy(out, demoMovies)
	return out
}
