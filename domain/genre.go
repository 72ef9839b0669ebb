package domain

type Genre string

const (
	GenreAction      Genre = "Action"
	GenreAdventure   Genre = "Adventure"
	GenreFighting    Genre = "Fighting"
	GenreMisc        Genre = "Misc"
	GenrePlatform    Genre = "Platform"
	GenrePuzzle      Genre = "Puzzle"
	GenreRacing      Genre = "Racing"
	GenreRolePlaying Genre = "Role-Playing"
	GenreShooter     Genre = "Shooter"
	GenreSimulation  Genre = "Simulation"
	GenreSports      Genre = "Sports"
	GenreStrategy    Genre = "Strategy"
)

var genreTable = [...]Genre{
	GenreAction,
	GenreAdventure,
	GenreFighting,
	GenreMisc,
	GenrePlatform,
	GenrePuzzle,
	GenreRacing,
	GenreRolePlaying,
	GenreShooter,
	GenreSimulation,
	GenreSports,
	GenreStrategy,
}

// AllGenres returns the genre list in form order. The slice is a copy.
func AllGenres() []Genre {
	out := make([]Genre, len(genreTable))
	copy(out, genreTable[:])
	return out
}

func ParseGenre(raw string) (Genre, error) {
	for _, g := range genreTable {
		if string(g) == raw {
			return g, nil
		}
	}
	return "", &LookupError{Kind: "genre", Value: raw}
}

func (g Genre) Valid() bool {
	_, err := ParseGenre(string(g))
	return err == nil
}
