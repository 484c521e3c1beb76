package catalog

// Seed returns the fixed starting collection compiled into folio.
func Seed() []Book {
	return []Book{
		{
			ID:            1,
			Title:         "Le Petit Prince",
			Author:        "Antoine de Saint-Exupéry",
			Genre:         "Fiction",
			Description:   "Un conte poétique et philosophique sous l'apparence d'un conte pour enfants. L'histoire d'un aviateur qui rencontre un petit prince venu d'une autre planète.",
			PublishedYear: 1943,
			Rating:        4.6,
			CoverRef:      "https://via.placeholder.com/300x400/4CAF50/white?text=Le+Petit+Prince",
			Link:          "https://www.amazon.fr/s?k=le+petit+prince",
		},
		{
			ID:            2,
			Title:         "1984",
			Author:        "George Orwell",
			Genre:         "Science Fiction",
			Description:   "Un roman dystopique qui dépeint une société totalitaire où la liberté individuelle est anéantie par un système de surveillance omniprésent.",
			PublishedYear: 1949,
			Rating:        4.4,
			CoverRef:      "https://via.placeholder.com/300x400/2196F3/white?text=1984",
			Link:          "https://www.amazon.fr/s?k=1984+orwell",
		},
		{
			ID:            3,
			Title:         "Pride and Prejudice",
			Author:        "Jane Austen",
			Genre:         "Romance",
			Description:   "L'histoire d'Elizabeth Bennet et de sa relation compliquée avec le fier Mr. Darcy dans l'Angleterre du XIXe siècle.",
			PublishedYear: 1813,
			Rating:        4.3,
			CoverRef:      "https://via.placeholder.com/300x400/E91E63/white?text=Pride+and+Prejudice",
			Link:          "https://www.amazon.fr/s?k=pride+and+prejudice",
		},
		{
			ID:            4,
			Title:         "To Kill a Mockingbird",
			Author:        "Harper Lee",
			Genre:         "Fiction",
			Description:   "Un roman sur l'injustice raciale dans le Sud américain des années 1930, vu à travers les yeux d'une jeune fille.",
			PublishedYear: 1960,
			Rating:        4.5,
			CoverRef:      "https://via.placeholder.com/300x400/FF5722/white?text=To+Kill+a+Mockingbird",
			Link:          "https://www.amazon.fr/s?k=to+kill+a+mockingbird",
		},
		{
			ID:            5,
			Title:         "Harry Potter à l'école des sorciers",
			Author:        "J.K. Rowling",
			Genre:         "Fantasy",
			Description:   "L'histoire d'un jeune garçon qui découvre qu'il est un sorcier et entre dans une école de magie.",
			PublishedYear: 1997,
			Rating:        4.7,
			CoverRef:      "https://via.placeholder.com/300x400/9C27B0/white?text=Harry+Potter",
			Link:          "https://www.amazon.fr/s?k=harry+potter+ecole+des+sorciers",
		},
		{
			ID:            6,
			Title:         "L'Étranger",
			Author:        "Albert Camus",
			Genre:         "Philosophie",
			Description:   "L'histoire de Meursault, un homme indifférent qui commet un meurtre apparemment sans motif.",
			PublishedYear: 1942,
			Rating:        4.1,
			CoverRef:      "https://via.placeholder.com/300x400/607D8B/white?text=L%27Etranger",
			Link:          "https://www.amazon.fr/s?k=l%27etranger+camus",
		},
	}
}
