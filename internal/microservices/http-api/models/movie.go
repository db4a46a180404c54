package models

type Movie struct {
	ID        int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string  `json:"title" gorm:"size:250;not null"`
	Year      int     `json:"year"`
	Rate      float64 `json:"rate" gorm:"index"`
	StoryLine string  `json:"storyLine" gorm:"size:2500"`
	Poster    []byte  `json:"poster" gorm:"type:bytea;not null"`

	// nil once the genre was deleted under the detach policy
	GenreID *int64 `json:"genreId" gorm:"index"`
	Genre   *Genre `json:"-" gorm:"foreignKey:GenreID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

func (Movie) TableName() string {
	return "movies"
}

// GenreName returns the name of the preloaded genre, if any.
func (m Movie) GenreName() *string {
	if m.Genre == nil {
		return nil
	}
	name := m.Genre.Name
	return &name
}
