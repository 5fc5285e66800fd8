package model

// FoodRow is one line of the food/taste table. A food may span several rows,
// one per selectable taste.
type FoodRow struct {
	ID           uint   `gorm:"primaryKey"`
	FoodID       string
	FoodName     string `gorm:"index"`
	DefaultTaste string
	OptionTaste  string
}

func (FoodRow) TableName() string { return "foods" }

// TrackRow is one line of the taste/mood/track table.
type TrackRow struct {
	ID           uint   `gorm:"primaryKey"`
	Taste        string `gorm:"index:idx_taste_mood"`
	Mood         string `gorm:"index:idx_taste_mood"`
	SongTitle    string
	URI          string
	Artist       string
	Rank         *float64 // NULL when unranked
	Weight       *float64 // NULL means 1.0
	Instrumental *bool
}

func (TrackRow) TableName() string { return "taste_tracks" }
