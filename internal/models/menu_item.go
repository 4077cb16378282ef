package models

type MenuCategory string

const (
	CategorySpecial    MenuCategory = "special"
	CategoryClassic    MenuCategory = "classic"
	CategoryVegetarian MenuCategory = "vegetarian"
)

// DefaultMenuImage is used when an item is created without a picture.
const DefaultMenuImage = "https://images.unsplash.com/photo-1681495511907-fb445d988128?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080"

// DefaultMenuRating is assigned to newly created items until reviews exist.
const DefaultMenuRating = 4.5

type MenuItem struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"not null"`
	Description string       `json:"description" gorm:"not null"`
	Price       float64      `json:"price" gorm:"not null"`
	Image       string       `json:"image"`
	Category    MenuCategory `json:"category"`
	Rating      float64      `json:"rating"`
	Ingredients []string     `json:"ingredients" gorm:"serializer:json"`
}
