package models

type Promotion struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description" gorm:"not null"`
	Days         string `json:"days,omitempty"`
	Hours        string `json:"hours,omitempty"`
	Price        string `json:"price,omitempty"`
	Savings      string `json:"savings,omitempty"`
	Restrictions string `json:"restrictions,omitempty"`
}
