package models

type Review struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	UserName     string `json:"user_name"`
	Date         string `json:"date"` // YYYY-MM-DD
	Rating       int    `json:"rating"`
	Comment      string `json:"comment" gorm:"type:text"`
	Likes        int    `json:"likes"`
	MenuItemName string `json:"menu_item"`
}
