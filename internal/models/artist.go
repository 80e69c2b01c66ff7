package models

type Artist struct {
	ID uint `gorm:"primaryKey"`

	Name  string  `gorm:"column:nombre;size:120;not null"`
	Style *string `gorm:"column:estilo;size:200"`
}

func (Artist) TableName() string { return "tatuadores" }
