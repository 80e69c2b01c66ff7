package models

// Cliente do estúdio; o email é único entre todos os clientes.
type Client struct {
	ID uint `gorm:"primaryKey"`

	Name  string  `gorm:"column:nombre;size:120;not null"`
	Email string  `gorm:"column:email;size:120;not null;uniqueIndex:uq_clientes_email"`
	Phone *string `gorm:"column:telefono;size:30"`
}

func (Client) TableName() string { return "clientes" }
