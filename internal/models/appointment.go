package models

import "time"

// Appointment is one booked session. StartTime and EndTime are zero-padded
// "HH:MM" strings, so comparing them as text orders them chronologically.
type Appointment struct {
	ID uint `gorm:"primaryKey"`

	Date      time.Time `gorm:"column:fecha;type:date;not null;index:idx_citas_tatuador_fecha,priority:2"`
	StartTime string    `gorm:"column:hora_inicio;type:varchar(5);not null"`
	EndTime   string    `gorm:"column:hora_fin;type:varchar(5);not null"`

	Description *string `gorm:"column:descripcion;size:200"`
	ImageURL    *string `gorm:"column:imagen_url;size:200"`

	ClientID uint   `gorm:"column:cliente_id;not null"`
	Client   Client `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`

	ArtistID uint   `gorm:"column:tatuador_id;not null;index:idx_citas_tatuador_fecha,priority:1"`
	Artist   Artist `gorm:"foreignKey:ArtistID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (Appointment) TableName() string { return "citas" }
