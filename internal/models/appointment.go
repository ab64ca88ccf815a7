package models

import "time"

type Appointment struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PublicCode string `gorm:"size:36;uniqueIndex" json:"public_code"`

	BarbershopID uint       `json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberID uint   `gorm:"index:idx_slot,priority:1" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`
	CustomerCPF   string `gorm:"size:14" json:"customer_cpf"`

	// Data e horário do slot, sempre no timezone da barbearia.
	// Colisão de agenda é por igualdade exata de (barbeiro, data, horário).
	Date      string `gorm:"size:10;index:idx_slot,priority:2" json:"date"`
	StartTime string `gorm:"size:5;index:idx_slot,priority:3" json:"start_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	CanceledAt  *time.Time `json:"canceled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
