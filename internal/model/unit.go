package model

import (
	"time"

	"github.com/deppfellow/estate-listings/internal/validation"
)

// UnitStatus is a display label. Any status may change to any other.
type UnitStatus string

const (
	UnitStatusAvailable UnitStatus = "available"
	UnitStatusSold      UnitStatus = "sold"
	UnitStatusRented    UnitStatus = "rented"
	UnitStatusNegotiate UnitStatus = "negotiate"
)

// Valid reports whether s is a known status.
func (s UnitStatus) Valid() bool {
	switch s {
	case UnitStatusAvailable, UnitStatusSold, UnitStatusRented, UnitStatusNegotiate:
		return true
	}
	return false
}

// Unit is an inventory entry for the internal units view.
type Unit struct {
	ID        string     `json:"id"`
	UnitNo    string     `json:"unitNo"`
	Price     float64    `json:"price"`
	RoomType  string     `json:"roomType"`
	HandleBy  string     `json:"handleBy"`
	Remarks   *string    `json:"remarks"`
	Status    UnitStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// UnitInput is the write payload for units.
type UnitInput struct {
	UnitNo   string  `json:"unitNo"`
	Price    Numeric `json:"price"`
	RoomType string  `json:"roomType"`
	HandleBy string  `json:"handleBy"`
	Remarks  string  `json:"remarks"`
	Status   string  `json:"status"`
}

// Validate requires unitNo, price, roomType and handleBy. A price that does
// not parse to a finite number is rejected, never stored as 0.
func (in *UnitInput) Validate() error {
	var fields validation.CustomValidationErrors

	fields.Require("unitNo", trim(in.UnitNo) != "")
	fields.Require("price", in.Price.IsSet())
	fields.Require("roomType", trim(in.RoomType) != "")
	fields.Require("handleBy", trim(in.HandleBy) != "")

	if in.Price.IsSet() {
		if price, err := in.Price.Float64(); err != nil {
			fields.Add("price", validation.MsgNumber)
		} else if *price < 0 {
			fields.Add("price", "must not be negative")
		}
	}

	if status := trim(in.Status); status != "" && !UnitStatus(status).Valid() {
		fields.Add("status", "must be one of: available sold rented negotiate")
	}

	return fields.Err()
}

// Apply copies a validated input onto u. Status defaults to available.
func (in *UnitInput) Apply(u *Unit) {
	u.UnitNo = trim(in.UnitNo)
	if price, _ := in.Price.Float64(); price != nil {
		u.Price = *price
	}
	u.RoomType = trim(in.RoomType)
	u.HandleBy = trim(in.HandleBy)
	u.Remarks = optionalString(in.Remarks)
	u.Status = UnitStatus(trim(in.Status))
	if u.Status == "" {
		u.Status = UnitStatusAvailable
	}
}
