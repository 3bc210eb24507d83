package entity

type User struct {
	Base
	PhoneNumber string  `db:"phone_number"`
	PlateNumber *string `db:"plate_number"`
	IsVerified  bool    `db:"is_verified"`
	IsActive    bool    `db:"is_active"`
}
