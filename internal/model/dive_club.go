package model

type DiveClub struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	City        string  `db:"city" json:"city"`
	Address     *string `db:"address" json:"address"`
	Phone       *string `db:"phone" json:"phone"`
	Website     *string `db:"website" json:"website"`
	Description *string `db:"description" json:"description"`
}

type DiveClubParams struct {
	Name        string  `json:"name" validate:"required,max=255"`
	City        string  `json:"city" validate:"required,max=100"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
	Website     *string `json:"website" validate:"omitempty,max=255"`
	Description *string `json:"description"`
}
