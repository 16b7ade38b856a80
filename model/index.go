package model

import "time"

type DTO struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TokenClaim struct {
	Role     string `json:"role"`
	UserName string `json:"userName"`
}

type ResponseCustom struct {
	Rows       any `json:"rows"`
	TotalCount int `json:"totalCount"`
}
