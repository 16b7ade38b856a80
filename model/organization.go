package model

type Organization struct {
	DTO
	Name   string `validate:"required" json:"name"`
	Type   string `json:"type"` // MINISTRY, EMBASSY, MEDIA, NGO
	Status string `json:"status"`
}

type User struct {
	DTO
	FullName string `validate:"required" json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Locale   string `json:"locale"`
	Timezone string `json:"timezone"`
}

type RoleSessionInput struct {
	Role     string `json:"role" validate:"required,oneof=PROTOCOL_CHIEF EVENT_MANAGER USHER"`
	UserName string `json:"userName"`
}
