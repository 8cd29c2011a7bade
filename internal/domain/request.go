package domain

// FieldUpdateRequest sets one field of personal info or of an entry.
type FieldUpdateRequest struct {
	Field string `json:"field" binding:"required" example:"jobTitle"`
	Value any    `json:"value" swaggertype:"string" example:"Backend Engineer"`
}

type NamedEntryRequest struct {
	Name string `json:"name" binding:"required" example:"Spanish"`
}

type CourseSkillRequest struct {
	Skill string `json:"skill" binding:"required" example:"Docker"`
}

type TokenSignInRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}
