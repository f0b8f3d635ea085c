package models

import "crush-hub/internal/skills"

// ErrorResponse defines API error response format
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SkillsResponse is the body of GET /api/skills
type SkillsResponse struct {
	Total  int            `json:"total"`
	Skills []skills.Skill `json:"skills"`
}
