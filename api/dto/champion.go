package dto

import "leaguecatalog/pkg/database/models"

// A single page of the champion catalog.
type ChampionPage struct {
	Page           int                `json:"page"`
	Limit          int                `json:"limit"`
	TotalPages     int                `json:"totalPages"`
	TotalChampions int64              `json:"totalChampions"`
	Champions      []*models.Champion `json:"champions"`
}
