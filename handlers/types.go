// SPDX-License-Identifier: GPL-3.0-only

package handlers

// swagger:model AnswerRequest
type AnswerRequest struct {
	// Dataset name; the configured default country when empty
	Country string `json:"country" example:"Russia"`
	// Dial code the question was about
	// required: true
	Code string `json:"code" example:"843"`
	// Free-text answer. Empty means the question was skipped.
	Guess string `json:"guess" example:"Kazan"`
}

// swagger:model LookupRequest
type LookupRequest struct {
	// Dataset name; the configured default country when empty
	Country string `json:"country" example:"Russia"`
	// Code to look up, optionally with the country prefix
	// required: true
	Code string `json:"code" example:"+7 843"`
}

// swagger:model LookupResponse
type LookupResponse struct {
	Found          bool     `json:"found"`
	Code           string   `json:"code"`
	Country        string   `json:"country,omitempty"`
	CountryCode    string   `json:"country_code,omitempty"`
	Codes          []string `json:"codes,omitempty"`
	PrimaryCities  []string `json:"primary_cities,omitempty"`
	Regions        []string `json:"regions,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	Difficulty     string   `json:"difficulty,omitempty"`
	RegionGroup    string   `json:"region_group,omitempty"`
	PopulationRank *float64 `json:"population_rank,omitempty"`
	Images         []string `json:"images,omitempty"`
	Message        string   `json:"message,omitempty"`
}

// swagger:model GenericResponse
type GenericResponse struct {
	Status string `json:"status" example:"stopping"`
}
