package handlers

import "github.com/google/uuid"

type trainingCenterDTO struct {
	ID           uuid.UUID `json:"id"`
	Nome         string    `json:"nome"`
	Endereco     string    `json:"endereco"`
	Proprietario string    `json:"proprietario"`
}

type createTrainingCenterRequest struct {
	Nome         string `json:"nome"`
	Endereco     string `json:"endereco"`
	Proprietario string `json:"proprietario"`
}

type updateTrainingCenterRequest struct {
	Nome         *string `json:"nome,omitempty"`
	Endereco     *string `json:"endereco,omitempty"`
	Proprietario *string `json:"proprietario,omitempty"`
}

type trainingCenterPageResponse struct {
	Items  []trainingCenterDTO `json:"items"`
	Total  int64               `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
