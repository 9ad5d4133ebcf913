package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Field limits of a training center record, matching the column widths.
const (
	MaxNomeLen         = 20
	MaxEnderecoLen     = 60
	MaxProprietarioLen = 30
)

// TrainingCenter represents a training center (centro de treinamento).
type TrainingCenter struct {
	ID           uuid.UUID
	Nome         string
	Endereco     string
	Proprietario string
}

// PartialTrainingCenterUpdate carries optional fields to update a training center.
// A nil field means the attribute keeps its stored value.
type PartialTrainingCenterUpdate struct {
	ID           uuid.UUID
	Nome         *string
	Endereco     *string
	Proprietario *string
}

// TrainingCenterFilter restricts List results. A nil Nome means no filtering.
type TrainingCenterFilter struct {
	Nome *string
}

// ValidNome reports whether s is a usable training center name.
func ValidNome(s string) bool {
	return validText(s, MaxNomeLen)
}

// ValidEndereco reports whether s is a usable address.
func ValidEndereco(s string) bool {
	return validText(s, MaxEnderecoLen)
}

// ValidProprietario reports whether s is a usable owner name.
func ValidProprietario(s string) bool {
	return validText(s, MaxProprietarioLen)
}

func validText(s string, maxLen int) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return utf8.RuneCountInString(s) <= maxLen
}
