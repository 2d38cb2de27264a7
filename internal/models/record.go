package models

import (
	"strings"
	"time"
)

// DrinkType is the category of a logged drink
type DrinkType string

const (
	// DrinkTypeWater is plain water
	DrinkTypeWater DrinkType = "Water"

	// DrinkTypeCoffee is coffee
	DrinkTypeCoffee DrinkType = "Coffee"

	// DrinkTypeTea is tea
	DrinkTypeTea DrinkType = "Tea"

	// DrinkTypeJuice is juice
	DrinkTypeJuice DrinkType = "Juice"

	// DrinkTypeSoda is soda
	DrinkTypeSoda DrinkType = "Soda"
)

// DrinkTypes lists every drink category in display order
var DrinkTypes = []DrinkType{
	DrinkTypeWater,
	DrinkTypeCoffee,
	DrinkTypeTea,
	DrinkTypeJuice,
	DrinkTypeSoda,
}

// ParseDrinkType matches a drink category case-insensitively
func ParseDrinkType(value string) (DrinkType, bool) {
	for _, t := range DrinkTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(value)) {
			return t, true
		}
	}
	return "", false
}

// IsValid reports whether the drink type is one of the known categories
func (t DrinkType) IsValid() bool {
	for _, known := range DrinkTypes {
		if t == known {
			return true
		}
	}
	return false
}

// WaterRecord is a single logged drink. Records are immutable once created
type WaterRecord struct {
	// ID is the unique identifier for the record
	ID string `json:"id"`

	// Amount is the volume in milliliters
	Amount int `json:"amount"`

	// Type is the drink category
	Type DrinkType `json:"type"`

	// Timestamp is when the drink was logged
	Timestamp time.Time `json:"timestamp"`

	// Note is an optional free text note
	Note string `json:"note,omitempty"`
}
