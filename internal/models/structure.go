package models

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

type StructureType string

const (
	StructureStable        StructureType = "stable"
	StructureTechnicalRoom StructureType = "technical_room"
	StructureBasin         StructureType = "basin"
	StructureWell          StructureType = "well"
)

type BasinShape string

const (
	BasinRectangular BasinShape = "rectangular"
	BasinCircular    BasinShape = "circular"
	BasinTrapezoidal BasinShape = "trapezoidal"
)

// StructureDetails is the per-type payload of a structure. Each structure
// type has exactly one variant, so invalid field combinations cannot be
// represented.
type StructureDetails interface {
	StructureKind() StructureType
}

type StableDetails struct {
	Width            float64 `json:"width"`
	Length           float64 `json:"length"`
	Height           float64 `json:"height"`
	ConstructionType string  `json:"construction_type"`
}

func (StableDetails) StructureKind() StructureType { return StructureStable }

type TechnicalRoomDetails struct {
	Width     float64  `json:"width"`
	Length    float64  `json:"length"`
	Height    float64  `json:"height"`
	Equipment []string `json:"equipment"`
}

func (TechnicalRoomDetails) StructureKind() StructureType { return StructureTechnicalRoom }

// BasinDetails carries shape-specific dimensions. Depth is the water
// column height in every shape. Volume is derived, never user-supplied.
type BasinDetails struct {
	Shape       BasinShape `json:"shape"`
	Length      float64    `json:"length,omitempty"`
	Width       float64    `json:"width,omitempty"`
	Radius      float64    `json:"radius,omitempty"`
	TopWidth    float64    `json:"top_width,omitempty"`
	BottomWidth float64    `json:"bottom_width,omitempty"`
	Depth       float64    `json:"depth"`
	Volume      float64    `json:"volume"`
}

func (BasinDetails) StructureKind() StructureType { return StructureBasin }

// ComputeVolume derives the basin volume from its shape and dimensions.
func (b BasinDetails) ComputeVolume() (float64, error) {
	switch b.Shape {
	case BasinRectangular:
		return b.Length * b.Width * b.Depth, nil
	case BasinCircular:
		return math.Pi * b.Radius * b.Radius * b.Depth, nil
	case BasinTrapezoidal:
		return b.Depth * (b.TopWidth + b.BottomWidth) * b.Length / 2, nil
	default:
		return 0, fmt.Errorf("unknown basin shape %q", b.Shape)
	}
}

type WellDetails struct {
	Depth     float64 `json:"depth"`
	PumpType  string  `json:"pump_type"`
	PumpPower float64 `json:"pump_power"`
}

func (WellDetails) StructureKind() StructureType { return StructureWell }

// DecodeStructureDetails picks the variant matching the structure type.
func DecodeStructureDetails(t StructureType, raw []byte) (StructureDetails, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("structure details are required for type %q", t)
	}
	switch t {
	case StructureStable:
		var d StableDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	case StructureTechnicalRoom:
		var d TechnicalRoomDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	case StructureBasin:
		var d BasinDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	case StructureWell:
		var d WellDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown structure type %q", t)
	}
}

// Structure is a physical asset owned by an organization directly
// (FarmID nil) or by one of its farms. Removed via IsActive=false, never
// hard-deleted.
type Structure struct {
	ID               uuid.UUID        `json:"id" db:"id"`
	OrganizationID   uuid.UUID        `json:"organization_id" db:"organization_id"`
	FarmID           *uuid.UUID       `json:"farm_id" db:"farm_id"`
	Name             string           `json:"name" db:"name"`
	Type             StructureType    `json:"type" db:"type"`
	Condition        *string          `json:"condition" db:"condition"`
	Details          StructureDetails `json:"structure_details" db:"structure_details"`
	IsActive         bool             `json:"is_active" db:"is_active"`
	InstallationDate *time.Time       `json:"installation_date" db:"installation_date"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
}

func (s Structure) ResourceID() uuid.UUID { return s.ID }

func (s Structure) WithTenant(orgID uuid.UUID, farmID *uuid.UUID) Structure {
	s.OrganizationID = orgID
	if farmID != nil {
		s.FarmID = farmID
	}
	return s
}

func (s *Structure) UnmarshalJSON(data []byte) error {
	type alias Structure
	aux := struct {
		*alias
		Details json.RawMessage `json:"structure_details"`
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	details, err := DecodeStructureDetails(s.Type, aux.Details)
	if err != nil {
		return err
	}
	s.Details = details
	return nil
}
