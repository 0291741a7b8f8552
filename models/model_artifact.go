package models

import (
	"time"

	"gorm.io/datatypes"
)

// Artifact kinds stored in the registry.
const (
	ArtifactClassifier = "classifier"
	ArtifactScaler     = "scaler"
	ArtifactSchema     = "schema"
)

// ModelArtifact is one exported training artifact kept in the registry table.
type ModelArtifact struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Kind      string         `gorm:"size:32;not null;uniqueIndex:idx_kind_version" json:"kind"`
	Version   string         `gorm:"size:64;not null;uniqueIndex:idx_kind_version" json:"version"`
	Format    string         `gorm:"size:32;not null" json:"format"`
	Payload   []byte         `gorm:"type:longblob;not null" json:"-"`
	Meta      datatypes.JSON `json:"meta"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (ModelArtifact) TableName() string {
	return "model_artifacts"
}
