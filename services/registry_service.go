package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"hotel-cancellation/ml"
	"hotel-cancellation/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// mysql error number for "table doesn't exist"
const errNoSuchTable = 1146

// RegistryService stores versioned artifacts in the model_artifacts table.
type RegistryService struct {
	DB *gorm.DB
	// Version pins a registry version. Empty means the newest row of each kind.
	Version string
}

func NewRegistryService(db *gorm.DB, version string) *RegistryService {
	return &RegistryService{DB: db, Version: version}
}

func (s *RegistryService) Fetch(ctx context.Context, kind string) ([]byte, error) {
	var artifact models.ModelArtifact
	q := s.DB.WithContext(ctx).Where("kind = ?", kind)
	if s.Version != "" {
		q = q.Where("version = ?", s.Version)
	}

	err := q.Order("id DESC").First(&artifact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || isMissingTable(err) {
			return nil, fmt.Errorf("%s in registry (version %q): %w", kind, s.Version, ErrArtifactsUnavailable)
		}
		return nil, fmt.Errorf("failed to query %s artifact: %w", kind, err)
	}
	return artifact.Payload, nil
}

// Import validates a full artifact set and upserts it under version in one transaction.
func (s *RegistryService) Import(ctx context.Context, version string, classifier, scaler, schema []byte) (*Artifacts, error) {
	artifacts, err := DecodeArtifacts(classifier, scaler, schema)
	if err != nil {
		return nil, fmt.Errorf("refusing to import invalid artifacts: %w", err)
	}
	if version == "" {
		version = artifacts.Schema.Version()
	}

	rows := []models.ModelArtifact{
		newArtifactRow(models.ArtifactClassifier, version, ml.ClassifierFormat(classifier), classifier),
		newArtifactRow(models.ArtifactScaler, version, ml.FormatJSON, scaler),
		newArtifactRow(models.ArtifactSchema, version, ml.FormatJSON, schema),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kind"}, {Name: "version"}},
			DoUpdates: clause.AssignmentColumns([]string{"format", "payload", "meta", "updated_at"}),
		}).Create(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store artifacts version %s: %w", version, err)
	}
	return artifacts, nil
}

func newArtifactRow(kind, version, format string, payload []byte) models.ModelArtifact {
	sum := sha256.Sum256(payload)
	meta, _ := json.Marshal(map[string]interface{}{
		"sha256": hex.EncodeToString(sum[:]),
		"bytes":  len(payload),
	})
	return models.ModelArtifact{
		Kind:    kind,
		Version: version,
		Format:  format,
		Payload: payload,
		Meta:    datatypes.JSON(meta),
	}
}

func isMissingTable(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == errNoSuchTable
}
