// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"foodcart/internal/domain/entity"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/domain/repository"
	"foodcart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// geocodeRepository implements the repository.GeocodeRepository interface.
type geocodeRepository struct {
	db *gorm.DB
}

// NewGeocodeRepository is the constructor for geocodeRepository.
func NewGeocodeRepository(db *gorm.DB) repository.GeocodeRepository {
	return &geocodeRepository{
		db: db,
	}
}

// FindByAddress retrieves the cache entry of an exact raw address.
func (repo *geocodeRepository) FindByAddress(ctx context.Context, address entity.Address) (*entity.GeocodeEntry, error) {
	var entryM model.GeocodeEntryModel

	if err := repo.db.WithContext(ctx).
		Where("address = ?", address.String()).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGeocodeEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find geocode entry by address")
	}

	return toGeocodeEntryDomain(&entryM), nil
}

// FindByAddresses retrieves the existing entries of several addresses in one query.
func (repo *geocodeRepository) FindByAddresses(ctx context.Context, addresses []entity.Address) (map[entity.Address]*entity.GeocodeEntry, error) {
	result := make(map[entity.Address]*entity.GeocodeEntry, len(addresses))
	if len(addresses) == 0 {
		return result, nil
	}

	raw := make([]string, 0, len(addresses))
	for _, address := range addresses {
		raw = append(raw, address.String())
	}

	var entryModels []*model.GeocodeEntryModel
	if err := repo.db.WithContext(ctx).
		Where("address IN ?", raw).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find geocode entries by addresses")
	}

	for _, entryM := range entryModels {
		entry := toGeocodeEntryDomain(entryM)
		result[entry.Address] = entry
	}

	return result, nil
}

// CreateUnresolved inserts the entry unless the address is already known, then returns the stored row.
func (repo *geocodeRepository) CreateUnresolved(ctx context.Context, entry *entity.GeocodeEntry) (*entity.GeocodeEntry, error) {
	entryM := fromGeocodeEntryDomain(entry)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			DoNothing: true,
		}).
		Create(entryM).Error; err != nil && !isUniqueConstraintViolation(err) {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrInvalidAddress.WrapMessage("address is required")
		}

		return nil, domainerrors.NewStorageError("create geocode entry", err)
	}

	return repo.FindByAddress(ctx, entry.Address)
}

// Save upserts the entry keyed by its raw address.
func (repo *geocodeRepository) Save(ctx context.Context, entry *entity.GeocodeEntry) error {
	entryM := fromGeocodeEntryDomain(entry)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			DoUpdates: clause.AssignmentColumns([]string{"normalized_address", "latitude", "longitude", "resolved", "updated_at"}),
		}).
		Create(entryM).Error; err != nil {
		return domainerrors.NewStorageError("save geocode entry", err)
	}

	return nil
}

// FindUnresolved lists the oldest entries without coordinates.
func (repo *geocodeRepository) FindUnresolved(ctx context.Context, limit int) ([]*entity.GeocodeEntry, error) {
	var entryModels []*model.GeocodeEntryModel

	query := repo.db.WithContext(ctx).
		Where("resolved = ?", false).
		Order("created_at ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find unresolved geocode entries")
	}

	entries := make([]*entity.GeocodeEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toGeocodeEntryDomain(entryM))
	}

	return entries, nil
}

// --- Mapper functions ---

func toGeocodeEntryDomain(data *model.GeocodeEntryModel) *entity.GeocodeEntry {
	return &entity.GeocodeEntry{
		ID:                data.ID,
		Address:           entity.Address(data.Address),
		NormalizedAddress: data.NormalizedAddress,
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		Resolved:          data.Resolved,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromGeocodeEntryDomain(data *entity.GeocodeEntry) *model.GeocodeEntryModel {
	return &model.GeocodeEntryModel{
		ID:                data.ID,
		Address:           data.Address.String(),
		NormalizedAddress: data.NormalizedAddress,
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		Resolved:          data.Resolved,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
