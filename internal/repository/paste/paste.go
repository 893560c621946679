package paste

import (
	"time"

	"github.com/praython/djenofdjango/internal/models"
	"gorm.io/gorm"
)

type Repository interface {
	Create(paste models.Paste) (models.Paste, error)

	List() ([]models.Paste, error)
	GetByID(id uint64) (models.Paste, error)

	Update(paste models.Paste) (models.Paste, error)

	Delete(id uint64) (models.Paste, error)
}

type concreteRepository struct {
	db *gorm.DB
}

func New(db *gorm.DB) Repository {
	return &concreteRepository{db}
}

// Create assigns both timestamps and lets the database assign the id.
func (c *concreteRepository) Create(paste models.Paste) (models.Paste, error) {
	now := time.Now().UTC()
	paste.ID = 0
	paste.CreatedOn = now
	paste.UpdatedOn = now

	result := c.db.Create(&paste)

	return paste, result.Error
}

func (c *concreteRepository) Delete(id uint64) (models.Paste, error) {
	paste, err := c.GetByID(id)
	if err != nil {
		return models.Paste{}, err
	}

	result := c.db.Where("id = ?", id).Delete(&models.Paste{})
	if result.Error != nil {
		return models.Paste{}, result.Error
	}

	if result.RowsAffected == 0 {
		return models.Paste{}, gorm.ErrRecordNotFound
	}

	return paste, nil
}

func (c *concreteRepository) GetByID(id uint64) (models.Paste, error) {
	var paste models.Paste

	result := c.db.Where("id = ?", id).First(&paste)

	return paste, result.Error
}

func (c *concreteRepository) List() ([]models.Paste, error) {
	var pastes []models.Paste

	result := c.db.Order("id").Find(&pastes)

	return pastes, result.Error
}

// Update rewrites text, name and updated_on. The id and created_on
// columns are never touched.
func (c *concreteRepository) Update(paste models.Paste) (models.Paste, error) {
	paste.UpdatedOn = time.Now().UTC()

	result := c.db.Model(&models.Paste{}).
		Where("id = ?", paste.ID).
		Updates(map[string]any{
			"text":       paste.Text,
			"name":       paste.Name,
			"updated_on": paste.UpdatedOn,
		})
	if result.Error != nil {
		return models.Paste{}, result.Error
	}

	if result.RowsAffected == 0 {
		return models.Paste{}, gorm.ErrRecordNotFound
	}

	return c.GetByID(paste.ID)
}
