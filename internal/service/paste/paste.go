package paste

import (
	"errors"
	"unicode/utf8"

	"github.com/praython/djenofdjango/internal/models"
	"github.com/praython/djenofdjango/internal/repository/paste"
	"gorm.io/gorm"
)

// MaxNameLength is the column limit for the display name, in runes.
const MaxNameLength = 40

var (
	ErrNotFound    = errors.New("not found")
	ErrEmptyText   = errors.New("text is required")
	ErrNameTooLong = errors.New("name too long")
	ErrTooBig      = errors.New("too big")
)

type Service interface {
	Create(text string, name *string) (models.Paste, error)

	Get(id uint64) (models.Paste, error)
	List() ([]models.Paste, error)

	// Update is partial: nil text/name leave the stored value alone,
	// clearName resets the name to null. Any call that reaches the
	// repository refreshes updated_on.
	Update(id uint64, text *string, name *string, clearName bool) (models.Paste, error)

	Delete(id uint64) (models.Paste, error)

	Limit() uint
}

type Options struct {
	// Limit is the maximum text size in bytes, 0 means unlimited.
	Limit uint
}

type concreteService struct {
	pasteRepository paste.Repository

	options Options
}

func New(pasteRepository paste.Repository, options Options) Service {
	return &concreteService{pasteRepository, options}
}

func (c *concreteService) Limit() uint {
	return c.options.Limit
}

func (c *concreteService) Create(text string, name *string) (models.Paste, error) {
	if err := c.validateText(text); err != nil {
		return models.Paste{}, err
	}

	if err := validateName(name); err != nil {
		return models.Paste{}, err
	}

	return c.pasteRepository.Create(models.Paste{
		Text: text,
		Name: name,
	})
}

func (c *concreteService) Get(id uint64) (models.Paste, error) {
	paste, err := c.pasteRepository.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Paste{}, ErrNotFound
		}

		return models.Paste{}, err
	}

	return paste, nil
}

func (c *concreteService) List() ([]models.Paste, error) {
	return c.pasteRepository.List()
}

func (c *concreteService) Update(id uint64, text *string, name *string, clearName bool) (models.Paste, error) {
	current, err := c.Get(id)
	if err != nil {
		return models.Paste{}, err
	}

	if text != nil {
		if err := c.validateText(*text); err != nil {
			return models.Paste{}, err
		}

		current.Text = *text
	}

	if clearName {
		current.Name = nil
	} else if name != nil {
		if err := validateName(name); err != nil {
			return models.Paste{}, err
		}

		current.Name = name
	}

	updated, err := c.pasteRepository.Update(current)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Paste{}, ErrNotFound
		}

		return models.Paste{}, err
	}

	return updated, nil
}

func (c *concreteService) Delete(id uint64) (models.Paste, error) {
	paste, err := c.pasteRepository.Delete(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Paste{}, ErrNotFound
		}

		return models.Paste{}, err
	}

	return paste, nil
}

func (c *concreteService) validateText(text string) error {
	if len(text) < 1 {
		return ErrEmptyText
	}

	if c.options.Limit > 0 && len(text) > int(c.options.Limit) {
		return ErrTooBig
	}

	return nil
}

func validateName(name *string) error {
	if name != nil && utf8.RuneCountInString(*name) > MaxNameLength {
		return ErrNameTooLong
	}

	return nil
}
