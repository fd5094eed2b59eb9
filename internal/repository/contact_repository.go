package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "contacts/internal/errors"
	"contacts/internal/model"
)

// ContactRepository defines contact persistence operations.
type ContactRepository interface {
	List(ctx context.Context) ([]model.Contact, error)
	FindByID(ctx context.Context, id uint) (*model.Contact, error)
	Create(ctx context.Context, contact *model.Contact) error
	Update(ctx context.Context, contact *model.Contact) error
	Delete(ctx context.Context, id uint) error
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository builds a GORM-backed repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// List returns every contact in primary key order.
func (r *contactRepository) List(ctx context.Context) ([]model.Contact, error) {
	contacts := make([]model.Contact, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// FindByID finds a contact by ID.
func (r *contactRepository) FindByID(ctx context.Context, id uint) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("find contact %d: %w", id, err)
	}
	return &contact, nil
}

// Create inserts a contact and fills in its generated ID.
func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	contact.ID = 0
	contact.EmailKey = model.NormalizeEmail(contact.Email)
	if err := r.db.WithContext(ctx).Create(contact).Error; err != nil {
		return translate(err, "create contact")
	}
	return nil
}

// Update overwrites every column except the ID. The existence check and
// the write share one transaction.
func (r *contactRepository) Update(ctx context.Context, contact *model.Contact) error {
	contact.EmailKey = model.NormalizeEmail(contact.Email)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Contact{}).Where("id = ?", contact.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("check contact %d: %w", contact.ID, err)
		}
		if count == 0 {
			return apperrors.ErrContactNotFound
		}

		return tx.Model(&model.Contact{}).
			Where("id = ?", contact.ID).
			Updates(map[string]interface{}{
				"name":      contact.Name,
				"email":     contact.Email,
				"email_key": contact.EmailKey,
				"phone":     contact.Phone,
				"note":      contact.Note,
			}).Error
	})
	if err != nil {
		return translate(err, "update contact")
	}
	return nil
}

// Delete permanently removes a contact.
func (r *contactRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Contact{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete contact %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrContactNotFound
	}
	return nil
}
