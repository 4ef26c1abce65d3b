package db

import (
	"context"

	"github.com/linguanest/lingua-back/internal/models"
)

func CreateContactMessage(ctx context.Context, m *models.ContactMessage) error {
	return DB.WithContext(ctx).Create(m).Error
}

func ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := DB.WithContext(ctx).Order("created_at desc").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func MarkMessageRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := DB.WithContext(ctx).First(&message, "id = ?", id).Error; err != nil {
		return nil, err
	}

	message.IsRead = true
	if err := DB.WithContext(ctx).Model(&message).Update("is_read", true).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func DeleteContactMessage(ctx context.Context, id string) error {
	var message models.ContactMessage
	if err := DB.WithContext(ctx).First(&message, "id = ?", id).Error; err != nil {
		return err
	}
	return DB.WithContext(ctx).Delete(&message).Error
}
