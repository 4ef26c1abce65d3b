package db

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/linguanest/lingua-back/internal/models"
)

func GetAdminByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := DB.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// SeedAdmin creates the initial admin account if it does not exist yet.
// A blank password skips the seed so a production deployment can't come up
// with a guessable default.
func SeedAdmin(ctx context.Context, username, password, email string) error {
	if password == "" {
		return nil
	}

	_, err := GetAdminByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.AdminUser{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
	}
	return DB.WithContext(ctx).Create(&admin).Error
}
