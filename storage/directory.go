package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"restaurant-management-api/groups"
	"restaurant-management-api/models"
)

// Directory is the gorm-backed implementation of groups.Directory.
type Directory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{db: db}
}

func (d *Directory) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := d.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, groups.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Directory) Members(ctx context.Context, group string) ([]models.User, error) {
	var users []models.User
	err := d.db.WithContext(ctx).
		Joins("JOIN user_groups ON user_groups.user_id = users.id").
		Joins("JOIN groups ON groups.id = user_groups.group_id").
		Where("groups.name = ?", group).
		Find(&users).Error
	return users, err
}

func (d *Directory) group(ctx context.Context, name string) (*models.Group, error) {
	var g models.Group
	if err := d.db.WithContext(ctx).Where("name = ?", name).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// AddMember is idempotent: gorm's many2many append upserts the join row.
func (d *Directory) AddMember(ctx context.Context, group string, userID uint) error {
	g, err := d.group(ctx, group)
	if err != nil {
		return err
	}
	user := models.User{ID: userID}
	return d.db.WithContext(ctx).Model(&user).Association("Groups").Append(g)
}

// RemoveMember is idempotent: deleting an absent join row is a no-op.
func (d *Directory) RemoveMember(ctx context.Context, group string, userID uint) error {
	g, err := d.group(ctx, group)
	if err != nil {
		return err
	}
	user := models.User{ID: userID}
	return d.db.WithContext(ctx).Model(&user).Association("Groups").Delete(g)
}
