package user

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(u *User) error
	GetUserByID(id uint) (*User, error)
	GetUserByEmail(email string) (*User, error)
	GetUsers(limit, offset int) ([]User, int64, error)
	UpdateUser(u *User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(u *User) error {
	return r.db.Create(u).Error
}

func (r *userRepository) GetUserByID(id uint) (*User, error) {
	var u User
	err := r.db.First(&u, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail matches case-insensitively; emails are stored lowercased.
func (r *userRepository) GetUserByEmail(email string) (*User, error) {
	var u User
	err := r.db.Where("email = ?", strings.ToLower(email)).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetUsers(limit, offset int) ([]User, int64, error) {
	var users []User
	var total int64

	query := r.db.Model(&User{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) UpdateUser(u *User) error {
	return r.db.Save(u).Error
}
