package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Djiento/ActionnaireInscrit/internal/domain/models"
	"github.com/Djiento/ActionnaireInscrit/internal/infrastructure/config"
	Logger "github.com/Djiento/ActionnaireInscrit/pkg/logger"
	"github.com/Djiento/ActionnaireInscrit/utils"
)

// ErrInvalidCredentials is returned for any failed login, whether the
// username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// InterfaceAdminService defines the administrator account service.
type InterfaceAdminService interface {
	Authenticate(username, password string) (*models.Admin, error)
	GetAdminByID(id uint) (*models.Admin, error)
	CreateAdmin(admin *models.Admin, password string) error
	EnsureDefaultAdmin() error
}

// AdminService provides administrator account operations.
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminService creates a new administrator service.
func NewAdminService(db *gorm.DB, cfg *config.Config) InterfaceAdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
	}
}

// 1 Authenticate looks up the admin by username and verifies the password.
// Both failure modes collapse into ErrInvalidCredentials so the login page
// never reveals which part was wrong.
func (s *AdminService) Authenticate(username, password string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &admin, nil
}

// 2 GetAdminByID loads an admin for the session middleware.
func (s *AdminService) GetAdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// 3 CreateAdmin hashes the password and inserts the account, enforcing
// username and email uniqueness.
func (s *AdminService) CreateAdmin(admin *models.Admin, password string) error {
	var count int64
	if err := s.DB.Model(&models.Admin{}).
		Where("username = ? OR email = ?", admin.Username, admin.Email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("username or email already in use")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	admin.PasswordHash = hash

	return s.DB.Create(admin).Error
}

// 4 EnsureDefaultAdmin seeds the configured default account. Idempotent:
// guarded by an existence check, invoked once at boot.
func (s *AdminService) EnsureDefaultAdmin() error {
	var count int64
	if err := s.DB.Model(&models.Admin{}).
		Where("username = ?", s.Config.DefaultAdminUsername).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := &models.Admin{
		Username: s.Config.DefaultAdminUsername,
		Email:    s.Config.DefaultAdminEmail,
	}
	if err := s.CreateAdmin(admin, s.Config.DefaultAdminPassword); err != nil {
		return err
	}
	Logger.Info("default admin account created: username=%s", admin.Username)
	return nil
}
