package services

import (
	"crypto/subtle"

	"github.com/google/uuid"

	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/internal/security"
	"github.com/thoughtcode-25/DIGI-FARM/internal/store"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/logger"
)

// AuthService handles the single-credential login and issues JWTs.
// The farmer row backing the admin account is created on first login.
type AuthService struct {
	farmers       store.FarmerStore
	adminUsername string
	adminPassword string
	jwtSecret     string
}

func NewAuthService(farmers store.FarmerStore, adminUsername, adminPassword, jwtSecret string) *AuthService {
	return &AuthService{
		farmers:       farmers,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		jwtSecret:     jwtSecret,
	}
}

// LoginResult carries the session token plus the account it belongs to.
type LoginResult struct {
	Token  string        `json:"token"`
	Farmer models.Farmer `json:"farmer"`
}

// Login checks credentials and returns a signed session token.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	if !userOK || !passOK {
		logger.Warn("failed login attempt", "username", security.SanitizeString(username))
		return nil, errors.New(errors.ErrCodeUnauthorized, "invalid username or password")
	}

	farmer, err := s.farmers.GetFarmerByUsername(username)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to load account")
	}
	if farmer == nil {
		farmer = &models.Farmer{
			FarmerID: uuid.NewString(),
			Username: username,
			FarmType: models.FarmTypeChickens,
		}
		if err := s.farmers.SaveFarmer(farmer); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to create account")
		}
	}

	token, err := security.GenerateJWT(farmer.FarmerID, farmer.Username, s.jwtSecret)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to sign session token")
	}

	return &LoginResult{Token: token, Farmer: *farmer}, nil
}

// UpdateProfile sets the phone number and farm type on the account.
func (s *AuthService) UpdateProfile(username, phone, farmType string) (*models.Farmer, error) {
	if phone != "" && !security.ValidatePhoneNumber(phone) {
		return nil, errors.New(errors.ErrCodeValidation, "invalid phone number")
	}
	switch farmType {
	case "", models.FarmTypeChickens, models.FarmTypePigs, models.FarmTypeBoth:
	default:
		return nil, errors.New(errors.ErrCodeValidation, "farm type must be chickens, pigs or both")
	}

	farmer, err := s.farmers.GetFarmerByUsername(username)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to load account")
	}
	if farmer == nil {
		return nil, errors.New(errors.ErrCodeNotFound, "account not found")
	}

	if phone != "" {
		farmer.Phone = phone
	}
	if farmType != "" {
		farmer.FarmType = farmType
	}
	if err := s.farmers.SaveFarmer(farmer); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to save account")
	}
	return farmer, nil
}

// FarmerByUsername loads an account for request handling.
func (s *AuthService) FarmerByUsername(username string) (*models.Farmer, error) {
	farmer, err := s.farmers.GetFarmerByUsername(username)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to load account")
	}
	if farmer == nil {
		return nil, errors.New(errors.ErrCodeNotFound, "account not found")
	}
	return farmer, nil
}
