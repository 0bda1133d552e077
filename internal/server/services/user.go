package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/server/auth"
	"github.com/dmitrijs2005/recipeshare/internal/server/config"
	"github.com/dmitrijs2005/recipeshare/internal/server/models"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/repomanager"
	usersrepo "github.com/dmitrijs2005/recipeshare/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 4

type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	IsCorporate bool
}

// UpdateInput changes an account. An empty Password and a nil IsCorporate
// keep the current values.
type UpdateInput struct {
	Username    string
	Email       string
	Password    string
	IsCorporate *bool
}

// LoginResult is returned on successful login.
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *models.User
}

type UserService struct {
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
}

func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  bcrypt.DefaultCost,
	}
}

// Register creates an account. Duplicate usernames and emails are rejected
// before the insert; the store rejects them again if a concurrent
// registration wins the race.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	if err := validateAccount(in.Username, in.Email); err != nil {
		return nil, err
	}
	if len(in.Password) < minPasswordLength {
		return nil, validationError("password must be at least %d characters", minPasswordLength)
	}

	exists, err := s.UsernameExists(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, usersrepo.ErrUsernameTaken
	}

	exists, err = s.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, usersrepo.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.repomanager.Users().Create(ctx, models.NewUser{
		Username:    in.Username,
		Email:       in.Email,
		Password:    string(hash),
		IsCorporate: in.IsCorporate,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Update changes the editor's own account; editing anyone else is
// common.ErrorForbidden. A username or email held by another account is
// rejected by the store.
func (s *UserService) Update(ctx context.Context, editor *models.User, id int64, in UpdateInput) (*models.User, error) {
	if err := checkSelf(editor, id); err != nil {
		return nil, err
	}

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := validateAccount(in.Username, in.Email); err != nil {
		return nil, err
	}
	if in.Password != "" && len(in.Password) < minPasswordLength {
		return nil, validationError("password must be at least %d characters", minPasswordLength)
	}

	repo := s.repomanager.Users()
	current, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update := models.NewUser{
		Username:    in.Username,
		Email:       in.Email,
		Password:    current.Password,
		IsCorporate: current.IsCorporate,
	}
	if in.IsCorporate != nil {
		update.IsCorporate = *in.IsCorporate
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		update.Password = string(hash)
	}

	user, err := repo.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return user, nil
}

// Delete closes the editor's own account. Recipes and posts it wrote stay
// and keep pointing at the removed id.
func (s *UserService) Delete(ctx context.Context, editor *models.User, id int64) error {
	if err := checkSelf(editor, id); err != nil {
		return err
	}
	return s.repomanager.Users().Delete(ctx, id)
}

func checkSelf(editor *models.User, id int64) error {
	if editor == nil {
		return common.ErrorUnauthorized
	}
	if editor.ID != id {
		return fmt.Errorf("%w: users may only change their own account", common.ErrorForbidden)
	}
	return nil
}

func validateAccount(username, email string) error {
	if username == "" {
		return validationError("username is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return validationError("invalid email %q", email)
	}
	return nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.repomanager.Users().GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(s.accessTokenValidityDuration),
		User:        user,
	}, nil
}

// Authenticate resolves an access token to its user. Invalid or expired
// tokens and tokens of unknown users are all common.ErrorUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUnauthorized, err)
	}

	user, err := s.repomanager.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users().GetByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.repomanager.Users().GetByUsername(ctx, username)
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users().GetAll(ctx)
}

func (s *UserService) ListCorporate(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users().GetCorporate(ctx)
}

func (s *UserService) UsernameExists(ctx context.Context, username string) (bool, error) {
	return exists(s.repomanager.Users().GetByUsername(ctx, username))
}

func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	return exists(s.repomanager.Users().GetByEmail(ctx, email))
}

func exists(_ *models.User, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, common.ErrorNotFound):
		return false, nil
	default:
		return false, err
	}
}
