package users

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/tennisconnect/server/internal/auth"
	"github.com/tennisconnect/server/internal/models"
	"github.com/tennisconnect/server/internal/validate"
)

// UsersRepository defines what the app layer needs from the repository
type UsersRepository interface {
	CreateUser(ctx context.Context, params CreateUserParams) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenIssuer defines what the app layer needs to mint bearer tokens
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}

// App handles account business logic
type App struct {
	repo   UsersRepository
	tokens TokenIssuer
}

// NewApp creates a new users App
func NewApp(repo UsersRepository, tokens TokenIssuer) *App {
	return &App{repo: repo, tokens: tokens}
}

// Register creates an account and returns it with a signed token.
func (a *App) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := a.validateRegisterRequest(req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.repo.CreateUser(ctx, CreateUserParams{
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	log.Printf("Registered user: %s (%s)", user.Name, user.Email)
	return &AuthResponse{Token: token, User: user}, nil
}

// Login verifies credentials and returns the account with a signed token.
func (a *App) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := a.repo.GetUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResponse{Token: token, User: user}, nil
}

// GetUser retrieves a user by ID
func (a *App) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return a.repo.GetUser(ctx, id)
}

func (a *App) validateRegisterRequest(req RegisterRequest) error {
	fe := validate.FieldErrors{}
	if req.Name == "" {
		fe.Add("name", "Please enter your name.")
	}
	if req.Email == "" {
		fe.Add("email", "Please enter your email.")
	} else if !strings.Contains(req.Email, "@") || !strings.Contains(req.Email, ".") {
		fe.Add("email", "Please enter a valid email address.")
	}
	if len(req.Password) < 8 {
		fe.Add("password", "Password must be at least 8 characters.")
	}
	return fe.OrNil()
}
