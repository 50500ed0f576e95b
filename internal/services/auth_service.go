package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/0xGitteth/Exhibit-sub000/internal/models"
)

// Credential is one entry of the fixed login table. Registration extends the
// table at runtime; nothing is hashed because the set is demo-only by
// design.
type Credential struct {
	Email    string
	Password string
}

var DemoCredentials = []Credential{
	{Email: "iris@exhibit.app", Password: "exhibit-demo"},
	{Email: "elena@exhibit.app", Password: "exhibit-demo"},
	{Email: "aperture@exhibit.app", Password: "exhibit-demo"},
	{Email: "northlight@exhibit.app", Password: "exhibit-demo"},
}

// DemoAccounts are the profiles behind DemoCredentials. The agency and
// company accounts give the affiliation linking something to resolve
// against out of the box.
var DemoAccounts = []models.User{
	{
		Email:              "iris@exhibit.app",
		DisplayName:        "Iris Vane",
		FullName:           "Iris Vane",
		Bio:                "Portrait and editorial photographer.",
		Roles:              []string{models.RolePhotographer},
		PrimaryRole:        models.RolePhotographer,
		Styles:             []string{"portrait", "editorial"},
		OnboardingComplete: true,
	},
	{
		Email:              "elena@exhibit.app",
		DisplayName:        "Elena Mora",
		FullName:           "Elena Mora",
		Bio:                "Model, fashion and fine art.",
		Roles:              []string{models.RoleModel},
		PrimaryRole:        models.RoleModel,
		Styles:             []string{"fashion", "artistic_nude"},
		OnboardingComplete: true,
	},
	{
		Email:              "aperture@exhibit.app",
		DisplayName:        "Aperture Talent",
		FullName:           "Aperture Talent Agency",
		Bio:                "Talent agency for photographers and models.",
		Roles:              []string{models.RoleAgency},
		PrimaryRole:        models.RoleAgency,
		OnboardingComplete: true,
	},
	{
		Email:              "northlight@exhibit.app",
		DisplayName:        "Northlight Studio",
		FullName:           "Northlight Studio GmbH",
		Bio:                "Production company and studio space.",
		Roles:              []string{models.RoleCompany},
		PrimaryRole:        models.RoleCompany,
		OnboardingComplete: true,
	},
}

type AuthService struct {
	userRepo models.UserRepo
	mu       sync.Mutex
	secrets  map[string]string // lowercased email -> password
}

func NewAuthService(userRepo models.UserRepo) *AuthService {
	as := &AuthService{
		userRepo: userRepo,
		secrets:  make(map[string]string, len(DemoCredentials)),
	}
	for _, cred := range DemoCredentials {
		as.secrets[strings.ToLower(cred.Email)] = cred.Password
	}
	return as
}

// SeedDemoAccounts makes sure every demo credential has a matching profile.
// Safe to run on every boot.
func (as *AuthService) SeedDemoAccounts(ctx context.Context) error {
	for _, seed := range DemoAccounts {
		if _, err := as.userRepo.GetUserByEmail(ctx, seed.Email); err == nil {
			continue
		}
		u := seed
		now := time.Now()
		u.CreatedAt = now
		u.UpdatedAt = now
		if _, err := as.userRepo.CreateUser(ctx, &u); err != nil {
			return fmt.Errorf("failed to seed account %s: %v", seed.Email, err)
		}
	}
	return nil
}

// Login matches by exact email (case-insensitive) and exact secret.
func (as *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	as.mu.Lock()
	secret, ok := as.secrets[key]
	as.mu.Unlock()
	if !ok || secret != password {
		return nil, fmt.Errorf("invalid email or password")
	}

	user, err := as.userRepo.GetUserByEmail(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	return user, nil
}

// Register creates the account and its credential. The created record is
// always marked as having completed onboarding.
func (as *AuthService) Register(ctx context.Context, user *models.User, password string) (*models.User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if err := models.Validate.Struct(user); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	as.mu.Lock()
	if _, exists := as.secrets[user.Email]; exists {
		as.mu.Unlock()
		return nil, fmt.Errorf("email already in use")
	}
	as.secrets[user.Email] = password
	as.mu.Unlock()

	user.OnboardingComplete = true
	user.NormalizeRoles()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	created, err := as.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %v", err)
	}
	return created, nil
}
