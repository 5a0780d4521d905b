package user

import (
	"context"
	"strings"

	"github.com/smartshop/api/internal/domain/profile"
	"github.com/smartshop/api/pkg/apperror"
)

type RegisterProfileUseCase struct {
	profiles *profile.Store
}

func NewRegisterProfileUseCase(profiles *profile.Store) *RegisterProfileUseCase {
	return &RegisterProfileUseCase{profiles: profiles}
}

type RegisterProfileInput struct {
	UserID string
	Name   string
	Email  string
}

type RegisterProfileOutput struct {
	Profile profile.UserProfile
}

// Execute makes sure a profile exists before any interaction is recorded.
// Registering an already known user keeps their histories and only refreshes
// identity.
func (uc *RegisterProfileUseCase) Execute(ctx context.Context, input RegisterProfileInput) (*RegisterProfileOutput, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, apperror.NewInvalidInput("user id is required", nil)
	}
	p := uc.profiles.Register(input.UserID, input.Name, input.Email)
	return &RegisterProfileOutput{Profile: p}, nil
}
