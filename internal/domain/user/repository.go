package user

import (
	"context"

	"github.com/BruksfildServices01/sales-crm/internal/models"
)

type Repository interface {
	// ListUsers returns users newest first.
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// CreateUser and SaveUser report a taken email as a conflict.
	CreateUser(ctx context.Context, u *models.User) error
	SaveUser(ctx context.Context, u *models.User) error
}
