package directory

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/sectorflow/demand-service/internal/domain"
)

// ServiceUsers names the user directory in upstream errors.
const ServiceUsers = "users"

// Users reads the user directory.
type Users struct {
	getter httpGetter
}

// NewUsers creates a user directory adapter rooted at baseURL.
func NewUsers(baseURL string, timeout time.Duration, logger *slog.Logger) *Users {
	return &Users{getter: newGetter(ServiceUsers, baseURL, timeout, logger)}
}

type userDTO struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
	Role   string `json:"role"`
}

// User resolves one user profile.
func (u *Users) User(ctx context.Context, id string) (*domain.User, error) {
	var dto userDTO
	if err := u.getter.get(ctx, "/users/"+url.PathEscape(id), &dto); err != nil {
		return nil, err
	}
	if dto.ID == "" {
		dto.ID = id
	}
	return &domain.User{ID: dto.ID, Name: dto.Name, Sector: dto.Sector, Role: dto.Role}, nil
}
