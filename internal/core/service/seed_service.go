package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/anylist/anylist-api/internal/core/domain"
	"github.com/anylist/anylist-api/internal/core/ports"
)

// SeedService wipes the database and reloads fixture data. It refuses to
// run when the environment is production.
type SeedService struct {
	users ports.UserRepository
	items ports.ItemRepository
	env   string
	log   zerolog.Logger
}

func NewSeedService(users ports.UserRepository, items ports.ItemRepository, env string, log zerolog.Logger) *SeedService {
	return &SeedService{users: users, items: items, env: env, log: log}
}

// Execute deletes all items and users, then loads the fixtures. Seeded
// users are created the same way signup creates them: default-or-declared
// roles, hashed password, and no lastUpdateBy stamp.
func (s *SeedService) Execute(ctx context.Context) (bool, error) {
	if s.env == "production" {
		return false, domain.ErrSeedDisabled
	}

	if err := s.items.DeleteAll(ctx); err != nil {
		return false, err
	}
	if err := s.users.DeleteAll(ctx); err != nil {
		return false, err
	}

	first, err := s.loadUsers(ctx)
	if err != nil {
		return false, err
	}
	if err := s.loadItems(ctx, first); err != nil {
		return false, err
	}

	s.log.Info().Int("users", len(seedUsers)).Int("items", len(seedItems)).Msg("seed executed")
	return true, nil
}

func (s *SeedService) loadUsers(ctx context.Context) (*domain.User, error) {
	var first *domain.User
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		now := time.Now().UTC()
		created, err := s.users.Create(ctx, &domain.User{
			ID:           uuid.NewString(),
			FullName:     su.fullName,
			Email:        su.email,
			PasswordHash: string(hash),
			Roles:        su.roles,
			IsActive:     su.isActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return nil, err
		}
		if first == nil {
			first = created
		}
	}
	return first, nil
}

func (s *SeedService) loadItems(ctx context.Context, owner *domain.User) error {
	for _, si := range seedItems {
		now := time.Now().UTC()
		item := &domain.Item{
			ID:        uuid.NewString(),
			Name:      si.name,
			OwnerID:   owner.ID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if si.quantityUnits != "" {
			units := si.quantityUnits
			item.QuantityUnits = &units
		}
		if _, err := s.items.Create(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
