package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rocketscienceinc/connectn/internal/apperror"
	"github.com/rocketscienceinc/connectn/internal/entity"
)

type MatchRepository interface {
	Create(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Match, error)
}

type memoryMatch struct {
	mu      sync.RWMutex
	matches map[string]*entity.Match
}

// NewMatchRepository returns a match registry that lives for the process lifetime.
func NewMatchRepository() MatchRepository {
	return &memoryMatch{
		matches: make(map[string]*entity.Match),
	}
}

func (that *memoryMatch) Create(ctx context.Context, match *entity.Match) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, exists := that.matches[match.ID]; exists {
		return fmt.Errorf("%w: %s", apperror.ErrMatchAlreadyExists, match.ID)
	}

	that.matches[match.ID] = match

	return nil
}

func (that *memoryMatch) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	match, ok := that.matches[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrMatchNotFound, id)
	}

	return match, nil
}

func (that *memoryMatch) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.matches[id]; !ok {
		return fmt.Errorf("%w: %s", apperror.ErrMatchNotFound, id)
	}

	delete(that.matches, id)

	return nil
}

// List returns the matches ordered by creation time, oldest first.
func (that *memoryMatch) List(ctx context.Context) ([]*entity.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	that.mu.RLock()
	matches := make([]*entity.Match, 0, len(that.matches))
	for _, match := range that.matches {
		matches = append(matches, match)
	}
	that.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].ID < matches[j].ID
		}
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})

	return matches, nil
}
