package tag

import (
	"context"
	"strings"
)

type Service interface {
	Ensure(ctx context.Context, names []string) ([]Tag, error)
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

// Ensure resolves each name to a tag row, creating missing ones. Names are
// trimmed, empties skipped and duplicates collapsed, so the result is the
// canonical tag set for the input.
func (s *service) Ensure(ctx context.Context, names []string) ([]Tag, error) {
	out := make([]Tag, 0, len(names))
	seen := map[string]struct{}{}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		t, err := s.repo.GetOrCreate(ctx, n)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, nil
}
