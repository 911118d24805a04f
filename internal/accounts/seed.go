package accounts

import "context"

// Demo credentials accepted by the seeded accounts.
const (
	DemoEmail    = "demo@wisebook.app"
	DemoPassword = "demo123"
)

// SeedDemoAccounts inserts the fixed demo accounts when the directory is
// empty and does nothing otherwise. Intended to run once at startup, before
// any login attempt.
func (s *Service) SeedDemoAccounts(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.dir.LoadAll(ctx)) > 0 {
		return nil
	}

	demos := []struct {
		id       string
		name     string
		email    string
		password string
		level    int
		xp       int
	}{
		{"1", "Demo User", DemoEmail, DemoPassword, 8, 320},
		{"2", "Maria Silva", "maria@wisebook.app", "maria123", 5, 180},
	}

	accounts := make([]Account, 0, len(demos))
	for _, d := range demos {
		hash, err := hashPassword(d.password)
		if err != nil {
			return err
		}
		accounts = append(accounts, Account{
			ID:           d.id,
			Name:         d.name,
			Email:        d.email,
			PasswordHash: hash,
			Level:        d.level,
			XP:           d.xp,
			CreatedAt:    s.now().UTC(),
		})
	}

	if !s.dir.SaveAll(ctx, accounts) {
		return ErrStorageUnavailable
	}

	s.log.Info(ctx, "seeded demo accounts", "count", len(accounts))
	return nil
}
