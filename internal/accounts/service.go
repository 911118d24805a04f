package accounts

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wisebook/wisebook/internal/logging"
	"github.com/wisebook/wisebook/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

// Service implements the account lifecycle and the single active session.
//
// Directory mutations are read-modify-write over one storage key. The
// in-process mutex serializes them, but two processes sharing one database
// can still race and the last writer wins. Acceptable for a single-user
// device cache; see DESIGN.md.
type Service struct {
	mu    sync.Mutex
	dir   *Directory
	store *storage.Store
	log   logging.Logger

	// Overridable in tests.
	now   func() time.Time
	newID func() string
}

func NewService(dir *Directory, store *storage.Store, log logging.Logger) *Service {
	return &Service{
		dir:   dir,
		store: store,
		log:   log,
		now:   time.Now,
		newID: newAccountID,
	}
}

// newAccountID returns a time-ordered unique id for a fresh account.
func newAccountID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// Register creates a new account and logs it in. Emails are unique under
// case-insensitive comparison; a clash returns ErrEmailTaken. The returned
// session never contains the credential.
func (s *Service) Register(ctx context.Context, name, email, password string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := s.dir.LoadAll(ctx)
	for _, a := range accounts {
		if strings.EqualFold(a.Email, email) {
			return nil, ErrEmailTaken
		}
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	account := Account{
		ID:           s.newID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Level:        1,
		XP:           0,
		CreatedAt:    s.now().UTC(),
	}

	accounts = append(accounts, account)
	if !s.dir.SaveAll(ctx, accounts) {
		return nil, fmt.Errorf("saving account directory: %w", ErrStorageUnavailable)
	}

	session := account.Session()
	s.store.Save(ctx, storage.KeyCurrentUser, session)

	s.log.Info(ctx, "account registered", "id", account.ID, "email", account.Email)
	return session, nil
}

// Login checks the credentials against the directory and, on success,
// overwrites the session slot with the stripped account. A failed login
// leaves any prior session untouched.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	accounts := s.dir.LoadAll(ctx)

	var account *Account
	for i := range accounts {
		if strings.EqualFold(accounts[i].Email, email) {
			account = &accounts[i]
			break
		}
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := account.Session()
	s.store.Save(ctx, storage.KeyCurrentUser, session)

	s.log.Info(ctx, "login", "id", account.ID)
	return session, nil
}

// Logout writes a null session record. Idempotent: logging out while already
// logged out is a trivial success. Storage failures are logged, not surfaced.
func (s *Service) Logout(ctx context.Context) {
	if !s.store.Save(ctx, storage.KeyCurrentUser, nil) {
		s.log.Warn(ctx, "logout: session slot not cleared")
	}
}

// CurrentSession returns the stored session record, or nil when logged out.
// The record is returned exactly as stored; it is not re-validated against
// the directory.
func (s *Service) CurrentSession(ctx context.Context) *Session {
	var session Session
	if !s.store.Load(ctx, storage.KeyCurrentUser, &session) {
		return nil
	}
	return &session
}

// Patch is a shallow merge applied by Update. Nil fields are left unchanged.
type Patch struct {
	Name     *string
	Email    *string
	Password *string
	Level    *int
	XP       *int
	Avatar   *string
}

// Update merges patch into the account with the given id and persists the
// whole directory. When the updated account is the current session's, the
// session record is refreshed in place (stripped). Returns the merged
// account.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := s.dir.LoadAll(ctx)

	idx := -1
	for i := range accounts {
		if accounts[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrAccountNotFound
	}

	account := &accounts[idx]
	if patch.Name != nil {
		account.Name = *patch.Name
	}
	if patch.Email != nil {
		account.Email = *patch.Email
	}
	if patch.Password != nil {
		hash, err := hashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = hash
	}
	if patch.Level != nil {
		account.Level = *patch.Level
	}
	if patch.XP != nil {
		account.XP = *patch.XP
	}
	if patch.Avatar != nil {
		account.Avatar = patch.Avatar
	}

	if !s.dir.SaveAll(ctx, accounts) {
		return nil, fmt.Errorf("saving account directory: %w", ErrStorageUnavailable)
	}

	if current := s.CurrentSession(ctx); current != nil && current.ID == id {
		s.store.Save(ctx, storage.KeyCurrentUser, account.Session())
	}

	updated := *account
	return &updated, nil
}
