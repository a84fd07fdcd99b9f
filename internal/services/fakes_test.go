package services

import (
	"context"
	"errors"
	"time"

	"eventoslisting/internal/domain"
)

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byEmail   map[string]*domain.User
	byID      map[string]*domain.User
	nextID    int
	createErr error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	f.nextID++
	u.ID = "user-" + string(rune('0'+f.nextID))
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

// fakeHasher implements domain.PasswordHasher for tests.
type fakeHasher struct {
	hashErr error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hash-" + password, nil
}

func (f *fakeHasher) Compare(hash, password string) error {
	if hash != "hash-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + userID, nil
}

// fakeResetCodeRepo implements domain.ResetCodeRepository for tests.
type fakeResetCodeRepo struct {
	codes  map[string]*domain.ResetCode // keyed by id
	nextID int
}

func newFakeResetCodeRepo() *fakeResetCodeRepo {
	return &fakeResetCodeRepo{codes: make(map[string]*domain.ResetCode)}
}

func (f *fakeResetCodeRepo) Create(ctx context.Context, c *domain.ResetCode) error {
	f.nextID++
	c.ID = "code-" + string(rune('0'+f.nextID))
	stored := *c
	f.codes[c.ID] = &stored
	return nil
}

func (f *fakeResetCodeRepo) GetByEmailAndCode(ctx context.Context, email, code string) (*domain.ResetCode, error) {
	for _, c := range f.codes {
		if c.Email == email && c.Code == code {
			found := *c
			return &found, nil
		}
	}
	return nil, domain.ErrResetCodeInvalid
}

func (f *fakeResetCodeRepo) DeleteByEmail(ctx context.Context, email string) error {
	for id, c := range f.codes {
		if c.Email == email {
			delete(f.codes, id)
		}
	}
	return nil
}

func (f *fakeResetCodeRepo) Delete(ctx context.Context, id string) error {
	delete(f.codes, id)
	return nil
}

func (f *fakeResetCodeRepo) liveFor(email string) []*domain.ResetCode {
	var out []*domain.ResetCode
	for _, c := range f.codes {
		if c.Email == email {
			out = append(out, c)
		}
	}
	return out
}

// fakeEmailService implements domain.EmailService for tests.
type fakeEmailService struct {
	sendErr error
	sent    []*domain.ResetCodeEmailData
}

func (f *fakeEmailService) SendResetCode(ctx context.Context, data *domain.ResetCodeEmailData) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, data)
	return nil
}

// fakeEventRepo implements domain.EventRepository for tests.
type fakeEventRepo struct {
	byID      map[string]*domain.Event
	nextID    int
	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[string]*domain.Event)}
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Event, 0, len(f.byID))
	for _, e := range f.byID {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	e.ID = "event-" + string(rune('0'+f.nextID))
	stored := *e
	f.byID[e.ID] = &stored
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		found := *e
		return &found, nil
	}
	return nil, domain.ErrEventNotFound
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrEventNotFound
	}
	stored := *e
	f.byID[e.ID] = &stored
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeBlobStore implements domain.BlobStore for tests.
type fakeBlobStore struct {
	storeErr  error
	removeErr error
	stored    map[string][]byte
	removed   []string
	nextID    int
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{stored: make(map[string][]byte)}
}

func (f *fakeBlobStore) Store(ctx context.Context, filename string, data []byte) (string, error) {
	if f.storeErr != nil {
		return "", f.storeErr
	}
	f.nextID++
	url := "/uploads/blob-" + string(rune('0'+f.nextID))
	f.stored[url] = data
	return url, nil
}

func (f *fakeBlobStore) Remove(ctx context.Context, url string) error {
	f.removed = append(f.removed, url)
	if f.removeErr != nil {
		return f.removeErr
	}
	delete(f.stored, url)
	return nil
}
