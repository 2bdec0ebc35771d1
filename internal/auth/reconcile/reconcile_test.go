package reconcile

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/NgChau9803/RG-Ecom-BE/internal/auth"
	"github.com/NgChau9803/RG-Ecom-BE/internal/models"
	"github.com/NgChau9803/RG-Ecom-BE/internal/store"
)

// fakeRepo is an in-memory UserRepository enforcing the same unique
// keys as the users collection.
type fakeRepo struct {
	users       map[string]*models.User // keyed by hex id
	createCalls int
	updateCalls int
	failCreate  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*models.User)}
}

func (f *fakeRepo) FindByGoogleID(_ context.Context, googleID string) (*models.User, error) {
	for _, u := range f.users {
		if u.GoogleID == googleID && googleID != "" {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == strings.ToLower(email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeRepo) Create(_ context.Context, user *models.User) error {
	f.createCalls++
	if f.failCreate != nil {
		err := f.failCreate
		f.failCreate = nil
		return err
	}
	for _, u := range f.users {
		if u.Email == strings.ToLower(user.Email) {
			return store.ErrDuplicateKey
		}
		if user.GoogleID != "" && u.GoogleID == user.GoogleID {
			return store.ErrDuplicateKey
		}
	}
	user.ID = primitive.NewObjectID()
	user.Email = strings.ToLower(user.Email)
	copied := *user
	f.users[user.ID.Hex()] = &copied
	return nil
}

func (f *fakeRepo) Update(_ context.Context, user *models.User) error {
	f.updateCalls++
	if _, ok := f.users[user.ID.Hex()]; !ok {
		return store.ErrNotFound
	}
	copied := *user
	f.users[user.ID.Hex()] = &copied
	return nil
}

func googleIdentity() *auth.Identity {
	return &auth.Identity{
		Provider:      "google",
		Subject:       "g-1",
		Email:         "a@x.com",
		EmailVerified: true,
		GivenName:     "A",
		FamilyName:    "B",
		DisplayName:   "A B",
		Photos:        []string{"p.jpg"},
	}
}

func newTestReconciler(repo UserRepository, at time.Time) *Reconciler {
	r := New(repo)
	r.now = func() time.Time { return at }
	return r
}

func TestReconcileCreatesNewUser(t *testing.T) {
	repo := newFakeRepo()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := newTestReconciler(repo, now)

	user, err := r.Reconcile(context.Background(), googleIdentity())
	require.NoError(t, err)

	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "g-1", user.GoogleID)
	assert.Equal(t, models.RoleBuyer, user.Role)
	assert.Equal(t, "A", user.Profile.FirstName)
	assert.Equal(t, "B", user.Profile.LastName)
	assert.Equal(t, "p.jpg", user.Profile.Avatar)
	assert.True(t, user.IsEmailVerified, "provider-asserted email is trusted")
	assert.True(t, user.IsActive)
	assert.Equal(t, now, user.LastLogin)
	assert.Len(t, repo.users, 1)
}

func TestReconcileSameSubjectTwice(t *testing.T) {
	repo := newFakeRepo()
	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)

	r := newTestReconciler(repo, first)
	u1, err := r.Reconcile(context.Background(), googleIdentity())
	require.NoError(t, err)

	r.now = func() time.Time { return second }
	u2, err := r.Reconcile(context.Background(), googleIdentity())
	require.NoError(t, err)

	assert.Equal(t, u1.ID, u2.ID, "second login must not create a second record")
	assert.Len(t, repo.users, 1)
	assert.Equal(t, second, u2.LastLogin, "lastLogin advances between calls")
	assert.Equal(t, 1, repo.createCalls)
}

func TestReconcileAttachesGoogleIDToExistingEmail(t *testing.T) {
	repo := newFakeRepo()
	existing := &models.User{
		ID:    primitive.NewObjectID(),
		Email: "a@x.com",
		Role:  models.RoleSeller,
		Profile: models.Profile{
			FirstName: "Existing",
			LastName:  "Person",
			Phone:     "123",
		},
		LastLogin: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	repo.users[existing.ID.Hex()] = existing

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := newTestReconciler(repo, now)

	user, err := r.Reconcile(context.Background(), googleIdentity())
	require.NoError(t, err)

	assert.Equal(t, existing.ID, user.ID)
	assert.Equal(t, "g-1", user.GoogleID)
	assert.Len(t, repo.users, 1)

	// Everything else stays intact, including lastLogin: the attach
	// path does not refresh it.
	stored := repo.users[existing.ID.Hex()]
	assert.Equal(t, "Existing", stored.Profile.FirstName)
	assert.Equal(t, models.RoleSeller, stored.Role)
	assert.Equal(t, existing.LastLogin, stored.LastLogin)
}

func TestReconcileNameFallsBackToDisplayName(t *testing.T) {
	repo := newFakeRepo()
	r := newTestReconciler(repo, time.Now().UTC())

	id := googleIdentity()
	id.GivenName = ""
	id.FamilyName = ""
	id.DisplayName = "Mary Jane Watson"

	user, err := r.Reconcile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Mary", user.Profile.FirstName)
	assert.Equal(t, "Jane Watson", user.Profile.LastName)
}

func TestReconcileBadProfile(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*auth.Identity)
	}{
		{"missing subject", func(id *auth.Identity) { id.Subject = "" }},
		{"missing email", func(id *auth.Identity) { id.Email = "" }},
		{"no photos", func(id *auth.Identity) { id.Photos = nil }},
		{"no usable name", func(id *auth.Identity) {
			id.GivenName = ""
			id.DisplayName = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			r := newTestReconciler(repo, time.Now().UTC())

			id := googleIdentity()
			tt.mutate(id)

			_, err := r.Reconcile(context.Background(), id)
			assert.ErrorIs(t, err, ErrBadProfile)
			assert.Empty(t, repo.users, "no partial record may be written")
		})
	}

	t.Run("nil identity", func(t *testing.T) {
		r := newTestReconciler(newFakeRepo(), time.Now().UTC())
		_, err := r.Reconcile(context.Background(), nil)
		assert.ErrorIs(t, err, ErrBadProfile)
	})
}

func TestReconcileDuplicateKeyReResolves(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// The winner of the race already sits in the store, but the loser's
	// first lookup pass ran before the insert; its own create is then
	// rejected by the unique index.
	winner := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "a@x.com",
		GoogleID: "g-1",
		Role:     models.RoleBuyer,
	}
	repo := newFakeRepo()
	repo.failCreate = store.ErrDuplicateKey
	repo.users[winner.ID.Hex()] = winner

	r := newTestReconciler(&raceRepo{fakeRepo: repo}, now)
	user, err := r.Reconcile(context.Background(), googleIdentity())
	require.NoError(t, err)
	assert.Equal(t, winner.ID, user.ID)
	assert.Equal(t, now, user.LastLogin, "re-resolve by subject refreshes lastLogin")
}

// raceRepo reports misses on the first lookup pass and delegates to
// the embedded fake afterwards, mimicking a record that materializes
// between lookup and create.
type raceRepo struct {
	*fakeRepo
	passed bool
}

func (r *raceRepo) FindByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	if !r.passed {
		return nil, store.ErrNotFound
	}
	return r.fakeRepo.FindByGoogleID(ctx, googleID)
}

func (r *raceRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if !r.passed {
		return nil, store.ErrNotFound
	}
	return r.fakeRepo.FindByEmail(ctx, email)
}

func (r *raceRepo) Create(ctx context.Context, user *models.User) error {
	r.passed = true
	return r.fakeRepo.Create(ctx, user)
}

func TestReconcileConflictWhenRaceUnresolvable(t *testing.T) {
	repo := newFakeRepo()
	repo.failCreate = store.ErrDuplicateKey
	r := newTestReconciler(repo, time.Now().UTC())

	_, err := r.Reconcile(context.Background(), googleIdentity())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name      string
		given     string
		family    string
		display   string
		wantFirst string
		wantLast  string
	}{
		{"explicit names win", "A", "B", "Other Name", "A", "B"},
		{"display fallback", "", "", "Mary Jane Watson", "Mary", "Jane Watson"},
		{"single token display", "", "", "Cher", "Cher", ""},
		{"family fallback only", "A", "", "A B C", "A", "B C"},
		{"given fallback only", "", "B", "Mary Jane", "Mary", "B"},
		{"empty everything", "", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitName(tt.given, tt.family, tt.display)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}
