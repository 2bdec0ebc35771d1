// Package reconcile maps an external OAuth identity to a single,
// non-duplicated user record. It is the ONLY place where
// identity-to-user mapping logic lives.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NgChau9803/RG-Ecom-BE/internal/auth"
	"github.com/NgChau9803/RG-Ecom-BE/internal/models"
	"github.com/NgChau9803/RG-Ecom-BE/internal/store"
)

var (
	// ErrBadProfile means the provider handed us a profile we cannot
	// build a user from (missing subject, email, name, or photo).
	// Surfaced to clients as an authentication failure.
	ErrBadProfile = errors.New("reconcile: bad external profile")

	// ErrConflict means a concurrent login created the record first
	// and the follow-up re-resolution also failed to find it.
	ErrConflict = errors.New("reconcile: conflicting concurrent login")
)

// UserRepository is the persistence surface the reconciler needs.
// Lookup misses are store.ErrNotFound; duplicate unique-key writes are
// store.ErrDuplicateKey.
type UserRepository interface {
	FindByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

// Reconciler implements the login decision procedure. Lookup order is
// load-bearing: Google subject first, then email, then create.
type Reconciler struct {
	users UserRepository
	now   func() time.Time
}

func New(users UserRepository) *Reconciler {
	return &Reconciler{
		users: users,
		now:   time.Now,
	}
}

// Reconcile resolves an external identity to exactly one user record.
//
//  1. Known Google subject: refresh lastLogin only.
//  2. Known email without a linked Google account: attach the subject.
//     lastLogin is not refreshed on this path, matching the upstream
//     behavior (see DESIGN.md).
//  3. Otherwise create a fresh record with the email pre-verified.
//
// A duplicate-key rejection on create means a concurrent login won the
// race; one re-resolution pass recovers the winner's record.
func (r *Reconciler) Reconcile(ctx context.Context, identity *auth.Identity) (*models.User, error) {
	if identity == nil || identity.Subject == "" || identity.Email == "" {
		return nil, ErrBadProfile
	}

	user, err := r.users.FindByGoogleID(ctx, identity.Subject)
	if err == nil {
		user.LastLogin = r.now().UTC()
		if err := r.users.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("reconcile: refresh last login: %w", err)
		}
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("reconcile: lookup by google id: %w", err)
	}

	user, err = r.users.FindByEmail(ctx, identity.Email)
	if err == nil {
		user.GoogleID = identity.Subject
		if err := r.users.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("reconcile: attach google id: %w", err)
		}
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("reconcile: lookup by email: %w", err)
	}

	user, err = r.createUser(ctx, identity)
	if errors.Is(err, store.ErrDuplicateKey) {
		return r.resolveRace(ctx, identity)
	}
	return user, err
}

func (r *Reconciler) createUser(ctx context.Context, identity *auth.Identity) (*models.User, error) {
	firstName, lastName := SplitName(identity.GivenName, identity.FamilyName, identity.DisplayName)
	if firstName == "" {
		return nil, ErrBadProfile
	}
	if len(identity.Photos) == 0 {
		return nil, ErrBadProfile
	}

	user := &models.User{
		Email:    strings.ToLower(identity.Email),
		GoogleID: identity.Subject,
		Role:     models.RoleBuyer,
		Profile: models.Profile{
			FirstName: firstName,
			LastName:  lastName,
			Avatar:    identity.Photos[0],
		},
		IsEmailVerified: true,
		IsActive:        true,
		LastLogin:       r.now().UTC(),
	}

	if err := r.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, err
		}
		return nil, fmt.Errorf("reconcile: create user: %w", err)
	}
	return user, nil
}

// resolveRace runs one more lookup pass after a duplicate-key
// rejection. The winner's record must exist by now under either the
// subject or the email; if neither matches, give up with a conflict.
func (r *Reconciler) resolveRace(ctx context.Context, identity *auth.Identity) (*models.User, error) {
	user, err := r.users.FindByGoogleID(ctx, identity.Subject)
	if err == nil {
		user.LastLogin = r.now().UTC()
		if err := r.users.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("reconcile: refresh last login: %w", err)
		}
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("reconcile: re-resolve by google id: %w", err)
	}

	user, err = r.users.FindByEmail(ctx, identity.Email)
	if err == nil {
		user.GoogleID = identity.Subject
		if err := r.users.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("reconcile: attach google id: %w", err)
		}
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("reconcile: re-resolve by email: %w", err)
	}
	return nil, ErrConflict
}

// SplitName derives first/last name from explicit given/family names,
// falling back to splitting the display name on spaces: first token
// becomes the first name, the rest joins into the last name.
func SplitName(givenName, familyName, displayName string) (string, string) {
	firstName := givenName
	lastName := familyName

	if firstName == "" || lastName == "" {
		tokens := strings.Fields(displayName)
		if firstName == "" && len(tokens) > 0 {
			firstName = tokens[0]
		}
		if lastName == "" && len(tokens) > 1 {
			lastName = strings.Join(tokens[1:], " ")
		}
	}
	return firstName, lastName
}
