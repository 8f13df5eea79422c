package services

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"viralalchemy-backend-go/internal/models"
)

const (
	PlanFree       = "free"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"

	// UnlimitedCredits is the sentinel balance shown to pro accounts.
	UnlimitedCredits = 9999
)

// UserRegistry holds accounts for the lifetime of the process. Nothing is
// persisted; logging out destroys the account.
type UserRegistry struct {
	mu          sync.RWMutex
	byID        map[string]*models.User
	byEmail     map[string]string
	freeCredits int
	adminEmails map[string]bool
}

func NewUserRegistry(freeCredits int, adminEmails []string) *UserRegistry {
	admins := make(map[string]bool, len(adminEmails))
	for _, email := range adminEmails {
		admins[strings.ToLower(email)] = true
	}
	return &UserRegistry{
		byID:        map[string]*models.User{},
		byEmail:     map[string]string{},
		freeCredits: freeCredits,
		adminEmails: admins,
	}
}

func (r *UserRegistry) Register(name, email, passwordHash string) (models.User, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[key]; exists {
		return models.User{}, ErrBadRequest("email already registered")
	}
	roles := []string{"USER"}
	if r.adminEmails[key] {
		roles = append(roles, "ADMIN")
	}
	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        key,
		PasswordHash: passwordHash,
		Plan:         PlanFree,
		IsPro:        false,
		Credits:      r.freeCredits,
		Roles:        roles,
		CreatedAt:    now,
	}
	r.byID[user.ID] = user
	r.byEmail[key] = user.ID
	return *user, nil
}

func (r *UserRegistry) FindByEmail(email string) (models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return models.User{}, false
	}
	return *r.byID[id], true
}

func (r *UserRegistry) FindByID(id string) (models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return models.User{}, false
	}
	return *user, true
}

func (r *UserRegistry) SetLastLogin(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.byID[id]; ok {
		now := time.Now().UTC()
		user.LastLoginAt = &now
	}
}

// Delete removes the account. Called on logout.
func (r *UserRegistry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.byID[id]; ok {
		delete(r.byEmail, user.Email)
		delete(r.byID, id)
	}
}

// CanAnalyze reports whether the account may start another analysis: pro
// accounts always can, free accounts need a positive balance.
func (r *UserRegistry) CanAnalyze(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return false
	}
	return user.IsPro || user.Credits > 0
}

// ChargeForAnalysis decrements the free balance, clamped at zero. Pro
// accounts are never charged. Returns the remaining balance.
func (r *UserRegistry) ChargeForAnalysis(id string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return 0, false
	}
	if user.IsPro {
		return user.Credits, true
	}
	if user.Credits > 0 {
		user.Credits--
	}
	return user.Credits, true
}

// Upgrade switches the account to a paid plan and grants the unlimited
// balance sentinel.
func (r *UserRegistry) Upgrade(id, plan string) (models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return models.User{}, false
	}
	user.Plan = plan
	user.IsPro = true
	user.Credits = UnlimitedCredits
	return *user, true
}
