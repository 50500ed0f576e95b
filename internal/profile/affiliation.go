// Package profile reconciles the bidirectional talent links that the
// free-text affiliation fields imply when a profile is saved: the edited
// user's own linked sets, and the linked_models set on the agency or company
// account the text resolves to.
package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/0xGitteth/Exhibit-sub000/internal/models"
	"github.com/0xGitteth/Exhibit-sub000/internal/query"
)

// UserDirectory is the slice of the user gateway the reconciler needs.
type UserDirectory interface {
	Filter(ctx context.Context, f query.Filter) ([]models.User, error)
	UpdateMyUserData(ctx context.Context, payload map[string]any) (*models.User, error)
	UpdateByEmail(ctx context.Context, email string, payload map[string]any) (*models.User, error)
}

type Reconciler struct {
	users  UserDirectory
	logger *slog.Logger
}

func NewReconciler(users UserDirectory, logger *slog.Logger) *Reconciler {
	return &Reconciler{users: users, logger: logger}
}

// ResolveAffiliation matches free-text affiliation input against a candidate
// pool by display name, then full name, then email. Comparison is
// case-insensitive and whitespace-trimmed. No match is a valid outcome: the
// affiliation stays free text only.
func ResolveAffiliation(pool []models.User, text string) *models.User {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return nil
	}
	fields := []func(*models.User) string{
		func(u *models.User) string { return u.DisplayName },
		func(u *models.User) string { return u.FullName },
		func(u *models.User) string { return u.Email },
	}
	for _, field := range fields {
		for i := range pool {
			if strings.ToLower(strings.TrimSpace(field(&pool[i]))) == needle {
				return &pool[i]
			}
		}
	}
	return nil
}

// slotEdit captures what changed for one affiliation slot. A nil prev/next
// means that side of the transition has no linked account.
type slotEdit struct {
	prev *models.User
	next *models.User
}

// SaveProfile persists the edited profile first, then repairs the reciprocal
// linked_models sets on the affected agency and company accounts. The
// primary save is durable before the side-effect writes run; a side-effect
// failure leaves only the reciprocal link stale and is logged, not rolled
// back. Re-saving the same edit is a no-op for the links.
func (r *Reconciler) SaveProfile(ctx context.Context, current *models.User, updates map[string]any) (*models.User, error) {
	all, err := r.users.Filter(ctx, query.Filter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load affiliation candidates: %w", err)
	}

	agencyEdit := planSlot(updates, "agency_affiliation", "linked_agencies",
		withRole(all, models.RoleAgency), current.AgencyAffiliation, current.LinkedAgencies)
	companyEdit := planSlot(updates, "company_affiliation", "linked_companies",
		withRole(all, models.RoleCompany), current.CompanyAffiliation, current.LinkedCompanies)

	saved, err := r.users.UpdateMyUserData(ctx, updates)
	if err != nil {
		return nil, err
	}

	r.propagate(ctx, current.Email, agencyEdit)
	r.propagate(ctx, current.Email, companyEdit)
	return saved, nil
}

// planSlot resolves the previous and new affiliation for one slot, rewrites
// the editing user's own linked set inside updates, and reports what has to
// be propagated. An unchanged resolution yields an empty edit.
func planSlot(updates map[string]any, field, linkedField string, pool []models.User, prevText string, prevLinks []string) slotEdit {
	newText := prevText
	if raw, ok := updates[field]; ok {
		newText, _ = raw.(string)
	}
	prev := ResolveAffiliation(pool, prevText)
	next := ResolveAffiliation(pool, newText)

	links := append([]string{}, prevLinks...)
	if prev != nil && !sameAccount(prev, next) {
		links = removeString(links, prev.Email)
	}
	if next != nil {
		links = appendUnique(links, next.Email)
	}
	updates[linkedField] = links

	if sameAccount(prev, next) {
		return slotEdit{}
	}
	return slotEdit{prev: prev, next: next}
}

func (r *Reconciler) propagate(ctx context.Context, userEmail string, edit slotEdit) {
	if edit.prev != nil {
		payload := map[string]any{"linked_models": removeString(edit.prev.LinkedModels, userEmail)}
		if _, err := r.users.UpdateByEmail(ctx, edit.prev.Email, payload); err != nil {
			r.logger.Error("failed to unlink talent from previous affiliation",
				"account", edit.prev.Email, "talent", userEmail, "error", err)
		}
	}
	if edit.next != nil {
		payload := map[string]any{"linked_models": appendUnique(edit.next.LinkedModels, userEmail)}
		if _, err := r.users.UpdateByEmail(ctx, edit.next.Email, payload); err != nil {
			r.logger.Error("failed to link talent to new affiliation",
				"account", edit.next.Email, "talent", userEmail, "error", err)
		}
	}
}

func withRole(users []models.User, role string) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.HasRole(role) {
			out = append(out, u)
		}
	}
	return out
}

func sameAccount(a, b *models.User) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Email == b.Email
}

func removeString(values []string, v string) []string {
	out := make([]string, 0, len(values))
	for _, have := range values {
		if have != v {
			out = append(out, have)
		}
	}
	return out
}

func appendUnique(values []string, v string) []string {
	for _, have := range values {
		if have == v {
			return append([]string{}, values...)
		}
	}
	return append(append([]string{}, values...), v)
}
