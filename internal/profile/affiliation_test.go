package profile

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xGitteth/Exhibit-sub000/internal/gateway"
	"github.com/0xGitteth/Exhibit-sub000/internal/models"
	"github.com/0xGitteth/Exhibit-sub000/internal/query"
)

// The user gateway is the production directory implementation.
var _ UserDirectory = (*gateway.UserGateway)(nil)

type patchCall struct {
	email   string
	payload map[string]any
}

type fakeDirectory struct {
	pool      []models.User
	filterErr error
	failEmail string

	myPatch map[string]any
	patches []patchCall
}

func (d *fakeDirectory) Filter(ctx context.Context, f query.Filter) ([]models.User, error) {
	if d.filterErr != nil {
		return nil, d.filterErr
	}
	return d.pool, nil
}

func (d *fakeDirectory) UpdateMyUserData(ctx context.Context, payload map[string]any) (*models.User, error) {
	d.myPatch = payload
	return &models.User{Email: "elena@exhibit.app"}, nil
}

func (d *fakeDirectory) UpdateByEmail(ctx context.Context, email string, payload map[string]any) (*models.User, error) {
	d.patches = append(d.patches, patchCall{email: email, payload: payload})
	if email == d.failEmail {
		return nil, fmt.Errorf("account unavailable")
	}
	return &models.User{Email: email}, nil
}

func affiliationPool() []models.User {
	return []models.User{
		{
			Email:        "aperture@exhibit.app",
			DisplayName:  "Aperture Talent",
			FullName:     "Aperture Talent Agency",
			Roles:        []string{models.RoleAgency},
			LinkedModels: []string{"elena@exhibit.app"},
		},
		{
			Email:       "luma@exhibit.app",
			DisplayName: "Luma Collective",
			FullName:    "Luma Collective Ltd",
			Roles:       []string{models.RoleAgency},
		},
		{
			Email:       "northlight@exhibit.app",
			DisplayName: "Northlight Studio",
			FullName:    "Northlight Studio GmbH",
			Roles:       []string{models.RoleCompany},
		},
		{
			Email:       "elena@exhibit.app",
			DisplayName: "Elena Mora",
			Roles:       []string{models.RoleModel},
		},
	}
}

func newTestReconciler(d *fakeDirectory) *Reconciler {
	return NewReconciler(d, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestResolveAffiliationPrecedence(t *testing.T) {
	pool := []models.User{
		{Email: "a@exhibit.app", FullName: "Aperture"},
		{Email: "b@exhibit.app", DisplayName: "Aperture"},
	}
	got := ResolveAffiliation(pool, "Aperture")
	require.NotNil(t, got)
	assert.Equal(t, "b@exhibit.app", got.Email)
}

func TestResolveAffiliationNormalizesInput(t *testing.T) {
	pool := affiliationPool()

	got := ResolveAffiliation(pool, "  aperture talent ")
	require.NotNil(t, got)
	assert.Equal(t, "aperture@exhibit.app", got.Email)

	assert.Nil(t, ResolveAffiliation(pool, "Some Unknown Crew"))
	assert.Nil(t, ResolveAffiliation(pool, "   "))
}

func TestSaveProfileSwitchesAgency(t *testing.T) {
	d := &fakeDirectory{pool: affiliationPool()}
	r := newTestReconciler(d)

	current := &models.User{
		Email:             "elena@exhibit.app",
		AgencyAffiliation: "Aperture Talent",
		LinkedAgencies:    []string{"aperture@exhibit.app"},
	}
	updates := map[string]any{"agency_affiliation": "Luma Collective"}

	saved, err := r.SaveProfile(context.Background(), current, updates)
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, []string{"luma@exhibit.app"}, updates["linked_agencies"])

	require.Len(t, d.patches, 2)
	assert.Equal(t, "aperture@exhibit.app", d.patches[0].email)
	assert.Equal(t, []string{}, d.patches[0].payload["linked_models"])
	assert.Equal(t, "luma@exhibit.app", d.patches[1].email)
	assert.Equal(t, []string{"elena@exhibit.app"}, d.patches[1].payload["linked_models"])
}

func TestSaveProfileUnchangedAffiliationIsNoOp(t *testing.T) {
	d := &fakeDirectory{pool: affiliationPool()}
	r := newTestReconciler(d)

	current := &models.User{
		Email:             "elena@exhibit.app",
		AgencyAffiliation: "Aperture Talent",
		LinkedAgencies:    []string{"aperture@exhibit.app"},
	}
	updates := map[string]any{"agency_affiliation": "Aperture Talent", "bio": "updated"}

	_, err := r.SaveProfile(context.Background(), current, updates)
	require.NoError(t, err)

	assert.Empty(t, d.patches)
	assert.Equal(t, []string{"aperture@exhibit.app"}, updates["linked_agencies"])
}

func TestSaveProfileCompanySlot(t *testing.T) {
	d := &fakeDirectory{pool: affiliationPool()}
	r := newTestReconciler(d)

	current := &models.User{Email: "elena@exhibit.app"}
	updates := map[string]any{"company_affiliation": "Northlight Studio"}

	_, err := r.SaveProfile(context.Background(), current, updates)
	require.NoError(t, err)

	assert.Equal(t, []string{"northlight@exhibit.app"}, updates["linked_companies"])
	require.Len(t, d.patches, 1)
	assert.Equal(t, "northlight@exhibit.app", d.patches[0].email)
}

func TestSaveProfileFreeTextWithoutMatch(t *testing.T) {
	d := &fakeDirectory{pool: affiliationPool()}
	r := newTestReconciler(d)

	current := &models.User{Email: "elena@exhibit.app"}
	updates := map[string]any{"agency_affiliation": "Some Unknown Crew"}

	_, err := r.SaveProfile(context.Background(), current, updates)
	require.NoError(t, err)

	assert.Empty(t, d.patches)
	assert.Equal(t, []string{}, updates["linked_agencies"])
	// The free text itself still goes through untouched.
	assert.Equal(t, "Some Unknown Crew", d.myPatch["agency_affiliation"])
}

func TestSaveProfileSideEffectFailureKeepsPrimarySave(t *testing.T) {
	d := &fakeDirectory{pool: affiliationPool(), failEmail: "luma@exhibit.app"}
	r := newTestReconciler(d)

	current := &models.User{Email: "elena@exhibit.app"}
	updates := map[string]any{"agency_affiliation": "Luma Collective"}

	saved, err := r.SaveProfile(context.Background(), current, updates)
	require.NoError(t, err)
	assert.NotNil(t, saved)
	assert.NotNil(t, d.myPatch)
}

func TestSaveProfileFilterFailureAbortsSave(t *testing.T) {
	d := &fakeDirectory{filterErr: fmt.Errorf("backend down")}
	r := newTestReconciler(d)

	current := &models.User{Email: "elena@exhibit.app"}
	_, err := r.SaveProfile(context.Background(), current, map[string]any{"bio": "updated"})

	require.Error(t, err)
	assert.Nil(t, d.myPatch)
}
