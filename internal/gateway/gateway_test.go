package gateway

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xGitteth/Exhibit-sub000/internal/config"
	"github.com/0xGitteth/Exhibit-sub000/internal/container"
	"github.com/0xGitteth/Exhibit-sub000/internal/localstate"
	"github.com/0xGitteth/Exhibit-sub000/internal/models"
	"github.com/0xGitteth/Exhibit-sub000/internal/query"
	"github.com/0xGitteth/Exhibit-sub000/internal/routes"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestServer boots the full API on the in-memory backend, seeded with the
// demo accounts, exactly as a server without a MongoDB URI would run.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:              "0",
		Environment:       "test",
		LogLevel:          "error",
		JWTSecret:         "gateway-test-secret",
		FrontendURL:       "http://localhost:3000",
		DataDir:           t.TempDir(),
		UploadDir:         t.TempDir(),
		SampleDataEnabled: true,
	}

	c := container.NewContainer(testLogger(), cfg, nil, nil)
	require.NoError(t, c.AuthService.SeedDemoAccounts(context.Background()))

	srv := httptest.NewServer(routes.SetupRoutes(c))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(baseURL string, sampleData bool) *Client {
	logger := testLogger()
	store := localstate.NewSessionStore(localstate.NewMemKV(), logger)
	return NewClient(baseURL, store, sampleData, logger)
}

func loginAs(t *testing.T, c *Client, email string) *models.User {
	t.Helper()
	user, token, err := c.Auth.Login(context.Background(), email, "exhibit-demo")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return user
}

func TestLoginWithDemoCredentials(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(srv.URL, false)

	user := loginAs(t, c, "iris@exhibit.app")
	assert.Equal(t, "iris@exhibit.app", user.Email)
	assert.Equal(t, "Iris Vane", user.DisplayName)
	assert.True(t, user.OnboardingComplete)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(srv.URL, false)

	_, _, err := c.Auth.Login(context.Background(), "iris@exhibit.app", "wrong")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(srv.URL, false)

	_, err := c.Posts.Filter(context.Background(), query.Filter{})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestMeFetchesThenCaches(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(srv.URL, false)
	loginAs(t, c, "iris@exhibit.app")

	user, err := c.Users.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "iris@exhibit.app", user.Email)

	cached, ok := c.Session().Current()
	require.True(t, ok)
	assert.Equal(t, user.Email, cached.Email)

	// Once cached, Me serves the session copy without a round trip.
	cached.DisplayName = "Locally Edited"
	require.NoError(t, c.Session().Save(cached))

	again, err := c.Users.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Locally Edited", again.DisplayName)
}

func TestUpdateMyUserDataRefreshesSession(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(srv.URL, false)
	loginAs(t, c, "iris@exhibit.app")

	user, err := c.Users.UpdateMyUserData(context.Background(), map[string]any{"bio": "New bio"})
	require.NoError(t, err)
	assert.Equal(t, "New bio", user.Bio)
	assert.Equal(t, "Iris Vane", user.DisplayName)

	cached, ok := c.Session().Current()
	require.True(t, ok)
	assert.Equal(t, "New bio", cached.Bio)
}

func TestRegisterCreatesOnboardedAccount(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(srv.URL, false)

	payload := map[string]any{
		"email":        "nova@exhibit.app",
		"display_name": "Nova Quill",
		"roles":        []string{models.RoleModel},
		"password":     "exhibit-demo",
	}
	user, token, err := c.Auth.Register(context.Background(), payload)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, "nova@exhibit.app", user.Email)
	assert.True(t, user.OnboardingComplete)
	assert.Equal(t, models.RoleModel, user.PrimaryRole)

	// The fresh token must work against a protected route.
	me, err := c.Users.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "nova@exhibit.app", me.Email)
}

func TestCreatePostAppliesStyleWarnings(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(srv.URL, false)
	loginAs(t, c, "iris@exhibit.app")

	created, err := c.Posts.Create(context.Background(), models.Post{
		Title:            "Velvet light",
		ImageURL:         "https://img.exhibit.app/velvet.jpg",
		PhotographyStyle: "boudoir",
		IsSensitive:      1,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "iris@exhibit.app", created.CreatedBy)
	assert.Contains(t, created.TriggerWarnings, "artistic_nudity")

	// The stored record round-trips through a filter by id unchanged.
	got, err := c.Posts.Filter(context.Background(), query.Filter{"id": created.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, created.TriggerWarnings, got[0].TriggerWarnings)
	assert.Equal(t, 1, got[0].IsSensitive)
}

func TestCreatePostRejectsMissingImage(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(srv.URL, false)
	loginAs(t, c, "iris@exhibit.app")

	_, err := c.Posts.Create(context.Background(), models.Post{Title: "No image"})
	require.Error(t, err)
}

func TestFilterPostsBySensitivity(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(srv.URL, false)
	loginAs(t, c, "iris@exhibit.app")

	_, err := c.Posts.Create(context.Background(), models.Post{
		Title: "Safe", ImageURL: "https://img.exhibit.app/safe.jpg",
	})
	require.NoError(t, err)
	_, err = c.Posts.Create(context.Background(), models.Post{
		Title: "Sensitive", ImageURL: "https://img.exhibit.app/sensitive.jpg", IsSensitive: 1,
	})
	require.NoError(t, err)

	got, err := c.Posts.Filter(context.Background(), query.Filter{"is_sensitive": 0})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Safe", got[0].Title)
}

func TestFilterPostsNewestFirst(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(srv.URL, false)
	loginAs(t, c, "iris@exhibit.app")

	older := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	_, err := c.Posts.Create(context.Background(), models.Post{
		Title: "Older", ImageURL: "https://img.exhibit.app/older.jpg", CreatedDate: older,
	})
	require.NoError(t, err)
	_, err = c.Posts.Create(context.Background(), models.Post{
		Title: "Newer", ImageURL: "https://img.exhibit.app/newer.jpg", CreatedDate: newer,
	})
	require.NoError(t, err)

	got, err := c.Posts.Filter(context.Background(), query.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Newer", got[0].Title)
	assert.Equal(t, "Older", got[1].Title)
}

func TestLikeLifecycle(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(srv.URL, false)
	loginAs(t, c, "elena@exhibit.app")

	post, err := c.Posts.Create(context.Background(), models.Post{
		Title: "Likable", ImageURL: "https://img.exhibit.app/likable.jpg",
	})
	require.NoError(t, err)

	like, err := c.Likes.Create(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, like.PostID)
	assert.Equal(t, "elena@exhibit.app", like.UserEmail)

	likes, err := c.Likes.Filter(context.Background(), query.Filter{"post_id": post.ID})
	require.NoError(t, err)
	require.Len(t, likes, 1)

	require.NoError(t, c.Likes.Delete(context.Background(), like.ID))

	likes, err = c.Likes.Filter(context.Background(), query.Filter{"post_id": post.ID})
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestSavedPostLifecycle(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(srv.URL, false)
	loginAs(t, c, "elena@exhibit.app")

	post, err := c.Posts.Create(context.Background(), models.Post{
		Title: "Saveable", ImageURL: "https://img.exhibit.app/saveable.jpg",
	})
	require.NoError(t, err)

	saved, err := c.SavedPosts.Create(context.Background(), post.ID)
	require.NoError(t, err)

	all, err := c.SavedPosts.Filter(context.Background(), query.Filter{"user_email": "elena@exhibit.app"})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, post.ID, all[0].PostID)

	require.NoError(t, c.SavedPosts.Delete(context.Background(), saved.ID))

	all, err = c.SavedPosts.Filter(context.Background(), query.Filter{"user_email": "elena@exhibit.app"})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUploadStoresFileLocally(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(srv.URL, false)
	loginAs(t, c, "iris@exhibit.app")

	url, err := c.Uploads.Upload(context.Background(), "shot.jpg", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))
}

func TestUploadRequiresAuth(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(srv.URL, false)

	_, err := c.Uploads.Upload(context.Background(), "shot.jpg", strings.NewReader("jpeg bytes"))
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestCommunitiesFromServer(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(srv.URL, false)
	loginAs(t, c, "iris@exhibit.app")

	communities, err := c.Communities.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, communities, len(models.SampleCommunities))
}

func TestCommunitiesFallBackToSampleData(t *testing.T) {
	// An unreachable server with sample data enabled serves the reference
	// list instead of an error.
	c := newTestClient("http://127.0.0.1:1", true)

	communities, err := c.Communities.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SampleCommunities, communities)
}

func TestCommunitiesSurfaceErrorWithoutSampleData(t *testing.T) {
	c := newTestClient("http://127.0.0.1:1", false)

	_, err := c.Communities.List(context.Background())
	require.Error(t, err)
}
