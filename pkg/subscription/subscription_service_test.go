package subscription

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/internal/testutil"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestFollow(t *testing.T) {
	db := testutil.NewDB(t)
	reader := testutil.CreateUser(t, db, "reader")
	author := testutil.CreateUser(t, db, "author")
	older := testutil.CreateRecipe(t, db, author, "older", nil, nil)
	newer := testutil.CreateRecipe(t, db, author, "newer", nil, nil)
	svc := NewSubscriptionService(NewSubscriptionRepository(db))
	ctx := context.Background()

	res, err := svc.Follow(ctx, reader.ID, author.ID, intPtr(1))
	require.NoError(t, err)
	assert.Equal(t, author.ID, res.ID)
	assert.True(t, res.IsSubscribed)
	assert.Equal(t, int64(2), res.RecipesCount)
	require.Len(t, res.Recipes, 1)
	assert.Equal(t, newer.ID, res.Recipes[0].ID)

	_, err = svc.Follow(ctx, reader.ID, author.ID, nil)
	assert.ErrorIs(t, err, domain.ErrAlreadySubscribed)
	assert.ErrorIs(t, err, domain.ErrConflict)

	var follows int64
	require.NoError(t, db.Model(&entities.Follow{}).Count(&follows).Error)
	assert.Equal(t, int64(1), follows)

	all, _, err := svc.ListSubscriptions(ctx, reader.ID, domain.Pagination{Page: 1, Limit: 10}, nil)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, []domain.RecipeShort{
		{ID: newer.ID, Name: "newer", Image: newer.Image, CookingTime: newer.CookingTime},
		{ID: older.ID, Name: "older", Image: older.Image, CookingTime: older.CookingTime},
	}, all[0].Recipes)
}

// staleRepository never sees an existing follow, so Follow always reaches
// the insert and relies on the unique index.
type staleRepository struct {
	SubscriptionRepository
}

func (r staleRepository) Exists(context.Context, uint, uint) (bool, error) {
	return false, nil
}

func (r staleRepository) Transaction(ctx context.Context, fn func(repo SubscriptionRepository) error) error {
	return r.SubscriptionRepository.Transaction(ctx, func(tx SubscriptionRepository) error {
		return fn(staleRepository{tx})
	})
}

func TestFollowDuplicateInsertIsConflict(t *testing.T) {
	db := testutil.NewDB(t)
	reader := testutil.CreateUser(t, db, "reader")
	author := testutil.CreateUser(t, db, "author")
	svc := NewSubscriptionService(staleRepository{NewSubscriptionRepository(db)})
	ctx := context.Background()

	_, err := svc.Follow(ctx, reader.ID, author.ID, nil)
	require.NoError(t, err)

	_, err = svc.Follow(ctx, reader.ID, author.ID, nil)
	assert.ErrorIs(t, err, domain.ErrAlreadySubscribed)
	assert.ErrorIs(t, err, domain.ErrConflict)

	var follows int64
	require.NoError(t, db.Model(&entities.Follow{}).Count(&follows).Error)
	assert.Equal(t, int64(1), follows)
}

func TestFollowRejects(t *testing.T) {
	db := testutil.NewDB(t)
	reader := testutil.CreateUser(t, db, "reader")
	svc := NewSubscriptionService(NewSubscriptionRepository(db))
	ctx := context.Background()

	_, err := svc.Follow(ctx, reader.ID, reader.ID, nil)
	assert.ErrorIs(t, err, domain.ErrSelfSubscription)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Follow(ctx, reader.ID, 9999, nil)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var follows int64
	require.NoError(t, db.Model(&entities.Follow{}).Count(&follows).Error)
	assert.Zero(t, follows)
}

func TestSelfFollowIsRejectedByStorage(t *testing.T) {
	db := testutil.NewDB(t)
	reader := testutil.CreateUser(t, db, "reader")

	err := NewSubscriptionRepository(db).Create(context.Background(), reader.ID, reader.ID)
	assert.Error(t, err)
}

func TestUnfollow(t *testing.T) {
	db := testutil.NewDB(t)
	reader := testutil.CreateUser(t, db, "reader")
	author := testutil.CreateUser(t, db, "author")
	svc := NewSubscriptionService(NewSubscriptionRepository(db))
	ctx := context.Background()

	err := svc.Unfollow(ctx, reader.ID, author.ID)
	assert.ErrorIs(t, err, domain.ErrNotSubscribed)
	assert.ErrorIs(t, err, domain.ErrNotLinked)

	_, err = svc.Follow(ctx, reader.ID, author.ID, nil)
	require.NoError(t, err)
	require.NoError(t, svc.Unfollow(ctx, reader.ID, author.ID))

	assert.ErrorIs(t, svc.Unfollow(ctx, reader.ID, 9999), domain.ErrUserNotFound)
}

func TestListSubscriptions(t *testing.T) {
	db := testutil.NewDB(t)
	reader := testutil.CreateUser(t, db, "reader")
	zoe := testutil.CreateUser(t, db, "zoe")
	bob := testutil.CreateUser(t, db, "bob")
	testutil.CreateUser(t, db, "stranger")
	for i := 0; i < 3; i++ {
		testutil.CreateRecipe(t, db, bob, "bob-recipe-"+string(rune('a'+i)), nil, nil)
	}
	svc := NewSubscriptionService(NewSubscriptionRepository(db))
	ctx := context.Background()

	for _, author := range []*entities.User{zoe, bob} {
		_, err := svc.Follow(ctx, reader.ID, author.ID, nil)
		require.NoError(t, err)
	}

	res, count, err := svc.ListSubscriptions(ctx, reader.ID, domain.Pagination{Page: 1, Limit: 10}, intPtr(2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	require.Len(t, res, 2)

	assert.Equal(t, "bob", res[0].Username)
	assert.True(t, res[0].IsSubscribed)
	assert.Equal(t, int64(3), res[0].RecipesCount)
	assert.Len(t, res[0].Recipes, 2)

	assert.Equal(t, "zoe", res[1].Username)
	assert.Equal(t, int64(0), res[1].RecipesCount)
	assert.Empty(t, res[1].Recipes)

	page, count, err := svc.ListSubscriptions(ctx, reader.ID, domain.Pagination{Page: 2, Limit: 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	require.Len(t, page, 1)
	assert.Equal(t, "zoe", page[0].Username)

	none, count, err := svc.ListSubscriptions(ctx, zoe.ID, domain.Pagination{Page: 1, Limit: 10}, nil)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, none)
}

func TestGetRecentRecipesRanksPerAuthor(t *testing.T) {
	db := testutil.NewDB(t)
	anna := testutil.CreateUser(t, db, "anna")
	carl := testutil.CreateUser(t, db, "carl")
	annaOld := testutil.CreateRecipe(t, db, anna, "anna-old", nil, nil)
	annaNew := testutil.CreateRecipe(t, db, anna, "anna-new", nil, nil)
	carlOnly := testutil.CreateRecipe(t, db, carl, "carl-only", nil, nil)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()
	ids := []uint{anna.ID, carl.ID}

	tests := []struct {
		name  string
		limit *int
		want  map[uint][]uint
	}{
		{"unbounded", nil, map[uint][]uint{anna.ID: {annaNew.ID, annaOld.ID}, carl.ID: {carlOnly.ID}}},
		{"one each", intPtr(1), map[uint][]uint{anna.ID: {annaNew.ID}, carl.ID: {carlOnly.ID}}},
		{"zero", intPtr(0), map[uint][]uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recent, err := repo.GetRecentRecipes(ctx, ids, tt.limit)
			require.NoError(t, err)

			got := map[uint][]uint{}
			for authorID, recipes := range recent {
				for _, recipe := range recipes {
					got[authorID] = append(got[authorID], recipe.ID)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
