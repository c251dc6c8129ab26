package tag

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/internal/testutil"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTags(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewTagService(NewTagRepository(db))

	tags, err := svc.GetTags(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)

	testutil.CreateTag(t, db, "Lunch", "lunch")
	testutil.CreateTag(t, db, "Breakfast", "breakfast")

	tags, err = svc.GetTags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "breakfast", tags[0].Slug)
	assert.Equal(t, "lunch", tags[1].Slug)
}

func TestGetTag(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewTagService(NewTagRepository(db))
	lunch := testutil.CreateTag(t, db, "Lunch", "lunch")

	tag, err := svc.GetTag(context.Background(), lunch.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TagResponse{ID: lunch.ID, Name: "Lunch", Slug: "lunch"}, tag)

	_, err = svc.GetTag(context.Background(), lunch.ID+1)
	assert.ErrorIs(t, err, domain.ErrTagNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
