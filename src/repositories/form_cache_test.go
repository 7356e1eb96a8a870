package repositories_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Jafre0912/ReactNativeFORM/src/models"
	"github.com/Jafre0912/ReactNativeFORM/src/repositories"
	"github.com/Jafre0912/ReactNativeFORM/src/repositories/repotest"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

// unreachableRedis points at a closed port so every command fails fast.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestCachedFormRepositoryReadThrough(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newMiniredis(t)
	inner := repotest.NewMemoryFormRepository()
	cached := repositories.NewCachedFormRepository(inner, rdb, time.Minute)

	id, err := cached.Save(ctx, &models.Form{
		Title:       "Survey",
		Description: "Pets",
		Questions: []models.Question{
			{Type: "Text", Label: "Name", Options: []string{}},
			{Type: "CheckBox", Label: "Pets", Options: []string{"Cat", "Dog"}, Image: "/uploads/a.png"},
		},
	})
	require.NoError(t, err)

	key := "form:" + id.Hex()
	assert.False(t, mr.Exists(key))

	miss, err := cached.FindByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))

	// อ่านครั้งที่สองต้องมาจาก cache เท่านั้น
	inner.Err = errors.New("store unavailable")
	hit, err := cached.FindByID(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, miss.ID, hit.ID)
	assert.Equal(t, miss.Title, hit.Title)
	assert.Equal(t, miss.Description, hit.Description)
	assert.Equal(t, miss.Questions, hit.Questions)
	// bson dates keep milliseconds only
	assert.WithinDuration(t, miss.CreatedAt, hit.CreatedAt, time.Millisecond)

	_, err = cached.FindAll(ctx)
	assert.Error(t, err, "only FindByID is cached")
}

func TestCachedFormRepositoryNotFoundIsNotCached(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newMiniredis(t)
	cached := repositories.NewCachedFormRepository(repotest.NewMemoryFormRepository(), rdb, time.Minute)

	missing := primitive.NewObjectID()
	_, err := cached.FindByID(ctx, missing)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.False(t, mr.Exists("form:"+missing.Hex()))
}

func TestCachedFormRepositoryDiscardsCorruptEntry(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newMiniredis(t)
	inner := repotest.NewMemoryFormRepository()
	cached := repositories.NewCachedFormRepository(inner, rdb, time.Minute)

	id, err := inner.Save(ctx, &models.Form{Title: "Survey", Questions: []models.Question{}})
	require.NoError(t, err)
	require.NoError(t, mr.Set("form:"+id.Hex(), "not bson"))

	form, err := cached.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Survey", form.Title)
}

func TestCachedFormRepositoryFallsBackToStore(t *testing.T) {
	ctx := context.Background()
	inner := repotest.NewMemoryFormRepository()
	cached := repositories.NewCachedFormRepository(inner, unreachableRedis(t), time.Minute)

	id, err := cached.Save(ctx, &models.Form{
		Title:     "Survey",
		Questions: []models.Question{{Type: "Text", Label: "Name", Options: []string{}}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inner.Len())

	form, err := cached.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Survey", form.Title)

	all, err := cached.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = cached.FindByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestFormActivityStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 16, 9, 30, 0, 123456789, time.UTC)

	t.Run("missing key reads as nil", func(t *testing.T) {
		_, rdb := newMiniredis(t)
		last, err := repositories.NewFormActivityStore(rdb).LastResponseAt(ctx, primitive.NewObjectID())
		require.NoError(t, err)
		assert.Nil(t, last)
	})

	t.Run("older time does not overwrite a newer one", func(t *testing.T) {
		mr, rdb := newMiniredis(t)
		store := repositories.NewFormActivityStore(rdb)
		formID := primitive.NewObjectID()

		require.NoError(t, store.TouchLastResponse(ctx, formID, now))
		require.NoError(t, store.TouchLastResponse(ctx, formID, now.Add(-time.Hour)))

		last, err := store.LastResponseAt(ctx, formID)
		require.NoError(t, err)
		require.NotNil(t, last)
		assert.True(t, now.Equal(*last), "got %s", last)
		assert.True(t, mr.Exists("form:"+formID.Hex()+":lastResponseAt"))

		require.NoError(t, store.TouchLastResponse(ctx, formID, now.Add(time.Second)))
		last, err = store.LastResponseAt(ctx, formID)
		require.NoError(t, err)
		assert.True(t, now.Add(time.Second).Equal(*last))
	})

	t.Run("non UTC input is normalised", func(t *testing.T) {
		_, rdb := newMiniredis(t)
		store := repositories.NewFormActivityStore(rdb)
		formID := primitive.NewObjectID()
		bangkok := time.FixedZone("ICT", 7*60*60)

		require.NoError(t, store.TouchLastResponse(ctx, formID, now))
		// เวลาเดียวกันลบหนึ่งนาทีแต่อยู่คนละ timezone
		require.NoError(t, store.TouchLastResponse(ctx, formID, now.Add(-time.Minute).In(bangkok)))

		last, err := store.LastResponseAt(ctx, formID)
		require.NoError(t, err)
		assert.True(t, now.Equal(*last))
	})

	t.Run("concurrent touches keep the latest", func(t *testing.T) {
		_, rdb := newMiniredis(t)
		store := repositories.NewFormActivityStore(rdb)
		formID := primitive.NewObjectID()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				assert.NoError(t, store.TouchLastResponse(ctx, formID, now.Add(time.Duration(i)*time.Millisecond)))
			}(i)
		}
		wg.Wait()

		last, err := store.LastResponseAt(ctx, formID)
		require.NoError(t, err)
		assert.True(t, now.Add(19*time.Millisecond).Equal(*last))
	})

	t.Run("unavailable redis", func(t *testing.T) {
		store := repositories.NewFormActivityStore(unreachableRedis(t))
		_, err := store.LastResponseAt(ctx, primitive.NewObjectID())
		assert.Error(t, err)
		assert.Error(t, store.TouchLastResponse(ctx, primitive.NewObjectID(), now))
	})
}
