package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// activityTimeLayout is fixed width in UTC so stored values sort as strings.
const activityTimeLayout = "2006-01-02T15:04:05.000000000Z"

// setIfLater stores ARGV[1] unless the key already holds a value that sorts
// at or after it. Returns 1 when the value was written.
var setIfLater = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if cur and cur >= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[1])
return 1
`)

// FormActivityStore keeps per-form activity markers in Redis.
type FormActivityStore struct {
	rdb *redis.Client
}

func NewFormActivityStore(rdb *redis.Client) *FormActivityStore {
	return &FormActivityStore{rdb: rdb}
}

func lastResponseKey(formID primitive.ObjectID) string {
	return "form:" + formID.Hex() + ":lastResponseAt"
}

// TouchLastResponse records at as the form's latest submission time unless a
// later one is already stored. The compare and the write run as one script,
// so concurrent workers cannot move the value backwards.
func (s *FormActivityStore) TouchLastResponse(ctx context.Context, formID primitive.ObjectID, at time.Time) error {
	value := at.UTC().Format(activityTimeLayout)
	return setIfLater.Run(ctx, s.rdb, []string{lastResponseKey(formID)}, value).Err()
}

// LastResponseAt returns nil when nothing has been recorded for the form.
func (s *FormActivityStore) LastResponseAt(ctx context.Context, formID primitive.ObjectID) (*time.Time, error) {
	raw, err := s.rdb.Get(ctx, lastResponseKey(formID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	at, err := time.Parse(activityTimeLayout, raw)
	if err != nil {
		return nil, err
	}
	return &at, nil
}
