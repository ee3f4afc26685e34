package storage_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"restaurant-client/cart-svc/internal/domain"
	"restaurant-client/cart-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryVisitStore(t *testing.T) {
	store := storage.NewMemoryVisitStore()
	ctx := context.Background()

	last, err := store.LastRestaurant(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, last)

	require.NoError(t, store.SetLastRestaurant(ctx, 42, "9"))
	require.NoError(t, store.SetLastRestaurant(ctx, 42, "3"))

	last, err = store.LastRestaurant(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "3", last)

	other, err := store.LastRestaurant(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func setupRedisStore(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *storage.RedisVisitStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, storage.NewRedisVisitStore(client, ttl)
}

func TestRedisVisitStore_RoundTrip(t *testing.T) {
	mr, store := setupRedisStore(t, 0)
	ctx := context.Background()

	last, err := store.LastRestaurant(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, last)

	require.NoError(t, store.SetLastRestaurant(ctx, 42, "9"))

	value, err := mr.Get("cart:last_restaurant:42")
	require.NoError(t, err)
	assert.Equal(t, "9", value)

	last, err = store.LastRestaurant(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "9", last)
}

func TestRedisVisitStore_TTL(t *testing.T) {
	mr, store := setupRedisStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.SetLastRestaurant(ctx, 42, "9"))
	assert.Equal(t, time.Hour, mr.TTL("cart:last_restaurant:42"))

	mr.FastForward(2 * time.Hour)

	last, err := store.LastRestaurant(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, last)
}

func TestRedisVisitStore_Unavailable(t *testing.T) {
	mr, store := setupRedisStore(t, 0)
	mr.Close()

	_, err := store.LastRestaurant(context.Background(), 42)
	assert.Error(t, err)
}

func TestPostgresVisitStore_LastRestaurant(t *testing.T) {
	tests := []struct {
		name          string
		prepare       func(mock sqlmock.Sqlmock)
		expected      string
		expectedError bool
	}{
		{
			name: "stored_value",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT value FROM client_state").
					WithArgs(int64(42), "last_restaurant").
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("9"))
			},
			expected: "9",
		},
		{
			name: "no_row_means_unset",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT value FROM client_state").
					WithArgs(int64(42), "last_restaurant").
					WillReturnError(sql.ErrNoRows)
			},
			expected: "",
		},
		{
			name: "db_error",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT value FROM client_state").
					WithArgs(int64(42), "last_restaurant").
					WillReturnError(sql.ErrConnDone)
			},
			expectedError: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			testCase.prepare(mock)
			store := storage.NewPostgresVisitStore(db)

			last, err := store.LastRestaurant(context.Background(), 42)
			if testCase.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testCase.expected, last)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresVisitStore_SetLastRestaurant(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO client_state").
		WithArgs(int64(42), "last_restaurant", "3").
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := storage.NewPostgresVisitStore(db)
	require.NoError(t, store.SetLastRestaurant(context.Background(), 42, "3"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresVisitStore_EnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS client_state").
		WillReturnResult(sqlmock.NewResult(0, 0))

	store := storage.NewPostgresVisitStore(db)
	require.NoError(t, store.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

type recordingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaPublisher_PublishCartEvent(t *testing.T) {
	writer := &recordingWriter{}
	publisher := storage.NewKafkaPublisher(writer)

	event := domain.CartEvent{
		Type:         domain.EventRestaurantSwitched,
		UserID:       42,
		RestaurantID: 3,
		PreviousID:   9,
		Timestamp:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, publisher.PublishCartEvent(context.Background(), event))
	require.Len(t, writer.messages, 1)

	message := writer.messages[0]
	assert.Equal(t, "42", string(message.Key))
	require.Len(t, message.Headers, 1)
	assert.Equal(t, "event_type", message.Headers[0].Key)
	assert.Equal(t, domain.EventRestaurantSwitched, string(message.Headers[0].Value))

	var decoded domain.CartEvent
	require.NoError(t, json.Unmarshal(message.Value, &decoded))
	assert.Equal(t, event, decoded)
}

func TestKafkaPublisher_WriterError(t *testing.T) {
	writer := &recordingWriter{err: errors.New("broker unavailable")}
	publisher := storage.NewKafkaPublisher(writer)

	err := publisher.PublishCartEvent(context.Background(), domain.CartEvent{Type: domain.EventCartCleared, UserID: 1})
	assert.EqualError(t, err, "broker unavailable")
}
