package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-smtp-mailer/internal/mock"
	"github.com/MKhiriev/go-smtp-mailer/internal/store"
)

var errQuery = errors.New("query failed")

func twoRetries() retry.Backoff {
	return retry.WithMaxRetries(2, retry.NewConstant(time.Millisecond))
}

// countingFn fails with errQuery for the first failures calls, then succeeds.
func countingFn(failures int, calls *int) func(context.Context) error {
	return func(context.Context) error {
		*calls++
		if *calls <= failures {
			return errQuery
		}
		return nil
	}
}

func TestDB_WithRetry(t *testing.T) {
	tests := []struct {
		name      string
		failures  int
		classify  []store.ErrorClassification
		wantCalls int
		wantErr   error
	}{
		{
			name:      "success needs no classification",
			failures:  0,
			wantCalls: 1,
		},
		{
			name:      "retryable error then success",
			failures:  1,
			classify:  []store.ErrorClassification{store.Retryable},
			wantCalls: 2,
		},
		{
			name:      "non-retryable error stops at once",
			failures:  5,
			classify:  []store.ErrorClassification{store.NonRetryable},
			wantCalls: 1,
			wantErr:   errQuery,
		},
		{
			name:      "retryable error until retries run out",
			failures:  5,
			classify:  []store.ErrorClassification{store.Retryable, store.Retryable, store.Retryable},
			wantCalls: 3,
			wantErr:   errQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			classifier := mock.NewMockErrorClassificator(ctrl)

			var prev *gomock.Call
			for _, c := range tt.classify {
				call := classifier.EXPECT().Classify(errQuery).Return(c)
				if prev != nil {
					call.After(prev)
				}
				prev = call
			}

			db := store.NewTestDB(nil, classifier, twoRetries)

			var calls int
			err := db.WithRetry(context.Background(), countingFn(tt.failures, &calls))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestDB_WithRetry_NoClassifier(t *testing.T) {
	db := store.NewTestDB(nil, nil, twoRetries)

	var calls int
	err := db.WithRetry(context.Background(), countingFn(5, &calls))

	assert.ErrorIs(t, err, errQuery)
	assert.Equal(t, 1, calls)
}

func TestDB_WithRetry_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	classifier := mock.NewMockErrorClassificator(ctrl)
	classifier.EXPECT().Classify(errQuery).Return(store.Retryable).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	db := store.NewTestDB(nil, classifier, func() retry.Backoff {
		return retry.WithMaxRetries(10, retry.NewConstant(time.Second))
	})

	var calls int
	err := db.WithRetry(ctx, countingFn(100, &calls))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}
