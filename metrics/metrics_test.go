package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		err       error
		errorType string
	}{
		{name: "successful query", operation: "list"},
		{name: "plain failure", operation: "category_counts", err: errors.New("no such table"), errorType: "query"},
		{name: "timeout", operation: "calories", err: fmt.Errorf("scan: %w", context.DeadlineExceeded), errorType: "timeout"},
		{name: "canceled", operation: "equipment", err: context.Canceled, errorType: "canceled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var before float64
			if tt.err != nil {
				before = testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, "exercises", tt.errorType))
			}

			RecordDBQuery(tt.operation, "exercises", 5*time.Millisecond, tt.err)

			if tt.err != nil {
				after := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, "exercises", tt.errorType))
				assert.Equal(t, before+1, after)
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/api/exercises", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/api/exercises", "200", 12*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	assert.Equal(t, before+1, testutil.ToFloat64(APIActiveRequests))

	TrackActiveRequest(false)
	assert.Equal(t, before, testutil.ToFloat64(APIActiveRequests))
}
