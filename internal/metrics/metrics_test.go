package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSale(t *testing.T) {
	settled := testutil.ToFloat64(salesSettled)
	revenue := testutil.ToFloat64(salesRevenue)

	RecordSale(15000)
	RecordSale(0)

	assert.Equal(t, settled+2, testutil.ToFloat64(salesSettled))
	assert.Equal(t, revenue+15000, testutil.ToFloat64(salesRevenue))
}

func TestRecordLeadMovedLabels(t *testing.T) {
	before := testutil.ToFloat64(leadsMoved.WithLabelValues("true"))
	RecordLeadMoved(true)
	assert.Equal(t, before+1, testutil.ToFloat64(leadsMoved.WithLabelValues("true")))
}

func TestRecordRequest(t *testing.T) {
	c := httpRequestsTotal.WithLabelValues("GET", "/api/v1/leads", "200")
	before := testutil.ToFloat64(c)
	RecordRequest("GET", "/api/v1/leads", 200, 15*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
