package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveMatch(t *testing.T) {
	before := testutil.ToFloat64(Matches.WithLabelValues("no_common_days"))

	ObserveMatch("no_common_days", time.Millisecond)
	ObserveMatch("no_common_days", time.Millisecond)

	require.Equal(t, before+2, testutil.ToFloat64(Matches.WithLabelValues("no_common_days")))
}

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/job", "200"))

	ObserveRequest("GET", "/job", 200, time.Millisecond)

	require.Equal(t, before+1, testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/job", "200")))
}

func TestCacheHit(t *testing.T) {
	hits := testutil.ToFloat64(CacheLookups.WithLabelValues("hit"))
	misses := testutil.ToFloat64(CacheLookups.WithLabelValues("miss"))

	CacheHit(true)
	CacheHit(false)
	CacheHit(false)

	require.Equal(t, hits+1, testutil.ToFloat64(CacheLookups.WithLabelValues("hit")))
	require.Equal(t, misses+2, testutil.ToFloat64(CacheLookups.WithLabelValues("miss")))
}
