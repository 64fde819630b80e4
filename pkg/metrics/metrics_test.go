package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricsCounters(t *testing.T) {
	m := New()

	m.SubmissionCreated()
	m.SubmissionCreated()
	m.SubmissionDeleted()
	m.ImageStored("local")
	m.StorageFailed("s3", "store")
	m.Rejected("too_many_files")

	require.Equal(t, 2.0, testutil.ToFloat64(m.created))
	require.Equal(t, 1.0, testutil.ToFloat64(m.deleted))
	require.Equal(t, 1.0, testutil.ToFloat64(m.imagesStored.WithLabelValues("local")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.storageFailures.WithLabelValues("s3", "store")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.rejected.WithLabelValues("too_many_files")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	require.NotPanics(t, func() {
		m.SubmissionCreated()
		m.SubmissionDeleted()
		m.ImageStored("local")
		m.StorageFailed("local", "delete")
		m.Rejected("extension")
	})
}
