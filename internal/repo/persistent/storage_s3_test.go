package persistent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/andreyxaxa/Social-Submissions/pkg/s3client"
	"github.com/andreyxaxa/Social-Submissions/pkg/types/errs"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

func TestS3ObjectURLRoundTrip(t *testing.T) {
	base := "https://bucket.s3.eu-west-1.amazonaws.com"

	key := objectKey("submissions", "abc.png")
	require.Equal(t, "submissions/abc.png", key)

	ref := objectURL(base, key)
	require.Equal(t, "https://bucket.s3.eu-west-1.amazonaws.com/submissions/abc.png", ref)

	got, ok := keyFromURL(base, ref)
	require.True(t, ok)
	require.Equal(t, key, got)
}

func TestS3KeyFromForeignURL(t *testing.T) {
	base := "https://bucket.example.com"

	for _, ref := range []string{
		"https://other.example.com/submissions/a.png",
		"https://bucket.example.com/",
		"/uploads/a.png",
	} {
		_, ok := keyFromURL(base, ref)
		require.False(t, ok, ref)
	}
}

func TestS3ObjectKeyWithoutPrefix(t *testing.T) {
	require.Equal(t, "a.gif", objectKey("", "a.gif"))
}

func TestNewS3ImageStorageTrimsSlashes(t *testing.T) {
	st := NewS3ImageStorage(nil, "bucket", "https://cdn.example.com/", "/submissions/")

	require.Equal(t, "https://cdn.example.com", st.publicBaseURL)
	require.Equal(t, "submissions", st.keyPrefix)
	require.True(t, st.SupportsDelete())
	require.Equal(t, "s3", st.Name())
}

// fakeS3 answers every DeleteObject with 204, like S3 does for missing keys too.
type fakeS3 struct {
	mu       sync.Mutex
	requests []string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, req.Method+" "+req.URL.Path)
	f.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func newFakeS3Storage(t *testing.T) (*S3ImageStorage, *fakeS3) {
	t.Helper()

	fake := &fakeS3{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client := s3.New(s3.Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String(srv.URL),
		UsePathStyle: true,
		Credentials:  credentials.NewStaticCredentialsProvider("key", "secret", ""),
	})

	return NewS3ImageStorage(&s3client.S3Client{Client: client}, "bucket", "https://cdn.example.com", "submissions"), fake
}

func TestS3DeleteMissingObjectSucceeds(t *testing.T) {
	st, fake := newFakeS3Storage(t)

	err := st.Delete(context.Background(), "https://cdn.example.com/submissions/gone.png")
	require.NoError(t, err)
	require.Equal(t, []string{"DELETE /bucket/submissions/gone.png"}, fake.requests)
}

func TestS3DeleteForeignReference(t *testing.T) {
	st, fake := newFakeS3Storage(t)

	err := st.Delete(context.Background(), "/uploads/a.png")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.Empty(t, fake.requests)
}
