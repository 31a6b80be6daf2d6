package photos

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"cat-collector/internal/platform/apperrors"
	"cat-collector/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) Upload(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, bucket, key, body, size, contentType)
	return args.Error(0)
}

type memRepo struct {
	items   []Photo
	failErr error
}

func (r *memRepo) Create(_ context.Context, p Photo) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.items = append(r.items, p)
	return nil
}

func (r *memRepo) ListByCat(_ context.Context, catID string) ([]Photo, error) {
	out := make([]Photo, 0)
	for _, p := range r.items {
		if p.CatID == catID {
			out = append(out, p)
		}
	}
	return out, nil
}

// gate: solo "owner" es dueño de "cat-1".
type gate struct{}

func (gate) AuthorizeCat(_ context.Context, catID, userID string) error {
	if catID != "cat-1" {
		return apperrors.ErrNotFound
	}
	if userID != "owner" {
		return apperrors.ErrForbidden
	}
	return nil
}

func newTestService(up *mockUploader, repo *memRepo, log logger.Logger) *Service {
	svc := NewService(repo, gate{}, up, Config{
		BaseURL:       "https://s3.us-east-2.amazonaws.com/",
		Bucket:        "catcollector",
		UploadTimeout: 50 * time.Millisecond,
	}, log)
	svc.newToken = func() string { return "ab12cd34" }
	return svc
}

func TestStorageKey(t *testing.T) {
	assert.Equal(t, "ab12cd34.png", StorageKey("ab12cd34", "lolo.png"))
	assert.Equal(t, "ab12cd34.gz", StorageKey("ab12cd34", "archive.tar.gz"))
	assert.Equal(t, "ab12cd34", StorageKey("ab12cd34", "README"))
}

func TestRandomToken_Length(t *testing.T) {
	tok := randomToken()
	assert.Len(t, tok, tokenLen)
	assert.NotEqual(t, tok, randomToken())
}

func TestPublicURL_NoDoubleSlash(t *testing.T) {
	assert.Equal(t, "https://s3.us-east-2.amazonaws.com/b/k.png", PublicURL("https://s3.us-east-2.amazonaws.com/", "b", "k.png"))
	assert.Equal(t, "http://minio:9000/b/k.png", PublicURL("http://minio:9000", "b", "k.png"))
}

func TestIngest_Success(t *testing.T) {
	up := &mockUploader{}
	repo := &memRepo{}
	svc := newTestService(up, repo, nil)

	up.On("Upload", mock.Anything, "catcollector", "ab12cd34.png", mock.Anything, int64(3), "image/png").Return(nil).Once()

	p, ok, err := svc.Ingest(context.Background(), "owner", "cat-1", strings.NewReader("img"), 3, "lolo.png")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "https://s3.us-east-2.amazonaws.com/catcollector/ab12cd34.png", p.URL)
	assert.Equal(t, "ab12cd34.png", p.Key)
	assert.Len(t, repo.items, 1)
	up.AssertExpectations(t)
}

func TestIngest_NoFileIsNoop(t *testing.T) {
	up := &mockUploader{}
	repo := &memRepo{}
	svc := newTestService(up, repo, nil)

	_, ok, err := svc.Ingest(context.Background(), "owner", "cat-1", nil, 0, "")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, repo.items)
	up.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestIngest_UploadFailureIsAbsorbedAndLogged(t *testing.T) {
	up := &mockUploader{}
	repo := &memRepo{}
	var buf bytes.Buffer
	svc := newTestService(up, repo, logger.New(logger.Options{Level: logger.Debug, Output: &buf}))

	up.On("Upload", mock.Anything, "catcollector", "ab12cd34.jpg", mock.Anything, int64(1), "image/jpeg").
		Return(errors.New("access denied")).Once()

	_, ok, err := svc.Ingest(context.Background(), "owner", "cat-1", strings.NewReader("x"), 1, "raven.jpg")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, repo.items)

	line := buf.String()
	assert.Contains(t, line, "level=error")
	assert.Contains(t, line, "key=ab12cd34.jpg")
	assert.Contains(t, line, "bucket=catcollector")
	assert.Contains(t, line, "cat_id=cat-1")
}

func TestIngest_UploadTimeoutIsAbsorbed(t *testing.T) {
	up := &mockUploader{}
	repo := &memRepo{}
	svc := newTestService(up, repo, nil)

	up.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			<-ctx.Done()
		}).
		Return(context.DeadlineExceeded).Once()

	start := time.Now()
	_, ok, err := svc.Ingest(context.Background(), "owner", "cat-1", strings.NewReader("x"), 1, "slow.png")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Empty(t, repo.items)
}

func TestIngest_ForeignCatIsRejectedBeforeUpload(t *testing.T) {
	up := &mockUploader{}
	svc := newTestService(up, &memRepo{}, nil)

	_, ok, err := svc.Ingest(context.Background(), "stranger", "cat-1", strings.NewReader("x"), 1, "a.png")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.False(t, ok)
	up.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestIngest_SaveFailureAfterUploadIsReturned(t *testing.T) {
	up := &mockUploader{}
	boom := errors.New("db down")
	svc := newTestService(up, &memRepo{failErr: boom}, nil)

	up.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	_, ok, err := svc.Ingest(context.Background(), "owner", "cat-1", strings.NewReader("x"), 1, "a.png")
	assert.ErrorIs(t, err, boom)
	assert.False(t, ok)
}

func TestUpload_WrapsInUploadError(t *testing.T) {
	up := &mockUploader{}
	svc := newTestService(up, &memRepo{}, nil)
	up.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("nope")).Once()

	err := svc.upload(context.Background(), "k.png", strings.NewReader("x"), 1)

	var ue *apperrors.UploadError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "catcollector", ue.Bucket)
	assert.Equal(t, "k.png", ue.Key)
}
