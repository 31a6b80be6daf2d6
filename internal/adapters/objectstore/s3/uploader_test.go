package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	got  *awss3.PutObjectInput
	body string
	err  error
}

func (f *fakePutter) PutObject(_ context.Context, in *awss3.PutObjectInput, _ ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
	f.got = in
	if in.Body != nil {
		b, _ := io.ReadAll(in.Body)
		f.body = string(b)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &awss3.PutObjectOutput{}, nil
}

func TestUploader_PutsObject(t *testing.T) {
	fake := &fakePutter{}
	u := &Uploader{client: fake}

	err := u.Upload(context.Background(), "catcollector", "ab12cd34.png", strings.NewReader("img"), 3, "image/png")
	require.NoError(t, err)

	assert.Equal(t, "catcollector", aws.ToString(fake.got.Bucket))
	assert.Equal(t, "ab12cd34.png", aws.ToString(fake.got.Key))
	assert.Equal(t, int64(3), aws.ToInt64(fake.got.ContentLength))
	assert.Equal(t, "image/png", aws.ToString(fake.got.ContentType))
	assert.Equal(t, "img", fake.body)
}

func TestUploader_WrapsClientError(t *testing.T) {
	boom := errors.New("access denied")
	u := &Uploader{client: &fakePutter{err: boom}}

	err := u.Upload(context.Background(), "b", "k", strings.NewReader("x"), 1, "")
	assert.ErrorIs(t, err, boom)
}

func TestNew_RequiresBothStaticKeys(t *testing.T) {
	_, err := New(context.Background(), Options{Region: "us-east-2", AccessKey: "only-access"})
	assert.Error(t, err)
}
