package blobs

import (
	"context"
	"errors"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/campusdesk/internal/common"
	"github.com/dmitrijs2005/campusdesk/internal/submissions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 is an in-memory bucket. Listings are paged two keys at a time.
type fakeS3 struct {
	mu       sync.Mutex
	objects  map[string][]byte
	metadata map[string]map[string]string
	putErr   error
	listErr  error
	puts     int
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, metadata: map[string]map[string]string{}}
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{ContentLength: aws.Int64(int64(len(b)))}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(string(b)))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[aws.ToString(in.Key)] = b
	f.metadata[aws.ToString(in.Key)] = in.Metadata
	f.puts++
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	var keys []string
	for k := range f.objects {
		if strings.HasPrefix(k, aws.ToString(in.Prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	start := 0
	if in.ContinuationToken != nil {
		start, _ = strconv.Atoi(*in.ContinuationToken)
	}
	end := min(start+2, len(keys))

	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(end < len(keys))}
	for _, k := range keys[start:end] {
		out.Contents = append(out.Contents, types.Object{Key: aws.String(k), Size: aws.Int64(int64(len(f.objects[k])))})
	}
	if end < len(keys) {
		out.NextContinuationToken = aws.String(strconv.Itoa(end))
	}
	return out, nil
}

func TestNewS3Store_NormalizesPrefix(t *testing.T) {
	assert.Equal(t, "", NewS3Store(newFakeS3(), "b", "").prefix)
	assert.Equal(t, "uploads/", NewS3Store(newFakeS3(), "b", "uploads").prefix)
	assert.Equal(t, "uploads/", NewS3Store(newFakeS3(), "b", "uploads/").prefix)
}

func TestS3Store_PutStatOpen(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	s := NewS3Store(fake, "bucket", "term1")

	_, err := s.Stat(ctx, "essay.pdf")
	require.ErrorIs(t, err, common.ErrorNotFound)
	_, err = s.Open(ctx, "essay.pdf")
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, s.Put(ctx, "essay.pdf", writeSource(t, "essay.pdf", "content")))
	assert.Contains(t, fake.objects, "term1/essay.pdf")
	assert.Contains(t, fake.metadata["term1/essay.pdf"], "source-mtime")

	st, err := s.Stat(ctx, "essay.pdf")
	require.NoError(t, err)
	assert.Equal(t, models.StoredFile{Name: "essay.pdf", Size: 7}, st)

	rc, err := s.Open(ctx, "essay.pdf")
	require.NoError(t, err)
	b, _ := io.ReadAll(rc)
	_ = rc.Close()
	assert.Equal(t, "content", string(b))
}

func TestS3Store_ListPagesAndFilters(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	fake.objects["p/c.pdf"] = []byte("ccc")
	fake.objects["p/a.pdf"] = []byte("a")
	fake.objects["p/b.docx"] = []byte("bb")
	fake.objects["p/nested/d.pdf"] = []byte("d")
	fake.objects["other/e.pdf"] = []byte("e")

	got, err := NewS3Store(fake, "bucket", "p").List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.StoredFile{
		{Name: "a.pdf", Size: 1},
		{Name: "b.docx", Size: 2},
		{Name: "c.pdf", Size: 3},
	}, got)
}

func TestS3Store_Errors(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	fake.putErr = errors.New("access denied")
	fake.listErr = errors.New("throttled")
	s := NewS3Store(fake, "bucket", "")

	err := s.Put(ctx, "a.pdf", writeSource(t, "a.pdf", "x"))
	require.ErrorContains(t, err, "access denied")

	_, err = s.List(ctx)
	require.ErrorContains(t, err, "throttled")
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", contentType("A.PDF"))
	assert.Contains(t, contentType("b.docx"), "wordprocessingml")
	assert.Equal(t, "application/octet-stream", contentType("c.bin"))
}

func TestNewS3Client_UsesSeams(t *testing.T) {
	origLoad, origNew := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() { loadDefaultAWSConfig, newS3ClientFromConfig = origLoad, origNew })

	var gotOpts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&gotOpts)
		}
		return s3.NewFromConfig(cfg)
	}

	c, err := NewS3Client(context.Background(), S3Options{
		Region:   "us-east-1",
		User:     "minio",
		Password: "minio123",
		Endpoint: "http://127.0.0.1:9000",
	})
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "http://127.0.0.1:9000", aws.ToString(gotOpts.BaseEndpoint))
	assert.True(t, gotOpts.UsePathStyle)

	loadDefaultAWSConfig = func(context.Context, ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}
	_, err = NewS3Client(context.Background(), S3Options{})
	require.ErrorContains(t, err, "no config")
}
