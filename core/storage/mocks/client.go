package mocks

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

// Client is a testify mock of storage.Client.
//
// ListObjects and RemoveObjects take plain slices as return values:
//
//	client.On("ListObjects", mock.Anything, "console", mock.Anything).Return([]minio.ObjectInfo{...})
//	client.On("RemoveObjects", mock.Anything, "console", mock.Anything, mock.Anything).Return([]minio.RemoveObjectError(nil))
//
// RemoveObjects drains objectsCh like the real client; the received keys are
// kept in Removed.
type Client struct {
	mock.Mock
	Removed []string
}

func (m *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *Client) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return m.Called(ctx, bucketName, opts).Error(0)
}

func (m *Client) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucketName, objectName, reader, objectSize, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

func (m *Client) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	args := m.Called(ctx, bucketName, objectName, opts)
	obj, _ := args.Get(0).(io.ReadCloser)
	return obj, args.Error(1)
}

func (m *Client) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	return m.Called(ctx, bucketName, objectName, opts).Error(0)
}

func (m *Client) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	objects, _ := m.Called(ctx, bucketName, opts).Get(0).([]minio.ObjectInfo)
	ch := make(chan minio.ObjectInfo, len(objects))
	for _, o := range objects {
		ch <- o
	}
	close(ch)
	return ch
}

func (m *Client) RemoveObjects(ctx context.Context, bucketName string, objectsCh <-chan minio.ObjectInfo, opts minio.RemoveObjectsOptions) <-chan minio.RemoveObjectError {
	failures, _ := m.Called(ctx, bucketName, objectsCh, opts).Get(0).([]minio.RemoveObjectError)
	for o := range objectsCh {
		m.Removed = append(m.Removed, o.Key)
	}
	ch := make(chan minio.RemoveObjectError, len(failures))
	for _, f := range failures {
		ch <- f
	}
	close(ch)
	return ch
}
