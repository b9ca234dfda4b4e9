package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"admin-console/core/storage"

	"github.com/minio/minio-go/v7"
)

// Object stores snapshots as JSON objects in a bucket.
type Object struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObject returns a Store writing to bucket under prefix.
func NewObject(client storage.Client, bucket, prefix string) *Object {
	return &Object{client: client, bucket: bucket, prefix: prefix}
}

func (o *Object) key(id string) string {
	return path.Join(o.prefix, id+".json")
}

// listPrefix is the key prefix shared by every snapshot object.
func (o *Object) listPrefix() string {
	if o.prefix == "" {
		return ""
	}
	return path.Clean(o.prefix) + "/"
}

// id returns the session id stored at key. Keys below nested prefixes and
// non-snapshot objects are not ours.
func (o *Object) id(key string) (string, bool) {
	name, ok := strings.CutPrefix(key, o.listPrefix())
	if !ok || strings.Contains(name, "/") {
		return "", false
	}
	id, ok := strings.CutSuffix(name, ".json")
	return id, ok && id != ""
}

// Bucket returns the bucket snapshots are written to.
func (o *Object) Bucket() string {
	return o.bucket
}

// BucketExists reports whether the snapshot bucket exists.
func (o *Object) BucketExists(ctx context.Context) (bool, error) {
	exists, err := o.client.BucketExists(ctx, o.bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket %s: %w", o.bucket, err)
	}
	return exists, nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (o *Object) EnsureBucket(ctx context.Context) error {
	exists, err := o.BucketExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := o.client.MakeBucket(ctx, o.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", o.bucket, err)
	}
	return nil
}

func (o *Object) Save(ctx context.Context, id string, data []byte) error {
	_, err := o.client.PutObject(ctx, o.bucket, o.key(id), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", id, err)
	}
	return nil
}

func (o *Object) Load(ctx context.Context, id string) ([]byte, error) {
	obj, err := o.client.GetObject(ctx, o.bucket, o.key(id), minio.GetObjectOptions{})
	if err != nil {
		return nil, o.loadErr(id, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, o.loadErr(id, err)
	}
	return data, nil
}

func (o *Object) loadErr(id string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrNotFound
	}
	return fmt.Errorf("failed to load snapshot %s: %w", id, err)
}

func (o *Object) Delete(ctx context.Context, id string) error {
	if err := o.client.RemoveObject(ctx, o.bucket, o.key(id), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", id, err)
	}
	return nil
}

// Expired returns the ids of the snapshots last written before cutoff.
func (o *Object) Expired(ctx context.Context, cutoff time.Time) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var ids []string
	opts := minio.ListObjectsOptions{Prefix: o.listPrefix(), Recursive: true}
	for info := range o.client.ListObjects(ctx, o.bucket, opts) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots in %s: %w", o.bucket, info.Err)
		}
		id, ok := o.id(info.Key)
		if ok && info.LastModified.Before(cutoff) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Prune removes the snapshots last written before cutoff and returns how
// many were removed. The first removal failure is returned.
func (o *Object) Prune(ctx context.Context, cutoff time.Time) (int, error) {
	ids, err := o.Expired(ctx, cutoff)
	if err != nil || len(ids) == 0 {
		return 0, err
	}

	objects := make(chan minio.ObjectInfo, len(ids))
	for _, id := range ids {
		objects <- minio.ObjectInfo{Key: o.key(id)}
	}
	close(objects)

	var first error
	failed := 0
	for rerr := range o.client.RemoveObjects(ctx, o.bucket, objects, minio.RemoveObjectsOptions{}) {
		if first == nil {
			first = fmt.Errorf("failed to remove snapshot object %s: %w", rerr.ObjectName, rerr.Err)
		}
		failed++
	}
	return len(ids) - failed, first
}
