package kvstore

import (
	"context"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Registered blob drivers for local files and in-memory buckets.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// blobStore keeps each keyspace entry as one object in a gocloud bucket,
// object name equals key.
type blobStore struct {
	bucket *blob.Bucket
}

// NewBlobStore opens a bucket-backed Store from a gocloud URL such as
// "file:///var/lib/posterstore" or "mem://".
func NewBlobStore(ctx context.Context, bucketURL string) (Store, error) {
	if bucketURL == "" {
		return nil, errors.New("blob store bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return &blobStore{bucket: bucket}, nil
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, ErrKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to read key")
	}

	return value, nil
}

func (s *blobStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.bucket.WriteAll(ctx, key, value, nil); err != nil {
		return errors.Wrap(err, "failed to write key")
	}

	return nil
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete key")
	}

	return nil
}

func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
