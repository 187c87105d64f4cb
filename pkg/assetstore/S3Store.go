package assetstore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/s3/createbucketoptions"
	"github.com/adampresley/adamgokit/s3/getoptions"
	"github.com/adampresley/adamgokit/s3/listoptions"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type S3StoreConfig struct {
	Bucket   string
	Region   string
	S3Client s3.S3Client
}

type S3Store struct {
	bucket   string
	region   string
	s3Client s3.S3Client
}

func NewS3Store(config S3StoreConfig) S3Store {
	return S3Store{
		bucket:   config.Bucket,
		region:   config.Region,
		s3Client: config.S3Client,
	}
}

/*
EnsureBucketExists creates the bucket when it is missing. Local
development runs against localstack, which starts empty.
*/
func (s S3Store) EnsureBucketExists() error {
	var (
		err    error
		exists bool
	)

	if exists, err = s.s3Client.BucketExists(s.bucket); err != nil {
		return fmt.Errorf("error ensuring bucket '%s' exists: %w", s.bucket, err)
	}

	if exists {
		return nil
	}

	err = s.s3Client.CreateBucket(
		s.bucket,
		createbucketoptions.WithRegion(s.region),
	)

	if err != nil {
		return fmt.Errorf("error creating bucket '%s': %w", s.bucket, err)
	}

	return nil
}

func (s S3Store) List(prefix string) ([]Object, error) {
	var (
		err      error
		response s3.ListResponse
	)

	prefix = strings.Trim(prefix, "/")

	/*
	 * S3 listings are recursive. Only direct children of the prefix
	 * are objects of this folder.
	 */
	response, err = s.s3Client.List(
		s.bucket,
		prefix+"/",
		listoptions.WithGetAll(),
		listoptions.WithFilter(func(obj types.Object) bool {
			return path.Dir(aws.ToString(obj.Key)) == prefix
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("error listing '%s' in bucket '%s': %w", prefix, s.bucket, err)
	}

	result := make([]Object, 0, len(response.Objects))

	for _, obj := range response.Objects {
		result = append(result, Object{
			Key:          obj.Key,
			LastModified: obj.LastModified,
		})
	}

	return result, nil
}

func (s S3Store) Stat(key string) (*Object, error) {
	var (
		err  error
		stat *s3.ObjectMetadata
	)

	if stat, err = s.s3Client.StatObject(s.bucket, key); err != nil {
		return nil, fmt.Errorf("error retrieving metadata for '%s': %w", key, err)
	}

	if stat == nil {
		return nil, nil
	}

	return &Object{
		Key:          key,
		LastModified: stat.LastModified,
	}, nil
}

func (s S3Store) Get(ctx context.Context, key string) (GetObjectResponse, error) {
	var (
		err    error
		object s3.GetObjectResponse
	)

	object, err = s.s3Client.Get(
		s.bucket,
		key,
		getoptions.WithContext(ctx),
	)

	if err != nil {
		return GetObjectResponse{}, fmt.Errorf("error retrieving '%s' from bucket '%s': %w", key, s.bucket, err)
	}

	return GetObjectResponse{
		Body:        object.Body,
		ContentType: object.ContentType,
		Size:        int64(object.Size),
	}, nil
}

func (s S3Store) Put(key string, body io.Reader) error {
	if _, err := s.s3Client.Put(s.bucket, key, body); err != nil {
		return fmt.Errorf("error uploading '%s' to bucket '%s': %w", key, s.bucket, err)
	}

	return nil
}
