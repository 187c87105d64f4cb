package assetstore

import (
	"context"
	"io"
	"time"
)

type Object struct {
	Key          string
	LastModified time.Time
}

type GetObjectResponse struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

/*
Store is where podcast images live. Keys always use forward slashes,
e.g. "podcasts/IE/zeitzeichen.jpg".
*/
type Store interface {
	List(prefix string) ([]Object, error)
	Stat(key string) (*Object, error)
	Get(ctx context.Context, key string) (GetObjectResponse, error)
	Put(key string, body io.Reader) error
}
