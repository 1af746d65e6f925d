package outbound

import "context"

type SaveAvatarVideoParams struct {
	UserID      string
	FileName    string
	ContentType string
	Content     []byte
}

// AvatarMediaStorePort stores uploaded avatar source videos and returns the
// public URL of the stored object.
type AvatarMediaStorePort interface {
	Save(ctx context.Context, params SaveAvatarVideoParams) (string, error)
}
