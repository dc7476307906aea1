// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string]string
	putErr  error
}

func (fake *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if fake.putErr != nil {
		return nil, fake.putErr
	}
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	fake.objects[aws.ToString(params.Key)] = string(body)
	return &s3.PutObjectOutput{}, nil
}

func (fake *fakeS3) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(fake.objects, aws.ToString(params.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func writeTemp(t *testing.T, name, content string) File {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return File{Path: path, Name: name, Size: int64(len(content))}
}

func TestS3Store_UploadDelete(t *testing.T) {
	fake := &fakeS3{objects: map[string]string{}}
	store := &S3Store{client: fake, options: S3Options{Bucket: "vidtube", Region: "eu-west-1"}}

	object, err := store.Upload(context.Background(), writeTemp(t, "clip.mp4", "frames"), KindVideo)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(object.Key, "videos/"))
	assert.Equal(t, "https://vidtube.s3.eu-west-1.amazonaws.com/"+object.Key, object.URL)
	assert.Equal(t, "frames", fake.objects[object.Key])

	require.NoError(t, store.Delete(context.Background(), object.Key))
	assert.Empty(t, fake.objects)
}

func TestS3Store_PublicBaseURL(t *testing.T) {
	store := &S3Store{
		client:  &fakeS3{objects: map[string]string{}},
		options: S3Options{Bucket: "b", PublicBaseURL: "https://cdn.vidtube.app/"},
	}

	object, err := store.Upload(context.Background(), writeTemp(t, "thumb.webp", "img"), KindImage)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.vidtube.app/"+object.Key, object.URL)
}

func TestS3Store_UploadFailure(t *testing.T) {
	store := &S3Store{
		client:  &fakeS3{objects: map[string]string{}, putErr: errors.New("access denied")},
		options: S3Options{Bucket: "b"},
	}

	_, err := store.Upload(context.Background(), writeTemp(t, "clip.mp4", "x"), KindVideo)
	assert.ErrorContains(t, err, "access denied")
}
