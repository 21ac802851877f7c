package storage

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	put     *s3.PutObjectInput
	body    []byte
	deleted string
	err     error
}

func (f *fakeClient) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.put = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeClient) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = aws.ToString(in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func newTestS3(client *fakeClient) *awsS3 {
	s := NewAwsS3WithClient(client, "meal-exports", "ap-southeast-1").(*awsS3)
	s.now = func() time.Time { return time.Unix(0, 42) }
	return s
}

func TestAwsS3_UploadFile(t *testing.T) {
	client := &fakeClient{}
	s := newTestS3(client)

	key, err := s.UploadFile(context.Background(), "list", []byte("name,grams\n"), "shopping-lists", ContentTypeCSV)

	require.NoError(t, err)
	assert.Equal(t, "shopping-lists/list-42.csv", key)
	assert.Equal(t, "meal-exports", aws.ToString(client.put.Bucket))
	assert.Equal(t, ContentTypeCSV, aws.ToString(client.put.ContentType))
	assert.Equal(t, "name,grams\n", string(client.body))
}

func TestAwsS3_UploadFile_Rejections(t *testing.T) {
	_, err := newTestS3(&fakeClient{}).UploadFile(context.Background(), "x", nil, "f", "image/png")
	assert.Error(t, err)

	boom := errors.New("access denied")
	_, err = newTestS3(&fakeClient{err: boom}).UploadFile(context.Background(), "x", nil, "f", ContentTypeCSV)
	assert.ErrorIs(t, err, boom)
}

func TestAwsS3_Links(t *testing.T) {
	client := &fakeClient{}
	s := newTestS3(client)

	link := s.GetPublicLinkKey("shopping-lists/a.csv")

	assert.Equal(t, "https://meal-exports.s3.ap-southeast-1.amazonaws.com/shopping-lists/a.csv", link)
	assert.Equal(t, "shopping-lists/a.csv", s.GetObjectKeyFromLink(link))
	assert.Equal(t, "", s.GetObjectKeyFromLink("https://example.com/a.csv"))

	require.NoError(t, s.DeleteFile(context.Background(), "shopping-lists/a.csv"))
	assert.Equal(t, "shopping-lists/a.csv", client.deleted)
}
