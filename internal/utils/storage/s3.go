package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/davidvct/healthy-meal-planner/internal/utils"
	"github.com/gofiber/fiber/v2/log"
)

const (
	ContentTypeCSV  = "text/csv"
	ContentTypeJSON = "application/json"
)

var AllowExport = []string{ContentTypeCSV, ContentTypeJSON}

type (
	AwsS3 interface {
		UploadFile(ctx context.Context, fileName string, body []byte, folder string, contentType string) (string, error)
		DeleteFile(ctx context.Context, objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	// ObjectPutter is the part of the S3 client used here.
	ObjectPutter interface {
		PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
		DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	}

	awsS3 struct {
		client ObjectPutter
		bucket string
		region string
		now    func() time.Time
	}
)

// NewAwsS3 builds a client from static credentials when they are configured
// and falls back to the default AWS credential chain otherwise.
func NewAwsS3() AwsS3 {
	region := utils.GetConfig("AWS_S3_REGION")
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}

	accessKey := utils.GetConfig("AWS_ACCESS_KEY")
	secretKey := utils.GetConfig("AWS_SECRET_KEY")
	if accessKey != "" && secretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		log.Errorf("unable to load AWS config for S3: %v", err)
	}

	return NewAwsS3WithClient(s3.NewFromConfig(cfg), utils.GetConfig("AWS_S3_BUCKET"), region)
}

func NewAwsS3WithClient(client ObjectPutter, bucket, region string) AwsS3 {
	return &awsS3{client: client, bucket: bucket, region: region, now: time.Now}
}

func (a *awsS3) UploadFile(ctx context.Context, fileName string, body []byte, folder string, contentType string) (string, error) {
	if !allowed(contentType, AllowExport) {
		return "", fmt.Errorf("content type %q is not allowed", contentType)
	}

	key := fmt.Sprintf("%s/%s-%d%s", folder, fileName, a.now().UnixNano(), extension(contentType))
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return key, nil
}

func (a *awsS3) DeleteFile(ctx context.Context, objectKey string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}

func allowed(contentType string, allow []string) bool {
	for _, a := range allow {
		if a == contentType {
			return true
		}
	}
	return false
}

func extension(contentType string) string {
	switch contentType {
	case ContentTypeCSV:
		return ".csv"
	case ContentTypeJSON:
		return ".json"
	default:
		return ""
	}
}
