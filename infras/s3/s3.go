package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"club/config"
	"club/infras/otel"
	"club/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrFileName = "file_name"
	otelAttrBucket   = "bucket"
)

type S3 interface {
	UploadFile(ctx context.Context, directory string, file multipart.File, fileHeader *multipart.FileHeader, fileName string) (url string, err error)
	DeleteFile(ctx context.Context, directory, objectName string) error
	GetObjectNameFromURL(url string) (objectName string)
}

type s3Impl struct {
	Client *s3.Client
	Config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) S3 {
	s3cfg := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion(s3cfg.Region),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s3cfg.AccessKey, s3cfg.SecretKey, ""),
		),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load AWS configuration")
	}

	return &s3Impl{
		Client: s3.NewFromConfig(awsCfg),
		Config: cfg,
		otel:   otl,
	}
}

func (svc *s3Impl) UploadFile(ctx context.Context, directory string, file multipart.File, fileHeader *multipart.FileHeader, fileName string) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadFile")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := svc.Config.External.S3.BucketName

	scope.SetAttributes(map[string]any{
		otelAttrFileName: fileName,
		otelAttrBucket:   bucketName,
	})

	buf := bytes.NewBuffer(nil)

	if _, err = buf.ReadFrom(file); err != nil {
		return constant.Empty, fmt.Errorf("failed to read file: %w", err)
	}

	contentType := fileHeader.Header.Get(constant.RequestHeaderContentType)
	objectName := path.Join(directory, fileName)

	_, err = svc.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucketName),
		Key:         aws.String(objectName),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Error().Err(err).Str("object", objectName).Msg("failed to upload object to S3")

		return constant.Empty, fmt.Errorf("failed to upload object: %w", err)
	}

	return fmt.Sprintf("%s/%s", svc.Config.External.S3.BaseURL, objectName), nil
}

func (svc *s3Impl) DeleteFile(ctx context.Context, directory, objectName string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".DeleteFile")
	defer scope.End()
	defer scope.TraceIfError(err)

	key := path.Join(directory, objectName)

	scope.SetAttributes(map[string]any{
		otelAttrFileName: key,
		otelAttrBucket:   svc.Config.External.S3.BucketName,
	})

	_, err = svc.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.Config.External.S3.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Str("object", key).Msg("failed to delete object from S3")

		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

// GetObjectNameFromURL strips the configured base URL, leaving the object key.
func (svc *s3Impl) GetObjectNameFromURL(url string) string {
	return strings.TrimPrefix(strings.TrimPrefix(url, svc.Config.External.S3.BaseURL), "/")
}
