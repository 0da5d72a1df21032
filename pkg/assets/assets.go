package assets

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

//go:generate mockery --name URLSigner --output ./mocks --outpkg mocks

// DefaultExpiry is how long a presigned URL stays valid.
const DefaultExpiry = 15 * time.Minute

// URLSigner hands out short-lived URLs for digital deliverables.
type URLSigner interface {
	// UploadURL returns a fresh object key for the auction and a URL the seller can PUT the file to.
	UploadURL(ctx context.Context, auctionID string) (key string, url string, err error)
	// DownloadURL returns a URL the buyer can GET the object from.
	DownloadURL(ctx context.Context, key string) (string, error)
}

// Presigner is the subset of the S3 presign client used by Store.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Options configure the S3 connection. Endpoint and static keys are only needed for
// S3-compatible stores such as MinIO; otherwise the default AWS credential chain is used.
type Options struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Expiry          time.Duration
}

// Store presigns object URLs in a single bucket.
type Store struct {
	Presigner Presigner
	Bucket    string
	Expiry    time.Duration
}

// Make sure we conform to the interface
var _ URLSigner = (*Store)(nil)

// New builds a Store from options.
func New(ctx context.Context, opts Options) (*Store, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config for s3: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewWithClient(client, opts.Bucket, opts.Expiry), nil
}

// NewWithClient builds a Store around an existing S3 client.
func NewWithClient(client *s3.Client, bucket string, expiry time.Duration) *Store {
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	return &Store{
		Presigner: s3.NewPresignClient(client),
		Bucket:    bucket,
		Expiry:    expiry,
	}
}

func (s *Store) UploadURL(ctx context.Context, auctionID string) (string, string, error) {
	key := fmt.Sprintf("auctions/%s/%s", auctionID, uuid.New().String())

	req, err := s.Presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.Expiry))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload for auction %s: %w", auctionID, err)
	}

	return key, req.URL, nil
}

func (s *Store) DownloadURL(ctx context.Context, key string) (string, error) {
	req, err := s.Presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.Expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign download: %w", err)
	}

	return req.URL, nil
}
