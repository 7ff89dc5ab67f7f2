package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/errgroup"

	"github.com/farmquest-india/farmquest/farmquest"
	"github.com/farmquest-india/farmquest/farmquest/config"
)

// Photo is one quest verification image to upload.
type Photo struct {
	Name        string
	ContentType string
	Data        []byte
}

// PhotoService stores quest verification photos in an S3-compatible bucket
// (DigitalOcean Spaces layout). A nil service means photo upload is disabled;
// handlers check for that.
type PhotoService struct {
	client    *s3.Client
	bucket    string
	region    string
	photoRoot string
}

// NewPhotoService builds the service from the spaces config block. Returns
// nil when no key is configured.
func NewPhotoService(cfg farmquest.SpacesConfig) (*PhotoService, error) {
	if cfg.Key == "" {
		return nil, nil
	}

	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithEndpointResolverWithOptions(resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.Key, cfg.Secret, "")),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load spaces config: %w", err)
	}

	root := cfg.PhotoRoot
	if root == "" {
		root = config.QuestPhotoRoot
	}

	return &PhotoService{
		client:    s3.NewFromConfig(awsCfg),
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		photoRoot: strings.Trim(root, "/"),
	}, nil
}

// UploadQuestPhotos uploads verification photos concurrently and returns
// their public URLs in input order. Any single failure fails the batch.
func (p *PhotoService) UploadQuestPhotos(ctx context.Context, questID, userID string, photos []Photo) ([]string, error) {
	if len(photos) == 0 {
		return nil, nil
	}
	if len(photos) > config.MaxPhotosPerQuest {
		return nil, fmt.Errorf("too many photos: %d (max %d)", len(photos), config.MaxPhotosPerQuest)
	}
	for _, photo := range photos {
		if len(photo.Data) > config.MaxPhotoSize {
			return nil, fmt.Errorf("photo %s exceeds size limit", photo.Name)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, config.PhotoUploadTimeout)
	defer cancel()

	urls := make([]string, len(photos))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(config.PhotoUploadParallel)

	for i, photo := range photos {
		i, photo := i, photo
		g.Go(func() error {
			key := p.photoKey(questID, userID, i, photo.Name)
			_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
				Bucket:      aws.String(p.bucket),
				Key:         aws.String(key),
				Body:        bytes.NewReader(photo.Data),
				ContentType: aws.String(photo.ContentType),
				ACL:         "public-read",
			})
			if err != nil {
				return fmt.Errorf("failed to upload %s: %w", photo.Name, err)
			}
			urls[i] = p.publicURL(key)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

func (p *PhotoService) photoKey(questID, userID string, index int, name string) string {
	name = strings.ReplaceAll(strings.ToLower(name), " ", "_")
	return fmt.Sprintf("%s/%s/%s/%d_%s", p.photoRoot, questID, userID, index, name)
}

func (p *PhotoService) publicURL(key string) string {
	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", p.bucket, p.region, key)
}
