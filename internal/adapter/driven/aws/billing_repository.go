package aws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3Types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/diillson/aws-org-audit-go/internal/domain/repository"
	"github.com/diillson/aws-org-audit-go/internal/shared/types"
)

// S3GetObjectAPI is the subset of the S3 client used to download the bill.
type S3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// BillingRepositoryImpl lê a fatura consolidada do S3 ou de um arquivo local.
type BillingRepositoryImpl struct {
	session *Session
	client  S3GetObjectAPI
	mu      sync.Mutex
}

// NewBillingRepository cria uma nova implementação do BillingRepository.
func NewBillingRepository(session *Session) repository.BillingRepository {
	return &BillingRepositoryImpl{session: session}
}

// NewBillingRepositoryWithClient usa um cliente S3 já construído.
func NewBillingRepositoryWithClient(client S3GetObjectAPI) *BillingRepositoryImpl {
	return &BillingRepositoryImpl{client: client}
}

func (r *BillingRepositoryImpl) getClient(ctx context.Context) (S3GetObjectAPI, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client != nil {
		return r.client, nil
	}
	cfg, err := r.session.Config(ctx)
	if err != nil {
		return nil, err
	}
	r.client = s3.NewFromConfig(cfg)
	return r.client, nil
}

// FetchBilling returns the raw billing CSV. A missing or empty source is
// reported as types.ErrSourceUnavailable naming what was tried.
func (r *BillingRepositoryImpl) FetchBilling(ctx context.Context, source repository.BillingSource) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if source.LocalPath != "" {
		data, err = r.readLocal(source.LocalPath)
	} else {
		data, err = r.readS3(ctx, source)
	}
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: unable to find billing data in %s", types.ErrSourceUnavailable, source)
	}
	return data, nil
}

func (r *BillingRepositoryImpl) readLocal(path string) ([]byte, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: error accessing billing file %s: %v", types.ErrSourceUnavailable, path, err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory, not a file", types.ErrSourceUnavailable, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading billing file %s: %v", types.ErrSourceUnavailable, path, err)
	}
	return data, nil
}

func (r *BillingRepositoryImpl) readS3(ctx context.Context, source repository.BillingSource) ([]byte, error) {
	client, err := r.getClient(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(source.Bucket),
		Key:    aws.String(source.ObjectKey()),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: unable to find billing data in %s: %v", types.ErrSourceUnavailable, source, err)
		}
		return nil, fmt.Errorf("error downloading billing data from %s: %w", source, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading billing data from %s: %w", source, err)
	}
	return data, nil
}

func isNotFound(err error) bool {
	var noSuchKey *s3Types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var noSuchBucket *s3Types.NoSuchBucket
	if errors.As(err, &noSuchBucket) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return true
		}
	}
	return false
}
