package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// InvoiceBucket holds uploaded purchase invoices, one object per
// document.
const InvoiceBucket = "invoices"

type DocumentService interface {
	UploadInvoice(ctx context.Context, objectName string, reader io.Reader, objectSize int64) error
	GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	ListItemInvoices(ctx context.Context, orgID, productID uuid.UUID) ([]string, error)
	DeleteItemInvoices(ctx context.Context, orgID, productID uuid.UUID) error
	EnsureBucketExists(ctx context.Context) error
}

type minioDocumentService struct {
	client *minio.Client
}

func NewDocumentService(endpoint, accessKey, secretKey string, useSSL bool) (DocumentService, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &minioDocumentService{client: client}, nil
}

// InvoiceObjectName lays out invoice documents by organization then
// product. The invoice number names the file when present; otherwise
// the upload timestamp keeps repeated uploads from colliding.
func InvoiceObjectName(orgID, productID uuid.UUID, invoiceNumber string, now time.Time) string {
	name := strings.TrimSpace(invoiceNumber)
	if name == "" {
		name = fmt.Sprintf("%d", now.Unix())
	}
	return fmt.Sprintf("%s/%s/%s.pdf", orgID.String(), productID.String(), name)
}

func (m *minioDocumentService) UploadInvoice(ctx context.Context, objectName string, reader io.Reader, objectSize int64) error {
	_, err := m.client.PutObject(ctx, InvoiceBucket, objectName, reader, objectSize, minio.PutObjectOptions{
		ContentType: "application/pdf",
	})
	return err
}

func (m *minioDocumentService) GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	url, err := m.client.PresignedGetObject(ctx, InvoiceBucket, objectName, expiry, nil)
	if err != nil {
		return "", err
	}
	return url.String(), nil
}

// ListItemInvoices returns the object names of every invoice stored
// for one item, newest upload first. Timestamp-named fallbacks are
// listed the same as numbered invoices.
func (m *minioDocumentService) ListItemInvoices(ctx context.Context, orgID, productID uuid.UUID) ([]string, error) {
	prefix := fmt.Sprintf("%s/%s/", orgID.String(), productID.String())

	type entry struct {
		key      string
		modified time.Time
	}
	var entries []entry
	for object := range m.client.ListObjects(ctx, InvoiceBucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if object.Err != nil {
			return nil, object.Err
		}
		entries = append(entries, entry{key: object.Key, modified: object.LastModified})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].modified.After(entries[j].modified)
	})

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.key)
	}
	return names, nil
}

// DeleteItemInvoices removes every invoice stored for one item.
func (m *minioDocumentService) DeleteItemInvoices(ctx context.Context, orgID, productID uuid.UUID) error {
	names, err := m.ListItemInvoices(ctx, orgID, productID)
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := m.client.RemoveObject(ctx, InvoiceBucket, name, minio.RemoveObjectOptions{}); err != nil {
			return err
		}
	}
	return nil
}

func (m *minioDocumentService) EnsureBucketExists(ctx context.Context) error {
	found, err := m.client.BucketExists(ctx, InvoiceBucket)
	if err != nil {
		return err
	}
	if !found {
		return m.client.MakeBucket(ctx, InvoiceBucket, minio.MakeBucketOptions{})
	}
	return nil
}
