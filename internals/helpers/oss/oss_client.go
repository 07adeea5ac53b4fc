package oss

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"sync"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

var (
	bucketOnce sync.Once
	bucketRef  *alioss.Bucket
	bucketErr  error
)

func getenv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func bucket() (*alioss.Bucket, error) {
	bucketOnce.Do(func() {
		endpoint := getenv("OSS_ENDPOINT")
		keyID := getenv("OSS_ACCESS_KEY_ID")
		keySecret := getenv("OSS_ACCESS_KEY_SECRET")
		name := getenv("OSS_BUCKET")
		if endpoint == "" || keyID == "" || keySecret == "" || name == "" {
			bucketErr = fmt.Errorf("oss: missing OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET")
			return
		}

		client, err := alioss.New(endpoint, keyID, keySecret)
		if err != nil {
			bucketErr = err
			return
		}
		bucketRef, bucketErr = client.Bucket(name)
	})
	return bucketRef, bucketErr
}

// UploadReceipt stores an enrollment receipt under receipts/ and returns its
// public URL. The object name is randomized; the original extension is kept.
func UploadReceipt(fh *multipart.FileHeader) (string, error) {
	b, err := bucket()
	if err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	objectName := fmt.Sprintf("receipts/%s%s", uuid.NewString(), ext)

	opts := []alioss.Option{alioss.ObjectACL(alioss.ACLPublicRead)}
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		opts = append(opts, alioss.ContentType(ct))
	}
	if err := b.PutObject(objectName, src, opts...); err != nil {
		return "", err
	}

	return PublicURL(objectName), nil
}

// PublicURL builds the bucket URL for an object. OSS_PUBLIC_BASE_URL wins when
// set (CDN fronting), otherwise the bucket endpoint form is used.
func PublicURL(objectName string) string {
	if base := getenv("OSS_PUBLIC_BASE_URL"); base != "" {
		return strings.TrimRight(base, "/") + "/" + objectName
	}
	endpoint := strings.TrimPrefix(strings.TrimPrefix(getenv("OSS_ENDPOINT"), "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", getenv("OSS_BUCKET"), endpoint, objectName)
}
