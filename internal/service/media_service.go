package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	cfg "github.com/telmart/console_api/internal/config"
	"github.com/telmart/console_api/internal/utils"
)

// moderationMinConfidence is the Rekognition confidence floor below which
// moderation labels are ignored.
const moderationMinConfidence = 60

// allowedMediaTypes maps accepted upload content types to the stored file
// extension.
var allowedMediaTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"video/mp4":  "mp4",
}

// MediaService stages product media in S3 before the catalog payload
// references it. Uploads go through AWS Signature V4 directly; image
// moderation runs through Rekognition when credentials are available.
type MediaService struct {
	bucket            string
	region            string
	accessKeyID       string
	secretAccessKey   string
	maxUploadBytes    int64
	rekognitionClient *rekognition.Client
}

// NewMediaService creates a new MediaService. When AWS credentials are not
// configured, moderation is disabled with a warning instead of failing
// startup.
func NewMediaService(apiCfg *cfg.Config) *MediaService {
	s := &MediaService{
		bucket:          apiCfg.Media.Bucket,
		region:          apiCfg.Media.Region,
		accessKeyID:     apiCfg.Media.AccessKeyID,
		secretAccessKey: apiCfg.Media.SecretAccessKey,
		maxUploadBytes:  apiCfg.Media.MaxUploadBytes,
	}

	if apiCfg.AWS.AccessKeyID == "" || apiCfg.AWS.SecretAccessKey == "" {
		log.Warn().Msg("AWS credentials not configured - image moderation disabled")
		return s
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(apiCfg.AWS.RekognitionRegion),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load AWS SDK config - image moderation disabled")
		return s
	}
	s.rekognitionClient = rekognition.NewFromConfig(awsCfg)

	return s
}

// MaxUploadBytes returns the configured upload size cap, so the handler
// can bound the request body before buffering it.
func (s *MediaService) MaxUploadBytes() int64 {
	return s.maxUploadBytes
}

// UploadResult describes a staged media object.
type UploadResult struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// Upload validates, moderates and stores a media file for a seller.
// Returns the public object URL the product payload should reference.
func (s *MediaService) Upload(ctx context.Context, sellerID, contentType string, data []byte) (*UploadResult, error) {
	ext, ok := allowedMediaTypes[contentType]
	if !ok {
		return nil, utils.ErrMediaUnsupported
	}
	if int64(len(data)) > s.maxUploadBytes {
		return nil, utils.ErrMediaTooLarge
	}

	if strings.HasPrefix(contentType, "image/") {
		if err := s.moderateImage(ctx, data); err != nil {
			return nil, err
		}
	}

	key := fmt.Sprintf("products/%s/%s.%s", sellerID, uuid.New().String(), ext)
	url, err := s.uploadFile(ctx, key, data, contentType)
	if err != nil {
		return nil, err
	}

	return &UploadResult{
		URL:         url,
		Key:         key,
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}

// moderateImage rejects images carrying Rekognition moderation labels.
// A disabled or failing moderation pass lets the image through; staging
// must not break when the moderation dependency is down.
func (s *MediaService) moderateImage(ctx context.Context, data []byte) error {
	if s.rekognitionClient == nil {
		return nil
	}

	out, err := s.rekognitionClient.DetectModerationLabels(ctx, &rekognition.DetectModerationLabelsInput{
		Image:         &types.Image{Bytes: data},
		MinConfidence: aws.Float32(moderationMinConfidence),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Moderation check failed - allowing upload")
		return nil
	}

	if len(out.ModerationLabels) > 0 {
		labels := make([]string, 0, len(out.ModerationLabels))
		for _, l := range out.ModerationLabels {
			labels = append(labels, aws.ToString(l.Name))
		}
		log.Info().Strs("labels", labels).Msg("Image rejected by moderation")
		return utils.ErrMediaRejected
	}
	return nil
}

// uploadFile uploads a file to S3 using AWS Signature V4
func (s *MediaService) uploadFile(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	// Check if credentials are configured
	if s.accessKeyID == "" || s.secretAccessKey == "" {
		log.Warn().Str("key", key).Msg("S3 credentials not configured - skipping upload")
		return s.GetObjectURL(key), nil
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)

	req, err := http.NewRequestWithContext(ctx, "PUT", url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	now := time.Now().UTC()
	amzDate := now.Format("20060102T150405Z")
	dateStamp := now.Format("20060102")
	payloadHash := sha256Hex(data)

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Content-Length", fmt.Sprintf("%d", len(data)))
	req.Header.Set("Host", fmt.Sprintf("%s.s3.%s.amazonaws.com", s.bucket, s.region))
	req.Header.Set("X-Amz-Date", amzDate)
	req.Header.Set("X-Amz-Content-Sha256", payloadHash)

	authorization := s.signRequest(req, payloadHash, amzDate, dateStamp)
	req.Header.Set("Authorization", authorization)

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to upload to S3")
		return "", fmt.Errorf("failed to upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		log.Error().
			Str("key", key).
			Int("status", resp.StatusCode).
			Str("response", string(body)).
			Msg("S3 upload failed")
		return "", fmt.Errorf("S3 upload failed: %s", string(body))
	}

	log.Info().Str("key", key).Msg("Successfully uploaded to S3")
	return s.GetObjectURL(key), nil
}

// signRequest creates AWS Signature V4 authorization header
func (s *MediaService) signRequest(req *http.Request, payloadHash, amzDate, dateStamp string) string {
	service := "s3"

	canonicalURI := req.URL.Path
	if canonicalURI == "" {
		canonicalURI = "/"
	}
	canonicalQueryString := ""

	signedHeaders := []string{"content-type", "host", "x-amz-content-sha256", "x-amz-date"}
	sort.Strings(signedHeaders)

	var canonicalHeaders strings.Builder
	for _, h := range signedHeaders {
		canonicalHeaders.WriteString(strings.ToLower(h))
		canonicalHeaders.WriteString(":")
		canonicalHeaders.WriteString(strings.TrimSpace(req.Header.Get(h)))
		canonicalHeaders.WriteString("\n")
	}

	signedHeadersStr := strings.Join(signedHeaders, ";")

	canonicalRequest := fmt.Sprintf("%s\n%s\n%s\n%s\n%s\n%s",
		req.Method,
		canonicalURI,
		canonicalQueryString,
		canonicalHeaders.String(),
		signedHeadersStr,
		payloadHash,
	)

	algorithm := "AWS4-HMAC-SHA256"
	credentialScope := fmt.Sprintf("%s/%s/%s/aws4_request", dateStamp, s.region, service)
	stringToSign := fmt.Sprintf("%s\n%s\n%s\n%s",
		algorithm,
		amzDate,
		credentialScope,
		sha256Hex([]byte(canonicalRequest)),
	)

	kDate := hmacSHA256([]byte("AWS4"+s.secretAccessKey), []byte(dateStamp))
	kRegion := hmacSHA256(kDate, []byte(s.region))
	kService := hmacSHA256(kRegion, []byte(service))
	kSigning := hmacSHA256(kService, []byte("aws4_request"))

	signature := hex.EncodeToString(hmacSHA256(kSigning, []byte(stringToSign)))

	return fmt.Sprintf("%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		algorithm,
		s.accessKeyID,
		credentialScope,
		signedHeadersStr,
		signature,
	)
}

// GetObjectURL returns the URL for an S3 object
func (s *MediaService) GetObjectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// sha256Hex computes SHA256 hash and returns hex string
func sha256Hex(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// hmacSHA256 computes HMAC-SHA256
func hmacSHA256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}
