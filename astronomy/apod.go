package astronomy

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/nzai/pubapi/constants"
	"github.com/nzai/pubapi/utils"
	"go.uber.org/zap"
)

// MediaTypeImage apod media type for pictures, videos use "video"
const MediaTypeImage = "image"

// Picture astronomy picture of the day
type Picture struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	URL         string `json:"url"`
	Date        string `json:"date"`
	MediaType   string `json:"media_type"`
	HDURL       string `json:"hdurl"`
	Copyright   string `json:"copyright"`
}

// IsImage returns true if the media can be downloaded and shown in an image viewer.
// An empty media type is treated as an image.
func (p Picture) IsImage() bool {
	return p.MediaType == "" || strings.EqualFold(p.MediaType, MediaTypeImage)
}

// Client apod client
type Client struct {
	baseURL        string
	httpClient     utils.HTTPClient
	downloadClient utils.HTTPClient
	outputDir      string
	opener         utils.Opener
}

// Option client option
type Option func(*Client)

// WithBaseURL set apod endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient set client used for the metadata request
func WithHTTPClient(client utils.HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithDownloadClient set client used to stream the image
func WithDownloadClient(client utils.HTTPClient) Option {
	return func(c *Client) {
		c.downloadClient = client
	}
}

// WithTimeout replace both http clients with ones bound by timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient = utils.NewHTTPClient(timeout)
		c.downloadClient = utils.NewStreamingHTTPClient(timeout)
	}
}

// WithOutputDir set the directory images are written to
func WithOutputDir(dir string) Option {
	return func(c *Client) {
		c.outputDir = dir
	}
}

// WithOpener set how a downloaded image is shown
func WithOpener(opener utils.Opener) Option {
	return func(c *Client) {
		c.opener = opener
	}
}

// NewClient create apod client
func NewClient(options ...Option) *Client {
	c := &Client{
		baseURL:        constants.ApodURL,
		httpClient:     utils.NewHTTPClient(constants.RequestTimeout),
		downloadClient: utils.NewStreamingHTTPClient(constants.RequestTimeout),
		outputDir:      ".",
		opener:         utils.OpenViewer,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// FetchDaily get today's picture metadata
func (c Client) FetchDaily(ctx context.Context) (*Picture, error) {
	picture, err := utils.GetJSON[Picture](ctx, c.httpClient, c.baseURL)
	if err != nil {
		zap.L().Error("get astronomy picture failed", zap.Error(err))
		return nil, err
	}

	zap.L().Debug("get astronomy picture success",
		zap.String("title", picture.Title),
		zap.String("date", picture.Date),
		zap.String("mediaType", picture.MediaType))

	return &picture, nil
}

// DisplayImage download the image into the output directory and open it.
// The file is named after the last segment of the url path.
func (c Client) DisplayImage(ctx context.Context, rawURL string) (string, error) {
	filePath, err := c.targetPath(rawURL)
	if err != nil {
		return "", err
	}

	written, err := utils.DownloadFile(ctx, c.downloadClient, rawURL, filePath)
	if err != nil {
		return "", err
	}

	zap.L().Info("image downloaded", zap.String("path", filePath), zap.Int64("bytes", written))

	if c.opener == nil {
		return filePath, nil
	}

	err = c.opener(filePath)
	if err != nil {
		return filePath, fmt.Errorf("open %s: %w", filePath, err)
	}

	return filePath, nil
}

func (c Client) targetPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: image url %q: %v", constants.ErrConfig, rawURL, err)
	}

	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("%w: image url %q has no file name", constants.ErrConfig, rawURL)
	}

	return filepath.Join(c.outputDir, name), nil
}
