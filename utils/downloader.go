package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/nzai/pubapi/constants"
	"go.uber.org/zap"
)

// GetJSON get url and decode the json response body
func GetJSON[T any](ctx context.Context, client HTTPClient, rawURL string) (T, error) {
	response := new(T)

	resp, err := get(ctx, client, rawURL)
	if err != nil {
		return *response, err
	}
	defer resp.Body.Close()

	err = sonic.ConfigStd.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		zap.S().Warnw("failed to unmarshal response", "error", err, "url", safeURL(resp.Request))
		return *response, fmt.Errorf("%w: decode response: %v", constants.ErrUpstream, err)
	}

	return *response, nil
}

// DownloadFile stream url into filePath. The file is closed before returning
// and removed if the download fails midway.
func DownloadFile(ctx context.Context, client HTTPClient, rawURL, filePath string) (int64, error) {
	resp, err := get(ctx, client, rawURL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	file, err := os.Create(filePath)
	if err != nil {
		zap.L().Error("create download file failed", zap.Error(err), zap.String("path", filePath))
		return 0, err
	}

	written, err := io.CopyBuffer(file, resp.Body, make([]byte, constants.DownloadChunkSize))
	closeErr := file.Close()
	if err == nil && closeErr != nil {
		zap.L().Error("close download file failed", zap.Error(closeErr), zap.String("path", filePath))
		os.Remove(filePath)
		return 0, closeErr
	}

	if err != nil {
		zap.L().Warn("download interrupted",
			zap.Error(err),
			zap.String("url", safeURL(resp.Request)),
			zap.String("path", filePath),
			zap.Int64("written", written))
		os.Remove(filePath)
		return 0, fmt.Errorf("%w: download %s: %v", constants.ErrUpstream, safeURL(resp.Request), err)
	}

	return written, nil
}

// get do one request, any failure or non-2xx status is an upstream error
func get(ctx context.Context, client HTTPClient, rawURL string) (*http.Response, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		zap.L().Warn("create http request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: create request: %v", constants.ErrConfig, err)
	}

	resp, err := client.Do(request)
	if err != nil {
		err = stripURL(err)
		zap.S().Warnw("failed to do http request", "error", err, "url", safeURL(request))
		return nil, fmt.Errorf("%w: %s: %v", constants.ErrUpstream, safeURL(request), err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()

		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		zap.S().Warnw("unexpected status code", "statusCode", resp.StatusCode, "url", safeURL(request))
		return nil, fmt.Errorf("%w: %s -> %d %s: %s",
			constants.ErrUpstream,
			safeURL(request),
			resp.StatusCode,
			http.StatusText(resp.StatusCode),
			strings.TrimSpace(string(body)))
	}

	return resp, nil
}

// safeURL drop the query string, it may carry an api key
func safeURL(request *http.Request) string {
	if request == nil || request.URL == nil {
		return ""
	}

	return request.URL.Scheme + "://" + request.URL.Host + request.URL.Path
}

// stripURL unwrap *url.Error, its message repeats the full url
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}

	return err
}
