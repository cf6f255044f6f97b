package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prince50856457/readable"
	"github.com/prince50856457/readable/mock"
	readableslog "github.com/prince50856457/readable/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingArticleService_LogsSuccess(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := &mock.ArticleService{
		ExtractArticleFn: func(ctx context.Context, url string) (*readable.Article, error) {
			return &readable.Article{ID: "abc", URL: url, Content: "text"}, nil
		},
	}

	svc := readableslog.NewLoggingArticleService(next, logger)
	article, err := svc.ExtractArticle(context.Background(), "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, "abc", article.ID)
	assert.Contains(t, buf.String(), "extract article")
	assert.Contains(t, buf.String(), "https://example.com")
}

func TestLoggingArticleService_LogsErrorCode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := &mock.ArticleService{
		ExtractArticleFn: func(ctx context.Context, url string) (*readable.Article, error) {
			return nil, readable.Errorf(readable.ENOCONTENT, "nothing left")
		},
	}

	svc := readableslog.NewLoggingArticleService(next, logger)
	_, err := svc.ExtractArticle(context.Background(), "https://example.com")

	require.Error(t, err)
	assert.Contains(t, buf.String(), readable.ENOCONTENT)
}
