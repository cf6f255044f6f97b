// Package slog provides logging decorators for the service's
// collaborator interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/prince50856457/readable"
)

// Ensure LoggingArticleService implements readable.ArticleService.
var _ readable.ArticleService = (*LoggingArticleService)(nil)

// LoggingArticleService wraps an ArticleService with structured
// logging of every extraction.
type LoggingArticleService struct {
	next   readable.ArticleService
	logger *slog.Logger
}

// NewLoggingArticleService creates a new LoggingArticleService.
func NewLoggingArticleService(next readable.ArticleService, logger *slog.Logger) *LoggingArticleService {
	return &LoggingArticleService{next: next, logger: logger}
}

// ExtractArticle logs the outcome of the extraction and delegates to
// the wrapped service.
func (s *LoggingArticleService) ExtractArticle(ctx context.Context, url string) (*readable.Article, error) {
	begin := time.Now()
	article, err := s.next.ExtractArticle(ctx, url)
	if err != nil {
		s.logger.Warn("extract article",
			"url", url,
			"code", readable.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	s.logger.Info("extract article",
		"url", url,
		"id", article.ID,
		"bytes", len(article.Content),
		"links", len(article.Links),
		"blocks", len(article.Blocks),
		"concepts", len(article.Concepts),
		"duration", time.Since(begin),
	)
	return article, nil
}
