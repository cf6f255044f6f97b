package mock

import (
	"context"

	"github.com/prince50856457/readable"
)

var _ readable.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of readable.ArticleService.
type ArticleService struct {
	ExtractArticleFn func(ctx context.Context, url string) (*readable.Article, error)
}

func (s *ArticleService) ExtractArticle(ctx context.Context, url string) (*readable.Article, error) {
	return s.ExtractArticleFn(ctx, url)
}
