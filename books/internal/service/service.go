package service

import (
	"context"

	"github.com/alexkharrod/webapps/books/internal/model"
	"github.com/alexkharrod/webapps/books/internal/repository"
	"go.uber.org/zap"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

// DemoBook is the record the home route inserts on every visit.
var DemoBook = model.Book{
	Title:  "Harry Potter",
	Author: "J. K. Rowling",
	Rating: 9.3,
}

func (s *Service) CreateBook(ctx context.Context, book model.Book) (int, error) {
	return s.repo.CreateBook(ctx, book)
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}
