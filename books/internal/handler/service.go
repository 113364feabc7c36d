package handler

import (
	"context"

	"github.com/alexkharrod/webapps/books/internal/model"
	"github.com/alexkharrod/webapps/books/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=mocks

type BookService interface {
	CreateBook(ctx context.Context, book model.Book) (int, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
}

var _ BookService = (*service.Service)(nil)
