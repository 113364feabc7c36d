package handler

import (
	"context"

	"github.com/alexkharrod/webapps/blog/internal/model"
	"github.com/alexkharrod/webapps/blog/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=mocks

type BlogService interface {
	Posts(ctx context.Context) []model.Post
	Post(ctx context.Context, id int) (model.Post, bool)
	SendContact(ctx context.Context, req model.ContactRequest) error
}

var _ BlogService = (*service.Service)(nil)
