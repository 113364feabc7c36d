package handler

import (
	"context"

	"github.com/alexkharrod/webapps/cafe/internal/model"
	"github.com/alexkharrod/webapps/cafe/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=mocks

type CafeService interface {
	CreateCafe(ctx context.Context, cafe model.Cafe) (int, error)
	GetCafe(ctx context.Context, id int) (model.Cafe, error)
	ListCafes(ctx context.Context, location string) ([]model.Cafe, error)
	RandomCafe(ctx context.Context) (model.Cafe, error)
	UpdatePrice(ctx context.Context, id int, price string) (model.Cafe, error)
	DeleteCafe(ctx context.Context, id int) error
	Authorize(candidate string) bool
}

var _ CafeService = (*service.Service)(nil)
