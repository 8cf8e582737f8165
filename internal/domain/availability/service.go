package availability

import "context"

type Service interface {
	Create(ctx context.Context, req CreateWindowRequest) (WindowResponse, error)
	List(ctx context.Context, employeeID *string) ([]WindowResponse, error)
	Delete(ctx context.Context, id string) error
}
