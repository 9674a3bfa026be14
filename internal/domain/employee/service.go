package employee

import "context"

// Service covers the admin-side employee management the portal needs so the
// attendance engine has a schedule source.
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context, filter Filter) (ListEmployeesResponse, error)
}
