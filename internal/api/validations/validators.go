package validations

import (
	"time"

	"github.com/go-playground/validator/v10"

	"portfolio-api/internal/helpers"
)

type ValidationError struct {
	Message string            `json:"message"`
	Details map[string]string `json:"data"`
}

func (e ValidationError) Error() string {
	return e.Message
}

type RegisterValidator struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,alpha,max=50"`
	LastName  string `json:"last_name" validate:"required,alpha,max=50"`
}

func (r RegisterValidator) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	return nil
}

type LoginValidator struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (l LoginValidator) Validate() error {
	validate := validator.New()
	if err := validate.Struct(l); err != nil {
		return err
	}
	return nil
}

type RefreshValidator struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func (r RefreshValidator) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	return nil
}

type CreateProductValidator struct {
	Name   string  `json:"product_name" validate:"required,min=3,max=255"`
	Amount float64 `json:"product_amount" validate:"required,gt=0"`
}

func (p CreateProductValidator) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	return nil
}

type UpdateProductValidator struct {
	Name   *string  `json:"product_name" validate:"omitempty,min=3,max=255"`
	Amount *float64 `json:"product_amount" validate:"omitempty,gt=0"`
}

func (p UpdateProductValidator) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	return nil
}

type CreateServiceValidator struct {
	Name        string  `json:"service_name" validate:"required,min=3,max=255"`
	TotalAmount float64 `json:"total_amount" validate:"required,gt=0"`
}

func (s CreateServiceValidator) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return err
	}
	return nil
}

type UpdateServiceValidator struct {
	Name        *string  `json:"service_name" validate:"omitempty,min=3,max=255"`
	TotalAmount *float64 `json:"total_amount" validate:"omitempty,gt=0"`
}

func (s UpdateServiceValidator) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return err
	}
	return nil
}

type CreateJobHistoryValidator struct {
	UserID      int64      `json:"user_id" validate:"required,gt=0"`
	Location    string     `json:"location" validate:"required,min=1,max=255"`
	Description string     `json:"description" validate:"max=1000"`
	IsActive    bool       `json:"is_active"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date"`
}

func (j CreateJobHistoryValidator) Validate() error {
	validate := validator.New()
	validate.RegisterStructValidation(JobHistoryStructValidation, CreateJobHistoryValidator{})
	if err := validate.Struct(j); err != nil {
		return err
	}
	return nil
}

// JobHistoryStructValidation enforces the active/end-date pairing: a running
// job has no end date and a finished job must have one.
func JobHistoryStructValidation(s validator.StructLevel) {
	job := s.Current().Interface().(CreateJobHistoryValidator)

	if job.IsActive && job.EndDate != nil {
		s.ReportError(job.EndDate, "EndDate", "", "ActiveJobWithEndDate", "")
	}
	if !job.IsActive && job.EndDate == nil {
		s.ReportError(job.EndDate, "EndDate", "", "InactiveJobWithoutEndDate", "")
	}
	if job.StartDate.After(time.Now()) {
		s.ReportError(job.StartDate, "StartDate", "", "StartDateInFuture", "")
	}
}

type UpdateJobHistoryValidator struct {
	Location    *string          `json:"location" validate:"omitempty,min=1,max=255"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	IsActive    *bool            `json:"is_active"`
	StartDate   *time.Time       `json:"start_date"`
	EndDate     helpers.NullTime `json:"end_date"`
}

func (j UpdateJobHistoryValidator) Validate() error {
	validate := validator.New()
	if err := validate.Struct(j); err != nil {
		return err
	}
	return nil
}

type CreateRoleValidator struct {
	Name        string  `json:"name" validate:"required,min=3,max=255"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

func (r CreateRoleValidator) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	return nil
}

type UpdateRoleValidator struct {
	Name        *string            `json:"name" validate:"omitempty,min=3,max=255"`
	Description helpers.NullString `json:"description"`
}

func (r UpdateRoleValidator) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	return nil
}

type CreatePermissionValidator struct {
	Name        string  `json:"name" validate:"required,min=3,max=255"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

func (p CreatePermissionValidator) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	return nil
}

type UpdatePermissionValidator struct {
	Name        *string            `json:"name" validate:"omitempty,min=3,max=255"`
	Description helpers.NullString `json:"description"`
}

func (p UpdatePermissionValidator) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	return nil
}

type CreateRolePermissionValidator struct {
	UserID       int64  `json:"user_id" validate:"required,gt=0"`
	RoleID       int64  `json:"role_id" validate:"required,gt=0"`
	PermissionID *int64 `json:"permission_id" validate:"omitempty,gt=0"`
}

func (r CreateRolePermissionValidator) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	return nil
}

type BulkRolePermissionsValidator struct {
	UserID        int64   `json:"user_id" validate:"required,gt=0"`
	PermissionIDs []int64 `json:"permission_ids" validate:"required,min=1,dive,gt=0"`
}

func (b BulkRolePermissionsValidator) Validate() error {
	validate := validator.New()
	if err := validate.Struct(b); err != nil {
		return err
	}
	return nil
}
