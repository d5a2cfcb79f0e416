package clients

import (
	"context"
	"errors"
	"time"

	"intellidebt-backend/internal/domain/client"
	"intellidebt-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct{ repo client.Repository }

func NewUsecase(r client.Repository) *Usecase { return &Usecase{repo: r} }

type CreateClientInput struct {
	Name           string  `json:"name"`
	Contact        string  `json:"contact"`
	Age            int     `json:"age"`
	MonthlyIncome  float64 `json:"monthly_income"`
	EmploymentType string  `json:"employment_type"`
	NumDependents  int     `json:"num_dependents"`
}

type UpdateClientInput struct {
	Age           int     `json:"age"`
	MonthlyIncome float64 `json:"monthly_income"`
}

type ClientDTO struct {
	ClientID       string    `json:"client_id"`
	Name           string    `json:"name"`
	Contact        string    `json:"contact"`
	Age            int       `json:"age"`
	MonthlyIncome  float64   `json:"monthly_income"`
	EmploymentType string    `json:"employment_type"`
	NumDependents  int       `json:"num_dependents"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *Usecase) Create(ctx context.Context, in CreateClientInput) (*ClientDTO, error) {
	if in.Name == "" || in.Age < 0 || in.MonthlyIncome < 0 {
		return nil, errors.New("invalid input")
	}
	c := &client.Client{
		ClientID:       id.NewID32(),
		Name:           in.Name,
		Contact:        in.Contact,
		Age:            in.Age,
		MonthlyIncome:  in.MonthlyIncome,
		EmploymentType: in.EmploymentType,
		NumDependents:  in.NumDependents,
	}
	if c.Contact == "" {
		c.Contact = "Unknown"
	}
	if c.EmploymentType == "" {
		c.EmploymentType = "Salaried"
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) Get(ctx context.Context, clientID string) (*ClientDTO, error) {
	c, err := u.repo.GetByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, client.ErrNotFound
		}
		return nil, err
	}
	return toDTO(c), nil
}

// Update mutates only the fields an authorized update may change; identity
// fields are immutable.
func (u *Usecase) Update(ctx context.Context, clientID string, in UpdateClientInput) (*ClientDTO, error) {
	if in.Age < 0 || in.MonthlyIncome < 0 {
		return nil, errors.New("invalid input")
	}
	c, err := u.repo.GetByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, client.ErrNotFound
		}
		return nil, err
	}
	c.Age = in.Age
	c.MonthlyIncome = in.MonthlyIncome
	if err := u.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) List(ctx context.Context, limit int) ([]ClientDTO, error) {
	cs, err := u.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]ClientDTO, 0, len(cs))
	for i := range cs {
		out = append(out, *toDTO(&cs[i]))
	}
	return out, nil
}

func toDTO(c *client.Client) *ClientDTO {
	return &ClientDTO{
		ClientID:       c.ClientID,
		Name:           c.Name,
		Contact:        c.Contact,
		Age:            c.Age,
		MonthlyIncome:  c.MonthlyIncome,
		EmploymentType: c.EmploymentType,
		NumDependents:  c.NumDependents,
		CreatedAt:      c.CreatedAt,
	}
}
