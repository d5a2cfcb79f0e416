package clients

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"intellidebt-backend/internal/domain/client"
	"intellidebt-backend/internal/testutil/clientmock"
)

func TestCreate_AppliesDefaults(t *testing.T) {
	var created *client.Client
	repo := &clientmock.Repo{
		CreateFn: func(_ context.Context, c *client.Client) error {
			created = c
			return nil
		},
	}
	u := NewUsecase(repo)

	dto, err := u.Create(context.Background(), CreateClientInput{Name: "Asha", Age: 30, MonthlyIncome: 40_000})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created == nil {
		t.Fatal("client not persisted")
	}
	if len(created.ClientID) != 32 {
		t.Errorf("ClientID = %q, want generated 32-hex id", created.ClientID)
	}
	if dto.Contact != "Unknown" {
		t.Errorf("Contact = %q, want default Unknown", dto.Contact)
	}
	if dto.EmploymentType != "Salaried" {
		t.Errorf("EmploymentType = %q, want default Salaried", dto.EmploymentType)
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	u := NewUsecase(&clientmock.Repo{})
	cases := []CreateClientInput{
		{Name: "", Age: 30},
		{Name: "X", Age: -1},
		{Name: "X", Age: 30, MonthlyIncome: -5},
	}
	for i, in := range cases {
		if _, err := u.Create(context.Background(), in); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestGet_MapsNotFound(t *testing.T) {
	repo := &clientmock.Repo{
		GetByClientIDFn: func(context.Context, string) (*client.Client, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	u := NewUsecase(repo)

	if _, err := u.Get(context.Background(), "missing"); !errors.Is(err, client.ErrNotFound) {
		t.Fatalf("err = %v, want client.ErrNotFound", err)
	}
}

func TestUpdate_MutatesOnlyAgeAndIncome(t *testing.T) {
	stored := &client.Client{
		ID: 1, ClientID: "9f8e7d6c5b4a39281706f5e4d3c2b1a0",
		Name: "Asha", Contact: "+62-811", Age: 30, MonthlyIncome: 40_000,
	}
	var saved *client.Client
	repo := &clientmock.Repo{
		GetByClientIDFn: func(context.Context, string) (*client.Client, error) { return stored, nil },
		SaveFn: func(_ context.Context, c *client.Client) error {
			saved = c
			return nil
		},
	}
	u := NewUsecase(repo)

	dto, err := u.Update(context.Background(), stored.ClientID, UpdateClientInput{Age: 31, MonthlyIncome: 45_000})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if saved == nil {
		t.Fatal("client not saved")
	}
	if dto.Age != 31 || dto.MonthlyIncome != 45_000 {
		t.Errorf("dto = %+v", dto)
	}
	// identity fields untouched
	if saved.Name != "Asha" || saved.ClientID != stored.ClientID || saved.Contact != "+62-811" {
		t.Errorf("immutable fields changed: %+v", saved)
	}
}

func TestList(t *testing.T) {
	repo := &clientmock.Repo{
		ListFn: func(_ context.Context, limit int) ([]client.Client, error) {
			if limit != 10 {
				t.Errorf("limit = %d, want 10", limit)
			}
			return []client.Client{{Name: "A"}, {Name: "B"}}, nil
		},
	}
	u := NewUsecase(repo)

	got, err := u.List(context.Background(), 10)
	if err != nil || len(got) != 2 {
		t.Fatalf("List = %v, %v", got, err)
	}
}
