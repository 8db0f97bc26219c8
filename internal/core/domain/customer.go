package domain

// Customer carries no construction invariants, only the identifier is relied upon.
type Customer struct {
	ID    int
	Name  string
	Email string
}

func NewCustomer(id int, name, email string) *Customer {
	return &Customer{
		ID:    id,
		Name:  name,
		Email: email,
	}
}
