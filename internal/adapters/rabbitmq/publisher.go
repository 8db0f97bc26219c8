package rabbitmq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rafaelleal24/apiweb/internal/core/domain"
	"github.com/rafaelleal24/apiweb/internal/core/logger"
	"github.com/rafaelleal24/apiweb/internal/core/port"
)

// The write has already happened when an event is published, so publish failures are logged only.
func publish(ctx context.Context, broker port.BrokerPort, event domain.Event) {
	if err := broker.Publish(ctx, event); err != nil {
		logger.Error(ctx, "event publish failed", err, map[string]any{
			"event_name":  event.GetName(),
			"entity_name": event.GetEntityName(),
		})
	}
}

// PublishingProductRepository emits a ProductEvent after every effective write.
type PublishingProductRepository struct {
	next   port.ProductPort
	broker port.BrokerPort
	now    func() time.Time
}

func NewPublishingProductRepository(next port.ProductPort, broker port.BrokerPort) port.ProductPort {
	return &PublishingProductRepository{next: next, broker: broker, now: time.Now}
}

func (r *PublishingProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return r.next.GetByID(ctx, id)
}

func (r *PublishingProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	return r.next.GetAll(ctx)
}

func (r *PublishingProductRepository) Add(ctx context.Context, product *domain.Product) error {
	if err := r.next.Add(ctx, product); err != nil {
		return err
	}
	publish(ctx, r.broker, domain.NewProductEvent(domain.EventActionAdded, product, r.now()))
	return nil
}

func (r *PublishingProductRepository) Update(ctx context.Context, product *domain.Product) error {
	existing, err := r.next.GetByID(ctx, product.ID())
	if err != nil {
		return err
	}
	if err := r.next.Update(ctx, product); err != nil {
		return err
	}
	if existing != nil {
		publish(ctx, r.broker, domain.NewProductEvent(domain.EventActionUpdated, product, r.now()))
	}
	return nil
}

func (r *PublishingProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := r.next.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	if existing != nil {
		publish(ctx, r.broker, domain.NewProductEvent(domain.EventActionDeleted, existing, r.now()))
	}
	return nil
}

type PublishingCustomerRepository struct {
	next   port.CustomerPort
	broker port.BrokerPort
	now    func() time.Time
}

func NewPublishingCustomerRepository(next port.CustomerPort, broker port.BrokerPort) port.CustomerPort {
	return &PublishingCustomerRepository{next: next, broker: broker, now: time.Now}
}

func (r *PublishingCustomerRepository) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	return r.next.GetByID(ctx, id)
}

func (r *PublishingCustomerRepository) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	return r.next.GetAll(ctx)
}

func (r *PublishingCustomerRepository) Add(ctx context.Context, customer *domain.Customer) error {
	if err := r.next.Add(ctx, customer); err != nil {
		return err
	}
	publish(ctx, r.broker, domain.NewCustomerEvent(domain.EventActionAdded, customer, r.now()))
	return nil
}

func (r *PublishingCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	existing, err := r.next.GetByID(ctx, customer.ID)
	if err != nil {
		return err
	}
	if err := r.next.Update(ctx, customer); err != nil {
		return err
	}
	if existing != nil {
		publish(ctx, r.broker, domain.NewCustomerEvent(domain.EventActionUpdated, customer, r.now()))
	}
	return nil
}

func (r *PublishingCustomerRepository) Delete(ctx context.Context, id int) error {
	existing, err := r.next.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	if existing != nil {
		publish(ctx, r.broker, domain.NewCustomerEvent(domain.EventActionDeleted, existing, r.now()))
	}
	return nil
}
