package projections

import (
	"context"
	"fmt"
	"sync"

	"casaromana/internal/adapters/storage"
	applicationDomain "casaromana/internal/domain/application"
	contactDomain "casaromana/internal/domain/contact"
	eventDomain "casaromana/internal/domain/event"
	inquiryDomain "casaromana/internal/domain/inquiry"
	productDomain "casaromana/internal/domain/product"
)

// Store interfaces scoped to what the dashboard reads.

type DashboardApplicationStore interface {
	List(ctx context.Context, order string) ([]applicationDomain.Application, error)
}

type DashboardProductStore interface {
	List(ctx context.Context, order string) ([]productDomain.Product, error)
}

type DashboardInquiryStore interface {
	List(ctx context.Context, order string) ([]inquiryDomain.Inquiry, error)
}

type DashboardContactStore interface {
	List(ctx context.Context, order string) ([]contactDomain.Message, error)
}

type DashboardEventStore interface {
	List(ctx context.Context, order string) ([]eventDomain.Event, error)
}

// GetDashboardDeps holds dependencies for the dashboard projection.
type GetDashboardDeps struct {
	ApplicationStore DashboardApplicationStore
	ProductStore     DashboardProductStore
	InquiryStore     DashboardInquiryStore
	ContactStore     DashboardContactStore
	EventStore       DashboardEventStore
}

// Dashboard is everything the admin screen renders, loaded in one shot.
// Collections are newest-first.
type Dashboard struct {
	Applications []applicationDomain.Application
	Products     []productDomain.Product
	Inquiries    []inquiryDomain.Inquiry
	Contacts     []contactDomain.Message
	Events       []eventDomain.Event

	PendingCount  int
	ApprovedCount int
	PaidCount     int
}

// GetDashboard fetches all five collections concurrently and joins the
// results. Any single failure fails the whole load: the dashboard shows one
// aggregate error rather than a partially populated view.
// POST: On success every collection is populated and the status counts match
// the applications slice
func GetDashboard(ctx context.Context, deps GetDashboardDeps) (Dashboard, error) {
	var d Dashboard
	var wg sync.WaitGroup
	errs := make([]error, 5)

	wg.Add(5)
	go func() {
		defer wg.Done()
		d.Applications, errs[0] = deps.ApplicationStore.List(ctx, storage.OrderDesc)
	}()
	go func() {
		defer wg.Done()
		d.Products, errs[1] = deps.ProductStore.List(ctx, storage.OrderDesc)
	}()
	go func() {
		defer wg.Done()
		d.Inquiries, errs[2] = deps.InquiryStore.List(ctx, storage.OrderDesc)
	}()
	go func() {
		defer wg.Done()
		d.Contacts, errs[3] = deps.ContactStore.List(ctx, storage.OrderDesc)
	}()
	go func() {
		defer wg.Done()
		d.Events, errs[4] = deps.EventStore.List(ctx, storage.OrderDesc)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return Dashboard{}, fmt.Errorf("dashboard load: %w", err)
		}
	}

	for _, a := range d.Applications {
		switch a.Status {
		case applicationDomain.StatusPending:
			d.PendingCount++
		case applicationDomain.StatusApproved:
			d.ApprovedCount++
		case applicationDomain.StatusPaid:
			d.PaidCount++
		}
	}
	return d, nil
}
