package remit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wakala/remittance/internal/domain"
)

// defaultNamePrefixLen is the width of the order-series prefix dropped from
// the sanitized order name when deriving the filename.
const defaultNamePrefixLen = 4

// Store is the read-only boundary to the document store. PrimaryAddress
// reports domain.ErrNotFound when the supplier has no billing or primary
// address.
type Store interface {
	PaymentOrder(ctx context.Context, id string) (domain.PaymentOrder, error)
	PaymentEntry(ctx context.Context, id string) (domain.PaymentEntry, error)
	BankAccount(ctx context.Context, name string) (domain.BankAccount, error)
	CompanyEmail(ctx context.Context, company string) (string, error)
	PrimaryAddress(ctx context.Context, supplier string) (domain.Address, error)
}

// Generator builds remittance files for payment orders. It is stateless
// across invocations; callers may generate distinct orders concurrently.
type Generator struct {
	store     Store
	prefixLen int
}

func NewGenerator(store Store) *Generator {
	return &Generator{store: store, prefixLen: defaultNamePrefixLen}
}

// SetNamePrefixLen overrides the order-series prefix width used by the
// filename rule.
func (g *Generator) SetNamePrefixLen(n int) {
	if n >= 0 {
		g.prefixLen = n
	}
}

// Generate assembles the full remittance file for one payment order. The
// run is all-or-nothing: the first validation failure aborts with no
// payload. Fetches go through a read-through cache scoped to this call, so
// documents shared by several references are loaded once.
func (g *Generator) Generate(ctx context.Context, orderID string) (domain.GeneratedFile, error) {
	store := newStoreCache(g.store)

	order, err := store.PaymentOrder(ctx, orderID)
	if err != nil {
		return domain.GeneratedFile{}, fmt.Errorf("fetch payment order %s: %w", orderID, err)
	}
	if len(order.References) == 0 {
		return domain.GeneratedFile{}, ErrNoReferences
	}
	if order.PostingDate.IsZero() {
		return domain.GeneratedFile{}, &MissingFieldError{Field: "Posting Date", Record: docRef("Payment Order", order.ID)}
	}

	// Aggregates are computed once and shared by the batch and trailer
	// rows.
	count := len(order.References)
	var total float64
	for _, ref := range order.References {
		if ref.Amount <= 0 {
			return domain.GeneratedFile{}, fmt.Errorf("payment reference %s: amount must be positive", ref.PaymentEntry)
		}
		total += ref.Amount
	}

	companyEmail, err := store.CompanyEmail(ctx, order.Company)
	if err != nil {
		return domain.GeneratedFile{}, fmt.Errorf("fetch company %s: %w", order.Company, err)
	}
	companyAcct, err := store.BankAccount(ctx, order.CompanyBankAccount)
	if err != nil {
		return domain.GeneratedFile{}, fmt.Errorf("fetch bank account %s: %w", order.CompanyBankAccount, err)
	}

	name, err := fileName(order, companyAcct, g.prefixLen)
	if err != nil {
		return domain.GeneratedFile{}, err
	}
	header, err := headerRow(companyAcct.ClientCode, name)
	if err != nil {
		return domain.GeneratedFile{}, err
	}
	batch, err := batchRow(order, count, total, companyAcct.ProductCode)
	if err != nil {
		return domain.GeneratedFile{}, err
	}

	details := make([]string, 0, count)
	for _, ref := range order.References {
		rows, err := g.referenceRows(ctx, store, order, ref, companyEmail)
		if err != nil {
			return domain.GeneratedFile{}, err
		}
		details = append(details, rows...)
	}

	trailer, err := trailerRow(count, total)
	if err != nil {
		return domain.GeneratedFile{}, err
	}

	payload := strings.Join([]string{header, batch, strings.Join(details, "\n"), trailer}, "\n")
	return domain.GeneratedFile{
		OrderID: order.ID,
		Name:    name,
		Content: payload,
		Size:    len(payload),
	}, nil
}

// referenceRows resolves one payment reference and emits its detail row
// followed by the owning entry's advice rows.
func (g *Generator) referenceRows(
	ctx context.Context,
	store Store,
	order domain.PaymentOrder,
	ref domain.PaymentReference,
	companyEmail string,
) ([]string, error) {
	entry, err := store.PaymentEntry(ctx, ref.PaymentEntry)
	if err != nil {
		return nil, fmt.Errorf("fetch payment entry %s: %w", ref.PaymentEntry, err)
	}
	beneficiary, err := store.BankAccount(ctx, ref.BankAccount)
	if err != nil {
		return nil, fmt.Errorf("fetch bank account %s: %w", ref.BankAccount, err)
	}
	entryAcct, err := store.BankAccount(ctx, entry.BankAccount)
	if err != nil {
		return nil, fmt.Errorf("fetch bank account %s: %w", entry.BankAccount, err)
	}
	addr, err := store.PrimaryAddress(ctx, ref.Supplier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &MissingPrimaryAddressError{Supplier: ref.Supplier}
		}
		return nil, fmt.Errorf("fetch address for supplier %s: %w", ref.Supplier, err)
	}

	row, err := detailRow(detailInput{
		ref:           ref,
		entry:         entry,
		beneficiary:   beneficiary,
		address:       addr,
		companyAcctNo: entryAcct.AccountNumber,
		companyEmail:  companyEmail,
		paymentDate:   FormatDate(order.PostingDate),
	})
	if err != nil {
		return nil, err
	}

	advs, err := adviceRows(entry)
	if err != nil {
		return nil, err
	}
	return append([]string{row}, advs...), nil
}

// storeCache is a per-invocation read-through cache keyed by document
// identity. It avoids redundant fetches during one generation run without
// sharing any state between runs.
type storeCache struct {
	store Store

	orders    map[string]domain.PaymentOrder
	entries   map[string]domain.PaymentEntry
	accounts  map[string]domain.BankAccount
	emails    map[string]string
	addresses map[string]domain.Address
}

func newStoreCache(store Store) *storeCache {
	return &storeCache{
		store:     store,
		orders:    make(map[string]domain.PaymentOrder),
		entries:   make(map[string]domain.PaymentEntry),
		accounts:  make(map[string]domain.BankAccount),
		emails:    make(map[string]string),
		addresses: make(map[string]domain.Address),
	}
}

func (c *storeCache) PaymentOrder(ctx context.Context, id string) (domain.PaymentOrder, error) {
	if doc, ok := c.orders[id]; ok {
		return doc, nil
	}
	doc, err := c.store.PaymentOrder(ctx, id)
	if err != nil {
		return domain.PaymentOrder{}, err
	}
	c.orders[id] = doc
	return doc, nil
}

func (c *storeCache) PaymentEntry(ctx context.Context, id string) (domain.PaymentEntry, error) {
	if doc, ok := c.entries[id]; ok {
		return doc, nil
	}
	doc, err := c.store.PaymentEntry(ctx, id)
	if err != nil {
		return domain.PaymentEntry{}, err
	}
	c.entries[id] = doc
	return doc, nil
}

func (c *storeCache) BankAccount(ctx context.Context, name string) (domain.BankAccount, error) {
	if doc, ok := c.accounts[name]; ok {
		return doc, nil
	}
	doc, err := c.store.BankAccount(ctx, name)
	if err != nil {
		return domain.BankAccount{}, err
	}
	c.accounts[name] = doc
	return doc, nil
}

func (c *storeCache) CompanyEmail(ctx context.Context, company string) (string, error) {
	if email, ok := c.emails[company]; ok {
		return email, nil
	}
	email, err := c.store.CompanyEmail(ctx, company)
	if err != nil {
		return "", err
	}
	c.emails[company] = email
	return email, nil
}

func (c *storeCache) PrimaryAddress(ctx context.Context, supplier string) (domain.Address, error) {
	if doc, ok := c.addresses[supplier]; ok {
		return doc, nil
	}
	doc, err := c.store.PrimaryAddress(ctx, supplier)
	if err != nil {
		return domain.Address{}, err
	}
	c.addresses[supplier] = doc
	return doc, nil
}
