// Package seed inserts the bootstrap dataset the first time the service starts
// against an empty store.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MikeMC777/ordenes-ofertas/internal/offer"
	"github.com/MikeMC777/ordenes-ofertas/internal/order"
	"github.com/MikeMC777/ordenes-ofertas/internal/store"
	"github.com/MikeMC777/ordenes-ofertas/internal/user"
)

//go:embed dataset.yaml
var defaultDataset []byte

// advisory lock key shared by every instance seeding the same database
const lockKey int64 = 0x5eed

type Dataset struct {
	Users  []user.User   `yaml:"users"`
	Orders []order.Order `yaml:"orders"`
	Offers []offer.Offer `yaml:"offers"`
}

func Parse(b []byte) (Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(b, &d); err != nil {
		return Dataset{}, fmt.Errorf("parse dataset: %w", err)
	}
	return d, nil
}

// Default returns the embedded bootstrap dataset.
func Default() (Dataset, error) { return Parse(defaultDataset) }

// Load reads a dataset from path, or the embedded one when path is empty.
func Load(path string) (Dataset, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(b)
}

// Repos are repositories bound to one transaction.
type Repos struct {
	Users  user.Repository
	Orders order.Repository
	Offers offer.Repository
}

// TxRunner runs fn in a single unit of work: all of fn's writes commit
// together or not at all.
type TxRunner interface {
	InTx(ctx context.Context, fn func(r Repos) error) error
}

type PGTxRunner struct{ gw *store.Gateway }

func NewPGTxRunner(gw *store.Gateway) *PGTxRunner { return &PGTxRunner{gw: gw} }

func (p *PGTxRunner) InTx(ctx context.Context, fn func(r Repos) error) error {
	return p.gw.WithTx(ctx, func(q store.DBTX) error {
		if err := store.LockXact(ctx, q, lockKey); err != nil {
			return err
		}
		t := p.gw.Timeout()
		return fn(Repos{
			Users:  user.NewPGRepo(q, t),
			Orders: order.NewPGRepo(q, t),
			Offers: offer.NewPGRepo(q, t),
		})
	})
}

type Seeder struct {
	tx   TxRunner
	data Dataset
}

func New(tx TxRunner, data Dataset) *Seeder { return &Seeder{tx: tx, data: data} }

// SeedIfEmpty inserts users, then orders, then offers when the users table is
// empty, and does nothing otherwise. It reports whether rows were written.
func (s *Seeder) SeedIfEmpty(ctx context.Context) (bool, error) {
	seeded := false
	err := s.tx.InTx(ctx, func(r Repos) error {
		n, err := r.Users.Count(ctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		if n > 0 {
			log.Printf("[seed] users table already contains %d rows, skipping", n)
			return nil
		}

		for i := range s.data.Users {
			if err := r.Users.Create(ctx, &s.data.Users[i]); err != nil {
				return fmt.Errorf("user %d: %w", s.data.Users[i].ID, err)
			}
		}
		for i := range s.data.Orders {
			if err := r.Orders.Create(ctx, &s.data.Orders[i]); err != nil {
				return fmt.Errorf("order %d: %w", s.data.Orders[i].ID, err)
			}
		}
		for i := range s.data.Offers {
			if err := r.Offers.Create(ctx, &s.data.Offers[i]); err != nil {
				return fmt.Errorf("offer %d: %w", s.data.Offers[i].ID, err)
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}
	if seeded {
		log.Printf("[seed] inserted users=%d orders=%d offers=%d",
			len(s.data.Users), len(s.data.Orders), len(s.data.Offers))
	}
	return seeded, nil
}
