package memstore

import (
	"testing"

	"github.com/abhisek/lingoflow/internal/store"
	"github.com/abhisek/lingoflow/internal/store/storetest"
)

func TestMemStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Repo {
		return New()
	})
}
