package repo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestStoreErr_Nil(t *testing.T) {
	if got := storeErr(nil); got != nil {
		t.Fatalf("storeErr(nil) = %v; want nil", got)
	}
}

func TestStoreErr_NoDocuments(t *testing.T) {
	got := storeErr(mongo.ErrNoDocuments)
	if !errors.Is(got, ErrNotFound) {
		t.Fatalf("storeErr(ErrNoDocuments) = %v; want ErrNotFound", got)
	}
}

func TestStoreErr_DuplicateKey(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
	got := storeErr(dup)
	if !errors.Is(got, ErrDuplicate) {
		t.Fatalf("storeErr(duplicate write) = %v; want ErrDuplicate", got)
	}
}

func TestStoreErr_Passthrough(t *testing.T) {
	boom := errors.New("boom")
	if got := storeErr(boom); !errors.Is(got, boom) {
		t.Fatalf("storeErr(boom) = %v; want passthrough", got)
	}
}

func TestNewStore_DefaultTimeout(t *testing.T) {
	s := NewStore("mongodb://localhost:27017", "hrms", 0)
	if s.connectTimeout <= 0 {
		t.Fatalf("connectTimeout = %v; want positive default", s.connectTimeout)
	}
}
