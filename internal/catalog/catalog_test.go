package catalog

import "testing"

func TestByID(t *testing.T) {
	o, ok := ByID(2)
	if !ok {
		t.Fatalf("expected offering 2 to exist")
	}
	if o.Title != "Standard Panel" || o.Price != 25000 || !o.Popular {
		t.Fatalf("unexpected offering %+v", o)
	}

	if _, ok := ByID(99); ok {
		t.Fatalf("expected offering 99 to be absent")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0].Price = 1
	if All()[0].Price == 1 {
		t.Fatalf("All must not expose the backing catalog")
	}
}
