package catalog

import "panelstore/internal/domain"

// offerings is the fixed service catalog. Prices are rupiah.
var offerings = []domain.Offering{
	{
		ID:    1,
		Title: "Basic Panel",
		Price: 10000,
		Spec:  "1 Core • 1GB RAM • 5GB SSD",
	},
	{
		ID:      2,
		Title:   "Standard Panel",
		Price:   25000,
		Spec:    "2 Core • 2GB RAM • 10GB SSD",
		Popular: true,
	},
	{
		ID:    3,
		Title: "Premium Panel",
		Price: 50000,
		Spec:  "4 Core • 4GB RAM • 20GB SSD",
	},
	{
		ID:    4,
		Title: "Bot WhatsApp",
		Price: 15000,
		Spec:  "Fitur Lengkap + Auto Update",
	},
}

// All returns a copy of the catalog so callers cannot mutate it.
func All() []domain.Offering {
	out := make([]domain.Offering, len(offerings))
	copy(out, offerings)
	return out
}

// ByID looks up an offering. The second return reports whether it exists.
func ByID(id int) (domain.Offering, bool) {
	for _, o := range offerings {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Offering{}, false
}
