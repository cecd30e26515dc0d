package domain

// Offering is a catalog entry: a rentable panel or bot tier.
// Offerings are defined at process start and never mutated.
type Offering struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Price   int64  `json:"price"`
	Spec    string `json:"spec"`
	Popular bool   `json:"popular"`
}
