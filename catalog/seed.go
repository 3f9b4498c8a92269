package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"storefront/domain"
)

// LoadSeed reads a product seed from a JSON array file. The records are not
// validated here; New performs validation when the catalog is built.
func LoadSeed(path string) ([]domain.Product, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := json.Unmarshal(b, &products); err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return products, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DefaultSeed returns the built-in catalog fixture used when no seed file is
// supplied.
func DefaultSeed() []domain.Product {
	return []domain.Product{
		{
			ID: "p-oak-desk", Name: "Oakline Writing Desk", Price: 249.00, Category: "Furniture",
			Description: "Solid oak desk with cable tray and two drawers.",
			Tags:        []string{"desk", "oak", "office"}, Stock: 12, Rating: 4.7, ReviewCount: 214,
			UnitsSold: 830, SalesRank: 3, IsBestSeller: true, CreatedAt: day(2024, time.March, 11),
			Image: "/images/oak-desk.jpg",
		},
		{
			ID: "p-linen-throw", Name: "Stonewashed Linen Throw", Price: 44.99, OriginalPrice: 59.99,
			Category: "Textiles", Description: "Breathable linen throw in muted sage.",
			Tags: []string{"linen", "throw", "bedroom"}, Stock: 58, Rating: 4.4, ReviewCount: 96,
			UnitsSold: 1240, SalesRank: 1, IsBestSeller: true, CreatedAt: day(2023, time.November, 2),
			Image: "/images/linen-throw.jpg",
		},
		{
			ID: "p-ceramic-vase", Name: "Kiln Ceramic Vase", Price: 29.99, Category: "Decor",
			Description: "Hand-thrown stoneware vase with matte glaze.",
			Tags:        []string{"ceramic", "vase"}, Stock: 73, Rating: 4.8, ReviewCount: 301,
			UnitsSold: 2100, SalesRank: 2, IsBestSeller: true, CreatedAt: day(2023, time.June, 19),
			Image: "/images/ceramic-vase.jpg",
		},
		{
			ID: "p-walnut-shelf", Name: "Walnut Wall Shelf", Price: 89.00, Category: "Furniture",
			Description: "Floating walnut shelf, 90cm, hidden brackets.",
			Tags:        []string{"walnut", "shelf", "storage"}, Stock: 31, Rating: 4.6, ReviewCount: 142,
			UnitsSold: 560, CreatedAt: day(2024, time.January, 8),
			Image: "/images/walnut-shelf.jpg",
		},
		{
			ID: "p-wool-rug", Name: "Highland Wool Rug", Price: 189.00, OriginalPrice: 259.00,
			Category: "Textiles", Description: "Hand-loomed wool rug, 160x230cm.",
			Tags: []string{"wool", "rug", "living room"}, Stock: 9, Rating: 4.9, ReviewCount: 188,
			UnitsSold: 410, CreatedAt: day(2023, time.September, 27),
			Image: "/images/wool-rug.jpg",
		},
		{
			ID: "p-brass-lamp", Name: "Brass Arc Floor Lamp", Price: 159.00, Category: "Lighting",
			Description: "Adjustable arc lamp with brushed brass finish.",
			Tags:        []string{"lamp", "brass", "lighting"}, Stock: 17, Rating: 4.3, ReviewCount: 77,
			UnitsSold: 290, IsNew: true, CreatedAt: day(2025, time.May, 14),
			Image: "/images/brass-lamp.jpg",
		},
		{
			ID: "p-glass-carafe", Name: "Borosilicate Carafe Set", Price: 24.99, Category: "Kitchen",
			Description: "Heat-resistant carafe with two tumblers.",
			Tags:        []string{"glass", "carafe", "kitchen"}, Stock: 120, Rating: 4.2, ReviewCount: 65,
			UnitsSold: 980, CreatedAt: day(2024, time.February, 21),
			Image: "/images/glass-carafe.jpg",
		},
		{
			ID: "p-rattan-chair", Name: "Rattan Lounge Chair", Price: 219.00, OriginalPrice: 269.00,
			Category: "Furniture", Description: "Handwoven rattan chair with teak frame.",
			Tags: []string{"rattan", "chair", "lounge"}, Stock: 7, Rating: 4.5, ReviewCount: 119,
			UnitsSold: 205, IsNew: true, CreatedAt: day(2025, time.June, 30),
			Image: "/images/rattan-chair.jpg",
		},
		{
			ID: "p-stone-coasters", Name: "Travertine Coaster Set", Price: 19.99, Category: "Decor",
			Description: "Set of four honed travertine coasters.",
			Tags:        []string{"stone", "coasters"}, Stock: 210, Rating: 4.1, ReviewCount: 43,
			UnitsSold: 1530, CreatedAt: day(2023, time.December, 5),
			Image: "/images/stone-coasters.jpg",
		},
		{
			ID: "p-pendant-light", Name: "Smoked Glass Pendant", Price: 100.00, Category: "Lighting",
			Description: "Mouth-blown smoked glass pendant, E27.",
			Tags:        []string{"pendant", "glass", "lighting"}, Stock: 26, Rating: 4.6, ReviewCount: 88,
			UnitsSold: 340, CreatedAt: day(2024, time.August, 16),
			Image: "/images/pendant-light.jpg",
		},
		{
			ID: "p-cotton-bedding", Name: "Percale Bedding Set", Price: 129.00, OriginalPrice: 149.00,
			Category: "Textiles", Description: "Crisp 200-thread percale, queen size.",
			Tags: []string{"cotton", "bedding", "bedroom"}, Stock: 44, Rating: 4.7, ReviewCount: 256,
			UnitsSold: 720, CreatedAt: day(2024, time.April, 3),
			Image: "/images/cotton-bedding.jpg",
		},
		{
			ID: "p-cedar-planter", Name: "Cedar Planter Box", Price: 49.99, Category: "Garden",
			Description: "Rot-resistant cedar planter with drainage liner.",
			Tags:        []string{"cedar", "planter", "garden"}, Stock: 64, Rating: 4.0, ReviewCount: 31,
			UnitsSold: 450, IsNew: true, CreatedAt: day(2025, time.April, 22),
			Image: "/images/cedar-planter.jpg",
		},
		{
			ID: "p-marble-board", Name: "Carrara Serving Board", Price: 54.99, Category: "Kitchen",
			Description: "Polished marble board with brass handle.",
			Tags:        []string{"marble", "serving", "kitchen"}, Stock: 38, Rating: 4.5, ReviewCount: 102,
			UnitsSold: 610, CreatedAt: day(2023, time.October, 12),
			Image: "/images/marble-board.jpg",
		},
		{
			ID: "p-velvet-cushion", Name: "Velvet Cushion Pair", Price: 39.99, OriginalPrice: 54.99,
			Category: "Textiles", Description: "Two cotton-velvet cushions in ochre.",
			Tags: []string{"velvet", "cushion", "living room"}, Stock: 92, Rating: 4.3, ReviewCount: 71,
			UnitsSold: 880, IsNew: true, CreatedAt: day(2025, time.July, 9),
			Image: "/images/velvet-cushion.jpg",
		},
	}
}
