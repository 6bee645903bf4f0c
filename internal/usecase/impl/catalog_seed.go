package impl

import (
	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type seedProduct struct {
	name        string
	category    entity.Category
	price       string
	description string
	stock       int
	code        string
	image       string
}

var defaultCatalog = []seedProduct{
	{"AMD Ryzen 9 7950X", entity.CategoryProcessors, "2480000.00", "Procesador 16 núcleos, 32 hilos, 4.5GHz base", 8, "1234567890123", "ryzen_9_7950x.jpg"},
	{"Intel Core i9-13900K", entity.CategoryProcessors, "2715000.00", "Procesador 24 núcleos, 32 hilos, hasta 5.8GHz", 12, "1234567890124", "intel_i9_13900k.jpg"},
	{"AMD Ryzen 7 7700X", entity.CategoryProcessors, "1269000.10", "Procesador 8 núcleos, 16 hilos, 4.5GHz base", 15, "1234567890125", "ryzen_7_7700x.jpg"},
	{"NVIDIA RTX 4090", entity.CategoryGraphics, "13693374.36", "GPU de alta gama, 24GB GDDR6X", 5, "1234567890126", "rtx_4090.jpg"},
	{"AMD RX 7900 XTX", entity.CategoryGraphics, "4500000.14", "GPU potente, 24GB GDDR6", 7, "1234567890127", "rx_7900_xtx.jpg"},
	{"NVIDIA RTX 4070", entity.CategoryGraphics, "4991750.14", "GPU gaming, 12GB GDDR6X", 10, "1234567890128", "rtx_4070.jpg"},
	{"Corsair Vengeance DDR5 32GB", entity.CategoryMemory, "975620.25", "Kit 2x16GB DDR5-5600MHz RGB", 20, "1234567890129", "corsair_ddr5_32gb.jpg"},
	{"G.Skill Trident Z5 RGB 16GB", entity.CategoryMemory, "520000.25", "Kit 2x8GB DDR5-6000MHz", 25, "1234567890130", "gskill_ddr5_16gb.jpg"},
	{"Kingston Fury Beast 64GB", entity.CategoryMemory, "107143.45", "Kit 4x16GB DDR4-3200MHz", 8, "1234567890131", "kingston_64gb.jpg"},
	{"ASUS ROG Strix X670E-E", entity.CategoryMotherboards, "2105900.25", "Placa AM5, WiFi 6E, PCIe 5.0", 6, "1234567890132", "asus_x670e.jpg"},
	{"MSI MAG B550 Tomahawk", entity.CategoryMotherboards, "749000.14", "Placa AM4, PCIe 4.0, USB-C", 12, "1234567890133", "msi_b550.jpg"},
	{"Gigabyte Z790 AORUS Elite", entity.CategoryMotherboards, "13150000.24", "Placa LGA1700, DDR5, WiFi 6", 9, "1234567890134", "gigabyte_z790.jpg"},
	{"Samsung 980 PRO 2TB", entity.CategoryStorage, "415000.58", "SSD NVMe M.2, 7000MB/s lectura", 15, "1234567890135", "samsung_980_pro.jpg"},
	{"WD Black SN850X 1TB", entity.CategoryStorage, "2273400.25", "SSD NVMe gaming, 7300MB/s", 20, "1234567890136", "wd_black_sn850x.jpg"},
	{"Seagate IronWolf 4TB", entity.CategoryStorage, "998500.69", "HDD NAS, 5400RPM, CMR", 18, "1234567890137", "seagate_ironwolf.jpg"},
	{"Corsair RM850x", entity.CategoryPowerSupply, "930252.85", "850W 80+ Gold modular", 12, "1234567890138", "corsair_rm850x.jpg"},
	{"EVGA SuperNOVA 1000W", entity.CategoryPowerSupply, "187520.65", "1000W 80+ Platinum modular", 8, "1234567890139", "evga_1000w.jpg"},
	{"Seasonic Focus GX-650", entity.CategoryPowerSupply, "584000.35", "650W 80+ Gold semi-modular", 15, "1234567890140", "seasonic_650w.jpg"},
}

// DefaultCatalog returns fresh copies of the products loaded into an empty catalog.
func DefaultCatalog() []*entity.Product {
	products := make([]*entity.Product, 0, len(defaultCatalog))
	for _, seed := range defaultCatalog {
		products = append(products, &entity.Product{
			Name:        seed.name,
			Category:    seed.category,
			Price:       decimal.RequireFromString(seed.price),
			Description: seed.description,
			Stock:       seed.stock,
			Code:        seed.code,
			ImageURL:    seed.image,
		})
	}

	return products
}
