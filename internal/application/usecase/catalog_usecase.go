package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/aisyarahmani/toko-pos/internal/application/dto"
	"github.com/aisyarahmani/toko-pos/internal/application/events"
	"github.com/aisyarahmani/toko-pos/internal/domain"
	"github.com/aisyarahmani/toko-pos/internal/domain/entity"
	"github.com/aisyarahmani/toko-pos/internal/domain/repository"
)

// CatalogUseCase memegang katalog barang di memori dan menuliskannya utuh ke
// repository setiap mutasi. State dimiliki eksplisit di sini, bukan global.
type CatalogUseCase struct {
	repo     repository.CatalogRepository
	bus      *events.Bus
	products []entity.Product
}

// NewCatalogUseCase memuat katalog dari repository (menanam katalog bawaan
// bila kosong) dan membangun kasus penggunaan.
func NewCatalogUseCase(repo repository.CatalogRepository, bus *events.Bus) (*CatalogUseCase, error) {
	products, err := repo.Load()
	if err != nil {
		return nil, err
	}
	return &CatalogUseCase{repo: repo, bus: bus, products: products}, nil
}

// Add membuat barang baru dengan ID segar. ErrDuplicateCode bila kode bentrok.
func (uc *CatalogUseCase) Add(in dto.ProductRequest) (*entity.Product, error) {
	if uc.codeTaken(in.Code, "") {
		return nil, domain.ErrDuplicateCode
	}
	p := entity.Product{
		ID:       uuid.New().String(),
		Code:     in.Code,
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Stock:    in.Stock,
	}
	uc.products = append(uc.products, p)
	if err := uc.persist(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update mengganti field barang di tempat. ErrNotFound bila ID tidak ada,
// ErrDuplicateCode bila kode bentrok dengan barang lain.
func (uc *CatalogUseCase) Update(id string, in dto.ProductRequest) (*entity.Product, error) {
	idx := uc.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	if uc.codeTaken(in.Code, id) {
		return nil, domain.ErrDuplicateCode
	}
	p := &uc.products[idx]
	p.Code = in.Code
	p.Name = in.Name
	p.Category = in.Category
	p.Price = in.Price
	p.Stock = in.Stock
	if err := uc.persist(); err != nil {
		return nil, err
	}
	out := *p
	return &out, nil
}

// Remove menghapus barang berdasarkan ID. ID yang tidak ada dianggap sukses
// diam-diam (perilaku lama dipertahankan). Transaksi lampau tidak terpengaruh
// karena menyimpan salinan baris, bukan referensi.
func (uc *CatalogUseCase) Remove(id string) error {
	idx := uc.indexOf(id)
	if idx < 0 {
		return nil
	}
	uc.products = append(uc.products[:idx], uc.products[idx+1:]...)
	return uc.persist()
}

// NextCode saran kode berikutnya untuk kategori: prefiks kategori + nomor urut
// tiga digit. Hanya memindai kode yang benar-benar berawalan prefiks itu;
// sufiks yang bukan angka diabaikan saat mencari maksimum. Deterministik:
// tanpa penambahan barang di antaranya, hasilnya selalu sama.
func (uc *CatalogUseCase) NextCode(category string) string {
	prefix, ok := entity.CategoryPrefixes[strings.ToLower(category)]
	if !ok {
		prefix = "X"
	}
	max := 0
	for _, p := range uc.products {
		if !strings.HasPrefix(p.Code, prefix) {
			continue
		}
		n, err := strconv.Atoi(p.Code[len(prefix):])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}

// List katalog terfilter untuk grid kasir: kategori ("all" atau kosong berarti
// semua) lalu pencarian substring nama/kode tanpa memperhatikan kapital.
func (uc *CatalogUseCase) List(category, query string) []entity.Product {
	out := make([]entity.Product, 0, len(uc.products))
	q := strings.ToLower(strings.TrimSpace(query))
	for _, p := range uc.products {
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Code), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FindByCodeOrName pencarian entri manual kasir: kecocokan persis pada kode
// atau nama, tanpa memperhatikan kapital. ErrProductNotFound bila tidak ada.
func (uc *CatalogUseCase) FindByCodeOrName(query string) (*entity.Product, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, domain.ErrProductNotFound
	}
	for _, p := range uc.products {
		if strings.ToLower(p.Code) == q || strings.ToLower(p.Name) == q {
			out := p
			return &out, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// Products salinan seluruh katalog (untuk tabel inventaris).
func (uc *CatalogUseCase) Products() []entity.Product {
	out := make([]entity.Product, len(uc.products))
	copy(out, uc.products)
	return out
}

// Get mengembalikan barang berdasarkan ID, atau ErrNotFound.
func (uc *CatalogUseCase) Get(id string) (*entity.Product, error) {
	idx := uc.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	out := uc.products[idx]
	return &out, nil
}

func (uc *CatalogUseCase) indexOf(id string) int {
	for i, p := range uc.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// codeTaken cek bentrok kode, mengecualikan excludeID saat mode ubah.
func (uc *CatalogUseCase) codeTaken(code, excludeID string) bool {
	for _, p := range uc.products {
		if p.Code == code && p.ID != excludeID {
			return true
		}
	}
	return false
}

func (uc *CatalogUseCase) persist() error {
	if err := uc.repo.Save(uc.products); err != nil {
		return err
	}
	uc.bus.Publish(events.TopicCatalog)
	return nil
}
