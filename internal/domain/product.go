package domain

// Product описывает товар каталога. Каталог неизменяемый:
// записи создаются один раз при старте процесса и не редактируются.
type Product struct {
	ID          int64
	Name        string
	Price       string // Отображаемая цена, например "135.00 GEL"
	Category    string
	Image       string
	Brand       string
	Size        string
	Description string
	Features    []string
	Gallery     []GalleryImage
}

// GalleryImage — один кадр галереи на странице товара.
type GalleryImage struct {
	ID  string
	Src string
}

// ProductOverride — частичная запись товара, переданная через навигацию.
// Поля-указатели: nil означает «взять значение из каталога».
type ProductOverride struct {
	ID          *int64
	Name        *string
	Price       *string
	Category    *string
	Image       *string
	Brand       *string
	Size        *string
	Description *string
	Features    []string
	Gallery     []GalleryImage
}

// Merge возвращает копию товара с наложенными полями override.
// Поля override имеют приоритет над полями каталога.
func (p Product) Merge(ov *ProductOverride) Product {
	if ov == nil {
		return p
	}

	if ov.ID != nil {
		p.ID = *ov.ID
	}
	if ov.Name != nil {
		p.Name = *ov.Name
	}
	if ov.Price != nil {
		p.Price = *ov.Price
	}
	if ov.Category != nil {
		p.Category = *ov.Category
	}
	if ov.Image != nil {
		p.Image = *ov.Image
	}
	if ov.Brand != nil {
		p.Brand = *ov.Brand
	}
	if ov.Size != nil {
		p.Size = *ov.Size
	}
	if ov.Description != nil {
		p.Description = *ov.Description
	}
	if ov.Features != nil {
		p.Features = ov.Features
	}
	if ov.Gallery != nil {
		p.Gallery = ov.Gallery
	}

	return p
}

// FromOverride собирает товар из одного override, когда записи в каталоге нет.
func FromOverride(ov *ProductOverride) Product {
	return Product{}.Merge(ov)
}
