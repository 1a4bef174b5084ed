package repos

import (
	"context"
	"sort"
	"strings"

	"wecamp/internal/domain"
	"wecamp/internal/kvstore"
)

// Reference brands and images back the "inspiration" gallery: curated
// manufacturer material separate from the sellable brand taxonomy.

type ReferenceBrandRepo struct {
	c collection[domain.ReferenceBrand, *domain.ReferenceBrand]
}

func NewReferenceBrandRepo(s kvstore.Store) *ReferenceBrandRepo {
	return &ReferenceBrandRepo{c: collection[domain.ReferenceBrand, *domain.ReferenceBrand]{
		store: s, key: KeyReferenceBrands, entity: "reference brand",
	}}
}

func (r *ReferenceBrandRepo) All(ctx context.Context) ([]domain.ReferenceBrand, error) {
	return r.c.all(ctx)
}

func (r *ReferenceBrandRepo) ByID(ctx context.Context, id string) (domain.ReferenceBrand, error) {
	return r.c.byID(ctx, id)
}

func (r *ReferenceBrandRepo) Create(ctx context.Context, b domain.ReferenceBrand) (domain.ReferenceBrand, error) {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return domain.ReferenceBrand{}, &domain.ValidationError{Field: "name", Reason: "required"}
	}
	return r.c.insert(ctx, b, func(existing domain.ReferenceBrand) *domain.DuplicateError {
		if strings.EqualFold(existing.Name, b.Name) {
			return &domain.DuplicateError{Entity: "reference brand", Field: "name", Value: b.Name}
		}
		return nil
	})
}

func (r *ReferenceBrandRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

type ReferenceImageRepo struct {
	c collection[domain.ReferenceImage, *domain.ReferenceImage]
}

func NewReferenceImageRepo(s kvstore.Store) *ReferenceImageRepo {
	return &ReferenceImageRepo{c: collection[domain.ReferenceImage, *domain.ReferenceImage]{
		store: s, key: KeyReferenceImages, entity: "reference image",
	}}
}

// ForBrand returns a brand's images in display order. brandID may point at a
// deleted reference brand; the dangling set is still returned.
func (r *ReferenceImageRepo) ForBrand(ctx context.Context, brandID string) ([]domain.ReferenceImage, error) {
	list, err := r.c.all(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ReferenceImage, 0, len(list))
	for _, img := range list {
		if img.BrandID == brandID {
			out = append(out, img)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *ReferenceImageRepo) All(ctx context.Context) ([]domain.ReferenceImage, error) {
	return r.c.all(ctx)
}

func (r *ReferenceImageRepo) Create(ctx context.Context, img domain.ReferenceImage) (domain.ReferenceImage, error) {
	if strings.TrimSpace(img.URL) == "" {
		return domain.ReferenceImage{}, &domain.ValidationError{Field: "url", Reason: "required"}
	}
	return r.c.insert(ctx, img, nil)
}

func (r *ReferenceImageRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}
