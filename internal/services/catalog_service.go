package services

import (
	"github.com/mehuljariwala/admin-dashboard/internal/domain"
	"github.com/mehuljariwala/admin-dashboard/internal/repos"
)

type CatalogService struct {
	Colors *repos.ColorRepo
}

func NewCatalogService(colors *repos.ColorRepo) *CatalogService {
	return &CatalogService{Colors: colors}
}

// PickerSubcategory groups the enabled colors shown under one section
// heading of a category tab.
type PickerSubcategory struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Colors []domain.Color `json:"colors"`
}

// PickerCategory is one tab of the order-entry grid.
type PickerCategory struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Subcategories []PickerSubcategory `json:"subcategories"`
}

// Picker assembles the category -> subcategory -> color hierarchy for the
// order grid. Ordering at every level comes from the repos' display-order
// rule, so grouping here just preserves it.
func (s *CatalogService) Picker() ([]PickerCategory, error) {
	cats, err := s.Colors.Categories()
	if err != nil {
		return nil, err
	}
	subs, err := s.Colors.Subcategories()
	if err != nil {
		return nil, err
	}
	colors, err := s.Colors.List(true)
	if err != nil {
		return nil, err
	}

	colorsBySub := map[string][]domain.Color{}
	for _, c := range colors {
		colorsBySub[c.SubcategoryID] = append(colorsBySub[c.SubcategoryID], c)
	}
	subsByCat := map[string][]PickerSubcategory{}
	for _, sub := range subs {
		cl := colorsBySub[sub.ID]
		if cl == nil {
			cl = []domain.Color{}
		}
		subsByCat[sub.CategoryID] = append(subsByCat[sub.CategoryID], PickerSubcategory{
			ID: sub.ID, Name: sub.Name, Colors: cl,
		})
	}

	out := make([]PickerCategory, 0, len(cats))
	for _, cat := range cats {
		sc := subsByCat[cat.ID]
		if sc == nil {
			sc = []PickerSubcategory{}
		}
		out = append(out, PickerCategory{ID: cat.ID, Name: cat.Name, Subcategories: sc})
	}
	return out, nil
}
