package view

import "marketplace/internal/domain/entity"

// BuildTaxonomy assembles the four flat taxonomy lists into a tree keyed by
// parent ids. Entries whose parent is missing are returned as orphans.
func BuildTaxonomy(
	categories []entity.Category,
	subcategories []entity.Subcategory,
	attributes []entity.Attribute,
	productTypes []entity.ProductType,
) entity.Taxonomy {
	tree := entity.Taxonomy{Categories: make([]entity.CategoryNode, 0, len(categories))}

	catIndex := make(map[string]int, len(categories))
	for _, c := range categories {
		catIndex[c.ID] = len(tree.Categories)
		tree.Categories = append(tree.Categories, entity.CategoryNode{
			Category:      c,
			Attributes:    []entity.Attribute{},
			Subcategories: []entity.SubcategoryNode{},
		})
	}

	// subcategory id -> (category index, subcategory index)
	type position struct{ cat, sub int }
	subIndex := make(map[string]position, len(subcategories))
	for _, s := range subcategories {
		ci, ok := catIndex[s.CategoryID]
		if !ok {
			tree.OrphanSubcategories = append(tree.OrphanSubcategories, s)

			continue
		}
		node := &tree.Categories[ci]
		subIndex[s.ID] = position{cat: ci, sub: len(node.Subcategories)}
		node.Subcategories = append(node.Subcategories, entity.SubcategoryNode{
			Subcategory:  s,
			Attributes:   []entity.Attribute{},
			ProductTypes: []entity.ProductType{},
		})
	}

	for _, a := range attributes {
		switch {
		case a.SubcategoryID != "":
			if pos, ok := subIndex[a.SubcategoryID]; ok {
				sub := &tree.Categories[pos.cat].Subcategories[pos.sub]
				sub.Attributes = append(sub.Attributes, a)

				continue
			}
		case a.CategoryID != "":
			if ci, ok := catIndex[a.CategoryID]; ok {
				tree.Categories[ci].Attributes = append(tree.Categories[ci].Attributes, a)

				continue
			}
		}
		tree.OrphanAttributes = append(tree.OrphanAttributes, a)
	}

	for _, pt := range productTypes {
		pos, ok := subIndex[pt.SubcategoryID]
		if !ok {
			tree.OrphanProductTypes = append(tree.OrphanProductTypes, pt)

			continue
		}
		sub := &tree.Categories[pos.cat].Subcategories[pos.sub]
		sub.ProductTypes = append(sub.ProductTypes, pt)
	}

	return tree
}
