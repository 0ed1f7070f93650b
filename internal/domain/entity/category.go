package entity

// Category is the root level of the product taxonomy.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// Subcategory belongs to a Category.
type Subcategory struct {
	ID         string `json:"id"`
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
	Slug       string `json:"slug,omitempty"`
	IsActive   bool   `json:"isActive"`
}

// Attribute is a product attribute defined on a category or a subcategory.
// Exactly one of CategoryID and SubcategoryID is expected to be set.
type Attribute struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Options       []string `json:"options,omitempty"`
	IsRequired    bool     `json:"isRequired"`
	CategoryID    string   `json:"categoryId,omitempty"`
	SubcategoryID string   `json:"subcategoryId,omitempty"`
}

// ProductType belongs to a Subcategory.
type ProductType struct {
	ID            string `json:"id"`
	SubcategoryID string `json:"subcategoryId"`
	Name          string `json:"name"`
}

// SubcategoryNode is a subcategory with its attributes and product types.
type SubcategoryNode struct {
	Subcategory
	Attributes   []Attribute   `json:"attributes"`
	ProductTypes []ProductType `json:"productTypes"`
}

// CategoryNode is a category with its own attributes and subcategories.
type CategoryNode struct {
	Category
	Attributes    []Attribute       `json:"attributes"`
	Subcategories []SubcategoryNode `json:"subcategories"`
}

// Taxonomy is the assembled four-level tree plus entries whose parent was not found.
type Taxonomy struct {
	Categories          []CategoryNode `json:"categories"`
	OrphanSubcategories []Subcategory  `json:"orphanSubcategories,omitempty"`
	OrphanAttributes    []Attribute    `json:"orphanAttributes,omitempty"`
	OrphanProductTypes  []ProductType  `json:"orphanProductTypes,omitempty"`
}
