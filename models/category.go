// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Category is an enum-like tag attached to a snippet.
type Category string

// Virtual categories used only as list filters, never stored.
const (
	CategoryAll Category = "all"
	CategoryMy  Category = "my"
)

// Stored categories.
const (
	CategoryButton    Category = "button"
	CategoryInput     Category = "input"
	CategoryDropdown  Category = "dropdown"
	CategorySelection Category = "selection"
	CategoryCard      Category = "card"
	CategoryTable     Category = "table"
	CategoryModal     Category = "modal"
	CategoryToggle    Category = "toggle"
	CategoryBadge     Category = "badge"
	CategoryEtc       Category = "etc"
)

// Categories is the catalogue of categories offered to users, in display order.
var Categories = []Category{
	CategoryButton,
	CategoryInput,
	CategoryDropdown,
	CategorySelection,
	CategoryCard,
	CategoryTable,
	CategoryModal,
	CategoryToggle,
	CategoryBadge,
	CategoryEtc,
}

// IsVirtual reports whether c is a list filter rather than a storable tag.
func (c Category) IsVirtual() bool {
	return c == CategoryAll || c == CategoryMy
}

func (c Category) String() string {
	return string(c)
}

// CategoriesResponse is returned by GET /categories.
type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}
